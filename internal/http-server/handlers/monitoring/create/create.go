package create

import (
	"homecare-service/api"
	"homecare-service/pkg/response"
	"homecare-service/pkg/sl"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type MonitoringCreator interface {
	CreateMonitoring(ctx context.Context, req *api.MonitoringRequest) (*api.MonitoringResponse, error)
}

type Request struct {
	api.MonitoringRequest
}

type Response struct {
	response.Response
	Monitoring api.MonitoringResponse `json:"monitoring,omitempty"`
}

func New(log *slog.Logger, creator MonitoringCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.monitoring.create.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		log.Info("Request body decoded", slog.Any("request", req))

		if req.ContractID == "" {
			log.Error("contract_id is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "contract_id is required"))
			return
		}

		monitoring, err := creator.CreateMonitoring(r.Context(), &req.MonitoringRequest)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("contract not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "contract not found"))
			return
		}

		if errors.Is(err, response.ErrConflict) {
			log.Error("monitoring already exists for month")
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(string(response.CONFLICT), "monitoring already exists for this month"))
			return
		}

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("invalid monitoring payload", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "invalid monitoring payload"))
			return
		}

		if err != nil {
			log.Error("Failed to create monitoring", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create monitoring"))
			return
		}

		log.Info("Monitoring created", slog.Any("monitoring", monitoring))

		w.WriteHeader(http.StatusCreated)
		responseOK(w, r, monitoring)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, monitoring *api.MonitoringResponse) {
	render.JSON(w, r, Response{
		Monitoring: *monitoring,
	})
}
