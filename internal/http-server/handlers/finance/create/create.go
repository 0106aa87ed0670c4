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

type FinanceRecordCreator interface {
	CreateFinanceRecord(ctx context.Context, req *api.FinanceRecordRequest) (*api.FinanceRecordResponse, error)
}

type Request struct {
	api.FinanceRecordRequest
}

type Response struct {
	response.Response
	Record api.FinanceRecordResponse `json:"record,omitempty"`
}

func New(log *slog.Logger, creator FinanceRecordCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.finance.create.New"

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

		if req.Description == "" {
			log.Error("description is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "description is required"))
			return
		}

		record, err := creator.CreateFinanceRecord(r.Context(), &req.FinanceRecordRequest)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("linked resource not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "linked resource not found"))
			return
		}

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("invalid finance payload", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "invalid finance payload"))
			return
		}

		if err != nil {
			log.Error("Failed to create finance record", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create finance record"))
			return
		}

		log.Info("Finance record created", slog.Any("record", record))

		w.WriteHeader(http.StatusCreated)
		responseOK(w, r, record)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, record *api.FinanceRecordResponse) {
	render.JSON(w, r, Response{
		Record: *record,
	})
}
