package close

import (
	"homecare-service/api"
	"homecare-service/pkg/response"
	"homecare-service/pkg/sl"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type MonitoringCloser interface {
	CloseMonitoring(ctx context.Context, id string) (*api.MonitoringResponse, error)
}

type Response struct {
	response.Response
	Monitoring api.MonitoringResponse `json:"monitoring,omitempty"`
}

func New(log *slog.Logger, closer MonitoringCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.monitoring.close.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("id is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "id is required"))
			return
		}

		monitoring, err := closer.CloseMonitoring(r.Context(), id)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("resource not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if errors.Is(err, response.ErrConflict) {
			log.Error("monitoring already closed")
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(string(response.CONFLICT), "monitoring already closed"))
			return
		}

		if err != nil {
			log.Error("Failed to close monitoring", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to close monitoring"))
			return
		}

		log.Info("Monitoring closed", slog.String("id", id))
		render.JSON(w, r, Response{
			Monitoring: *monitoring,
		})
	}
}
