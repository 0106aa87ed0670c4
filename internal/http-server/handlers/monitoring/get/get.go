package get

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

type MonitoringGetter interface {
	GetMonitoring(ctx context.Context, id string) (*api.MonitoringResponse, error)
	ListMonitorings(ctx context.Context, contractID *string) ([]*api.MonitoringResponse, error)
}

type Response struct {
	response.Response
	Monitorings []api.MonitoringResponse `json:"monitorings,omitempty"`
	Monitoring  *api.MonitoringResponse  `json:"monitoring,omitempty"`
}

func New(log *slog.Logger, getter MonitoringGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.monitoring.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			monitoring, err := getter.GetMonitoring(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get monitoring", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get monitoring"))
				return
			}

			log.Info("Monitoring retrieved", slog.Any("monitoring", monitoring))
			render.JSON(w, r, Response{
				Monitoring: monitoring,
			})
			return
		}

		var contractIDPtr *string
		if contractID := r.URL.Query().Get("contract_id"); contractID != "" {
			contractIDPtr = &contractID
		}

		monitorings, err := getter.ListMonitorings(r.Context(), contractIDPtr)

		if err != nil {
			log.Error("Failed to list monitorings", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list monitorings"))
			return
		}

		log.Info("Monitorings retrieved", slog.Int("count", len(monitorings)))
		monitoringsResponse := make([]api.MonitoringResponse, len(monitorings))
		for i, m := range monitorings {
			monitoringsResponse[i] = *m
		}
		render.JSON(w, r, Response{
			Monitorings: monitoringsResponse,
		})
	}
}
