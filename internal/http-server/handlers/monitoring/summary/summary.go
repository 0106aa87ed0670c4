package summary

import (
	"homecare-service/api"
	"homecare-service/internal/summarizer"
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

type MonitoringSummarizer interface {
	SummarizeMonitoring(ctx context.Context, id string) (*api.MonitoringResponse, error)
}

type Response struct {
	response.Response
	Monitoring api.MonitoringResponse `json:"monitoring,omitempty"`
}

func New(log *slog.Logger, svc MonitoringSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.monitoring.summary.New"

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

		monitoring, err := svc.SummarizeMonitoring(r.Context(), id)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("resource not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if errors.Is(err, summarizer.ErrDisabled) {
			log.Error("summary service is not configured")
			w.WriteHeader(http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error(string(response.SUMMARY_FAILED), "summary service is not configured"))
			return
		}

		if err != nil {
			log.Error("Failed to summarize monitoring", sl.Err(err))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, response.Error(string(response.SUMMARY_FAILED), "failed to summarize monitoring"))
			return
		}

		log.Info("Monitoring summarized", slog.String("id", id))
		render.JSON(w, r, Response{
			Monitoring: *monitoring,
		})
	}
}
