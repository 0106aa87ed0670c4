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

type TimeRecordGetter interface {
	GetTimeRecord(ctx context.Context, id string) (*api.TimeRecordResponse, error)
	ListTimeRecords(ctx context.Context, employeeID *string) ([]*api.TimeRecordResponse, error)
}

type Response struct {
	response.Response
	TimeRecords []api.TimeRecordResponse `json:"time_records,omitempty"`
	TimeRecord  *api.TimeRecordResponse  `json:"time_record,omitempty"`
}

func New(log *slog.Logger, getter TimeRecordGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.timecard.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			record, err := getter.GetTimeRecord(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get time record", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get time record"))
				return
			}

			log.Info("Time record retrieved", slog.Any("time_record", record))
			render.JSON(w, r, Response{
				TimeRecord: record,
			})
			return
		}

		var employeeIDPtr *string
		if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
			employeeIDPtr = &employeeID
		}

		records, err := getter.ListTimeRecords(r.Context(), employeeIDPtr)

		if err != nil {
			log.Error("Failed to list time records", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list time records"))
			return
		}

		log.Info("Time records retrieved", slog.Int("count", len(records)))
		recordsResponse := make([]api.TimeRecordResponse, len(records))
		for i, rec := range records {
			recordsResponse[i] = *rec
		}
		render.JSON(w, r, Response{
			TimeRecords: recordsResponse,
		})
	}
}
