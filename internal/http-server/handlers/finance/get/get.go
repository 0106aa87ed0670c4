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

type FinanceRecordGetter interface {
	GetFinanceRecord(ctx context.Context, id string) (*api.FinanceRecordResponse, error)
	ListFinanceRecords(ctx context.Context, paymentType, status, patientID *string) ([]*api.FinanceRecordResponse, error)
}

type Response struct {
	response.Response
	Records []api.FinanceRecordResponse `json:"records,omitempty"`
	Record  *api.FinanceRecordResponse  `json:"record,omitempty"`
}

func New(log *slog.Logger, getter FinanceRecordGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.finance.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			record, err := getter.GetFinanceRecord(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get finance record", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get finance record"))
				return
			}

			log.Info("Finance record retrieved", slog.Any("record", record))
			render.JSON(w, r, Response{
				Record: record,
			})
			return
		}

		var paymentType, status, patientID *string
		if v := r.URL.Query().Get("type"); v != "" {
			paymentType = &v
		}
		if v := r.URL.Query().Get("status"); v != "" {
			status = &v
		}
		if v := r.URL.Query().Get("patient_id"); v != "" {
			patientID = &v
		}

		records, err := getter.ListFinanceRecords(r.Context(), paymentType, status, patientID)

		if err != nil {
			log.Error("Failed to list finance records", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list finance records"))
			return
		}

		log.Info("Finance records retrieved", slog.Int("count", len(records)))
		recordsResponse := make([]api.FinanceRecordResponse, len(records))
		for i, rec := range records {
			recordsResponse[i] = *rec
		}
		render.JSON(w, r, Response{
			Records: recordsResponse,
		})
	}
}
