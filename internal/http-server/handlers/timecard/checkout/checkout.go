package checkout

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

type CheckerOut interface {
	CheckOut(ctx context.Context, employeeID string, req *api.CheckOutRequest) (*api.TimeRecordResponse, error)
}

type Request struct {
	api.CheckOutRequest
}

type Response struct {
	response.Response
	TimeRecord api.TimeRecordResponse `json:"time_record,omitempty"`
}

func New(log *slog.Logger, checker CheckerOut) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.timecard.checkout.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		employeeID := chi.URLParam(r, "employee_id")
		if employeeID == "" {
			log.Error("employee_id is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "employee_id is required"))
			return
		}

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		log.Info("Request body decoded", slog.Any("request", req))

		record, err := checker.CheckOut(r.Context(), employeeID, &req.CheckOutRequest)

		if errors.Is(err, response.ErrNoOpenTimeRecord) {
			log.Error("no open time record")
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(string(response.NO_OPEN_RECORD), "no open time record"))
			return
		}

		if err != nil {
			log.Error("Failed to check out", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to check out"))
			return
		}

		log.Info("Employee checked out", slog.String("time_record_id", record.ID))
		render.JSON(w, r, Response{
			TimeRecord: *record,
		})
	}
}
