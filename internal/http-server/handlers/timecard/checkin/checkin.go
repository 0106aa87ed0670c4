package checkin

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

type CheckerIn interface {
	CheckIn(ctx context.Context, req *api.CheckInRequest) (*api.TimeRecordResponse, error)
}

type Request struct {
	api.CheckInRequest
}

type Response struct {
	response.Response
	TimeRecord api.TimeRecordResponse `json:"time_record,omitempty"`
}

func New(log *slog.Logger, checker CheckerIn) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.timecard.checkin.New"

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

		if req.EmployeeID == "" {
			log.Error("employee_id is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "employee_id is required"))
			return
		}

		record, err := checker.CheckIn(r.Context(), &req.CheckInRequest)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("employee not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "employee not found"))
			return
		}

		if errors.Is(err, response.ErrTimeRecordOpen) {
			log.Error("time record already open")
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(string(response.RECORD_OPEN), "time record already open"))
			return
		}

		if errors.Is(err, response.ErrLocked) {
			log.Error("check-in already running for employee")
			w.WriteHeader(http.StatusLocked)
			render.JSON(w, r, response.Error(string(response.LOCKED), "check-in already running for this employee"))
			return
		}

		if err != nil {
			log.Error("Failed to check in", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to check in"))
			return
		}

		log.Info("Employee checked in", slog.String("time_record_id", record.ID))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{
			TimeRecord: *record,
		})
	}
}
