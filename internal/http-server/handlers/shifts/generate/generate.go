package generate

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

type ShiftGenerator interface {
	GenerateShifts(ctx context.Context, req *api.ShiftGenerateRequest) (*api.ShiftBatchResponse, error)
}

type Request struct {
	api.ShiftGenerateRequest
}

type Response struct {
	response.Response
	api.ShiftBatchResponse
}

func New(log *slog.Logger, generator ShiftGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.shifts.generate.New"

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

		if req.PatientID == "" || req.EmployeeID == "" {
			log.Error("patient_id or employee_id is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "patient_id and employee_id are required"))
			return
		}

		batch, err := generator.GenerateShifts(r.Context(), &req.ShiftGenerateRequest)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("patient or employee not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "patient or employee not found"))
			return
		}

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("invalid generation payload", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "invalid generation payload"))
			return
		}

		if errors.Is(err, response.ErrLocked) {
			log.Error("generation already running for patient")
			w.WriteHeader(http.StatusLocked)
			render.JSON(w, r, response.Error(string(response.LOCKED), "generation already running for this patient"))
			return
		}

		if err != nil {
			log.Error("Failed to generate shifts", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to generate shifts"))
			return
		}

		log.Info("Shifts generated",
			slog.Int("requested", batch.Requested),
			slog.Int("created", batch.Created),
			slog.Bool("truncated", batch.Truncated),
		)

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{
			ShiftBatchResponse: *batch,
		})
	}
}
