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

type ShiftGetter interface {
	GetShift(ctx context.Context, id string) (*api.ShiftResponse, error)
	ListShiftsByDate(ctx context.Context, date string, patientID *string) ([]*api.ShiftResponse, error)
}

type Response struct {
	response.Response
	Shifts []api.ShiftResponse `json:"shifts,omitempty"`
	Shift  *api.ShiftResponse  `json:"shift,omitempty"`
}

func New(log *slog.Logger, getter ShiftGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.shifts.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			shift, err := getter.GetShift(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get shift", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get shift"))
				return
			}

			log.Info("Shift retrieved", slog.Any("shift", shift))
			render.JSON(w, r, Response{
				Shift: shift,
			})
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			log.Error("date is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "date is required"))
			return
		}

		var patientIDPtr *string
		if patientID := r.URL.Query().Get("patient_id"); patientID != "" {
			patientIDPtr = &patientID
		}

		shifts, err := getter.ListShiftsByDate(r.Context(), date, patientIDPtr)

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("invalid date", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "invalid date"))
			return
		}

		if err != nil {
			log.Error("Failed to list shifts", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list shifts"))
			return
		}

		log.Info("Shifts retrieved", slog.Int("count", len(shifts)))
		shiftsResponse := make([]api.ShiftResponse, len(shifts))
		for i, s := range shifts {
			shiftsResponse[i] = *s
		}
		render.JSON(w, r, Response{
			Shifts: shiftsResponse,
		})
	}
}
