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

type PatientCreator interface {
	CreatePatient(ctx context.Context, req *api.PatientRequest) (*api.PatientResponse, error)
}

type Request struct {
	api.PatientRequest
}

type Response struct {
	response.Response
	Patient api.PatientResponse `json:"patient,omitempty"`
}

func New(log *slog.Logger, creator PatientCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.patients.create.New"

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

		if req.Name == "" {
			log.Error("name is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "name is required"))
			return
		}

		patient, err := creator.CreatePatient(r.Context(), &req.PatientRequest)

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("invalid patient payload", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "invalid patient payload"))
			return
		}

		if err != nil {
			log.Error("Failed to create patient", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create patient"))
			return
		}

		log.Info("Patient created", slog.Any("patient", patient))

		w.WriteHeader(http.StatusCreated)
		responseOK(w, r, patient)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, patient *api.PatientResponse) {
	render.JSON(w, r, Response{
		Patient: *patient,
	})
}
