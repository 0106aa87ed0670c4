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

type PatientGetter interface {
	GetPatient(ctx context.Context, id string) (*api.PatientResponse, error)
	ListPatients(ctx context.Context) ([]*api.PatientResponse, error)
}

type Response struct {
	response.Response
	Patients []api.PatientResponse `json:"patients,omitempty"`
	Patient  *api.PatientResponse  `json:"patient,omitempty"`
}

func New(log *slog.Logger, getter PatientGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.patients.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			patient, err := getter.GetPatient(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get patient", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get patient"))
				return
			}

			log.Info("Patient retrieved", slog.Any("patient", patient))
			render.JSON(w, r, Response{
				Patient: patient,
			})
			return
		}

		patients, err := getter.ListPatients(r.Context())

		if err != nil {
			log.Error("Failed to list patients", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list patients"))
			return
		}

		log.Info("Patients retrieved", slog.Int("count", len(patients)))
		patientsResponse := make([]api.PatientResponse, len(patients))
		for i, p := range patients {
			patientsResponse[i] = *p
		}
		render.JSON(w, r, Response{
			Patients: patientsResponse,
		})
	}
}
