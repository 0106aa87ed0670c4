package update

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

type EmployeeUpdater interface {
	UpdateEmployee(ctx context.Context, id string, req *api.EmployeeRequest) (*api.EmployeeResponse, error)
}

type Request struct {
	api.EmployeeRequest
}

type Response struct {
	response.Response
	Employee api.EmployeeResponse `json:"employee,omitempty"`
}

func New(log *slog.Logger, updater EmployeeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.update.New"

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

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		log.Info("Request body decoded", slog.Any("request", req))

		employee, err := updater.UpdateEmployee(r.Context(), id, &req.EmployeeRequest)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("resource not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("invalid employee payload", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "invalid employee payload"))
			return
		}

		if err != nil {
			log.Error("Failed to update employee", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to update employee"))
			return
		}

		log.Info("Employee updated", slog.Any("employee", employee))
		responseOK(w, r, employee)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, employee *api.EmployeeResponse) {
	render.JSON(w, r, Response{
		Employee: *employee,
	})
}
