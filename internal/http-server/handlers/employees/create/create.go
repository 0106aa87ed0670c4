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

type EmployeeCreator interface {
	CreateEmployee(ctx context.Context, req *api.EmployeeRequest) (*api.EmployeeResponse, error)
}

type Request struct {
	api.EmployeeRequest
}

type Response struct {
	response.Response
	Employee api.EmployeeResponse `json:"employee,omitempty"`
}

func New(log *slog.Logger, creator EmployeeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.create.New"

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

		employee, err := creator.CreateEmployee(r.Context(), &req.EmployeeRequest)

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("invalid employee payload", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "invalid employee payload"))
			return
		}

		if err != nil {
			log.Error("Failed to create employee", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create employee"))
			return
		}

		log.Info("Employee created", slog.Any("employee", employee))

		w.WriteHeader(http.StatusCreated)
		responseOK(w, r, employee)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, employee *api.EmployeeResponse) {
	render.JSON(w, r, Response{
		Employee: *employee,
	})
}
