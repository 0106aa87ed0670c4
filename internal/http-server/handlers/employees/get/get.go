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

type EmployeeGetter interface {
	GetEmployee(ctx context.Context, id string) (*api.EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]*api.EmployeeResponse, error)
}

type Response struct {
	response.Response
	Employees []api.EmployeeResponse `json:"employees,omitempty"`
	Employee  *api.EmployeeResponse  `json:"employee,omitempty"`
}

func New(log *slog.Logger, getter EmployeeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			employee, err := getter.GetEmployee(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get employee", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get employee"))
				return
			}

			log.Info("Employee retrieved", slog.Any("employee", employee))
			render.JSON(w, r, Response{
				Employee: employee,
			})
			return
		}

		employees, err := getter.ListEmployees(r.Context())

		if err != nil {
			log.Error("Failed to list employees", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list employees"))
			return
		}

		log.Info("Employees retrieved", slog.Int("count", len(employees)))
		employeesResponse := make([]api.EmployeeResponse, len(employees))
		for i, e := range employees {
			employeesResponse[i] = *e
		}
		render.JSON(w, r, Response{
			Employees: employeesResponse,
		})
	}
}
