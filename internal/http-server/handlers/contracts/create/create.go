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

type ContractCreator interface {
	CreateContract(ctx context.Context, req *api.ContractRequest) (*api.ContractResponse, error)
}

type Request struct {
	api.ContractRequest
}

type Response struct {
	response.Response
	Contract api.ContractResponse `json:"contract,omitempty"`
}

func New(log *slog.Logger, creator ContractCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contracts.create.New"

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

		if req.PatientID == "" {
			log.Error("patient_id is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "patient_id is required"))
			return
		}

		contract, err := creator.CreateContract(r.Context(), &req.ContractRequest)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("patient not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "patient not found"))
			return
		}

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("invalid contract payload", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "invalid contract payload"))
			return
		}

		if err != nil {
			log.Error("Failed to create contract", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create contract"))
			return
		}

		log.Info("Contract created", slog.Any("contract", contract))

		w.WriteHeader(http.StatusCreated)
		responseOK(w, r, contract)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, contract *api.ContractResponse) {
	render.JSON(w, r, Response{
		Contract: *contract,
	})
}
