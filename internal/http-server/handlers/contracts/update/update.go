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

type ContractUpdater interface {
	UpdateContract(ctx context.Context, id string, req *api.ContractRequest) (*api.ContractResponse, error)
}

type Request struct {
	api.ContractRequest
}

type Response struct {
	response.Response
	Contract api.ContractResponse `json:"contract,omitempty"`
}

func New(log *slog.Logger, updater ContractUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contracts.update.New"

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

		contract, err := updater.UpdateContract(r.Context(), id, &req.ContractRequest)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("resource not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("invalid contract payload", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "invalid contract payload"))
			return
		}

		if err != nil {
			log.Error("Failed to update contract", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to update contract"))
			return
		}

		log.Info("Contract updated", slog.Any("contract", contract))
		responseOK(w, r, contract)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, contract *api.ContractResponse) {
	render.JSON(w, r, Response{
		Contract: *contract,
	})
}
