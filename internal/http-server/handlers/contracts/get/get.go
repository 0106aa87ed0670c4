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

type ContractGetter interface {
	GetContract(ctx context.Context, id string) (*api.ContractResponse, error)
	ListContracts(ctx context.Context, patientID *string) ([]*api.ContractResponse, error)
}

type Response struct {
	response.Response
	Contracts []api.ContractResponse `json:"contracts,omitempty"`
	Contract  *api.ContractResponse  `json:"contract,omitempty"`
}

func New(log *slog.Logger, getter ContractGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contracts.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")
		patientID := r.URL.Query().Get("patient_id")

		if id != "" {
			contract, err := getter.GetContract(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get contract", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get contract"))
				return
			}

			log.Info("Contract retrieved", slog.Any("contract", contract))
			render.JSON(w, r, Response{
				Contract: contract,
			})
			return
		}

		var patientIDPtr *string
		if patientID != "" {
			patientIDPtr = &patientID
		}

		contracts, err := getter.ListContracts(r.Context(), patientIDPtr)

		if err != nil {
			log.Error("Failed to list contracts", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list contracts"))
			return
		}

		log.Info("Contracts retrieved", slog.Int("count", len(contracts)))
		contractsResponse := make([]api.ContractResponse, len(contracts))
		for i, c := range contracts {
			contractsResponse[i] = *c
		}
		render.JSON(w, r, Response{
			Contracts: contractsResponse,
		})
	}
}
