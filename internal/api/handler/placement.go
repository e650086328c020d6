package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/infrastructure/repository"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/pool"
	"github.com/adsops/campaign-optimizer-api/pkg/apiErrors"
)

// LinkPlacement registra no pool um placement provisionado fora do sistema
func LinkPlacement(placementPool pool.Pool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - LinkPlacement")

		w.Header().Set("Content-Type", "application/json")

		var linkRequest domain.LinkPlacementRequest
		if err := json.NewDecoder(r.Body).Decode(&linkRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if linkRequest.AccountID == "" || linkRequest.DirectiveID == "" || linkRequest.ExternalID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_id, directive_id e external_id são obrigatórios", nil)
			return
		}

		placement, err := placementPool.Link(&domain.Placement{
			AccountID:   linkRequest.AccountID,
			DirectiveID: linkRequest.DirectiveID,
			ExternalID:  linkRequest.ExternalID,
		})
		if err != nil {
			logrus.Error("Error linking placement:", err)

			if strings.Contains(err.Error(), "já registrado") {
				apiErrors.WriteError(w, apiErrors.ErrAlreadyExists, "Placement já registrado para este external_id", map[string]interface{}{
					"external_id": linkRequest.ExternalID,
				})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar placement", nil)
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(placement); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UnlinkPlacement remove o registro de um placement removido externamente
func UnlinkPlacement(placementPool pool.Pool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UnlinkPlacement")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do placement é obrigatório", nil)
			return
		}

		if err := placementPool.Unlink(id); err != nil {
			logrus.Error("Error unlinking placement:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover registro do placement", nil)
			return
		}

		response := map[string]any{
			"message": "Placement removido com sucesso",
			"id":      id,
		}
		json.NewEncoder(w).Encode(response)
	})
}

// ListPlacements lista os placements de uma conta
func ListPlacements(placementRepo repository.PlacementRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		placements, err := placementRepo.ListByAccountID(id)
		if err != nil {
			logrus.Error("Error listing placements:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar placements no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(placements); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetPoolState devolve o estado agregado dos pools de uma conta
func GetPoolState(placementPool pool.Pool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		state, err := placementPool.StateByAccount(id)
		if err != nil {
			logrus.Error("Error fetching pool state:", err)

			if errors.Is(err, domain.ErrPoolExhausted) {
				apiErrors.WriteError(w, apiErrors.ErrPoolExhausted, "Pool de placements esgotado", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar estado dos pools", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(state); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
