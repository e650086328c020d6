package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/infrastructure/repository"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/endpoint"
	"github.com/adsops/campaign-optimizer-api/pkg/apiErrors"
)

// ListDirectives lista as diretivas de uma conta, com filtro opcional de status
func ListDirectives(directiveRepo repository.DirectiveRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		filterStatus := r.URL.Query().Get("status")

		statuses := make([]domain.DirectiveStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				statuses = append(statuses, domain.DirectiveStatus(status))
			}
		}

		directives, err := directiveRepo.ListByAccountID(id, statuses)
		if err != nil {
			logrus.Error("Error listing directives:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar diretivas no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(directives); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UpdateDirectiveEndpoint altera a configuração explícita de endpoint da
// diretiva (primeiro nível da cascata). Endpoint nil limpa a configuração.
func UpdateDirectiveEndpoint(directiveRepo repository.DirectiveRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateDirectiveEndpoint")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da diretiva é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateDirectiveEndpointRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// String vazia não é um endpoint válido: ou um valor, ou nil
		if updateRequest.Endpoint != nil && *updateRequest.Endpoint == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Endpoint não pode ser string vazia; use null para limpar", nil)
			return
		}

		directive, err := directiveRepo.GetByID(id)
		if err != nil {
			logrus.Error("Error fetching directive:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar diretiva no banco de dados", nil)
			return
		}

		if directive == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Diretiva não encontrada", map[string]interface{}{
				"directive_id": id,
			})
			return
		}

		if err := directiveRepo.UpdateContactEndpoint(id, updateRequest.Endpoint); err != nil {
			logrus.Error("Error updating directive endpoint:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar endpoint da diretiva", nil)
			return
		}

		directive.ContactEndpoint = updateRequest.Endpoint

		if err := json.NewEncoder(w).Encode(directive); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ResolveDirectiveEndpoint executa a cascata de resolução e devolve o
// endpoint efetivo da diretiva. Resolução sem valor é resposta legítima.
func ResolveDirectiveEndpoint(
	directiveRepo repository.DirectiveRepository,
	accountRepo repository.AccountRepository,
	resolver endpoint.Resolver,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da diretiva é obrigatório", nil)
			return
		}

		directive, err := directiveRepo.GetByID(id)
		if err != nil {
			logrus.Error("Error fetching directive:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar diretiva no banco de dados", nil)
			return
		}

		if directive == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Diretiva não encontrada", map[string]interface{}{
				"directive_id": id,
			})
			return
		}

		account, err := accountRepo.GetAccountByID(directive.AccountID)
		if err != nil {
			logrus.Error("Error fetching account:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar conta no banco de dados", nil)
			return
		}

		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Conta da diretiva não encontrada", nil)
			return
		}

		resolved, err := resolver.ResolveEndpoint(directive, account)
		if err != nil {
			logrus.Error("Error resolving endpoint:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao resolver endpoint da diretiva", nil)
			return
		}

		response := map[string]any{
			"directive_id": directive.ID,
			"endpoint":     resolved,
			"resolved":     resolved != nil,
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
