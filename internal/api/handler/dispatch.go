package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/infrastructure/repository"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/dispatching"
	"github.com/adsops/campaign-optimizer-api/pkg/apiErrors"
)

// DispatchBatch submete um lote de mutações ao pipeline. Replays com a mesma
// chave de idempotência devolvem o relatório armazenado.
func DispatchBatch(dispatcher dispatching.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DispatchBatch")

		w.Header().Set("Content-Type", "application/json")

		var batch domain.DispatchBatch
		if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if batch.IdempotencyKey == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "idempotency_key é obrigatória", nil)
			return
		}

		if batch.AccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_id é obrigatório", nil)
			return
		}

		if batch.Origin == "" {
			batch.Origin = domain.BatchOriginManual
		}

		report, err := dispatcher.Dispatch(&batch)
		if err != nil {
			logrus.Error("Error dispatching batch:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao despachar lote de mutações", nil)
			return
		}

		if report.Status == domain.BatchStatusRejected {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}

		if err := json.NewEncoder(w).Encode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListBatchReports devolve os relatórios dos lotes recentes de uma conta
func ListBatchReports(dispatcher dispatching.Dispatcher, batchRepo repository.DispatchBatchRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		batches, err := batchRepo.ListByAccountID(id, 20)
		if err != nil {
			logrus.Error("Error listing batches:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar lotes no banco de dados", nil)
			return
		}

		reports := make([]*domain.ExecutionReport, 0, len(batches))
		for _, batch := range batches {
			if !batch.Status.IsTerminal() {
				continue
			}

			report, err := dispatcher.ReportForBatch(batch)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"batch_id": batch.ID,
					"error":    err.Error(),
				}).Error("Erro ao reconstruir relatório do lote")
				continue
			}

			reports = append(reports, report)
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(reports); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
