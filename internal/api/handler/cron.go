package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/internal/scheduler"
	"github.com/adsops/campaign-optimizer-api/pkg/apiErrors"
	"github.com/adsops/campaign-optimizer-api/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeOptimization = "optimization"
	CronJobTypeRetention    = "retention"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	OptimizationLoopService  *scheduler.OptimizationLoopService
	SnapshotRetentionService *scheduler.SnapshotRetentionService
}

// RunCronJob executa manualmente uma cron job específica. Para o loop de
// otimização o parâmetro account_id restringe a execução a uma única conta.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		w.Header().Set("Content-Type", "application/json")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		accountID := r.URL.Query().Get("account_id")

		// Data de referência opcional para reprocessar um dia específico
		var asOfDate *time.Time
		if dateStr := r.URL.Query().Get("date"); dateStr != "" {
			parsed, err := utils.ParseDate(dateStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Formato esperado: YYYY-MM-DD", nil)
				return
			}
			asOfDate = parsed
		}

		switch cronType {
		case CronJobTypeOptimization:
			if services.OptimizationLoopService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do loop de otimização não disponível", nil)
				return
			}
			if err := services.OptimizationLoopService.TriggerManualRun(accountID, asOfDate); err != nil {
				logrus.Error("Error triggering optimization run:", err)
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

		case CronJobTypeRetention:
			if services.SnapshotRetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção de snapshots não disponível", nil)
				return
			}
			services.SnapshotRetentionService.TriggerManualCleanup()

		case CronJobTypeAll:
			if services.OptimizationLoopService != nil {
				if err := services.OptimizationLoopService.TriggerManualRun("", nil); err != nil {
					logrus.Error("Error triggering optimization run:", err)
				}
			}
			if services.SnapshotRetentionService != nil {
				services.SnapshotRetentionService.TriggerManualCleanup()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: optimization, retention, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"optimization": services.OptimizationLoopService.GetStatus(),
			"retention":    services.SnapshotRetentionService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
