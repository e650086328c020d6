package scheduler

import (
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/adsops/campaign-optimizer-api/pkg/utils"
)

// Notifier recebe o relatório de execução de cada lote terminal. Implementações
// podem encaminhar para e-mail, chat ou apenas registrar em log.
type Notifier interface {
	NotifyReport(report *domain.ExecutionReport)
}

type logNotifier struct{}

// NewLogNotifier cria um notificador que registra o resumo do relatório em log
func NewLogNotifier() Notifier {
	return &logNotifier{}
}

func (n *logNotifier) NotifyReport(report *domain.ExecutionReport) {
	entry := logrus.WithFields(logrus.Fields{
		"batch_id":   report.BatchID,
		"account_id": report.AccountID,
		"origin":     report.Origin,
		"dry_run":    report.DryRun,
		"status":     report.Status,
		"results":    len(report.Results),
	})

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug("Relatório completo do lote: ", utils.PrettyJson(report))
	}

	if report.Status == domain.BatchStatusPartiallyFailed {
		entry.Warn(report.Summary)
		return
	}

	entry.Info(report.Summary)
}
