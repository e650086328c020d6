package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/infrastructure/repository"
	"github.com/adsops/campaign-optimizer-api/internal/config"
)

// SnapshotRetentionConfig representa a configuração da limpeza de snapshots
type SnapshotRetentionConfig struct {
	CronSchedule string
	Enabled      bool
	MaxAgeDays   int
}

// SnapshotRetentionService remove snapshots de métricas mais antigos que a
// janela de retenção configurada
type SnapshotRetentionService struct {
	scheduler            *gocron.Scheduler
	config               SnapshotRetentionConfig
	snapshotRepo         repository.MetricSnapshotRepository
	cleanupRunning       bool
	cleanupMutex         sync.Mutex
	lastCleanupStartedAt time.Time
	lastCleanupDeleted   int64
}

// NewSnapshotRetentionService cria uma nova instância da limpeza de snapshots
func NewSnapshotRetentionService(
	snapshotRepo repository.MetricSnapshotRepository,
	appConfig *config.Config,
) *SnapshotRetentionService {
	retentionConfig := SnapshotRetentionConfig{
		CronSchedule: appConfig.Retention.CronSchedule,
		Enabled:      appConfig.Retention.Enabled,
		MaxAgeDays:   appConfig.Retention.MaxAgeDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"enabled":       retentionConfig.Enabled,
		"max_age_days":  retentionConfig.MaxAgeDays,
	}).Info("Configuração da retenção de snapshots carregada")

	return &SnapshotRetentionService{
		scheduler:      scheduler,
		config:         retentionConfig,
		snapshotRepo:   snapshotRepo,
		cleanupRunning: false,
	}
}

// Start inicia o agendador
func (s *SnapshotRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da retenção de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.cleanupOldSnapshots)
	if err != nil {
		return fmt.Errorf("erro ao agendar a retenção de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da retenção de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SnapshotRetentionService) cleanupOldSnapshots() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de snapshots já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	s.lastCleanupStartedAt = time.Now()

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	logrus.WithField("max_age_days", s.config.MaxAgeDays).Info("Iniciando limpeza de snapshots antigos")

	deleted, err := s.snapshotRepo.DeleteOlderThan(s.config.MaxAgeDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover snapshots antigos")
		return
	}

	s.lastCleanupDeleted = deleted

	logrus.WithFields(logrus.Fields{
		"deleted":      deleted,
		"max_age_days": s.config.MaxAgeDays,
	}).Info("Limpeza de snapshots concluída")
}

// TriggerManualCleanup inicia manualmente uma limpeza
func (s *SnapshotRetentionService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de snapshots")
	go s.cleanupOldSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotRetentionService) GetStatus() map[string]any {
	return map[string]any{
		"retention_enabled":       s.config.Enabled,
		"retention_cron":          s.config.CronSchedule,
		"retention_max_age_days":  s.config.MaxAgeDays,
		"last_cleanup_started_at": s.lastCleanupStartedAt,
		"last_cleanup_deleted":    s.lastCleanupDeleted,
		"cleanup_in_progress":     s.cleanupRunning,
	}
}
