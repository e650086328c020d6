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
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/dispatching"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/metrics"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/pool"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/scoring"
	"github.com/adsops/campaign-optimizer-api/pkg/utils"
)

// OptimizationLoopConfig representa a configuração do loop de otimização
type OptimizationLoopConfig struct {
	CronSchedule          string
	Enabled               bool
	DryRun                bool
	MaxConcurrentAccounts int
	HistoryLookbackDays   int
}

// OptimizationLoopService orquestra o loop de otimização: por conta e por
// dia, monta o bundle de métricas e contexto, invoca o Scorer e entrega o
// resultado ao pipeline de despacho
type OptimizationLoopService struct {
	scheduler          *gocron.Scheduler
	config             OptimizationLoopConfig
	appConfig          *config.Config
	accountRepo        repository.AccountRepository
	directiveRepo      repository.DirectiveRepository
	placementRepo      repository.PlacementRepository
	snapshotRepo       repository.MetricSnapshotRepository
	batchRepo          repository.DispatchBatchRepository
	metricsCache       metrics.Cache
	placementPool      pool.Pool
	scorer             scoring.Scorer
	dispatcher         dispatching.Dispatcher
	notifier           Notifier
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewOptimizationLoopService cria uma nova instância do loop de otimização
func NewOptimizationLoopService(
	accountRepo repository.AccountRepository,
	directiveRepo repository.DirectiveRepository,
	placementRepo repository.PlacementRepository,
	snapshotRepo repository.MetricSnapshotRepository,
	batchRepo repository.DispatchBatchRepository,
	metricsCache metrics.Cache,
	placementPool pool.Pool,
	scorer scoring.Scorer,
	dispatcher dispatching.Dispatcher,
	notifier Notifier,
	appConfig *config.Config,
) *OptimizationLoopService {
	loopConfig := OptimizationLoopConfig{
		CronSchedule:          appConfig.Optimization.CronSchedule,
		Enabled:               appConfig.Optimization.Enabled,
		DryRun:                appConfig.Optimization.DryRun,
		MaxConcurrentAccounts: appConfig.Optimization.MaxConcurrentAccounts,
		HistoryLookbackDays:   appConfig.Optimization.HistoryLookbackDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":           loopConfig.CronSchedule,
		"enabled":                 loopConfig.Enabled,
		"dry_run":                 loopConfig.DryRun,
		"max_concurrent_accounts": loopConfig.MaxConcurrentAccounts,
		"history_lookback_days":   loopConfig.HistoryLookbackDays,
	}).Info("Configuração do loop de otimização carregada")

	return &OptimizationLoopService{
		scheduler:     scheduler,
		config:        loopConfig,
		appConfig:     appConfig,
		accountRepo:   accountRepo,
		directiveRepo: directiveRepo,
		placementRepo: placementRepo,
		snapshotRepo:  snapshotRepo,
		batchRepo:     batchRepo,
		metricsCache:  metricsCache,
		placementPool: placementPool,
		scorer:        scorer,
		dispatcher:    dispatcher,
		notifier:      notifier,
		runRunning:    false,
	}
}

// Start inicia o agendador
func (s *OptimizationLoopService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Loop de otimização desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do loop de otimização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAllAccounts(domain.BatchOriginScheduled)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o loop de otimização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do loop de otimização")
		s.scheduler.Stop()
	}()

	return nil
}

// runAllAccounts executa o loop para todas as contas ativas
func (s *OptimizationLoopService) runAllAccounts(origin domain.BatchOrigin) {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Loop de otimização já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.runMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	logrus.WithField("origin", origin).Info("Iniciando loop de otimização para todas as contas ativas")

	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para o loop de otimização")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para o loop de otimização")
		return
	}

	asOfDate := time.Now()

	semaphore := make(chan struct{}, s.maxConcurrent())
	var wg sync.WaitGroup

	for _, account := range activeAccounts {
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.runAccount(acc, asOfDate, origin)
		}(account)
	}

	wg.Wait()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
	}).Info("Loop de otimização concluído")

	s.lastRunCompletedAt = time.Now()
}

func (s *OptimizationLoopService) maxConcurrent() int {
	if s.config.MaxConcurrentAccounts < 1 {
		return 1
	}
	return s.config.MaxConcurrentAccounts
}

// runAccount executa uma passada do loop para uma conta: bundle → Scorer →
// DispatchPipeline → notificação
func (s *OptimizationLoopService) runAccount(account *domain.AdAccount, asOfDate time.Time, origin domain.BatchOrigin) {
	logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"account_name": account.Name,
		"date":         asOfDate.Format(time.DateOnly),
		"origin":       origin,
	}).Info("Processando loop de otimização para conta")

	bundle, err := s.buildBundle(account, asOfDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao montar o bundle de scoring para conta")
		return
	}

	scoringResult, err := s.scorer.Score(bundle)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro no scorer para conta")
		return
	}

	key, err := s.idempotencyKey(account, asOfDate, origin)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao gerar a chave de idempotência")
		return
	}

	batch := &domain.DispatchBatch{
		IdempotencyKey: key,
		AccountID:      account.ID,
		Origin:         origin,
		DryRun:         s.config.DryRun,
		Status:         domain.BatchStatusPending,
		Mutations:      scoringResult.Mutations,
		CreatedAt:      time.Now(),
	}

	report, err := s.dispatcher.Dispatch(batch)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro no despacho do lote para conta")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"batch_id":   report.BatchID,
		"status":     report.Status,
		"summary":    report.Summary,
	}).Info("Loop de otimização concluído para conta")

	if s.notifier != nil {
		s.notifier.NotifyReport(report)
	}
}

// idempotencyKey gera a chave do lote. Execuções agendadas usam uma chave
// determinística por conta e dia, de modo que um replay do mesmo gatilho
// devolva o relatório armazenado; execuções manuais ganham chave própria.
func (s *OptimizationLoopService) idempotencyKey(account *domain.AdAccount, asOfDate time.Time, origin domain.BatchOrigin) (string, error) {
	if origin == domain.BatchOriginScheduled {
		return fmt.Sprintf("sched:%s:%s", account.ID, asOfDate.Format(time.DateOnly)), nil
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("manual:%s:%s:%s", account.ID, asOfDate.Format(time.DateOnly), suffix), nil
}

// buildBundle monta o contrato de entrada do Scorer para uma conta
func (s *OptimizationLoopService) buildBundle(account *domain.AdAccount, asOfDate time.Time) (*domain.ScoringBundle, error) {
	placements, err := s.placementRepo.ListByAccountID(account.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar placements da conta: %w", err)
	}

	// Placements aposentados ficam fora do bundle
	live := make([]*domain.Placement, 0, len(placements))
	liveIDs := make([]string, 0, len(placements))
	for _, placement := range placements {
		if placement.Status == domain.PlacementStatusRetired {
			continue
		}
		live = append(live, placement)
		liveIDs = append(liveIDs, placement.ID)
	}

	// Snapshot fresco do dia via cache read-through
	fresh, err := s.metricsCache.GetMetrics(account, liveIDs, asOfDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas da conta: %w", err)
	}

	lookback := s.config.HistoryLookbackDays
	if lookback < 1 {
		lookback = 3
	}

	// Histórico de snapshots para tendências (7 dias + dia atual)
	startDate := asOfDate.AddDate(0, 0, -7)
	placementMetrics := make([]*domain.PlacementMetrics, 0, len(live))

	for _, placement := range live {
		history, err := s.snapshotRepo.GetByDateRange(account.ID, placement.ID, startDate, asOfDate)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":   account.ID,
				"placement_id": placement.ID,
				"error":        err.Error(),
			}).Error("Erro ao buscar histórico de snapshots do placement")
			continue
		}

		pm := &domain.PlacementMetrics{Placement: placement, Snapshots: history}

		// O snapshot fresco do cache substitui (ou completa) o do dia
		if snapshot, ok := fresh[placement.ID]; ok {
			if existing := pm.SnapshotFor(snapshot.Date); existing == nil {
				pm.Snapshots = append(pm.Snapshots, snapshot)
			}
		}

		placementMetrics = append(placementMetrics, pm)
	}

	directives, err := s.directiveRepo.ListByAccountID(account.ID, []domain.DirectiveStatus{domain.DirectiveStatusActive})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar diretivas da conta: %w", err)
	}

	summaries := make([]domain.DirectiveSummary, 0, len(directives))
	for _, directive := range directives {
		summaries = append(summaries, directive.Summary())
	}

	poolState, err := s.placementPool.StateByAccount(account.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar estado dos pools da conta: %w", err)
	}

	history, err := s.buildHistoryFlags(account, directives, live, asOfDate, lookback)
	if err != nil {
		// Histórico é auxiliar: segue sem flags em vez de abortar a conta
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Warn("Erro ao montar flags de histórico, seguindo sem elas")
		history = make(map[string]*domain.HistoryFlags)
	}

	return &domain.ScoringBundle{
		Account:    account,
		AsOfDate:   asOfDate,
		Placements: placementMetrics,
		Directives: summaries,
		PoolState:  poolState,
		History:    history,
	}, nil
}

// buildHistoryFlags deriva as flags de histórico dos lotes recentes da conta.
// A direção de um ajuste de orçamento é inferida comparando o valor proposto
// com o orçamento corrente da diretiva.
func (s *OptimizationLoopService) buildHistoryFlags(
	account *domain.AdAccount,
	directives []*domain.Directive,
	placements []*domain.Placement,
	asOfDate time.Time,
	lookbackDays int,
) (map[string]*domain.HistoryFlags, error) {
	flags := make(map[string]*domain.HistoryFlags, len(placements))

	for _, placement := range placements {
		flags[placement.ExternalID] = &domain.HistoryFlags{
			IsNew: asOfDate.Sub(placement.CreatedAt) < 48*time.Hour,
		}
	}

	budgets := make(map[string]int64, len(directives))
	for _, directive := range directives {
		budgets[directive.ID] = directive.DailyBudgetCents
	}

	batches, err := s.batchRepo.ListByAccountID(account.ID, uint64(lookbackDays*4))
	if err != nil {
		return nil, err
	}

	yesterday := asOfDate.AddDate(0, 0, -1)
	cutoff := asOfDate.AddDate(0, 0, -lookbackDays)

	// Dias com redução por placement, para contar reduções consecutivas
	decreaseDays := make(map[string]map[string]bool)

	for _, batch := range batches {
		if batch.DryRun || batch.CreatedAt.Before(cutoff) {
			continue
		}

		if batch.Status != domain.BatchStatusApplied && batch.Status != domain.BatchStatusPartiallyFailed {
			continue
		}

		day := batch.CreatedAt.Format(time.DateOnly)
		isYesterday := batch.CreatedAt.Year() == yesterday.Year() && batch.CreatedAt.YearDay() == yesterday.YearDay()

		for _, mutation := range batch.Mutations {
			flag, ok := flags[mutation.TargetRef]
			if !ok {
				continue
			}

			switch mutation.Type {
			case domain.MutationTypePause:
				flag.WasPausedRecently = true

			case domain.MutationTypeUpdateBudget:
				if mutation.Params.DailyBudgetCents == nil {
					continue
				}

				current, known := budgets[mutation.DirectiveID]
				if !known {
					continue
				}

				if *mutation.Params.DailyBudgetCents < current {
					if isYesterday {
						flag.WasDecreasedYesterday = true
					}
					if decreaseDays[mutation.TargetRef] == nil {
						decreaseDays[mutation.TargetRef] = make(map[string]bool)
					}
					decreaseDays[mutation.TargetRef][day] = true
				} else if *mutation.Params.DailyBudgetCents > current && isYesterday {
					flag.WasIncreasedYesterday = true
				}
			}
		}
	}

	for targetRef, days := range decreaseDays {
		if flag, ok := flags[targetRef]; ok {
			flag.ConsecutiveDecreases = len(days)
		}
	}

	return flags, nil
}

// TriggerManualRun inicia manualmente uma passada do loop. Com accountID
// vazio processa todas as contas ativas; asOfDate nulo usa a data corrente.
func (s *OptimizationLoopService) TriggerManualRun(accountID string, asOfDate *time.Time) error {
	if accountID == "" {
		s.runMutex.Lock()
		if s.runRunning {
			s.runMutex.Unlock()
			logrus.Info("Loop de otimização já em andamento, ignorando solicitação manual")
			return nil
		}
		s.runMutex.Unlock()

		logrus.Info("Iniciando execução manual do loop de otimização")
		go s.runAllAccounts(domain.BatchOriginManual)
		return nil
	}

	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return fmt.Errorf("erro ao buscar a conta: %w", err)
	}

	if account == nil {
		return fmt.Errorf("conta não encontrada: %s", accountID)
	}

	runDate := time.Now()
	if asOfDate != nil && !asOfDate.IsZero() {
		runDate = *asOfDate
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"date":       runDate.Format(time.DateOnly),
	}).Info("Iniciando execução manual do loop de otimização para conta")
	go s.runAccount(account, runDate, domain.BatchOriginManual)

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *OptimizationLoopService) GetStatus() map[string]any {
	return map[string]any{
		"loop_enabled":          s.config.Enabled,
		"loop_cron":             s.config.CronSchedule,
		"loop_dry_run":          s.config.DryRun,
		"loop_max_concurrent":   s.config.MaxConcurrentAccounts,
		"history_lookback_days": s.config.HistoryLookbackDays,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"run_in_progress":       s.runRunning,
	}
}
