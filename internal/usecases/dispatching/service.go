package dispatching

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/infrastructure/repository"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/endpoint"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/pool"
	"github.com/adsops/campaign-optimizer-api/pkg/utils"
)

// tempo entre consultas enquanto outro processo executa o mesmo lote
const replayPollInterval = 500 * time.Millisecond

// limite de espera por um lote concorrente virar terminal
const replayPollTimeout = 2 * time.Minute

// Service implementa o pipeline de despacho. Máquina de estados:
// PENDING -> VALIDATED | REJECTED; VALIDATED -> APPLIED | PARTIALLY_FAILED.
// A deduplicação usa o insert com constraint única na chave de idempotência
// como compare-and-set: quem perde a corrida espera o vencedor terminar e
// devolve o relatório armazenado.
type Service struct {
	cfg                 *config.Config
	batchRepository     repository.DispatchBatchRepository
	placementRepository repository.PlacementRepository
	directiveRepository repository.DirectiveRepository
	accountRepository   repository.AccountRepository
	placementPool       pool.Pool
	endpointResolver    endpoint.Resolver
	campaignWriter      CampaignWriter
}

// NewService cria uma nova instância do pipeline de despacho
func NewService(
	cfg *config.Config,
	batchRepo repository.DispatchBatchRepository,
	placementRepo repository.PlacementRepository,
	directiveRepo repository.DirectiveRepository,
	accountRepo repository.AccountRepository,
	placementPool pool.Pool,
	endpointResolver endpoint.Resolver,
	campaignWriter CampaignWriter,
) Dispatcher {
	return &Service{
		cfg:                 cfg,
		batchRepository:     batchRepo,
		placementRepository: placementRepo,
		directiveRepository: directiveRepo,
		accountRepository:   accountRepo,
		placementPool:       placementPool,
		endpointResolver:    endpointResolver,
		campaignWriter:      campaignWriter,
	}
}

// plannedMutation é uma mutação com os recursos resolvidos na validação.
// Mutações com failCode preenchido foram rejeitadas antes de qualquer
// chamada externa e viram resultado FAILED sem execução.
type plannedMutation struct {
	mutation  domain.Mutation
	placement *domain.Placement
	acquired  bool
	endpoint  *string
	failCode  domain.ErrorCode
	failMsg   string
}

// Dispatch valida, deduplica e aplica o lote
func (s *Service) Dispatch(batch *domain.DispatchBatch) (*domain.ExecutionReport, error) {
	startedAt := time.Now()

	if batch.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar o ID do lote")
		}
		batch.ID = id
	}

	// Validação estrutural: problemas de forma rejeitam o lote inteiro
	if err := s.validateSchema(batch); err != nil {
		return s.rejectBatch(batch, startedAt, err)
	}

	account, err := s.accountRepository.GetAccountByID(batch.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a conta do lote")
	}

	if account == nil {
		return s.rejectBatch(batch, startedAt, fmt.Errorf("conta não encontrada: %s", batch.AccountID))
	}

	// Resolução de recursos por mutação: pool e endpoint são resolvidos
	// ANTES da execução para que um pool esgotado ou um alvo inexistente
	// nunca chegue à plataforma externa
	planned := s.resolveMutations(batch, account)

	// Ocupa a chave de idempotência. Violação da constraint única significa
	// que outro processo está executando (ou já executou) este gatilho.
	batch.Status = domain.BatchStatusValidated
	if err := s.batchRepository.Insert(batch); err != nil {
		s.releaseAcquired(planned)

		if errors.Is(err, domain.ErrDuplicateIdempotencyKey) {
			return s.awaitStoredReport(batch.IdempotencyKey)
		}

		return nil, errors.Wrap(err, "erro ao gravar o lote")
	}

	// Lista vazia é "nenhuma ação necessária": sucesso, não erro
	if len(planned) == 0 {
		return s.finishBatch(batch, startedAt, nil)
	}

	results := s.execute(batch, account, planned)

	return s.finishBatch(batch, startedAt, results)
}

// validateSchema verifica a forma do lote antes de qualquer resolução
func (s *Service) validateSchema(batch *domain.DispatchBatch) error {
	if batch.IdempotencyKey == "" {
		return fmt.Errorf("chave de idempotência é obrigatória")
	}

	if batch.AccountID == "" {
		return fmt.Errorf("account_id é obrigatório")
	}

	for i, mutation := range batch.Mutations {
		switch mutation.Type {
		case domain.MutationTypePause, domain.MutationTypeResume:
			if mutation.TargetRef == "" {
				return fmt.Errorf("mutação %d (%s): target_ref é obrigatório", i, mutation.Type)
			}
		case domain.MutationTypeUpdateBudget:
			if mutation.TargetRef == "" {
				return fmt.Errorf("mutação %d (%s): target_ref é obrigatório", i, mutation.Type)
			}
			if mutation.Params.DailyBudgetCents == nil || *mutation.Params.DailyBudgetCents <= 0 {
				return fmt.Errorf("mutação %d (%s): daily_budget_cents deve ser positivo", i, mutation.Type)
			}
		case domain.MutationTypeReallocate:
			if mutation.DirectiveID == "" {
				return fmt.Errorf("mutação %d (%s): directive_id é obrigatório", i, mutation.Type)
			}
		case domain.MutationTypeCreateAd:
			if mutation.TargetRef == "" {
				return fmt.Errorf("mutação %d (%s): target_ref é obrigatório", i, mutation.Type)
			}
			if mutation.Params.CreativeID == nil || *mutation.Params.CreativeID == "" {
				return fmt.Errorf("mutação %d (%s): creative_id é obrigatório", i, mutation.Type)
			}
		default:
			return fmt.Errorf("mutação %d: tipo desconhecido %q", i, mutation.Type)
		}
	}

	return nil
}

// resolveMutations resolve placement e endpoint de cada mutação. Falhas de
// resolução são isoladas por mutação: o resto do lote prossegue.
func (s *Service) resolveMutations(batch *domain.DispatchBatch, account *domain.AdAccount) []plannedMutation {
	planned := make([]plannedMutation, 0, len(batch.Mutations))

	for _, mutation := range batch.Mutations {
		item := plannedMutation{mutation: mutation}

		switch mutation.Type {
		case domain.MutationTypeReallocate:
			s.resolveReallocation(&item, account)
		default:
			placement, err := s.placementRepository.GetByExternalID(mutation.TargetRef)
			if err != nil {
				item.failCode = domain.ErrorCodeUnknown
				item.failMsg = err.Error()
			} else if placement == nil {
				item.failCode = domain.ErrorCodeValidation
				item.failMsg = fmt.Sprintf("placement %s não registrado", mutation.TargetRef)
			} else {
				item.placement = placement
			}
		}

		planned = append(planned, item)
	}

	return planned
}

// resolveReallocation adquire um placement do pool e resolve o endpoint da
// diretiva. Pool esgotado vira RESOURCE_EXHAUSTED na própria mutação.
func (s *Service) resolveReallocation(item *plannedMutation, account *domain.AdAccount) {
	directive, err := s.directiveRepository.GetByID(item.mutation.DirectiveID)
	if err != nil {
		item.failCode = domain.ErrorCodeUnknown
		item.failMsg = err.Error()
		return
	}

	if directive == nil {
		item.failCode = domain.ErrorCodeValidation
		item.failMsg = fmt.Sprintf("diretiva %s não encontrada", item.mutation.DirectiveID)
		return
	}

	placement, err := s.placementPool.Acquire(directive.ID)
	if err != nil {
		item.failCode = classifyError(err)
		item.failMsg = err.Error()
		return
	}

	item.placement = placement
	item.acquired = true

	// Endpoint explícito nos parâmetros vence a cascata
	if item.mutation.Params.Endpoint != nil {
		item.endpoint = item.mutation.Params.Endpoint
		return
	}

	resolved, err := s.endpointResolver.ResolveEndpoint(directive, account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"directive_id": directive.ID,
			"error":        err.Error(),
		}).Warn("dispatch: falha na resolução de endpoint, campo será omitido")
		return
	}

	// nil é terminal válido: o campo é omitido do payload externo
	item.endpoint = resolved
}

// releaseAcquired devolve ao pool os placements adquiridos de um plano que
// não vai executar
func (s *Service) releaseAcquired(planned []plannedMutation) {
	for i := range planned {
		if planned[i].acquired && planned[i].placement != nil {
			s.placementPool.Release(planned[i].placement)
		}
	}
}

// execute aplica as mutações: sequencial por alvo, paralelismo limitado
// entre alvos independentes
func (s *Service) execute(batch *domain.DispatchBatch, account *domain.AdAccount, planned []plannedMutation) []*domain.MutationResult {
	maxParallel := s.cfg.Optimization.MaxParallelTargets
	if maxParallel < 1 {
		maxParallel = 1
	}

	// Agrupa por alvo preservando a ordem do lote dentro de cada grupo:
	// "criar o conjunto antes do anúncio dentro dele" é a única ordem
	// garantida
	groups := make(map[string][]int)
	order := make([]string, 0)
	for i := range planned {
		key := planned[i].mutation.TargetRef
		if planned[i].placement != nil {
			key = planned[i].placement.ID
		}
		if key == "" {
			key = fmt.Sprintf("unresolved-%d", i)
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		semaphore = make(chan struct{}, maxParallel)
		results   = make([]*domain.MutationResult, len(planned))
	)

	for _, key := range order {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(indexes []int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			for _, i := range indexes {
				result := s.executeOne(batch, account, &planned[i])

				mu.Lock()
				results[i] = result
				mu.Unlock()
			}
		}(groups[key])
	}

	wg.Wait()

	return results
}

// executeOne aplica uma única mutação e devolve o resultado. Falhas nunca
// abortam o resto do lote.
func (s *Service) executeOne(batch *domain.DispatchBatch, account *domain.AdAccount, item *plannedMutation) *domain.MutationResult {
	result := &domain.MutationResult{
		BatchID:   batch.ID,
		TargetRef: item.mutation.TargetRef,
		Type:      item.mutation.Type,
		CreatedAt: time.Now(),
	}

	if item.placement != nil {
		result.TargetRef = item.placement.ExternalID
	}

	if id, err := utils.GenerateID(); err == nil {
		result.ID = id
	}

	// Rejeitada na validação: nenhuma chamada externa
	if item.failCode != "" {
		result.Outcome = domain.MutationOutcomeFailed
		result.ErrorCode = item.failCode
		result.Message = item.failMsg
		return result
	}

	if batch.DryRun {
		return s.syntheticSuccess(item, result)
	}

	payload, err := s.callExternal(account, item)
	if err != nil {
		result.Outcome = domain.MutationOutcomeFailed
		result.ErrorCode = classifyError(err)
		result.Message = err.Error()

		logrus.WithFields(logrus.Fields{
			"batch_id":   batch.ID,
			"target_ref": result.TargetRef,
			"type":       item.mutation.Type,
			"error_code": result.ErrorCode,
			"error":      err.Error(),
		}).Error("dispatch: mutação falhou")

		return result
	}

	result.Outcome = domain.MutationOutcomeSuccess
	result.ExternalPayload = payload

	s.afterSuccess(item)

	return result
}

// syntheticSuccess registra o sucesso sintético do dry-run. O lote ainda
// ocupa a chave de idempotência e ainda é terminal, impedindo que uma
// execução real posterior reuse a chave sem querer.
func (s *Service) syntheticSuccess(item *plannedMutation, result *domain.MutationResult) *domain.MutationResult {
	logrus.WithFields(logrus.Fields{
		"target_ref": result.TargetRef,
		"type":       item.mutation.Type,
	}).Info("dispatch: dry-run, chamada externa substituída por sucesso sintético")

	if item.acquired && item.placement != nil {
		s.placementPool.Release(item.placement)
	}

	result.Outcome = domain.MutationOutcomeSuccess
	result.ExternalPayload = json.RawMessage(`{"dry_run":true}`)
	return result
}

// callExternal faz a chamada externa com retry limitado para erros
// transitórios
func (s *Service) callExternal(account *domain.AdAccount, item *plannedMutation) (json.RawMessage, error) {
	var payload json.RawMessage

	operation := func() error {
		var err error
		payload, err = s.applyMutation(account, item)
		if err != nil && !isRetryable(classifyError(err)) {
			return backoff.Permanent(err)
		}
		return err
	}

	maxRetries := uint64(s.cfg.Optimization.MaxRetries)
	err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries))
	if err != nil {
		return nil, err
	}

	return payload, nil
}

func (s *Service) applyMutation(account *domain.AdAccount, item *plannedMutation) (json.RawMessage, error) {
	switch item.mutation.Type {
	case domain.MutationTypePause:
		return s.campaignWriter.PauseAdSet(item.placement.ExternalID)

	case domain.MutationTypeResume:
		return s.campaignWriter.ResumeAdSet(item.placement.ExternalID)

	case domain.MutationTypeUpdateBudget:
		return s.campaignWriter.UpdateAdSetBudget(item.placement.ExternalID, *item.mutation.Params.DailyBudgetCents)

	case domain.MutationTypeReallocate:
		settings := domain.ActivationSettings{Endpoint: item.endpoint}
		if item.mutation.Params.DailyBudgetCents != nil {
			settings.DailyBudgetCents = *item.mutation.Params.DailyBudgetCents
		}
		return s.placementPool.Activate(item.placement, settings)

	case domain.MutationTypeCreateAd:
		name := fmt.Sprintf("ad-%s", item.placement.ExternalID)
		return s.campaignWriter.CreateAd(account.ExternalID, item.placement.ExternalID, name, *item.mutation.Params.CreativeID)
	}

	return nil, fmt.Errorf("tipo de mutação desconhecido: %s", item.mutation.Type)
}

// afterSuccess atualiza o estado local do placement depois que a plataforma
// aceitou a mutação
func (s *Service) afterSuccess(item *plannedMutation) {
	placement := item.placement
	if placement == nil {
		return
	}

	switch item.mutation.Type {
	case domain.MutationTypePause:
		if placement.Status == domain.PlacementStatusActive {
			if err := s.placementPool.Deactivate(placement); err != nil {
				logrus.WithField("placement_id", placement.ID).WithError(err).Error("dispatch: erro ao devolver placement ao pool")
			}
		}

	case domain.MutationTypeResume:
		if err := s.placementRepository.UpdateStatus(placement.ID, domain.PlacementStatusActive); err != nil {
			logrus.WithField("placement_id", placement.ID).WithError(err).Error("dispatch: erro ao atualizar status do placement")
		}

	case domain.MutationTypeReallocate, domain.MutationTypeCreateAd:
		if err := s.placementPool.RecordUse(placement); err != nil {
			logrus.WithField("placement_id", placement.ID).WithError(err).Error("dispatch: erro ao registrar uso do placement")
		}
	}
}

// finishBatch persiste os resultados, fecha o lote e monta o relatório
func (s *Service) finishBatch(batch *domain.DispatchBatch, startedAt time.Time, results []*domain.MutationResult) (*domain.ExecutionReport, error) {
	status := domain.BatchStatusApplied
	exhausted := make([]string, 0)

	for i, result := range results {
		if result.Outcome == domain.MutationOutcomeFailed {
			status = domain.BatchStatusPartiallyFailed

			if result.ErrorCode == domain.ErrorCodeResourceExhausted {
				exhausted = append(exhausted, batch.Mutations[i].DirectiveID)
			}
		}
	}

	if len(results) > 0 {
		if err := s.batchRepository.SaveResults(results); err != nil {
			return nil, errors.Wrap(err, "erro ao gravar os resultados do lote")
		}
	}

	completedAt := time.Now()
	if err := s.batchRepository.UpdateStatus(batch.ID, status, &completedAt); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar o lote")
	}

	batch.Status = status
	batch.CompletedAt = &completedAt

	report := &domain.ExecutionReport{
		BatchID:     batch.ID,
		AccountID:   batch.AccountID,
		Origin:      batch.Origin,
		DryRun:      batch.DryRun,
		Status:      status,
		Results:     results,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
	}
	report.Summary = report.BuildSummary(exhausted)

	logrus.WithFields(logrus.Fields{
		"batch_id":   batch.ID,
		"account_id": batch.AccountID,
		"status":     status,
		"mutations":  len(results),
	}).Info("dispatch: lote finalizado")

	return report, nil
}

// rejectBatch grava o lote rejeitado (ocupando a chave) e devolve o
// relatório terminal sem resultados
func (s *Service) rejectBatch(batch *domain.DispatchBatch, startedAt time.Time, cause error) (*domain.ExecutionReport, error) {
	logrus.WithFields(logrus.Fields{
		"account_id":      batch.AccountID,
		"idempotency_key": batch.IdempotencyKey,
		"error":           cause.Error(),
	}).Warn("dispatch: lote rejeitado na validação")

	completedAt := time.Now()
	batch.Status = domain.BatchStatusRejected
	batch.CompletedAt = &completedAt

	if batch.IdempotencyKey != "" && batch.AccountID != "" {
		if err := s.batchRepository.Insert(batch); err != nil {
			if errors.Is(err, domain.ErrDuplicateIdempotencyKey) {
				return s.awaitStoredReport(batch.IdempotencyKey)
			}
			return nil, errors.Wrap(err, "erro ao gravar o lote rejeitado")
		}

		if err := s.batchRepository.UpdateStatus(batch.ID, domain.BatchStatusRejected, &completedAt); err != nil {
			return nil, errors.Wrap(err, "erro ao finalizar o lote rejeitado")
		}
	}

	report := &domain.ExecutionReport{
		BatchID:     batch.ID,
		AccountID:   batch.AccountID,
		Origin:      batch.Origin,
		DryRun:      batch.DryRun,
		Status:      domain.BatchStatusRejected,
		Results:     []*domain.MutationResult{},
		StartedAt:   startedAt,
		CompletedAt: completedAt,
	}
	report.Summary = fmt.Sprintf("Lote rejeitado na validação: %s", cause.Error())

	return report, nil
}

// awaitStoredReport espera o lote que venceu a corrida pela chave virar
// terminal e devolve o relatório armazenado
func (s *Service) awaitStoredReport(idempotencyKey string) (*domain.ExecutionReport, error) {
	deadline := time.Now().Add(replayPollTimeout)

	for {
		stored, err := s.batchRepository.GetByIdempotencyKey(idempotencyKey)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar o lote pela chave de idempotência")
		}

		if stored == nil {
			return nil, fmt.Errorf("chave %s ocupada mas lote não encontrado", idempotencyKey)
		}

		if stored.Status.IsTerminal() {
			logrus.WithFields(logrus.Fields{
				"batch_id":        stored.ID,
				"idempotency_key": idempotencyKey,
			}).Info("dispatch: replay detectado, devolvendo relatório armazenado")

			return s.ReportForBatch(stored)
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("lote %s não finalizou dentro do prazo de espera", stored.ID)
		}

		time.Sleep(replayPollInterval)
	}
}

// ReportForBatch reconstrói o relatório de um lote persistido
func (s *Service) ReportForBatch(batch *domain.DispatchBatch) (*domain.ExecutionReport, error) {
	results, err := s.batchRepository.ListResultsByBatchID(batch.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os resultados do lote")
	}

	completedAt := batch.CreatedAt
	if batch.CompletedAt != nil {
		completedAt = *batch.CompletedAt
	}

	report := &domain.ExecutionReport{
		BatchID:     batch.ID,
		AccountID:   batch.AccountID,
		Origin:      batch.Origin,
		DryRun:      batch.DryRun,
		Status:      batch.Status,
		Results:     results,
		StartedAt:   batch.CreatedAt,
		CompletedAt: completedAt,
	}
	report.Summary = report.BuildSummary(nil)

	return report, nil
}
