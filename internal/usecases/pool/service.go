package pool

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/infrastructure/repository"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/adsops/campaign-optimizer-api/pkg/utils"
)

// Service implementa o pool de placements. A aquisição é serializada por
// diretiva: duas aquisições concorrentes para a mesma diretiva nunca escolhem
// o mesmo placement ocioso. Lock mais largo (por conta) reduziria o
// throughput sem necessidade; lock nenhum criaria double-booking visível na
// plataforma externa.
type Service struct {
	placementRepository repository.PlacementRepository
	campaignWriter      CampaignWriter

	// um mutex por diretiva
	directiveLocks sync.Map

	// placements adquiridos e ainda não ativados/liberados
	reservedMutex sync.Mutex
	reserved      map[string]struct{}
}

// NewService cria uma nova instância do pool de placements
func NewService(placementRepo repository.PlacementRepository, campaignWriter CampaignWriter) Pool {
	return &Service{
		placementRepository: placementRepo,
		campaignWriter:      campaignWriter,
		reserved:            make(map[string]struct{}),
	}
}

func (s *Service) lockFor(directiveID string) *sync.Mutex {
	lock, _ := s.directiveLocks.LoadOrStore(directiveID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Acquire seleciona e reserva o placement ocioso menos usado da diretiva
func (s *Service) Acquire(directiveID string) (*domain.Placement, error) {
	lock := s.lockFor(directiveID)
	lock.Lock()
	defer lock.Unlock()

	// O repositório já ordena por usage_count e last_used_at
	idle, err := s.placementRepository.ListByDirectiveID(directiveID, []domain.PlacementStatus{domain.PlacementStatusIdle})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar placements ociosos")
	}

	s.reservedMutex.Lock()
	defer s.reservedMutex.Unlock()

	for _, placement := range idle {
		if _, taken := s.reserved[placement.ID]; taken {
			continue
		}

		s.reserved[placement.ID] = struct{}{}

		logrus.WithFields(logrus.Fields{
			"directive_id": directiveID,
			"placement_id": placement.ID,
			"usage_count":  placement.UsageCount,
		}).Debug("pool: placement adquirido")

		return placement, nil
	}

	logrus.WithField("directive_id", directiveID).Warn("pool: nenhum placement ocioso disponível")

	return nil, domain.ErrPoolExhausted
}

// Activate aplica os overrides na plataforma e muda o status para ACTIVE.
// O status só muda depois que a chamada externa teve sucesso; em caso de
// falha o placement volta para o pool como IDLE.
func (s *Service) Activate(placement *domain.Placement, settings domain.ActivationSettings) (json.RawMessage, error) {
	if placement.Status == domain.PlacementStatusRetired {
		return nil, domain.ErrPlacementRetired
	}

	if !placement.CanTransitionTo(domain.PlacementStatusActive) {
		return nil, errors.Errorf("transição inválida de %s para %s", placement.Status, domain.PlacementStatusActive)
	}

	payload, err := s.campaignWriter.ActivateAdSet(placement.ExternalID, settings)
	if err != nil {
		s.Release(placement)
		return nil, errors.Wrap(err, "erro ao ativar placement na plataforma")
	}

	if err := s.placementRepository.UpdateStatus(placement.ID, domain.PlacementStatusActive); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar status do placement")
	}

	placement.Status = domain.PlacementStatusActive
	s.unreserve(placement.ID)

	return payload, nil
}

// Release devolve ao pool um placement reservado que não chegou a ser ativado
func (s *Service) Release(placement *domain.Placement) {
	s.unreserve(placement.ID)
}

func (s *Service) unreserve(placementID string) {
	s.reservedMutex.Lock()
	delete(s.reserved, placementID)
	s.reservedMutex.Unlock()
}

// Deactivate devolve um placement ativo ao estado ocioso
func (s *Service) Deactivate(placement *domain.Placement) error {
	if !placement.CanTransitionTo(domain.PlacementStatusIdle) {
		return errors.Errorf("transição inválida de %s para %s", placement.Status, domain.PlacementStatusIdle)
	}

	if err := s.placementRepository.UpdateStatus(placement.ID, domain.PlacementStatusIdle); err != nil {
		return errors.Wrap(err, "erro ao atualizar status do placement")
	}

	placement.Status = domain.PlacementStatusIdle
	return nil
}

// RecordUse incrementa o usage_count e atualiza o last_used_at
func (s *Service) RecordUse(placement *domain.Placement) error {
	now := time.Now()
	if err := s.placementRepository.RecordUse(placement.ID, now); err != nil {
		return errors.Wrap(err, "erro ao registrar uso do placement")
	}

	placement.UsageCount++
	placement.LastUsedAt = &now
	return nil
}

// Retire pausa toda a árvore do placement na plataforma e o aposenta.
// Usado quando o pool da diretiva está sendo desmontado, não na depleção
// normal.
func (s *Service) Retire(placement *domain.Placement) (json.RawMessage, error) {
	if placement.Status == domain.PlacementStatusRetired {
		return nil, domain.ErrPlacementRetired
	}

	payload, err := s.campaignWriter.PauseAdSetTree(placement.ExternalID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao pausar árvore do placement na plataforma")
	}

	if err := s.placementRepository.UpdateStatus(placement.ID, domain.PlacementStatusRetired); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar status do placement")
	}

	placement.Status = domain.PlacementStatusRetired
	s.unreserve(placement.ID)

	logrus.WithFields(logrus.Fields{
		"directive_id": placement.DirectiveID,
		"placement_id": placement.ID,
	}).Info("pool: placement aposentado")

	return payload, nil
}

// Link registra um placement provisionado fora do sistema
func (s *Service) Link(placement *domain.Placement) (*domain.Placement, error) {
	if placement.ExternalID == "" {
		return nil, errors.New("external_id é obrigatório")
	}

	if placement.DirectiveID == "" {
		return nil, errors.New("directive_id é obrigatório")
	}

	existing, err := s.placementRepository.GetByExternalID(placement.ExternalID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao verificar placement existente")
	}

	if existing != nil {
		return nil, errors.Errorf("placement com external_id %s já registrado", placement.ExternalID)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID do placement")
	}

	placement.ID = id
	placement.Status = domain.PlacementStatusIdle
	placement.UsageCount = 0

	if err := s.placementRepository.Link(placement); err != nil {
		return nil, errors.Wrap(err, "erro ao registrar o placement")
	}

	return placement, nil
}

// Unlink remove o registro de um placement removido externamente
func (s *Service) Unlink(id string) error {
	if err := s.placementRepository.Unlink(id); err != nil {
		return errors.Wrap(err, "erro ao remover o registro do placement")
	}

	s.unreserve(id)
	return nil
}

// StateByAccount devolve a contagem de placements ociosos e ativos por
// diretiva da conta
func (s *Service) StateByAccount(accountID string) ([]domain.PoolState, error) {
	state, err := s.placementRepository.PoolStateByAccountID(accountID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar estado dos pools")
	}
	return state, nil
}
