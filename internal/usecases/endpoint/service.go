package endpoint

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/infrastructure/repository"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

// ProfileReader define a consulta ao perfil externo pelo qual a diretiva
// publica (segundo nível da cascata)
type ProfileReader interface {
	GetPageContactEndpoint(pageID string) (string, error)
}

// Resolver produz o endpoint de contato de uma diretiva através da cascata
// de quatro níveis. Nil é um resultado terminal válido: o chamador deve
// OMITIR o campo do payload externo, nunca enviar string vazia.
type Resolver interface {
	ResolveEndpoint(directive *domain.Directive, account *domain.AdAccount) (*string, error)
}

// resolverFunc é um nível da cascata. Assinatura uniforme: o primeiro nível
// que encontrar um valor vence.
type resolverFunc func(directive *domain.Directive, account *domain.AdAccount) (value string, found bool)

type Service struct {
	accountRepository repository.AccountRepository
	profileReader     ProfileReader
	tiers             []resolverFunc
}

// NewService cria uma nova instância do resolvedor de endpoints
func NewService(accountRepo repository.AccountRepository, profileReader ProfileReader) Resolver {
	s := &Service{
		accountRepository: accountRepo,
		profileReader:     profileReader,
	}

	// Do mais específico para o mais genérico
	s.tiers = []resolverFunc{
		s.resolveFromDirective,
		s.resolveFromProfile,
		s.resolveFromAccountDefault,
		s.resolveFromLegacyField,
	}

	return s
}

// ResolveEndpoint percorre a cascata e devolve o primeiro valor encontrado,
// ou nil quando nenhum nível tem valor
func (s *Service) ResolveEndpoint(directive *domain.Directive, account *domain.AdAccount) (*string, error) {
	if directive == nil {
		return nil, errors.New("diretiva não pode ser nula")
	}

	if account == nil {
		return nil, errors.New("conta não pode ser nula")
	}

	for _, tier := range s.tiers {
		if value, found := tier(directive, account); found {
			return &value, nil
		}
	}

	logrus.WithFields(logrus.Fields{
		"directive_id": directive.ID,
		"account_id":   account.ID,
	}).Debug("endpoint: nenhum nível da cascata tem valor")

	return nil, nil
}

// Nível 1: configuração explícita da diretiva, curada pelo operador
func (s *Service) resolveFromDirective(directive *domain.Directive, _ *domain.AdAccount) (string, bool) {
	if directive.ContactEndpoint != nil && *directive.ContactEndpoint != "" {
		return *directive.ContactEndpoint, true
	}
	return "", false
}

// Nível 2: consulta ao vivo no perfil externo da diretiva. Falha na consulta
// degrada para o próximo nível em vez de abortar a resolução.
func (s *Service) resolveFromProfile(directive *domain.Directive, _ *domain.AdAccount) (string, bool) {
	if directive.PageID == "" {
		return "", false
	}

	value, err := s.profileReader.GetPageContactEndpoint(directive.PageID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"directive_id": directive.ID,
			"page_id":      directive.PageID,
			"error":        err.Error(),
		}).Warn("endpoint: falha na consulta do perfil externo, caindo para o próximo nível")
		return "", false
	}

	return value, value != ""
}

// Nível 3: endpoint default da conta (is_default, no máximo um por conta)
func (s *Service) resolveFromAccountDefault(_ *domain.Directive, account *domain.AdAccount) (string, bool) {
	endpoints, err := s.accountRepository.ListEndpointsByAccountID(account.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Warn("endpoint: falha ao buscar endpoints da conta, caindo para o próximo nível")
		return "", false
	}

	for _, endpoint := range endpoints {
		if endpoint.IsDefault && endpoint.Value != "" {
			return endpoint.Value, true
		}
	}

	return "", false
}

// Nível 4: campo legado de endpoint único da conta (retrocompatibilidade)
func (s *Service) resolveFromLegacyField(_ *domain.Directive, account *domain.AdAccount) (string, bool) {
	if account.LegacyEndpoint != nil && *account.LegacyEndpoint != "" {
		return *account.LegacyEndpoint, true
	}
	return "", false
}
