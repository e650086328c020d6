package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/adsops/campaign-optimizer-api/infrastructure/integrator/meta/domain"
	"github.com/adsops/campaign-optimizer-api/internal/config"
)

type Client interface {
	GetAdSetInsightsByID(adsetID string, date time.Time) (*metadomain.AdSetInsight, error)
	UpdateAdSetStatus(adsetID string, status string) ([]byte, error)
	UpdateAdSetBudget(adsetID string, dailyBudgetCents int64) ([]byte, error)
	ListAdsByAdSetID(adsetID string) ([]metadomain.Ad, error)
	UpdateAdStatus(adID string, status string) ([]byte, error)
	CreateAd(accountID, adsetID, name, creativeID string) ([]byte, error)
	GetPageByID(pageID string) (*metadomain.Page, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Optimization.CallTimeoutSeconds) * time.Second,
		},
	}
	return client
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
