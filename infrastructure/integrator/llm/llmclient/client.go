package llmclient

import (
	"net/http"
	"time"

	"github.com/adsops/campaign-optimizer-api/internal/config"
)

type Client interface {
	CreateChatCompletion(req ChatCompletionRequest) (*ChatCompletionResponse, error)
}

type LLMClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente de chat completions.
// A API é compatível com o formato da OpenAI.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.LLM.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &LLMClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
