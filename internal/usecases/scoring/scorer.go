package scoring

import (
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/infrastructure/integrator/llm/llmclient"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

// Scorer é a função de decisão plugável do loop de otimização: recebe o
// bundle de métricas e contexto de uma conta e devolve a lista de mutações
// propostas. Lista vazia significa "nenhuma ação necessária".
type Scorer interface {
	Score(bundle *domain.ScoringBundle) (*domain.ScoringResult, error)
}

// NewScorer seleciona a implementação pelo backend configurado. O default é
// o motor de regras; "llm" liga o scorer sobre chat completions.
func NewScorer(cfg *config.Config, llmClient llmclient.Client) Scorer {
	if cfg.Optimization.ScorerBackend == "llm" && llmClient != nil {
		logrus.Info("scoring: usando backend llm")
		return NewLLMScorer(cfg, llmClient)
	}

	logrus.Info("scoring: usando backend de regras")
	return NewRuleScorer(cfg)
}
