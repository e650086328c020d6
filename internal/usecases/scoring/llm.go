package scoring

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/infrastructure/integrator/llm/llmclient"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const llmSystemPrompt = `Você é um otimizador de campanhas de anúncios. Receberá um JSON com as métricas
recentes, as diretivas e o estado dos pools de placements de uma conta.
Responda APENAS com um JSON no formato:
{"mutations":[{"type":"...","target_ref":"...","directive_id":"...","params":{...}}]}
Tipos válidos: pause_placement, resume_placement, update_budget,
reallocate_placement, create_ad. Uma lista vazia é uma resposta válida quando
nenhuma ação é necessária. Nunca proponha orçamento fora da faixa da diretiva.`

// LLMScorer delega a decisão a um modelo de linguagem via chat completions.
// As garantias de consistência do core não dependem do backend: saída
// malformada degrada para lista vazia, nunca para erro do loop.
type LLMScorer struct {
	cfg    *config.Config
	client llmclient.Client
}

// NewLLMScorer cria o scorer sobre o cliente de chat completions
func NewLLMScorer(cfg *config.Config, client llmclient.Client) Scorer {
	return &LLMScorer{
		cfg:    cfg,
		client: client,
	}
}

// Score serializa o bundle, consulta o modelo e valida a resposta
func (s *LLMScorer) Score(bundle *domain.ScoringBundle) (*domain.ScoringResult, error) {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o bundle de scoring")
	}

	request := llmclient.ChatCompletionRequest{
		Model: s.cfg.LLM.Model,
		Messages: []llmclient.ChatMessage{
			{Role: "system", Content: llmSystemPrompt},
			{Role: "user", Content: string(payload)},
		},
		MaxTokens:      s.cfg.LLM.MaxTokens,
		Temperature:    0,
		ResponseFormat: &llmclient.ResponseFormat{Type: "json_object"},
	}

	response, err := s.client.CreateChatCompletion(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro na chamada ao modelo")
	}

	result := s.parseResponse(bundle, response.Content())

	logrus.WithFields(logrus.Fields{
		"account_id":    bundle.Account.ID,
		"mutations":     len(result.Mutations),
		"prompt_tokens": response.Usage.PromptTokens,
		"total_tokens":  response.Usage.TotalTokens,
	}).Info("scoring: resposta do modelo processada")

	return result, nil
}

// parseResponse extrai e valida as mutações da resposta. Qualquer saída
// malformada vira lista vazia com log de alerta: o modelo nunca derruba o
// loop da conta.
func (s *LLMScorer) parseResponse(bundle *domain.ScoringBundle, content string) *domain.ScoringResult {
	empty := &domain.ScoringResult{Mutations: make([]domain.Mutation, 0)}

	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var parsed domain.ScoringResult
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": bundle.Account.ID,
			"error":      err.Error(),
		}).Warn("scoring: resposta do modelo malformada, assumindo nenhuma ação")
		return empty
	}

	valid := make([]domain.Mutation, 0, len(parsed.Mutations))
	for _, mutation := range parsed.Mutations {
		if !knownMutationType(mutation.Type) {
			logrus.WithFields(logrus.Fields{
				"account_id": bundle.Account.ID,
				"type":       mutation.Type,
			}).Warn("scoring: tipo de mutação desconhecido na resposta do modelo, descartando")
			continue
		}
		valid = append(valid, mutation)
	}

	return &domain.ScoringResult{Mutations: valid}
}

func knownMutationType(t domain.MutationType) bool {
	switch t {
	case domain.MutationTypePause,
		domain.MutationTypeResume,
		domain.MutationTypeUpdateBudget,
		domain.MutationTypeReallocate,
		domain.MutationTypeCreateAd:
		return true
	}
	return false
}
