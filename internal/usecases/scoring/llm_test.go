package scoring

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/adsops/campaign-optimizer-api/infrastructure/integrator/llm/llmclient"
	llmmocks "github.com/adsops/campaign-optimizer-api/infrastructure/integrator/llm/llmclient/mocks"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func llmResponse(content string) *llmclient.ChatCompletionResponse {
	response := &llmclient.ChatCompletionResponse{ID: "cmpl-1"}
	response.Choices = []struct {
		Index   int                   `json:"index"`
		Message llmclient.ChatMessage `json:"message"`
		Finish  string                `json:"finish_reason"`
	}{
		{Message: llmclient.ChatMessage{Role: "assistant", Content: content}},
	}
	return response
}

func llmTestConfig() *config.Config {
	return &config.Config{
		LLM: config.LLM{Model: "gpt-4o-mini", MaxTokens: 2048},
	}
}

func TestLLMScore_ParsesMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := llmmocks.NewMockClient(ctrl)
	scorer := NewLLMScorer(llmTestConfig(), mockClient)

	content := `{"mutations":[{"type":"pause_placement","target_ref":"EXT1","directive_id":"DIR001","params":{"reason":"cpl alto"}}]}`

	mockClient.EXPECT().
		CreateChatCompletion(gomock.Any()).
		Return(llmResponse(content), nil)

	result, err := scorer.Score(ruleBundle(5000, 2, nil))

	assert.NoError(t, err)
	assert.Len(t, result.Mutations, 1)
	assert.Equal(t, domain.MutationTypePause, result.Mutations[0].Type)
	assert.Equal(t, "EXT1", result.Mutations[0].TargetRef)
}

func TestLLMScore_StripsMarkdownFence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := llmmocks.NewMockClient(ctrl)
	scorer := NewLLMScorer(llmTestConfig(), mockClient)

	content := "```json\n{\"mutations\":[{\"type\":\"update_budget\",\"target_ref\":\"EXT1\",\"directive_id\":\"DIR001\",\"params\":{\"daily_budget_cents\":8000}}]}\n```"

	mockClient.EXPECT().
		CreateChatCompletion(gomock.Any()).
		Return(llmResponse(content), nil)

	result, err := scorer.Score(ruleBundle(5000, 2, nil))

	assert.NoError(t, err)
	assert.Len(t, result.Mutations, 1)
	assert.Equal(t, domain.MutationTypeUpdateBudget, result.Mutations[0].Type)
}

func TestLLMScore_MalformedResponseDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := llmmocks.NewMockClient(ctrl)
	scorer := NewLLMScorer(llmTestConfig(), mockClient)

	mockClient.EXPECT().
		CreateChatCompletion(gomock.Any()).
		Return(llmResponse("desculpe, não consegui analisar as métricas"), nil)

	result, err := scorer.Score(ruleBundle(5000, 2, nil))

	assert.NoError(t, err)
	assert.Empty(t, result.Mutations)
}

func TestLLMScore_UnknownMutationTypeIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := llmmocks.NewMockClient(ctrl)
	scorer := NewLLMScorer(llmTestConfig(), mockClient)

	content := `{"mutations":[
		{"type":"delete_account","target_ref":"EXT1","directive_id":"DIR001","params":{}},
		{"type":"resume_placement","target_ref":"EXT2","directive_id":"DIR001","params":{}}
	]}`

	mockClient.EXPECT().
		CreateChatCompletion(gomock.Any()).
		Return(llmResponse(content), nil)

	result, err := scorer.Score(ruleBundle(5000, 2, nil))

	assert.NoError(t, err)
	assert.Len(t, result.Mutations, 1)
	assert.Equal(t, domain.MutationTypeResume, result.Mutations[0].Type)
}

func TestLLMScore_ClientErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := llmmocks.NewMockClient(ctrl)
	scorer := NewLLMScorer(llmTestConfig(), mockClient)

	mockClient.EXPECT().
		CreateChatCompletion(gomock.Any()).
		Return(nil, errors.New("timeout"))

	_, err := scorer.Score(ruleBundle(5000, 2, nil))

	assert.Error(t, err)
}

func TestNewScorer_SelectsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := llmmocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	_, isRules := NewScorer(cfg, mockClient).(*RuleScorer)
	assert.True(t, isRules)

	cfg.Optimization.ScorerBackend = "llm"
	_, isLLM := NewScorer(cfg, mockClient).(*LLMScorer)
	assert.True(t, isLLM)

	// Backend llm sem cliente cai no motor de regras
	_, isRules = NewScorer(cfg, nil).(*RuleScorer)
	assert.True(t, isRules)
}
