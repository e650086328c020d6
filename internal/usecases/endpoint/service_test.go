package endpoint

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	repomocks "github.com/adsops/campaign-optimizer-api/infrastructure/repository/mocks"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/endpoint/mocks"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string {
	return &s
}

func TestResolveEndpoint_Cascade(t *testing.T) {
	directiveEndpoint := "https://wa.me/5511911111111"
	profileEndpoint := "https://wa.me/5511922222222"
	defaultEndpoint := "https://wa.me/5511933333333"
	legacyEndpoint := "https://wa.me/5511944444444"

	tests := []struct {
		name      string
		directive *domain.Directive
		account   *domain.AdAccount
		setup     func(accountRepo *repomocks.MockAccountRepository, profileReader *mocks.MockProfileReader)
		expected  *string
	}{
		{
			name: "configuração da diretiva vence todos os níveis",
			directive: &domain.Directive{
				ID:              "DIR001",
				PageID:          "PAGE1",
				ContactEndpoint: &directiveEndpoint,
			},
			account: &domain.AdAccount{ID: "ACC001", LegacyEndpoint: &legacyEndpoint},
			setup: func(accountRepo *repomocks.MockAccountRepository, profileReader *mocks.MockProfileReader) {
				// Nenhum nível abaixo deve ser consultado
			},
			expected: &directiveEndpoint,
		},
		{
			name:      "perfil externo vence default e legado",
			directive: &domain.Directive{ID: "DIR001", PageID: "PAGE1"},
			account:   &domain.AdAccount{ID: "ACC001", LegacyEndpoint: &legacyEndpoint},
			setup: func(accountRepo *repomocks.MockAccountRepository, profileReader *mocks.MockProfileReader) {
				profileReader.EXPECT().GetPageContactEndpoint("PAGE1").Return(profileEndpoint, nil)
			},
			expected: &profileEndpoint,
		},
		{
			name:      "default da conta vence o campo legado",
			directive: &domain.Directive{ID: "DIR001"},
			account:   &domain.AdAccount{ID: "ACC001", LegacyEndpoint: &legacyEndpoint},
			setup: func(accountRepo *repomocks.MockAccountRepository, profileReader *mocks.MockProfileReader) {
				accountRepo.EXPECT().ListEndpointsByAccountID("ACC001").Return([]*domain.AccountEndpoint{
					{ID: "EP1", Value: "https://wa.me/5511900000000", IsDefault: false},
					{ID: "EP2", Value: defaultEndpoint, IsDefault: true},
				}, nil)
			},
			expected: &defaultEndpoint,
		},
		{
			name:      "campo legado é o último recurso",
			directive: &domain.Directive{ID: "DIR001"},
			account:   &domain.AdAccount{ID: "ACC001", LegacyEndpoint: &legacyEndpoint},
			setup: func(accountRepo *repomocks.MockAccountRepository, profileReader *mocks.MockProfileReader) {
				accountRepo.EXPECT().ListEndpointsByAccountID("ACC001").Return(nil, nil)
			},
			expected: &legacyEndpoint,
		},
		{
			name:      "nenhum nível tem valor resolve para nil sem erro",
			directive: &domain.Directive{ID: "DIR001"},
			account:   &domain.AdAccount{ID: "ACC001"},
			setup: func(accountRepo *repomocks.MockAccountRepository, profileReader *mocks.MockProfileReader) {
				accountRepo.EXPECT().ListEndpointsByAccountID("ACC001").Return(nil, nil)
			},
			expected: nil,
		},
		{
			name:      "falha no perfil externo degrada para o default da conta",
			directive: &domain.Directive{ID: "DIR001", PageID: "PAGE1"},
			account:   &domain.AdAccount{ID: "ACC001"},
			setup: func(accountRepo *repomocks.MockAccountRepository, profileReader *mocks.MockProfileReader) {
				profileReader.EXPECT().GetPageContactEndpoint("PAGE1").Return("", errors.New("timeout"))
				accountRepo.EXPECT().ListEndpointsByAccountID("ACC001").Return([]*domain.AccountEndpoint{
					{ID: "EP1", Value: defaultEndpoint, IsDefault: true},
				}, nil)
			},
			expected: &defaultEndpoint,
		},
		{
			name:      "endpoint da diretiva vazio não conta como configurado",
			directive: &domain.Directive{ID: "DIR001", ContactEndpoint: strPtr("")},
			account:   &domain.AdAccount{ID: "ACC001", LegacyEndpoint: &legacyEndpoint},
			setup: func(accountRepo *repomocks.MockAccountRepository, profileReader *mocks.MockProfileReader) {
				accountRepo.EXPECT().ListEndpointsByAccountID("ACC001").Return(nil, nil)
			},
			expected: &legacyEndpoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAccountRepo := repomocks.NewMockAccountRepository(ctrl)
			mockProfileReader := mocks.NewMockProfileReader(ctrl)
			tt.setup(mockAccountRepo, mockProfileReader)

			service := NewService(mockAccountRepo, mockProfileReader)

			resolved, err := service.ResolveEndpoint(tt.directive, tt.account)

			assert.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, resolved)
			} else {
				assert.NotNil(t, resolved)
				assert.Equal(t, *tt.expected, *resolved)
			}
		})
	}
}

func TestResolveEndpoint_NilArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(repomocks.NewMockAccountRepository(ctrl), mocks.NewMockProfileReader(ctrl))

	_, err := service.ResolveEndpoint(nil, &domain.AdAccount{ID: "ACC001"})
	assert.Error(t, err)

	_, err = service.ResolveEndpoint(&domain.Directive{ID: "DIR001"}, nil)
	assert.Error(t, err)
}
