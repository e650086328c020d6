package metaclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// UpdateAdSetStatus altera o status de um conjunto de anúncios (ACTIVE ou PAUSED)
func (c *MetaClient) UpdateAdSetStatus(adsetID string, status string) ([]byte, error) {
	params := url.Values{}
	params.Add("status", status)

	return c.postAdObject(adsetID, params, func() ([]byte, error) {
		return c.UpdateAdSetStatus(adsetID, status)
	})
}

// UpdateAdSetBudget altera o orçamento diário de um conjunto de anúncios.
// O valor é enviado em centavos, como a API espera.
func (c *MetaClient) UpdateAdSetBudget(adsetID string, dailyBudgetCents int64) ([]byte, error) {
	params := url.Values{}
	params.Add("daily_budget", strconv.FormatInt(dailyBudgetCents, 10))

	return c.postAdObject(adsetID, params, func() ([]byte, error) {
		return c.UpdateAdSetBudget(adsetID, dailyBudgetCents)
	})
}

// UpdateAdStatus altera o status de um anúncio individual
func (c *MetaClient) UpdateAdStatus(adID string, status string) ([]byte, error) {
	params := url.Values{}
	params.Add("status", status)

	return c.postAdObject(adID, params, func() ([]byte, error) {
		return c.UpdateAdStatus(adID, status)
	})
}

// postAdObject faz um POST de atualização em um objeto do Graph API.
// O callback retry é invocado quando o token expirou e foi renovado.
func (c *MetaClient) postAdObject(objectID string, params url.Values, retry func() ([]byte, error)) ([]byte, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, objectID)

	params.Add("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequest("POST", baseURL, strings.NewReader(params.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	// Usar o manipulador de resposta que verifica tokens expirados
	body, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return retry()
		}
		return nil, err
	}

	return body, nil
}
