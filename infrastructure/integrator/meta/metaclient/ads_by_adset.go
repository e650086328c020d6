package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/adsops/campaign-optimizer-api/infrastructure/integrator/meta/domain"
)

// TODO adicionar loop para pegar todas as páginas
func (c *MetaClient) ListAdsByAdSetID(adsetID string) ([]metadomain.Ad, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s/ads", c.Cfg.Meta.URL, adsetID)

	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	url := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

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
			return c.ListAdsByAdSetID(adsetID)
		}
		return nil, err
	}

	var response metadomain.AdListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
