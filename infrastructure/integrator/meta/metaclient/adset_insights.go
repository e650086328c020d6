package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/adsops/campaign-optimizer-api/infrastructure/integrator/meta/domain"
)

// GetAdSetInsightsByID busca as métricas de um conjunto de anúncios para um único dia.
// Quando a API não devolve dados para o dia, retorna (nil, nil): o chamador decide
// como representar a ausência.
func (c *MetaClient) GetAdSetInsightsByID(adsetID string, date time.Time) (*metadomain.AdSetInsight, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, adsetID)

	day := date.Format(time.DateOnly)
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", day, day)

	params := url.Values{}
	params.Add("fields", "adset_id,adset_name,spend,impressions,clicks,actions")
	params.Add("time_range", timeRange)
	params.Add("time_increment", "1")
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
			return c.GetAdSetInsightsByID(adsetID, date)
		}
		return nil, err
	}

	var response metadomain.AdSetInsightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}
