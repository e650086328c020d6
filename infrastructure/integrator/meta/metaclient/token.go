package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// GetLongLivedToken obtém um token de longa duração do Meta
// usando um token de curta duração
func GetLongLivedToken(shortLivedToken, appID, appSecret, baseURL, version string) (*TokenResponse, error) {
	if shortLivedToken == "" {
		return nil, fmt.Errorf("token de acesso não pode ser vazio")
	}

	endpoint := fmt.Sprintf("%s/%s/oauth/access_token", baseURL, version)

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", appID)
	params.Add("client_secret", appSecret)
	params.Add("fb_exchange_token", shortLivedToken)

	requestURL := endpoint + "?" + params.Encode()

	// Usar um cliente HTTP com timeout adequado
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro obtendo token longa duração. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("erro ao obter token de longa duração. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var tokenResp TokenResponse
	err = json.Unmarshal(body, &tokenResp)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	expiresInText := FormatDuration(tokenResp.ExpiresIn)
	logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", expiresInText)

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// CalculateTokenExpiration calcula a data de expiração do token com base no tempo de expiração em segundos
func CalculateTokenExpiration(expiresIn int64) time.Time {
	// Subtraímos 1 dia para renovar antes da expiração real
	buffer := int64(24 * 60 * 60) // 1 dia em segundos
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn < 0 {
		safeExpiresIn = expiresIn / 2 // Se for muito curto, usamos metade do tempo
	}

	return time.Now().Add(time.Duration(safeExpiresIn) * time.Second)
}
