package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsTransient verifica se o erro é transitório (rate limit ou instabilidade).
// Códigos 4, 17 e 32 são limites de requisição; 613 é rate limit de chamadas;
// 1 e 2 são erros temporários do serviço.
func (e *ErrorResponse) IsTransient() bool {
	switch e.Error.Code {
	case 1, 2, 4, 17, 32, 613:
		return true
	}
	return false
}

// RequestError é o erro tipado devolvido pelo metaclient quando a API
// responde com falha, preservando o payload para classificação
type RequestError struct {
	StatusCode int
	Response   *ErrorResponse
	Body       string
}

func (e *RequestError) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("erro na resposta da API do Meta (status %d, código %d): %s",
			e.StatusCode, e.Response.Error.Code, e.Response.Error.Message)
	}
	return fmt.Sprintf("erro na resposta da API do Meta (status %d): %s", e.StatusCode, e.Body)
}

// IsTransient indica se vale a pena retentar a chamada
func (e *RequestError) IsTransient() bool {
	if e.Response != nil && e.Response.IsTransient() {
		return true
	}
	return e.StatusCode >= 500
}
