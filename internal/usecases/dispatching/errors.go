package dispatching

import (
	"context"
	"net"

	pkgerrors "github.com/pkg/errors"
	metadomain "github.com/adsops/campaign-optimizer-api/infrastructure/integrator/meta/domain"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

// classifyError mapeia uma falha de chamada externa para a taxonomia de
// erros do relatório. Timeout ganha código próprio porque o efeito externo
// pode ter ocorrido mesmo assim e o operador precisa saber disso.
func classifyError(err error) domain.ErrorCode {
	if err == nil {
		return ""
	}

	if pkgerrors.Is(err, domain.ErrPoolExhausted) {
		return domain.ErrorCodeResourceExhausted
	}

	if pkgerrors.Is(err, context.DeadlineExceeded) {
		return domain.ErrorCodeTimeout
	}

	var netErr net.Error
	if pkgerrors.As(err, &netErr) {
		if netErr.Timeout() {
			return domain.ErrorCodeTimeout
		}
		return domain.ErrorCodeExternalTransient
	}

	var requestErr *metadomain.RequestError
	if pkgerrors.As(err, &requestErr) {
		if requestErr.IsTransient() {
			return domain.ErrorCodeExternalTransient
		}
		return domain.ErrorCodeExternalRejected
	}

	return domain.ErrorCodeUnknown
}

// isRetryable indica se o erro é elegível para retry com backoff
func isRetryable(code domain.ErrorCode) bool {
	return code == domain.ErrorCodeExternalTransient
}
