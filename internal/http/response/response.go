package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/creatorhub-backend/internal/domain/aggregates"
	"github.com/yungbote/creatorhub-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

type DataEnvelope struct {
	Data any `json:"data"`
}

const (
	msgServerError = "Server error"
	msgRetry       = "Temporarily unavailable, please retry"
)

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondData writes payload inside the {"data": ...} envelope.
func RespondData(c *gin.Context, status int, payload any) {
	c.JSON(status, DataEnvelope{Data: payload})
}

// RespondServiceError maps a service or aggregate error onto the error envelope.
// The raw error is attached to the gin context for the request logger.
func RespondServiceError(c *gin.Context, err error) {
	status, code, msg := Classify(err)
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: code}})
}

// Classify resolves the HTTP status, error code and caller-facing message for err.
func Classify(err error) (int, string, string) {
	if err == nil {
		return http.StatusInternalServerError, string(domainagg.CodeInternal), msgServerError
	}
	if ae, ok := apierr.As(err); ok {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return status, ae.Code, ae.Error()
	}
	code := domainagg.CodeOf(err)
	switch code {
	case domainagg.CodeValidation, domainagg.CodePastDate:
		return http.StatusBadRequest, string(code), domainagg.MessageOf(err)
	case domainagg.CodeNotFound:
		return http.StatusNotFound, string(code), domainagg.MessageOf(err)
	case domainagg.CodeConflict, domainagg.CodeInvariantViolation:
		return http.StatusConflict, string(code), domainagg.MessageOf(err)
	case domainagg.CodePreconditionFailed:
		return http.StatusPreconditionFailed, string(code), domainagg.MessageOf(err)
	case domainagg.CodeRetryable:
		return http.StatusServiceUnavailable, string(code), msgRetry
	default:
		return http.StatusInternalServerError, string(domainagg.CodeInternal), msgServerError
	}
}
