package helper

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/response"
	"taskapp/pkg/logging"
)

// SendError writes the generic error body for a status code. Clients
// never see internal detail, full errors are logged by SendDomainError.
func SendError(c *gin.Context, statusCode int) {
	c.JSON(statusCode, response.ErrorResponse{
		StatusCode: statusCode,
		Message:    genericMessage(statusCode),
		Timestamp:  time.Now(),
	})
}

// SendDomainError logs the error with full detail and translates it to
// a status code: validation 400, not-found 404, conflict 409, anything
// else 500.
func SendDomainError(c *gin.Context, logger *logging.Logger, err error) {
	statusCode := statusFor(err)

	if logger != nil {
		logger.Logger.Ctx(c.Request.Context()).Error("Request failed",
			zap.Int("status", statusCode),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	SendError(c, statusCode)
}

func statusFor(err error) int {
	switch {
	case domain.IsValidationError(err):
		return http.StatusBadRequest
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func genericMessage(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return "Invalid request data"
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusConflict:
		return "Operation could not be completed"
	case http.StatusInternalServerError:
		return "An error occurred processing your request"
	default:
		return "An error occurred"
	}
}
