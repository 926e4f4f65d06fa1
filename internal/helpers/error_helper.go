package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventlista/internal/logger"
)

var log = logger.NewLogger("eventlista")

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithInternalError logs the underlying error and sends only the
// generic message to the caller.
func RespondWithInternalError(c *gin.Context, err error, customMessage string) {
	log.WithError(err).WithField("path", c.FullPath()).Error(customMessage)
	RespondWithError(c, http.StatusInternalServerError, customMessage)
}
