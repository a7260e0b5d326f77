package middleware

import (
	"errors"
	"net/http"

	"bb-schoonmaak-backend/internal/delivery/http/response"
	"bb-schoonmaak-backend/pkg/apperror"
	"bb-schoonmaak-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}
			// Never expose internal error details to clients; log server-side
			// and send a generic message.
			logger.Log.Error("unhandled request error", "error", err.Error(), "path", c.FullPath())
			response.Error(c, http.StatusInternalServerError, "Er is een onverwachte fout opgetreden. Probeer het later opnieuw.", nil)
		}
	}
}
