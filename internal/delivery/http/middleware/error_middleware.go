package middleware

import (
	"errors"
	"net/http"

	"go-hr-screening/internal/delivery/http/response"
	"go-hr-screening/internal/domain"
	"go-hr-screening/pkg/apperror"
	"go-hr-screening/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		switch {
		case errors.As(err, &appErr):
			response.Error(c, appErr.Code, appErr.Message, nil)
		case errors.Is(err, domain.ErrInvalidStage):
			response.Error(c, http.StatusBadRequest, "Invalid interview stage. Valid stages: first, second, final.", nil)
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Resource not found", nil)
		case domain.IsConfigError(err):
			response.Error(c, http.StatusUnprocessableEntity, err.Error(), nil)
		default:
			// SECURITY: Never expose internal error details to clients.
			// Log the actual error server-side, send a generic message out.
			logger.Log.Error("Internal server error", "error", err, "path", c.Request.URL.Path)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
