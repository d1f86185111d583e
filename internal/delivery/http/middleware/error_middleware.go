package middleware

import (
	"errors"
	"net/http"

	"go-scales-backend/internal/delivery/http/response"
	"go-scales-backend/pkg/apperror"
	"go-scales-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors appended to the gin context. AppErrors map
// to their status code and public message; anything else is logged with
// full detail server-side and answered with a generic message so internal
// errors never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		reqID, _ := c.Get("RequestID")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"error", appErr.Err,
					"status", appErr.Code,
					"path", c.FullPath(),
					"request_id", reqID,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		logger.Log.Error("unexpected error",
			"error", err,
			"path", c.FullPath(),
			"request_id", reqID,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
