package middleware

import (
	"errors"
	"net/http"

	"go-talent-dashboard/internal/delivery/http/response"
	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/pkg/apperror"
	"go-talent-dashboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString(string(domain.KeyRequestID))

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				// SECURITY: the wrapped cause stays in the server log
				logger.Log.Error("Request failed", "request_id", requestID, "path", c.Request.URL.Path, "error", appErr.Err)
			}
			var details interface{}
			if len(appErr.Details) > 0 {
				details = appErr.Details
			}
			response.Error(c, appErr.Code, appErr.Message, details)
			return
		}

		logger.Log.Error("Internal Server Error", "request_id", requestID, "path", c.Request.URL.Path, "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
