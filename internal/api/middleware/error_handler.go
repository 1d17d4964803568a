package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"video-transcriber/internal/api/errors"
)

// ErrorHandler turns panics into a 500 {"error": ...} response
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic",
			zap.Any("recovered", recovered),
			zap.String("request_id", GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.AbortWithStatusJSON(500, errors.NewInternalError(""))
	})
}

// HandleError writes err as an API error response. The error is attached to
// the gin context so the request log line carries the full chain.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	apiErr := errors.FromError(err)
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
