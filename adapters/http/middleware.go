package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sourabh020820033/learning-path/pkg/apperror"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

// ErrorMiddleware renders the last error a handler attached with c.Error.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unhandled error", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err, zap.String("path", c.FullPath()), zap.Int("status", status))
		} else {
			log.Warn("Request rejected", zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))
		}
		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
