package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger middleware logs HTTP requests
func Logger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		entry := logger.WithFields(logrus.Fields{
			"status":  c.Writer.Status(),
			"latency": latency,
			"ip":      c.ClientIP(),
		})
		if errs := c.Errors.String(); errs != "" {
			entry = entry.WithField("errors", errs)
		}
		entry.Infof("[%s] %s", c.Request.Method, path)
	}
}
