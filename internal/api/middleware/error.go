package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorHandlerMiddleware handles panics and unconsumed handler errors
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logrus.WithField("panic", err).Error("request panicked")
				c.String(http.StatusInternalServerError, "An unexpected error occurred")
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			logrus.WithField("error", c.Errors.Last().Error()).Error("request failed")
			c.String(http.StatusInternalServerError, "An unexpected error occurred")
		}
	}
}
