package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery 捕获 handler panic，以失败信封响应
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("error", err).
					Str("path", c.Request.URL.Path).
					Str("method", c.Request.Method).
					Msg("panic recovered")

				c.AbortWithStatusJSON(nethttp.StatusOK, &FailResponse[any]{
					Message: DefaultFailMessage,
					Status:  StatusFail,
				})
			}
		}()
		c.Next()
	}
}
