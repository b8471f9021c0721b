package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/xiebiao/backoffice/pkg/errors"
	"github.com/xiebiao/backoffice/pkg/response"
)

// Recovery panic转为500响应
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(ctxRequestID)).
					Str("path", c.Request.URL.Path).
					Interface("error", err).
					Stack().
					Msg("Panic recovered")

				response.Error(c, apperrors.ErrInternal)
				c.Abort()
			}
		}()

		c.Next()
	}
}
