package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/xiebiao/backoffice/pkg/errors"
	"github.com/xiebiao/backoffice/pkg/jwt"
	"github.com/xiebiao/backoffice/pkg/response"
)

const (
	ctxOperatorID     = "operator_id"
	ctxEmail          = "email"
	ctxNickname       = "nickname"
	ctxAccessToken    = "access_token"
	ctxTokenExpiresAt = "token_expires_at"
)

// TokenBlacklist 已注销Token查询（Redis实现见persistence/redis.SessionStore）
type TokenBlacklist interface {
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware JWT认证中间件
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	blacklist  TokenBlacklist
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, blacklist TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		blacklist:  blacklist,
	}
}

// RequireAuth 要求登录
//  1. 提取 Authorization: Bearer <token>
//  2. 检查黑名单（已登出）
//  3. 校验签名与有效期
//  4. 操作员信息写入gin.Context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidToken, "Token格式错误")
			c.Abort()
			return
		}
		tokenString := parts[1]

		revoked, err := m.blacklist.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			log.Error().Err(err).Str("request_id", c.GetString(ctxRequestID)).Msg("检查Token黑名单失败")
			response.Error(c, err)
			c.Abort()
			return
		}
		if revoked {
			response.ErrorWithCode(c, apperrors.ErrCodeTokenExpired, "Token已失效，请重新登录")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ctxOperatorID, claims.OperatorID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxNickname, claims.Nickname)
		c.Set(ctxAccessToken, tokenString)
		if claims.ExpiresAt != nil {
			c.Set(ctxTokenExpiresAt, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// GetOperatorID 当前登录操作员ID，未登录返回0
func GetOperatorID(c *gin.Context) uint {
	if v, exists := c.Get(ctxOperatorID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetEmail 当前登录操作员邮箱
func GetEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}

// GetAccessToken 当前请求携带的Access Token
func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxAccessToken)
}

// GetTokenExpiresAt Access Token过期时间
func GetTokenExpiresAt(c *gin.Context) time.Time {
	return c.GetTime(ctxTokenExpiresAt)
}

// MustGetOperatorID 只用于RequireAuth之后的Handler
func MustGetOperatorID(c *gin.Context) uint {
	id := GetOperatorID(c)
	if id == 0 {
		panic("operator_id not found in context")
	}
	return id
}
