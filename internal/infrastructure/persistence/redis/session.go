package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/backoffice/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

const (
	breakerFailures = 5
	breakerTimeout  = 30 * time.Second
)

// SessionStore 操作员会话与Token黑名单
// Key：session:{operator_id}、blacklist:{token}
// 所有命令经过熔断器，Redis不可用时快速失败而不是逐个请求等待超时
type SessionStore struct {
	client  *redis.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewSessionStore 创建会话存储
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{
		client:  client,
		breaker: newBreaker("redis-session"),
	}
}

func newBreaker(name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(name, circuitbreaker.Config{
		MaxRequests: 1,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(c circuitbreaker.Counts) bool {
			return c.ConsecutiveFailures >= breakerFailures
		},
		// redis.Nil与调用方取消不代表Redis故障
		IsFailure: func(err error) bool {
			return err != nil &&
				!errors.Is(err, redis.Nil) &&
				!errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Redis熔断器状态变化")
		},
	})
}

// call 在熔断保护下执行Redis命令，熔断时返回circuitbreaker.ErrOpenState
func (s *SessionStore) call(fn func() error) error {
	return s.breaker.Execute(fn)
}

func sessionKey(operatorID uint) string {
	return fmt.Sprintf("session:%d", operatorID)
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}

func redisErr(err error, message string) error {
	return &apperrors.AppError{Code: apperrors.ErrCodeRedisError, Message: message, Err: err}
}

// SaveSession 保存登录会话，过期时间与Refresh Token一致
func (s *SessionStore) SaveSession(ctx context.Context, operatorID uint, sessionData map[string]interface{}, ttl time.Duration) error {
	key := sessionKey(operatorID)

	err := s.call(func() error {
		pipe := s.client.TxPipeline()
		pipe.HSet(ctx, key, sessionData)
		pipe.Expire(ctx, key, ttl)
		_, err := pipe.Exec(ctx)
		return err
	})
	if err != nil {
		return redisErr(err, "保存会话失败")
	}
	return nil
}

// GetSession 会话不存在时返回ErrUnauthorized
func (s *SessionStore) GetSession(ctx context.Context, operatorID uint) (map[string]string, error) {
	var result map[string]string
	err := s.call(func() error {
		var err error
		result, err = s.client.HGetAll(ctx, sessionKey(operatorID)).Result()
		return err
	})
	if err != nil {
		return nil, redisErr(err, "获取会话失败")
	}
	if len(result) == 0 {
		return nil, apperrors.ErrUnauthorized
	}
	return result, nil
}

// DeleteSession 删除会话（登出）
func (s *SessionStore) DeleteSession(ctx context.Context, operatorID uint) error {
	err := s.call(func() error {
		return s.client.Del(ctx, sessionKey(operatorID)).Err()
	})
	if err != nil {
		return redisErr(err, "删除会话失败")
	}
	return nil
}

// AddToBlacklist 将Token加入黑名单，ttl取Token剩余有效期即可
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	err := s.call(func() error {
		return s.client.Set(ctx, blacklistKey(token), "revoked", ttl).Err()
	})
	if err != nil {
		return redisErr(err, "添加Token到黑名单失败")
	}
	return nil
}

// IsInBlacklist 检查Token是否已被注销
func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	var exists int64
	err := s.call(func() error {
		var err error
		exists, err = s.client.Exists(ctx, blacklistKey(token)).Result()
		return err
	})
	if err != nil {
		return false, redisErr(err, "检查黑名单失败")
	}
	return exists > 0, nil
}
