package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/backoffice/internal/infrastructure/config"
	apperrors "github.com/xiebiao/backoffice/pkg/errors"
)

// NewClient 创建Redis客户端并测试连接
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, &apperrors.AppError{Code: apperrors.ErrCodeRedisError, Message: "Redis连接失败", Err: err}
	}

	log.Info().Str("addr", cfg.Addr()).Int("db", cfg.DB).Msg("Redis连接成功")
	return client, nil
}
