package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appoperator "github.com/xiebiao/backoffice/internal/application/operator"
	apppurchase "github.com/xiebiao/backoffice/internal/application/purchase"
	"github.com/xiebiao/backoffice/internal/domain/book"
	"github.com/xiebiao/backoffice/internal/domain/customer"
	"github.com/xiebiao/backoffice/internal/domain/operator"
	"github.com/xiebiao/backoffice/internal/domain/purchase"
	"github.com/xiebiao/backoffice/internal/infrastructure/config"
	"github.com/xiebiao/backoffice/internal/infrastructure/persistence/database"
	"github.com/xiebiao/backoffice/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/backoffice/pkg/jwt"
)

// Wire无法从*config.Config中提取字段，以下Provider负责拆分配置

func provideDatabaseConfig(cfg *config.Config) config.DatabaseConfig {
	return cfg.Database
}

// provideDB 启动时获取连接池，cleanup时释放
func provideDB(provider *database.Provider) (*gorm.DB, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := provider.Acquire(ctx)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := provider.Release(); err != nil {
			log.Error().Err(err).Msg("关闭数据库连接池失败")
		}
	}
	return db, cleanup, nil
}

func provideRedisClient(cfg *config.Config) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("关闭Redis连接失败")
		}
	}
	return client, cleanup, nil
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

func provideRegisterPurchaseUseCase(
	tx apppurchase.Transactor,
	customers customer.Repository,
	books book.Repository,
	purchases purchase.Repository,
	cfg *config.Config,
) *apppurchase.RegisterPurchaseUseCase {
	return apppurchase.NewRegisterPurchaseUseCase(tx, customers, books, purchases, cfg.Purchase.Timeout)
}

// provideLoginUseCase 会话有效期与Refresh Token一致
func provideLoginUseCase(
	operatorService operator.Service,
	jwtManager *jwt.Manager,
	sessionStore appoperator.SessionStore,
	cfg *config.Config,
) *appoperator.LoginUseCase {
	return appoperator.NewLoginUseCase(operatorService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
}
