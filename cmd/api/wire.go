//go:build wireinject
// +build wireinject

// Wire依赖注入配置，运行 `wire gen ./cmd/api` 生成wire_gen.go
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appoperator "github.com/xiebiao/backoffice/internal/application/operator"
	apppurchase "github.com/xiebiao/backoffice/internal/application/purchase"
	"github.com/xiebiao/backoffice/internal/domain/book"
	"github.com/xiebiao/backoffice/internal/domain/customer"
	"github.com/xiebiao/backoffice/internal/domain/operator"
	"github.com/xiebiao/backoffice/internal/domain/publisher"
	"github.com/xiebiao/backoffice/internal/domain/purchase"
	"github.com/xiebiao/backoffice/internal/infrastructure/config"
	"github.com/xiebiao/backoffice/internal/infrastructure/persistence/database"
	"github.com/xiebiao/backoffice/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/backoffice/internal/interface/http/handler"
	"github.com/xiebiao/backoffice/internal/interface/http/middleware"
	"github.com/xiebiao/backoffice/internal/interface/http/router"
)

// infrastructureSet 连接池、Redis与事务
var infrastructureSet = wire.NewSet(
	provideDatabaseConfig,
	database.NewProvider,
	provideDB,
	provideRedisClient,
	database.NewTxManager,
	wire.Bind(new(apppurchase.Transactor), new(*database.TxManager)),
)

// repositorySet 仓储
var repositorySet = wire.NewSet(
	database.NewOperatorRepository,
	database.NewCustomerRepository,
	database.NewPublisherRepository,
	database.NewBookRepository,
	database.NewPurchaseRepository,
)

// domainSet 领域服务与用例门面
var domainSet = wire.NewSet(
	operator.NewService,
	customer.NewService,
	publisher.NewService,
	book.NewService,
	purchase.NewService,
	wire.Bind(new(purchase.Workflow), new(*apppurchase.RegisterPurchaseUseCase)),
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	provideRegisterPurchaseUseCase,
	appoperator.NewRegisterUseCase,
	provideLoginUseCase,
	appoperator.NewLogoutUseCase,
	appoperator.NewRefreshUseCase,
)

// middlewareSet JWT、会话与认证
var middlewareSet = wire.NewSet(
	provideJWTManager,
	redis.NewSessionStore,
	wire.Bind(new(appoperator.SessionStore), new(*redis.SessionStore)),
	wire.Bind(new(middleware.TokenBlacklist), new(*redis.SessionStore)),
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器与路由
var handlerSet = wire.NewSet(
	handler.NewOperatorHandler,
	handler.NewCustomerHandler,
	handler.NewPublisherHandler,
	handler.NewBookHandler,
	handler.NewPurchaseHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.NewRouter,
)

// InitializeApp 组装应用；cleanup依次关闭Redis与数据库连接池
func InitializeApp(cfg *config.Config) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
	)
	return nil, nil, nil
}
