package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/backoffice/internal/infrastructure/config"
	"github.com/xiebiao/backoffice/internal/interface/http/handler"
	"github.com/xiebiao/backoffice/internal/interface/http/middleware"
	"github.com/xiebiao/backoffice/pkg/response"
)

// Handlers 路由需要的全部处理器
type Handlers struct {
	Operator  *handler.OperatorHandler
	Customer  *handler.CustomerHandler
	Publisher *handler.PublisherHandler
	Book      *handler.BookHandler
	Purchase  *handler.PurchaseHandler
}

// NewRouter 创建Gin引擎并注册路由
// 查询接口公开；写操作需要登录
func NewRouter(cfg *config.Config, h *Handlers, auth *middleware.AuthMiddleware) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.Tracing(cfg.Tracing.ServiceName),
	)

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := auth.RequireAuth()

	v1 := r.Group("/api/v1")
	{
		operators := v1.Group("/operators")
		{
			operators.POST("/register", h.Operator.Register)
			operators.POST("/login", h.Operator.Login)
			operators.POST("/refresh", h.Operator.Refresh)
			operators.POST("/logout", requireAuth, h.Operator.Logout)
		}

		customers := v1.Group("/customers")
		{
			customers.GET("", h.Customer.List)
			customers.GET("/:id", h.Customer.Get)
			customers.GET("/:id/purchases", h.Customer.ListPurchases)
			customers.POST("", requireAuth, h.Customer.Create)
			customers.PUT("/:id", requireAuth, h.Customer.Update)
			customers.DELETE("/:id", requireAuth, h.Customer.Delete)
		}

		publishers := v1.Group("/publishers")
		{
			publishers.GET("", h.Publisher.List)
			publishers.GET("/:id", h.Publisher.Get)
			publishers.POST("", requireAuth, h.Publisher.Create)
			publishers.PUT("/:id", requireAuth, h.Publisher.Update)
			publishers.DELETE("/:id", requireAuth, h.Publisher.Delete)
		}

		books := v1.Group("/books")
		{
			books.GET("", h.Book.List)
			books.GET("/:id", h.Book.Get)
			books.POST("", requireAuth, h.Book.Create)
			books.PUT("/:id", requireAuth, h.Book.Update)
			books.DELETE("/:id", requireAuth, h.Book.Delete)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.GET("", h.Purchase.List)
			purchases.GET("/:id", h.Purchase.Get)
			purchases.POST("", requireAuth, h.Purchase.Register)
		}
	}

	return r
}
