package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/ivolkoff/pizzeria/internal/metrics"
	"github.com/ivolkoff/pizzeria/internal/server/http/handlers"
	"github.com/ivolkoff/pizzeria/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PizzeriaFacade, logger *slog.Logger, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(httpMetrics.Middleware())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	engine.GET("/metrics", gin.WrapH(httpMetrics.Handler()))

	auth := engine.Group("/auth")
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/login", authHandler.Login)
	// Refresh validates the bearer token itself: it must be of refresh type,
	// so the access-token middleware does not apply.
	auth.GET("/refresh", authHandler.Refresh)

	authProtected := auth.Group("")
	authProtected.Use(middleware.AuthRequired(facade))
	authProtected.GET("/", authHandler.Ping)

	orders := engine.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.GET("/", orderHandler.Ping)
	orders.POST("/order", orderHandler.Place)
	orders.GET("/orders", orderHandler.ListAll)
	orders.GET("/orders/:id", orderHandler.GetByID)
	orders.GET("/user/orders", orderHandler.ListOwned)
	orders.GET("/user/order/:id", orderHandler.GetOwned)
	orders.PATCH("/order/update/:id", orderHandler.Update)
	orders.DELETE("/order/delete/:id", orderHandler.Delete)

	return engine
}
