// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/Felix-Hz/cofr/internal/delivery/http/middleware"
	"github.com/Felix-Hz/cofr/internal/delivery/http/router/handler"
	"github.com/Felix-Hz/cofr/internal/infra/metrics"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	AccountHandler      *handler.AccountHandler
	ExpenseHandler      *handler.ExpenseHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Collector           *metrics.Collector
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	accountHandler      *handler.AccountHandler
	expenseHandler      *handler.ExpenseHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	collector           *metrics.Collector
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		accountHandler:      params.AccountHandler,
		expenseHandler:      params.ExpenseHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		collector:           params.Collector,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.collector.Handler()))

	// Auth routes, throttled per client IP
	authGroup := e.Group("/auth")
	authGroup.Use(r.rateLimitMiddleware.LimitAuth)
	{
		authGroup.POST("/telegram", r.authHandler.TelegramLogin)
		authGroup.GET("/oauth/:provider/login", r.authHandler.OAuthLogin)
		authGroup.GET("/oauth/:provider/callback", r.authHandler.OAuthCallback)
	}

	// Account routes that require authentication
	accountGroup := e.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/profile", r.accountHandler.GetProfile)
		accountGroup.PATCH("/profile", r.accountHandler.UpdateProfile)
		accountGroup.GET("/providers", r.accountHandler.ListProviders)
		accountGroup.DELETE("/providers/:id", r.accountHandler.Unlink)
		accountGroup.POST("/link/telegram", r.accountHandler.LinkTelegramWidget)
		accountGroup.POST("/link/telegram/init", r.accountHandler.InitTelegramLink)
	}

	// Expense routes that require authentication
	expenseGroup := e.Group("/expenses")
	expenseGroup.Use(r.authMiddleware.Authenticate)
	{
		expenseGroup.GET("", r.expenseHandler.ListExpenses)
		expenseGroup.GET("/stats/monthly", r.expenseHandler.MonthlyStats)
	}
}
