package router

import (
	"github.com/labstack/echo/v4"

	"remontkz/internal/adapter/api/handler"
	"remontkz/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
}
