package router

import (
	"github.com/labstack/echo/v4"

	"remontkz/internal/adapter/api/handler"
	"remontkz/internal/adapter/api/middleware"
)

// SetupWebSocketRouter mounts the push channel. The auth middleware accepts
// the token as a query parameter because browsers cannot set headers on
// WebSocket upgrade requests.
func SetupWebSocketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, wsHandler *handler.WebSocketHandler) {
	e.GET("/v1/ws", wsHandler.HandleWebSocket, authMiddleware.Authenticate)
}
