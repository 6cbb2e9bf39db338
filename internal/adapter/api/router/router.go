package router

import (
	"github.com/labstack/echo/v4"

	"remontkz/internal/adapter/api/handler"
	"remontkz/internal/adapter/api/middleware"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	mediaHandler *handler.MediaHandler,
	wsHandler *handler.WebSocketHandler,
	healthHandler *handler.HealthHandler,
) {
	SetupAuthRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware, roleMiddleware)
	SetupRequestRouter(e, authMiddleware, roleMiddleware)
	SetupMessageRouter(e, authMiddleware, mediaHandler)
	SetupWebSocketRouter(e, authMiddleware, wsHandler)
	SetupHealthRouter(e, healthHandler)
}
