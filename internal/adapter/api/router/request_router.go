package router

import (
	"github.com/labstack/echo/v4"

	"remontkz/internal/adapter/api/handler"
	"remontkz/internal/adapter/api/middleware"
)

func SetupRequestRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	requestHandler := handler.GetRequestHandler()

	requests := e.Group("/v1/requests")
	requests.Use(authMiddleware.Authenticate)
	requests.Use(roleMiddleware.ResolveActor)

	// Visibility is enforced per request inside the use case; any
	// authenticated actor may hit these.
	requests.GET("", requestHandler.ListRequests)
	requests.GET("/:id", requestHandler.GetRequest)

	// Only clients open requests; only the assigned company moves the status.
	requests.POST("", requestHandler.CreateRequest, roleMiddleware.ClientOnly)
	requests.PUT("/:id/status", requestHandler.UpdateRequestStatus, roleMiddleware.CompanyOnly)
}
