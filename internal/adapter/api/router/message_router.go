package router

import (
	"github.com/labstack/echo/v4"

	"remontkz/internal/adapter/api/handler"
	"remontkz/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, mediaHandler *handler.MediaHandler) {
	messageHandler := handler.GetMessageHandler()

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)

	messages.POST("", messageHandler.SendMessage)
	messages.GET("", messageHandler.ListConversations)
	messages.POST("/media", mediaHandler.UploadMedia)
}
