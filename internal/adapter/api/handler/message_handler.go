package handler

import (
	"github.com/labstack/echo/v4"

	"remontkz/internal/domain/entity"
	"remontkz/internal/domain/repository"
	"remontkz/internal/usecase"
	"remontkz/pkg/response"
	"remontkz/pkg/utils"
)

type MessageHandler struct {
	conversationUseCase *usecase.ConversationUseCase
}

func NewMessageHandler(conversationUseCase *usecase.ConversationUseCase) *MessageHandler {
	return &MessageHandler{
		conversationUseCase: conversationUseCase,
	}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required"`
	Kind       string `json:"kind" validate:"omitempty,oneof=text image audio"`
	MediaURL   string `json:"media_url" validate:"omitempty,url"`
	RequestID  string `json:"request_id"`
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if req.Kind == "" {
		req.Kind = string(entity.KindText)
	}

	senderID := c.Get("uid").(string)

	message, err := h.conversationUseCase.SendMessage(c.Request().Context(), senderID, usecase.SendMessageInput{
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Kind:       entity.MessageKind(req.Kind),
		MediaURL:   req.MediaURL,
		RequestID:  req.RequestID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

// ListConversations returns the actor's conversations and, as a documented
// side effect, marks the returned messages addressed to the actor as read.
func (h *MessageHandler) ListConversations(c echo.Context) error {
	actorID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	conversations, total, err := h.conversationUseCase.ListConversations(
		c.Request().Context(),
		actorID,
		pagination.Page,
		pagination.PageSize,
		repository.MessageFilter{
			RequestID:      c.QueryParam("requestId"),
			CounterpartyID: c.QueryParam("counterpartyId"),
		},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, conversations, total, pagination.Page, pagination.PageSize)
}
