package usecase

import (
	"context"
	"encoding/json"
	"sort"

	"golang.org/x/sync/errgroup"

	"remontkz/internal/domain/entity"
	"remontkz/internal/domain/repository"
	ws "remontkz/internal/infrastructure/websocket"
	"remontkz/pkg/errors"
	"remontkz/pkg/logger"
	"remontkz/pkg/utils"
)

const markReadConcurrency = 8

// ConversationUseCase groups raw messages into per-counterparty conversations,
// tracks unread state and enforces message-creation invariants.
type ConversationUseCase struct {
	messageRepo repository.MessageRepository
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	wsManager   *ws.Manager
}

func NewConversationUseCase(
	messageRepo repository.MessageRepository,
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	wsManager *ws.Manager,
) *ConversationUseCase {
	return &ConversationUseCase{
		messageRepo: messageRepo,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		wsManager:   wsManager,
	}
}

type SendMessageInput struct {
	ReceiverID string
	Content    string
	Kind       entity.MessageKind
	MediaURL   string
	RequestID  string
}

type messageEvent struct {
	Type    string          `json:"type"`
	Message *entity.Message `json:"message"`
}

// SendMessage validates and persists a message with read=false. When the
// message is attached to a request, sender and receiver must be exactly the
// request's two parties; this is checked before anything is written.
func (uc *ConversationUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	if senderID == input.ReceiverID {
		return nil, errors.Validation("Cannot send a message to yourself", nil)
	}

	if input.Content == "" {
		return nil, errors.Validation("Content is required", nil)
	}

	if !entity.ValidMessageKind(input.Kind) {
		return nil, errors.Validation("Invalid message kind", nil)
	}

	if input.Kind.RequiresMedia() && input.MediaURL == "" {
		return nil, errors.Validation("A media URL is required for "+string(input.Kind)+" messages", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, input.ReceiverID); err != nil {
		return nil, errors.NotFound("Receiver", err)
	}

	if input.RequestID != "" {
		request, err := uc.requestRepo.GetByID(ctx, input.RequestID)
		if err != nil {
			return nil, err
		}

		if !request.IsParty(senderID) || !request.IsParty(input.ReceiverID) {
			return nil, errors.Forbidden("You are not a party to this request", nil)
		}
	}

	message := &entity.Message{
		RequestID:  input.RequestID,
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
		Kind:       input.Kind,
		MediaURL:   input.MediaURL,
		Read:       false,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	uc.notifyReceiver(message)

	return message, nil
}

func (uc *ConversationUseCase) notifyReceiver(message *entity.Message) {
	if uc.wsManager == nil {
		return
	}

	payload, err := json.Marshal(messageEvent{Type: "message.new", Message: message})
	if err != nil {
		logger.Error("Failed to marshal message event for %s: %v", message.ID, err)
		return
	}

	uc.wsManager.SendToUser(message.ReceiverID, payload)
}

// ListConversations groups the actor's messages into conversations, ordered
// by most-recent message descending; inside a conversation messages are
// ascending by creation time. Pagination applies to conversations, never to
// raw messages, so a returned conversation always carries its full history.
//
// Side effect: every returned message addressed to the actor that is still
// unread is flipped to read, each flip atomic and at most once. The unread
// counts reported are the values as of retrieval, before the flip, so the
// first call shows the badge and the next shows zero.
func (uc *ConversationUseCase) ListConversations(ctx context.Context, actorID string, page, pageSize int, filter repository.MessageFilter) ([]*entity.Conversation, int64, error) {
	pagination := utils.NewPaginationParams(page, pageSize)

	messages, err := uc.messageRepo.ListByActor(ctx, actorID, filter)
	if err != nil {
		return nil, 0, err
	}

	conversations := groupConversations(actorID, messages)
	total := int64(len(conversations))

	start := pagination.Offset
	if start > len(conversations) {
		start = len(conversations)
	}
	end := start + pagination.PageSize
	if end > len(conversations) {
		end = len(conversations)
	}
	pageConversations := conversations[start:end]

	if err := uc.markConversationsRead(ctx, actorID, pageConversations); err != nil {
		return nil, 0, err
	}

	return pageConversations, total, nil
}

// groupConversations builds the conversation index in a single pass over
// messages already sorted ascending by creation time. The key is the request
// ID when present, otherwise the counterparty's ID.
func groupConversations(actorID string, messages []*entity.Message) []*entity.Conversation {
	index := make(map[string]*entity.Conversation)
	var conversations []*entity.Conversation

	for _, m := range messages {
		key := m.RequestID
		if key == "" {
			key = m.Counterparty(actorID)
		}

		conv, ok := index[key]
		if !ok {
			conv = &entity.Conversation{
				Key:            key,
				RequestID:      m.RequestID,
				CounterpartyID: m.Counterparty(actorID),
			}
			index[key] = conv
			conversations = append(conversations, conv)
		}

		conv.Messages = append(conv.Messages, m)
		conv.LastMessageAt = m.CreatedAt
		if m.ReceiverID == actorID && !m.Read {
			conv.UnreadCount++
		}
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessageAt.After(conversations[j].LastMessageAt)
	})

	return conversations
}

func (uc *ConversationUseCase) markConversationsRead(ctx context.Context, actorID string, conversations []*entity.Conversation) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(markReadConcurrency)

	for _, conv := range conversations {
		for _, m := range conv.Messages {
			if m.ReceiverID != actorID || m.Read {
				continue
			}

			m := m
			g.Go(func() error {
				_, err := uc.messageRepo.MarkRead(ctx, m.ID, actorID)
				return err
			})
		}
	}

	return g.Wait()
}
