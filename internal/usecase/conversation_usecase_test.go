package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remontkz/internal/domain/entity"
	"remontkz/internal/domain/repository"
	"remontkz/pkg/errors"
)

func newConversationUseCaseForTest(userIDs ...string) (*ConversationUseCase, *fakeMessageRepo, *fakeRequestRepo) {
	messageRepo := newFakeMessageRepo()
	requestRepo := newFakeRequestRepo()
	return NewConversationUseCase(messageRepo, requestRepo, newFakeUserRepo(userIDs...), nil), messageRepo, requestRepo
}

func mustSend(t *testing.T, uc *ConversationUseCase, senderID, receiverID, content, requestID string) *entity.Message {
	t.Helper()

	message, err := uc.SendMessage(context.Background(), senderID, SendMessageInput{
		ReceiverID: receiverID,
		Content:    content,
		Kind:       entity.KindText,
		RequestID:  requestID,
	})
	require.NoError(t, err)
	return message
}

func TestSendMessage(t *testing.T) {
	uc, _, _ := newConversationUseCaseForTest("alice", "bob")

	message := mustSend(t, uc, "alice", "bob", "hello", "")

	assert.False(t, message.Read)
	assert.Equal(t, entity.KindText, message.Kind)
	assert.Equal(t, "alice", message.SenderID)
	assert.Equal(t, "bob", message.ReceiverID)
	assert.NotEmpty(t, message.ID)
	assert.False(t, message.CreatedAt.IsZero())
}

func TestSendMessageToSelf(t *testing.T) {
	uc, _, _ := newConversationUseCaseForTest("alice")

	_, err := uc.SendMessage(context.Background(), "alice", SendMessageInput{
		ReceiverID: "alice",
		Content:    "hello",
		Kind:       entity.KindText,
	})

	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestSendMessageEmptyContent(t *testing.T) {
	uc, _, _ := newConversationUseCaseForTest("alice", "bob")

	_, err := uc.SendMessage(context.Background(), "alice", SendMessageInput{
		ReceiverID: "bob",
		Kind:       entity.KindText,
	})

	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestSendMessageMediaKindRequiresURL(t *testing.T) {
	uc, _, _ := newConversationUseCaseForTest("alice", "bob")

	_, err := uc.SendMessage(context.Background(), "alice", SendMessageInput{
		ReceiverID: "bob",
		Content:    "voice note",
		Kind:       entity.KindAudio,
	})
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	message, err := uc.SendMessage(context.Background(), "alice", SendMessageInput{
		ReceiverID: "bob",
		Content:    "voice note",
		Kind:       entity.KindAudio,
		MediaURL:   "https://storage.googleapis.com/bucket/chat-media/a.mp3",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.KindAudio, message.Kind)
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	uc, _, _ := newConversationUseCaseForTest("alice")

	_, err := uc.SendMessage(context.Background(), "alice", SendMessageInput{
		ReceiverID: "ghost",
		Content:    "hello",
		Kind:       entity.KindText,
	})

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSendMessageRequestPartyCheck(t *testing.T) {
	uc, _, requestRepo := newConversationUseCaseForTest("client-1", "company-1", "outsider")

	request := &entity.ServiceRequest{
		ClientID:  "client-1",
		CompanyID: "company-1",
		ListingID: "lst-1",
		Status:    entity.StatusNew,
	}
	require.NoError(t, requestRepo.Create(context.Background(), request))

	// Both directions between the two parties work.
	mustSend(t, uc, "client-1", "company-1", "when can you start?", request.ID)
	mustSend(t, uc, "company-1", "client-1", "next monday", request.ID)

	_, err := uc.SendMessage(context.Background(), "outsider", SendMessageInput{
		ReceiverID: "client-1",
		Content:    "hello",
		Kind:       entity.KindText,
		RequestID:  request.ID,
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.SendMessage(context.Background(), "client-1", SendMessageInput{
		ReceiverID: "outsider",
		Content:    "hello",
		Kind:       entity.KindText,
		RequestID:  request.ID,
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.SendMessage(context.Background(), "client-1", SendMessageInput{
		ReceiverID: "company-1",
		Content:    "hello",
		Kind:       entity.KindText,
		RequestID:  "missing",
	})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListConversationsGrouping(t *testing.T) {
	uc, _, requestRepo := newConversationUseCaseForTest("client-1", "company-1", "company-2")

	request := &entity.ServiceRequest{
		ClientID:  "client-1",
		CompanyID: "company-1",
		ListingID: "lst-1",
		Status:    entity.StatusNew,
	}
	require.NoError(t, requestRepo.Create(context.Background(), request))

	mustSend(t, uc, "client-1", "company-1", "first", request.ID)
	mustSend(t, uc, "client-1", "company-2", "direct question", "")
	mustSend(t, uc, "company-1", "client-1", "second", request.ID)

	conversations, total, err := uc.ListConversations(context.Background(), "client-1", 1, 20, repository.MessageFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, conversations, 2)

	// Most recently active conversation first.
	assert.Equal(t, request.ID, conversations[0].Key)
	assert.Equal(t, "company-1", conversations[0].CounterpartyID)
	require.Len(t, conversations[0].Messages, 2)
	assert.Equal(t, "first", conversations[0].Messages[0].Content)
	assert.Equal(t, "second", conversations[0].Messages[1].Content)

	assert.Equal(t, "company-2", conversations[1].Key)
	require.Len(t, conversations[1].Messages, 1)
}

func TestListConversationsUnreadFlip(t *testing.T) {
	uc, messageRepo, _ := newConversationUseCaseForTest("alice", "bob")

	mustSend(t, uc, "bob", "alice", "one", "")
	mustSend(t, uc, "bob", "alice", "two", "")
	mustSend(t, uc, "alice", "bob", "reply", "")

	// First retrieval reports the unread badge as of retrieval time.
	conversations, _, err := uc.ListConversations(context.Background(), "alice", 1, 20, repository.MessageFilter{})
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, 2, conversations[0].UnreadCount)
	first := conversations[0].Messages

	// The side effect already flipped them, so the next retrieval is clean.
	conversations, _, err = uc.ListConversations(context.Background(), "alice", 1, 20, repository.MessageFilter{})
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, 0, conversations[0].UnreadCount)

	// The flip touches only the read flag; everything else survives retrieval
	// byte for byte.
	second := conversations[0].Messages
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Content, second[i].Content)
		assert.Equal(t, first[i].Kind, second[i].Kind)
		assert.Equal(t, first[i].SenderID, second[i].SenderID)
		assert.Equal(t, first[i].ReceiverID, second[i].ReceiverID)
		assert.Equal(t, first[i].CreatedAt, second[i].CreatedAt)
	}

	// Exactly one flip per message, none for alice's own outgoing message.
	assert.Equal(t, 2, messageRepo.flips)

	// Bob still sees his own unread side untouched by alice's retrievals.
	conversations, _, err = uc.ListConversations(context.Background(), "bob", 1, 20, repository.MessageFilter{})
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, 1, conversations[0].UnreadCount)
}

func TestListConversationsPagination(t *testing.T) {
	uc, _, _ := newConversationUseCaseForTest("alice", "b1", "b2", "b3")

	mustSend(t, uc, "alice", "b1", "to b1", "")
	mustSend(t, uc, "alice", "b2", "to b2", "")
	mustSend(t, uc, "alice", "b3", "to b3", "")

	page1, total, err := uc.ListConversations(context.Background(), "alice", 1, 2, repository.MessageFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page1, 2)
	assert.Equal(t, "b3", page1[0].CounterpartyID)
	assert.Equal(t, "b2", page1[1].CounterpartyID)

	page2, total, err := uc.ListConversations(context.Background(), "alice", 2, 2, repository.MessageFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page2, 1)
	assert.Equal(t, "b1", page2[0].CounterpartyID)

	empty, _, err := uc.ListConversations(context.Background(), "alice", 3, 2, repository.MessageFilter{})
	require.NoError(t, err)
	assert.Len(t, empty, 0)
}

func TestListConversationsFilters(t *testing.T) {
	uc, _, requestRepo := newConversationUseCaseForTest("client-1", "company-1", "company-2")

	request := &entity.ServiceRequest{
		ClientID:  "client-1",
		CompanyID: "company-1",
		ListingID: "lst-1",
		Status:    entity.StatusNew,
	}
	require.NoError(t, requestRepo.Create(context.Background(), request))

	mustSend(t, uc, "client-1", "company-1", "about the request", request.ID)
	mustSend(t, uc, "client-1", "company-2", "something else", "")

	byRequest, total, err := uc.ListConversations(context.Background(), "client-1", 1, 20, repository.MessageFilter{RequestID: request.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byRequest, 1)
	assert.Equal(t, request.ID, byRequest[0].RequestID)

	byCounterparty, _, err := uc.ListConversations(context.Background(), "client-1", 1, 20, repository.MessageFilter{CounterpartyID: "company-2"})
	require.NoError(t, err)
	require.Len(t, byCounterparty, 1)
	assert.Equal(t, "company-2", byCounterparty[0].CounterpartyID)
}

func TestListConversationsEmpty(t *testing.T) {
	uc, _, _ := newConversationUseCaseForTest("alice")

	conversations, total, err := uc.ListConversations(context.Background(), "alice", 1, 20, repository.MessageFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Len(t, conversations, 0)
}
