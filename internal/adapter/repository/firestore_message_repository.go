package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"remontkz/internal/domain/entity"
	"remontkz/internal/domain/repository"
	"remontkz/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	// Creation time is assigned here, never by the caller, so message ordering
	// follows the store's clock.
	message.CreatedAt = time.Now()

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

// ListByActor merges the sent and received sides of the actor's mailbox.
// Firestore has no OR over two fields, so it is two queries combined and
// sorted in memory.
func (r *firestoreMessageRepository) ListByActor(ctx context.Context, actorID string, filter repository.MessageFilter) ([]*entity.Message, error) {
	sent, err := r.queryMessages(ctx, "senderId", actorID, filter.RequestID)
	if err != nil {
		return nil, err
	}

	received, err := r.queryMessages(ctx, "receiverId", actorID, filter.RequestID)
	if err != nil {
		return nil, err
	}

	messages := append(sent, received...)

	if filter.CounterpartyID != "" {
		filtered := messages[:0]
		for _, m := range messages {
			if m.Counterparty(actorID) == filter.CounterpartyID {
				filtered = append(filtered, m)
			}
		}
		messages = filtered
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	return messages, nil
}

func (r *firestoreMessageRepository) queryMessages(ctx context.Context, field, actorID, requestID string) ([]*entity.Message, error) {
	query := r.client.Collection("messages").Where(field, "==", actorID)
	if requestID != "" {
		query = query.Where("requestId", "==", requestID)
	}

	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

// MarkRead performs the one-way read flip in a transaction so concurrent
// retrievals by the same receiver cannot fire it twice.
func (r *firestoreMessageRepository) MarkRead(ctx context.Context, messageID, receiverID string) (bool, error) {
	docRef := r.client.Collection("messages").Doc(messageID)
	flipped := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// The closure may be retried; start each attempt from a clean slate.
		flipped = false

		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Message", err)
			}
			return errors.Internal("Failed to get message", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return errors.Internal("Failed to parse message data", err)
		}

		if message.ReceiverID != receiverID || message.Read {
			return nil
		}

		flipped = true
		return tx.Update(docRef, []firestore.Update{
			{Path: "read", Value: true},
		})
	})
	if err != nil {
		return false, err
	}

	return flipped, nil
}
