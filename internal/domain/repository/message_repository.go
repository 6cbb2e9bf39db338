package repository

import (
	"context"

	"remontkz/internal/domain/entity"
)

// MessageFilter narrows ListByActor results. Zero values mean "no filter".
type MessageFilter struct {
	RequestID      string
	CounterpartyID string
}

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// ListByActor returns every message where the actor is sender or receiver,
	// ordered ascending by creation time.
	ListByActor(ctx context.Context, actorID string, filter MessageFilter) ([]*entity.Message, error)

	// MarkRead flips the message's read flag for the given receiver. The flip
	// is atomic and fires at most once: it reports true only for the call that
	// performed the false -> true transition.
	MarkRead(ctx context.Context, messageID, receiverID string) (bool, error)
}
