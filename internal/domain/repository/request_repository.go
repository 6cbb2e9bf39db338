package repository

import (
	"context"

	"remontkz/internal/domain/entity"
)

// RequestFilter narrows ListByParty results. Zero values mean "no filter".
type RequestFilter struct {
	Status    entity.RequestStatus
	ListingID string
}

type RequestRepository interface {
	Create(ctx context.Context, request *entity.ServiceRequest) error
	GetByID(ctx context.Context, id string) (*entity.ServiceRequest, error)

	// ListByParty returns requests where the actor holds the given role-side
	// relation ("clientId" or "companyId" field), newest-created first.
	ListByParty(ctx context.Context, field, actorID string, filter RequestFilter) ([]*entity.ServiceRequest, error)

	// Mutate runs the mutation as a read-modify-write transaction: the request
	// is re-read inside the transaction, mutate is applied to the fresh value,
	// and the write only commits if nothing interleaved. mutate returning an
	// error aborts without writing.
	Mutate(ctx context.Context, id string, mutate func(*entity.ServiceRequest) error) (*entity.ServiceRequest, error)
}
