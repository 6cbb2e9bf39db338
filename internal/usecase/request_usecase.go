package usecase

import (
	"context"
	"time"

	"remontkz/internal/domain/entity"
	"remontkz/internal/domain/repository"
	"remontkz/pkg/errors"
)

// RequestUseCase governs creation and status transitions of service requests
// and enforces per-party visibility.
type RequestUseCase struct {
	requestRepo repository.RequestRepository
	listingRepo repository.ListingRepository
}

func NewRequestUseCase(
	requestRepo repository.RequestRepository,
	listingRepo repository.ListingRepository,
) *RequestUseCase {
	return &RequestUseCase{
		requestRepo: requestRepo,
		listingRepo: listingRepo,
	}
}

type CreateRequestInput struct {
	ListingID string
	Message   string
}

// CreateRequest persists a new request with status "new". The company side is
// copied from the listing's owner at creation time and never changes after,
// even if the listing is later reassigned or deactivated.
func (uc *RequestUseCase) CreateRequest(ctx context.Context, clientID string, input CreateRequestInput) (*entity.ServiceRequest, error) {
	if input.Message == "" {
		return nil, errors.Validation("Message is required", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	if !listing.Active {
		return nil, errors.InvalidState("Listing is not active", nil)
	}

	request := &entity.ServiceRequest{
		ClientID:  clientID,
		CompanyID: listing.CompanyID,
		ListingID: listing.ID,
		Message:   input.Message,
		Status:    entity.StatusNew,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// Transition moves a request along the status machine. Only the owning
// company may transition; the machine check runs against the value re-read
// inside the store transaction, so a concurrent writer cannot invalidate it.
func (uc *RequestUseCase) Transition(ctx context.Context, companyID, requestID string, target entity.RequestStatus) (*entity.ServiceRequest, error) {
	if !entity.ValidRequestStatus(target) {
		return nil, errors.Validation("Invalid target status", nil)
	}

	return uc.requestRepo.Mutate(ctx, requestID, func(request *entity.ServiceRequest) error {
		if request.CompanyID != companyID {
			return errors.Forbidden("Only the owning company can update this request", nil)
		}

		if !entity.CanTransition(request.Status, target) {
			return errors.InvalidState("Cannot transition request from "+string(request.Status)+" to "+string(target), nil)
		}

		request.Status = target
		return nil
	})
}

// GetVisible returns the request if the actor is one of its two parties.
func (uc *RequestUseCase) GetVisible(ctx context.Context, actorID, requestID string) (*entity.ServiceRequest, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !request.IsParty(actorID) {
		return nil, errors.Forbidden("You don't have permission to view this request", nil)
	}

	return request, nil
}

// ListVisible returns the actor's requests on their side of the relation,
// newest-created first. Each call recomputes from current state; no cursor is
// retained between calls.
func (uc *RequestUseCase) ListVisible(ctx context.Context, actor entity.Actor, filter repository.RequestFilter) ([]*entity.ServiceRequest, error) {
	if filter.Status != "" && !entity.ValidRequestStatus(filter.Status) {
		return nil, errors.Validation("Invalid status filter", nil)
	}

	field := "clientId"
	if actor.IsCompany() {
		field = "companyId"
	}

	return uc.requestRepo.ListByParty(ctx, field, actor.ID, filter)
}
