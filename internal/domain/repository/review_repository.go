package repository

import (
	"context"

	"remontkz/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByClientAndListing(ctx context.Context, clientID, listingID string) (*entity.Review, error)
	ListByListingID(ctx context.Context, listingID string, limit, offset int) ([]*entity.Review, int64, error)
}
