package repository

import (
	"context"

	"remontkz/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Listing, int64, error)
	ListByCompanyID(ctx context.Context, companyID string, limit, offset int) ([]*entity.Listing, int64, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Deactivate(ctx context.Context, id string) error
}
