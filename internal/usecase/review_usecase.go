package usecase

import (
	"context"

	"remontkz/internal/domain/entity"
	"remontkz/internal/domain/repository"
	"remontkz/pkg/errors"
	"remontkz/pkg/utils"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, listingRepo repository.ListingRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
	}
}

type CreateReviewInput struct {
	Rating  int
	Content string
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, clientID, listingID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Validation("Rating must be between 1 and 5", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if existing, err := uc.reviewRepo.GetByClientAndListing(ctx, clientID, listingID); err == nil && existing != nil {
		return nil, errors.Conflict("You have already reviewed this listing")
	}

	review := &entity.Review{
		ListingID: listing.ID,
		CompanyID: listing.CompanyID,
		ClientID:  clientID,
		Rating:    input.Rating,
		Content:   input.Content,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) ListByListing(ctx context.Context, listingID string, page, limit int) ([]*entity.Review, int64, error) {
	if _, err := uc.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, 0, err
	}

	pagination := utils.NewPaginationParams(page, limit)

	return uc.reviewRepo.ListByListingID(ctx, listingID, pagination.PageSize, pagination.Offset)
}
