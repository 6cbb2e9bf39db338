package usecase

import (
	"context"

	"github.com/google/uuid"

	"remontkz/internal/domain/entity"
	"remontkz/internal/domain/repository"
	"remontkz/pkg/errors"
	"remontkz/pkg/utils"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
}

func NewListingUseCase(listingRepo repository.ListingRepository) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
	}
}

type ListingInput struct {
	Name             string
	Category         string
	Description      string
	PriceFrom        float64
	PriceTo          float64
	City             string
	Licensed         bool
	AvailabilityDays int
	Urgency          string
	Tags             []string
	CustomAttributes map[string]string
	Active           *bool
}

type ListingImageInput struct {
	URL          string
	DisplayOrder int
}

func (uc *ListingUseCase) CreateListing(ctx context.Context, companyID string, input ListingInput, images []ListingImageInput) (*entity.Listing, error) {
	if !entity.ValidCategory(input.Category) {
		return nil, errors.Validation("Invalid category", nil)
	}

	if input.PriceFrom > input.PriceTo {
		return nil, errors.Validation("priceFrom must be less than or equal to priceTo", nil)
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	listing := &entity.Listing{
		CompanyID:        companyID,
		Name:             input.Name,
		Category:         input.Category,
		Description:      input.Description,
		PriceFrom:        input.PriceFrom,
		PriceTo:          input.PriceTo,
		City:             input.City,
		Licensed:         input.Licensed,
		AvailabilityDays: input.AvailabilityDays,
		Urgency:          input.Urgency,
		Tags:             input.Tags,
		CustomAttributes: input.CustomAttributes,
		Images:           convertImages(images),
		Active:           active,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) UpdateListing(ctx context.Context, id, companyID string, input ListingInput, images []ListingImageInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.CompanyID != companyID {
		return nil, errors.Forbidden("You don't have permission to update this listing", nil)
	}

	if !entity.ValidCategory(input.Category) {
		return nil, errors.Validation("Invalid category", nil)
	}

	if input.PriceFrom > input.PriceTo {
		return nil, errors.Validation("priceFrom must be less than or equal to priceTo", nil)
	}

	listing.Name = input.Name
	listing.Category = input.Category
	listing.Description = input.Description
	listing.PriceFrom = input.PriceFrom
	listing.PriceTo = input.PriceTo
	listing.City = input.City
	listing.Licensed = input.Licensed
	listing.AvailabilityDays = input.AvailabilityDays
	listing.Urgency = input.Urgency
	listing.Tags = input.Tags
	listing.CustomAttributes = input.CustomAttributes

	if input.Active != nil {
		listing.Active = *input.Active
	}

	if len(images) > 0 {
		listing.Images = convertImages(images)
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// DeactivateListing retires a listing from the catalog. Requests already
// created against it stay valid.
func (uc *ListingUseCase) DeactivateListing(ctx context.Context, id, companyID string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if listing.CompanyID != companyID {
		return errors.Forbidden("You don't have permission to deactivate this listing", nil)
	}

	return uc.listingRepo.Deactivate(ctx, id)
}

func (uc *ListingUseCase) GetListingByID(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

func (uc *ListingUseCase) ListListings(ctx context.Context, category, city string, licensed, activeOnly bool, page, limit int) ([]*entity.Listing, int64, error) {
	filter := make(map[string]interface{})

	if category != "" {
		if !entity.ValidCategory(category) {
			return nil, 0, errors.Validation("Invalid category", nil)
		}
		filter["category"] = category
	}
	if city != "" {
		filter["city"] = city
	}
	if licensed {
		filter["licensed"] = true
	}
	if activeOnly {
		filter["active"] = true
	}

	pagination := utils.NewPaginationParams(page, limit)

	return uc.listingRepo.List(ctx, filter, pagination.PageSize, pagination.Offset)
}

func (uc *ListingUseCase) ListByCompanyID(ctx context.Context, companyID string, page, limit int) ([]*entity.Listing, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)

	return uc.listingRepo.ListByCompanyID(ctx, companyID, pagination.PageSize, pagination.Offset)
}

func convertImages(images []ListingImageInput) []entity.ListingImage {
	if len(images) == 0 {
		return nil
	}

	listingImages := make([]entity.ListingImage, len(images))
	for i, img := range images {
		listingImages[i] = entity.ListingImage{
			ID:           uuid.New().String(),
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
		}
	}
	return listingImages
}
