package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"remontkz/internal/domain/entity"
	"remontkz/internal/domain/repository"
	"remontkz/pkg/errors"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		doc := r.client.Collection("listings").NewDoc()
		listing.ID = doc.ID
	}

	now := time.Now()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	_, err := r.client.Collection("listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection("listings").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}

	return &listing, nil
}

func (r *firestoreListingRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Listing, int64, error) {
	query := r.client.Collection("listings").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count listings", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var listings []*entity.Listing

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate listings", err)
		}

		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, 0, errors.Internal("Failed to parse listing data", err)
		}
		listings = append(listings, &listing)
	}

	return listings, total, nil
}

func (r *firestoreListingRepository) ListByCompanyID(ctx context.Context, companyID string, limit, offset int) ([]*entity.Listing, int64, error) {
	return r.List(ctx, map[string]interface{}{"companyId": companyID}, limit, offset)
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listing.UpdatedAt = time.Now()

	_, err := r.client.Collection("listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) Deactivate(ctx context.Context, id string) error {
	_, err := r.client.Collection("listings").Doc(id).Update(ctx, []firestore.Update{
		{Path: "active", Value: false},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Listing", err)
		}
		return errors.Internal("Failed to deactivate listing", err)
	}

	return nil
}
