package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"remontkz/internal/domain/entity"
	"remontkz/internal/domain/repository"
	"remontkz/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		doc := r.client.Collection("reviews").NewDoc()
		review.ID = doc.ID
	}

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) GetByClientAndListing(ctx context.Context, clientID, listingID string) (*entity.Review, error) {
	query := r.client.Collection("reviews").
		Where("clientId", "==", clientID).
		Where("listingId", "==", listingID).
		Limit(1)

	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Review", nil)
		}
		return nil, errors.Internal("Failed to query review", err)
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}

	return &review, nil
}

func (r *firestoreReviewRepository) ListByListingID(ctx context.Context, listingID string, limit, offset int) ([]*entity.Review, int64, error) {
	query := r.client.Collection("reviews").
		Where("listingId", "==", listingID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count reviews", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var reviews []*entity.Review

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate reviews", err)
		}

		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, 0, errors.Internal("Failed to parse review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, total, nil
}
