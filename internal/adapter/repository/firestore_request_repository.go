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

type firestoreRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreRequestRepository(client *firestore.Client) repository.RequestRepository {
	return &firestoreRequestRepository{
		client: client,
	}
}

func (r *firestoreRequestRepository) Create(ctx context.Context, request *entity.ServiceRequest) error {
	if request.ID == "" {
		doc := r.client.Collection("requests").NewDoc()
		request.ID = doc.ID
	}

	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	_, err := r.client.Collection("requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create request", err)
	}

	return nil
}

func (r *firestoreRequestRepository) GetByID(ctx context.Context, id string) (*entity.ServiceRequest, error) {
	doc, err := r.client.Collection("requests").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Request", err)
		}
		return nil, errors.Internal("Failed to get request", err)
	}

	var request entity.ServiceRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse request data", err)
	}

	return &request, nil
}

func (r *firestoreRequestRepository) ListByParty(ctx context.Context, field, actorID string, filter repository.RequestFilter) ([]*entity.ServiceRequest, error) {
	query := r.client.Collection("requests").Where(field, "==", actorID)

	if filter.Status != "" {
		query = query.Where("status", "==", string(filter.Status))
	}
	if filter.ListingID != "" {
		query = query.Where("listingId", "==", filter.ListingID)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var requests []*entity.ServiceRequest

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate requests", err)
		}

		var request entity.ServiceRequest
		if err := doc.DataTo(&request); err != nil {
			return nil, errors.Internal("Failed to parse request data", err)
		}
		requests = append(requests, &request)
	}

	return requests, nil
}

// Mutate re-reads the request inside a Firestore transaction so a concurrent
// writer cannot slip between the state check and the write.
func (r *firestoreRequestRepository) Mutate(ctx context.Context, id string, mutate func(*entity.ServiceRequest) error) (*entity.ServiceRequest, error) {
	docRef := r.client.Collection("requests").Doc(id)
	var updated entity.ServiceRequest

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Request", err)
			}
			return errors.Internal("Failed to get request", err)
		}

		var request entity.ServiceRequest
		if err := doc.DataTo(&request); err != nil {
			return errors.Internal("Failed to parse request data", err)
		}

		if err := mutate(&request); err != nil {
			return err
		}

		request.UpdatedAt = time.Now()
		updated = request

		return tx.Set(docRef, &request)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
