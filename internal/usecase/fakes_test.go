package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"remontkz/internal/domain/entity"
	"remontkz/internal/domain/repository"
	"remontkz/pkg/errors"
)

type fakeListingRepo struct {
	listings map[string]*entity.Listing
}

func newFakeListingRepo(listings ...*entity.Listing) *fakeListingRepo {
	repo := &fakeListingRepo{listings: make(map[string]*entity.Listing)}
	for _, l := range listings {
		repo.listings[l.ID] = l
	}
	return repo
}

func (f *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	f.listings[listing.ID] = listing
	return nil
}

func (f *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	listing, ok := f.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	return listing, nil
}

func (f *fakeListingRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Listing, int64, error) {
	return nil, 0, nil
}

func (f *fakeListingRepo) ListByCompanyID(ctx context.Context, companyID string, limit, offset int) ([]*entity.Listing, int64, error) {
	return nil, 0, nil
}

func (f *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	f.listings[listing.ID] = listing
	return nil
}

func (f *fakeListingRepo) Deactivate(ctx context.Context, id string) error {
	if listing, ok := f.listings[id]; ok {
		listing.Active = false
	}
	return nil
}

type fakeRequestRepo struct {
	mu       sync.Mutex
	seq      int
	requests map[string]*entity.ServiceRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*entity.ServiceRequest)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, request *entity.ServiceRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	if request.ID == "" {
		request.ID = fmt.Sprintf("req-%d", f.seq)
	}

	stored := *request
	f.requests[request.ID] = &stored
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (*entity.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}

	copied := *request
	return &copied, nil
}

func (f *fakeRequestRepo) ListByParty(ctx context.Context, field, actorID string, filter repository.RequestFilter) ([]*entity.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.ServiceRequest
	for _, r := range f.requests {
		party := r.ClientID
		if field == "companyId" {
			party = r.CompanyID
		}
		if party != actorID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.ListingID != "" && r.ListingID != filter.ListingID {
			continue
		}

		copied := *r
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (f *fakeRequestRepo) Mutate(ctx context.Context, id string, mutate func(*entity.ServiceRequest) error) (*entity.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}

	copied := *request
	if err := mutate(&copied); err != nil {
		return nil, err
	}

	copied.UpdatedAt = time.Now()
	f.requests[id] = &copied

	result := copied
	return &result, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	seq      int
	now      time.Time
	messages []*entity.Message
	flips    int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	f.now = f.now.Add(time.Second)

	message.ID = fmt.Sprintf("msg-%d", f.seq)
	message.CreatedAt = f.now

	stored := *message
	f.messages = append(f.messages, &stored)
	return nil
}

func (f *fakeMessageRepo) ListByActor(ctx context.Context, actorID string, filter repository.MessageFilter) ([]*entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Message
	for _, m := range f.messages {
		if m.SenderID != actorID && m.ReceiverID != actorID {
			continue
		}
		if filter.RequestID != "" && m.RequestID != filter.RequestID {
			continue
		}
		if filter.CounterpartyID != "" && m.Counterparty(actorID) != filter.CounterpartyID {
			continue
		}

		copied := *m
		out = append(out, &copied)
	}

	return out, nil
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, messageID, receiverID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, m := range f.messages {
		if m.ID != messageID {
			continue
		}
		if m.ReceiverID != receiverID || m.Read {
			return false, nil
		}
		m.Read = true
		f.flips++
		return true, nil
	}

	return false, errors.NotFound("Message", nil)
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(ids ...string) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, id := range ids {
		repo.users[id] = &entity.User{ID: id, Role: entity.RoleClient}
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}
