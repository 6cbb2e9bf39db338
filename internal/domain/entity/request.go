package entity

import "time"

type RequestStatus string

const (
	StatusNew        RequestStatus = "new"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
)

func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// requestTransitions is the company-driven status machine. "new" is the sole
// initial state, "completed" is terminal, and no transition moves backward.
var requestTransitions = map[RequestStatus]map[RequestStatus]bool{
	StatusNew: {
		StatusInProgress: true,
		StatusCompleted:  true,
	},
	StatusInProgress: {
		StatusCompleted: true,
	},
	StatusCompleted: {},
}

// CanTransition reports whether moving from current to target is allowed.
// A no-op to the same status is accepted idempotently.
func CanTransition(current, target RequestStatus) bool {
	if current == target {
		return true
	}
	return requestTransitions[current][target]
}

// ServiceRequest is a client's request against a company listing. ClientID,
// CompanyID and ListingID are immutable after creation; only Status and
// UpdatedAt mutate.
type ServiceRequest struct {
	ID        string        `json:"id" firestore:"id"`
	ClientID  string        `json:"client_id" firestore:"clientId"`
	CompanyID string        `json:"company_id" firestore:"companyId"`
	ListingID string        `json:"listing_id" firestore:"listingId"`
	Message   string        `json:"message" firestore:"message"`
	Status    RequestStatus `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// IsParty reports whether the actor is one of the two parties to the request.
func (r *ServiceRequest) IsParty(actorID string) bool {
	return r.ClientID == actorID || r.CompanyID == actorID
}
