package entity

import "time"

// Review is a client's rating of a company listing.
type Review struct {
	ID        string `json:"id" firestore:"id"`
	ListingID string `json:"listing_id" firestore:"listingId"`
	CompanyID string `json:"company_id" firestore:"companyId"`
	ClientID  string `json:"client_id" firestore:"clientId"`
	Rating    int    `json:"rating" firestore:"rating"` // 1-5
	Content   string `json:"content,omitempty" firestore:"content,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
