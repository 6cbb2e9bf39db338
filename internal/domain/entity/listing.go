package entity

import "time"

const (
	CategoryAutomobiles = "automobiles"
	CategoryRealEstate  = "real-estate"
	CategoryOther       = "other"
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryAutomobiles, CategoryRealEstate, CategoryOther:
		return true
	}
	return false
}

type ListingImage struct {
	ID           string `json:"id" firestore:"id"`
	URL          string `json:"url" firestore:"url"`
	DisplayOrder int    `json:"display_order" firestore:"displayOrder"`
}

// Listing is a company-owned service offering. A request may only reference an
// active listing at creation time; deactivating a listing later does not
// invalidate requests already created against it.
type Listing struct {
	ID          string `json:"id" firestore:"id"`
	CompanyID   string `json:"company_id" firestore:"companyId"`
	Name        string `json:"name" firestore:"name"`
	Category    string `json:"category" firestore:"category"`
	Description string `json:"description" firestore:"description"`

	PriceFrom float64 `json:"price_from" firestore:"priceFrom"`
	PriceTo   float64 `json:"price_to" firestore:"priceTo"`

	City             string            `json:"city,omitempty" firestore:"city,omitempty"`
	Licensed         bool              `json:"licensed" firestore:"licensed"`
	AvailabilityDays int               `json:"availability_days,omitempty" firestore:"availabilityDays,omitempty"`
	Urgency          string            `json:"urgency,omitempty" firestore:"urgency,omitempty"`
	Tags             []string          `json:"tags,omitempty" firestore:"tags,omitempty"`
	CustomAttributes map[string]string `json:"custom_attributes,omitempty" firestore:"customAttributes,omitempty"`
	Images           []ListingImage    `json:"images,omitempty" firestore:"images,omitempty"`

	Active bool `json:"active" firestore:"active"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
