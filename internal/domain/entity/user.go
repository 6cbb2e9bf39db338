package entity

import "time"

type User struct {
	ID    string `json:"id" firestore:"id"`
	Email string `json:"email" firestore:"email"`
	Name  string `json:"name" firestore:"name"`
	Phone string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role  Role   `json:"role" firestore:"role"`
	City  string `json:"city,omitempty" firestore:"city,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
