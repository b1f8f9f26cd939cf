package entity

import (
	"time"
)

// Address lives in the users/{uid}/addresses subcollection. Exactly one
// address per user carries IsDefault once any exist.
type Address struct {
	ID        string    `json:"id" firestore:"id"`
	Line      string    `json:"line" firestore:"line"`
	City      string    `json:"city" firestore:"city"`
	Zip       string    `json:"zip,omitempty" firestore:"zip,omitempty"`
	IsDefault bool      `json:"is_default" firestore:"isDefault"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
