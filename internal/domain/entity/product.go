package entity

import (
	"time"
)

// Categories a listing may be filed under.
var ProductCategories = []string{"Apparel", "Electronics", "Footwear", "Books", "Furniture", "Other"}

type Product struct {
	ID          string  `json:"id" firestore:"id"`
	Name        string  `json:"name" firestore:"name"`
	Description string  `json:"description" firestore:"description"`
	Category    string  `json:"category" firestore:"category"`
	Price       float64 `json:"price" firestore:"price"`
	IsDonation  bool    `json:"is_donation" firestore:"isDonation"`
	ImageURI    string  `json:"image_uri,omitempty" firestore:"imageUri,omitempty"`

	// Empty for seeded catalog items.
	DonorID    string `json:"donor_id,omitempty" firestore:"donorId,omitempty"`
	DonorEmail string `json:"donor_email,omitempty" firestore:"donorEmail,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func IsKnownCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}
