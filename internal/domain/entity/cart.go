package entity

import (
	"time"
)

// CartItem is always embedded in a cart's item list, never stored on its
// own. Two adds of the same product produce two entries; lines are not
// merged.
type CartItem struct {
	ProductID string    `json:"product_id" firestore:"productId"`
	Name      string    `json:"name" firestore:"name"`
	Price     float64   `json:"price" firestore:"price"`
	Quantity  int       `json:"quantity" firestore:"quantity"`
	Image     string    `json:"image,omitempty" firestore:"image,omitempty"`
	AddedAt   time.Time `json:"added_at" firestore:"addedAt"`
}

// Cart is the single pending-items document for a user. The document id is
// the owning user id, so at most one live cart can exist per user.
type Cart struct {
	UserID    string     `json:"user_id" firestore:"userId"`
	Items     []CartItem `json:"items" firestore:"items"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
}

// Subtotal is computed fresh on every read and never persisted.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		sum += item.Price * float64(qty)
	}
	return sum
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}
