package entity

import (
	"time"
)

const (
	OrderStatusPlaced    = "Placed"
	OrderStatusDelivered = "Delivered"
	// Anything outside the recognized set is shown as Unknown.
	OrderStatusUnknown = "Unknown"
)

// ShippingInfo is the contact snapshot taken at checkout time.
type ShippingInfo struct {
	FirstName string `json:"first_name" firestore:"firstName"`
	LastName  string `json:"last_name" firestore:"lastName"`
	Email     string `json:"email" firestore:"email"`
	Phone     string `json:"phone" firestore:"phone"`
}

// Order is an immutable snapshot of a completed purchase. Total holds the
// subtotal only; tax is applied at display time. Status is advanced by an
// external fulfillment process, never by this service.
type Order struct {
	ID            string       `json:"id" firestore:"id"`
	UserID        string       `json:"user_id" firestore:"userId"`
	Items         []CartItem   `json:"items" firestore:"items"`
	Total         float64      `json:"total" firestore:"total"`
	Status        string       `json:"status" firestore:"status"`
	Address       *Address     `json:"address" firestore:"address"`
	ShippingInfo  ShippingInfo `json:"shipping_info" firestore:"shippingInfo"`
	PaymentMethod string       `json:"payment_method" firestore:"paymentMethod"`
	CreatedAt     time.Time    `json:"created_at" firestore:"createdAt"`
}

// DisplayStatus buckets unrecognized lifecycle values.
func (o *Order) DisplayStatus() string {
	switch o.Status {
	case OrderStatusPlaced, OrderStatusDelivered:
		return o.Status
	default:
		return OrderStatusUnknown
	}
}
