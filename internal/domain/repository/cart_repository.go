package repository

import (
	"context"

	"campuscart/internal/domain/entity"
)

// CartRepository keys cart documents by the owning user id, so "at most one
// live cart per user" holds at the store level.
type CartRepository interface {
	// GetByUser returns an empty cart when no document exists. Any other
	// store failure is returned as-is; the caller must not treat it as an
	// empty cart.
	GetByUser(ctx context.Context, userID string) (*entity.Cart, error)
	// Save persists the full item list plus an updatedAt timestamp,
	// creating the document on first write.
	Save(ctx context.Context, cart *entity.Cart) error
	// Delete removes the cart document entirely.
	Delete(ctx context.Context, userID string) error
}
