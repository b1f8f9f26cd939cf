package repository

import (
	"context"

	"campuscart/internal/domain/entity"
)

type OrderRepository interface {
	// Place atomically creates the order document and deletes the owning
	// user's cart. The order id doubles as an idempotency key: placing the
	// same id twice fails with a conflict instead of duplicating the order.
	Place(ctx context.Context, order *entity.Order) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
}
