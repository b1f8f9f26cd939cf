package repository

import (
	"context"

	"campuscart/internal/domain/entity"
)

type AddressRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*entity.Address, error)
	GetByID(ctx context.Context, userID, addressID string) (*entity.Address, error)
	Create(ctx context.Context, userID string, address *entity.Address) error
	Delete(ctx context.Context, userID, addressID string) error
	// SetDefaultFlag merges the isDefault flag onto a single address
	// document. Default promotion fans this out over all of a user's
	// addresses; there is no cross-document transaction.
	SetDefaultFlag(ctx context.Context, userID, addressID string, isDefault bool) error
}
