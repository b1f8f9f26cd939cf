package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"campuscart/internal/domain/entity"
	"campuscart/internal/domain/repository"
	"campuscart/pkg/errors"
)

// Cart documents are keyed by the owning user id, so the one-cart-per-user
// invariant holds without defensive querying.
type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

func (r *firestoreCartRepository) GetByUser(ctx context.Context, userID string) (*entity.Cart, error) {
	doc, err := r.client.Collection("carts").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &entity.Cart{UserID: userID}, nil
		}
		// Not silently empty: the caller must treat the cart as unusable.
		return nil, errors.StoreUnavailable("cart", err)
	}

	var cart entity.Cart
	if err := doc.DataTo(&cart); err != nil {
		return nil, errors.Internal("Failed to parse cart data", err)
	}
	cart.UserID = userID

	return &cart, nil
}

func (r *firestoreCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()

	_, err := r.client.Collection("carts").Doc(cart.UserID).Set(ctx, cart)
	if err != nil {
		return errors.Internal("Failed to update cart", err)
	}
	return nil
}

func (r *firestoreCartRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.client.Collection("carts").Doc(userID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to clear cart", err)
	}
	return nil
}
