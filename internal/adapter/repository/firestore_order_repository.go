package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"campuscart/internal/domain/entity"
	"campuscart/internal/domain/repository"
	"campuscart/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

// Place writes the order and deletes the user's cart in one Firestore
// transaction, so a failed cart cleanup can never leave a placed order
// behind. The order id is the checkout session's idempotency key;
// resubmitting the same session is rejected as a conflict.
func (r *firestoreOrderRepository) Place(ctx context.Context, order *entity.Order) error {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	orderRef := r.client.Collection("orders").Doc(order.ID)
	cartRef := r.client.Collection("carts").Doc(order.UserID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(orderRef)
		if err == nil {
			return errors.Conflict("Order already placed for this checkout session")
		}
		if status.Code(err) != codes.NotFound {
			return err
		}

		if err := tx.Create(orderRef, order); err != nil {
			return err
		}
		return tx.Delete(cartRef)
	})
	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return err
		}
		return errors.Internal("Failed to place order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	// Query without OrderBy to avoid a composite index; newest-first
	// ordering is applied in memory.
	iter := r.client.Collection("orders").Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	var orders []*entity.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.StoreUnavailable("order", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		order.ID = doc.Ref.ID
		orders = append(orders, &order)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}
