package usecase

import (
	"context"
	"time"

	"campuscart/internal/domain/entity"
	"campuscart/internal/domain/repository"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
	}
}

// OrderView is the read-only history projection: the stored total with tax
// re-applied for display, and unrecognized statuses bucketed as Unknown.
type OrderView struct {
	ID            string            `json:"id"`
	Items         []entity.CartItem `json:"items"`
	Total         float64           `json:"total"`
	DisplayTotal  float64           `json:"display_total"`
	Status        string            `json:"status"`
	PaymentMethod string            `json:"payment_method"`
	Address       *entity.Address   `json:"address,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// History lists the user's orders newest first.
func (uc *OrderUseCase) History(ctx context.Context, userID string) ([]OrderView, error) {
	orders, err := uc.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, OrderView{
			ID:    order.ID,
			Items: order.Items,
			Total: order.Total,
			// The stored total excludes tax; display re-applies the
			// checkout rate.
			DisplayTotal:  order.Total * (1 + TaxRate),
			Status:        order.DisplayStatus(),
			PaymentMethod: order.PaymentMethod,
			Address:       order.Address,
			CreatedAt:     order.CreatedAt,
		})
	}

	return views, nil
}
