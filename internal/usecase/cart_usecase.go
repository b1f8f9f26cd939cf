package usecase

import (
	"context"
	"time"

	"campuscart/internal/domain/entity"
	"campuscart/internal/domain/repository"
	"campuscart/pkg/errors"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CartView is a cart plus its derived subtotal.
type CartView struct {
	Items    []entity.CartItem `json:"items"`
	Subtotal float64           `json:"subtotal"`
}

func view(cart *entity.Cart) *CartView {
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}
	return &CartView{
		Items:    items,
		Subtotal: cart.Subtotal(),
	}
}

func (uc *CartUseCase) Get(ctx context.Context, userID string) (*CartView, error) {
	cart, err := uc.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return view(cart), nil
}

// AddItem appends a line for the product. Lines for the same product are
// intentionally not merged; each add keeps its own quantity.
func (uc *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (*CartView, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := uc.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Items = append(cart.Items, entity.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Image:     product.ImageURI,
		AddedAt:   time.Now(),
	})

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return view(cart), nil
}

// ChangeQuantity adjusts the line at index by delta, clamping the result to
// a minimum of 1. The index is only valid against the last-loaded view;
// concurrent edits from another session are last-writer-wins.
func (uc *CartUseCase) ChangeQuantity(ctx context.Context, userID string, index, delta int) (*CartView, error) {
	cart, err := uc.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(cart.Items) {
		return nil, errors.BadRequest("Cart item index out of range", nil)
	}

	qty := cart.Items[index].Quantity
	if qty < 1 {
		qty = 1
	}
	qty += delta
	if qty < 1 {
		qty = 1
	}
	cart.Items[index].Quantity = qty

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return view(cart), nil
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, userID string, index int) (*CartView, error) {
	cart, err := uc.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(cart.Items) {
		return nil, errors.BadRequest("Cart item index out of range", nil)
	}

	cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return view(cart), nil
}

// Clear deletes the cart document entirely rather than writing an empty
// item list.
func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	cart, err := uc.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	if cart.IsEmpty() {
		return nil
	}
	return uc.cartRepo.Delete(ctx, userID)
}
