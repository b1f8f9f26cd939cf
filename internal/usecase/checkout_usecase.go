package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"campuscart/internal/domain/entity"
	"campuscart/internal/domain/repository"
	"campuscart/pkg/errors"
	"campuscart/pkg/logger"
	"campuscart/pkg/validation"
)

// TaxRate is applied at checkout display time and again by the order
// history projection. The persisted order total excludes it.
const TaxRate = 0.13

type CheckoutState string

const (
	CheckoutLoading    CheckoutState = "loading"
	CheckoutReady      CheckoutState = "ready"
	CheckoutSubmitting CheckoutState = "submitting"
	CheckoutCompleted  CheckoutState = "completed"
)

// CheckoutSession holds the working state of one checkout: the loaded cart
// snapshot, address book, and editable shipping contact prefilled from the
// profile. OrderID is generated once per session and used as the order
// document id, so a retried submission cannot place a duplicate order.
type CheckoutSession struct {
	State  CheckoutState `json:"state"`
	UserID string        `json:"user_id"`
	OrderID string       `json:"order_id"`

	Addresses []*entity.Address `json:"addresses"`
	Cart      *entity.Cart      `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	SelectedAddressID string `json:"selected_address_id"`
	PaymentMethod     string `json:"payment_method"`
}

// CheckoutSummary is recomputed from the live cart snapshot on every call,
// never stored.
type CheckoutSummary struct {
	Items    []entity.CartItem `json:"items"`
	Subtotal float64           `json:"subtotal"`
	Tax      float64           `json:"tax"`
	Total    float64           `json:"total"`
}

func (s *CheckoutSession) Summary() CheckoutSummary {
	cart := s.Cart
	if cart == nil {
		cart = &entity.Cart{}
	}
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}
	subtotal := cart.Subtotal()
	tax := subtotal * TaxRate
	return CheckoutSummary{
		Items:    items,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

type CheckoutUseCase struct {
	cartRepo    repository.CartRepository
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
	orderRepo   repository.OrderRepository
}

func NewCheckoutUseCase(
	cartRepo repository.CartRepository,
	addressRepo repository.AddressRepository,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		userRepo:    userRepo,
		orderRepo:   orderRepo,
	}
}

// Begin loads addresses, cart and profile concurrently. An individual fetch
// failure is logged and degrades to empty/absent for that piece; the load
// itself never hard-fails.
func (uc *CheckoutUseCase) Begin(ctx context.Context, userID string) (*CheckoutSession, error) {
	session := &CheckoutSession{
		State:   CheckoutLoading,
		UserID:  userID,
		OrderID: uuid.NewString(),
	}

	var g errgroup.Group

	g.Go(func() error {
		addresses, err := uc.addressRepo.ListByUser(ctx, userID)
		if err != nil {
			logger.Warn("Checkout: failed to load addresses for %s: %v", userID, err)
			return nil
		}
		session.Addresses = addresses
		return nil
	})

	g.Go(func() error {
		cart, err := uc.cartRepo.GetByUser(ctx, userID)
		if err != nil {
			logger.Warn("Checkout: failed to load cart for %s: %v", userID, err)
			return nil
		}
		session.Cart = cart
		return nil
	})

	g.Go(func() error {
		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			logger.Warn("Checkout: failed to load profile for %s: %v", userID, err)
			return nil
		}
		session.FirstName = user.FirstName
		session.LastName = user.LastName
		session.Email = user.Email
		session.Phone = user.Phone
		session.PaymentMethod = user.SelectedPaymentMethod
		return nil
	})

	g.Wait()

	if len(session.Addresses) > 0 {
		session.SelectedAddressID = session.Addresses[0].ID
	}

	session.State = CheckoutReady
	return session, nil
}

// SubmitInput overrides the session's working fields; empty fields keep the
// prefilled values.
type SubmitInput struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	AddressID     string
	PaymentMethod string
}

func (s *CheckoutSession) apply(input SubmitInput) {
	if input.FirstName != "" {
		s.FirstName = input.FirstName
	}
	if input.LastName != "" {
		s.LastName = input.LastName
	}
	if input.Email != "" {
		s.Email = input.Email
	}
	if input.Phone != "" {
		s.Phone = input.Phone
	}
	if input.AddressID != "" {
		s.SelectedAddressID = input.AddressID
	}
	if input.PaymentMethod != "" {
		s.PaymentMethod = input.PaymentMethod
	}
}

// validate checks the submission preconditions in order and returns the
// first failure.
func (s *CheckoutSession) validate() error {
	if validation.SanitizeText(s.FirstName) == "" {
		return errors.Validation("Please enter your first name")
	}
	if validation.SanitizeText(s.LastName) == "" {
		return errors.Validation("Please enter your last name")
	}
	if !validation.IsValidEmail(s.Email) {
		return errors.Validation("Please enter a valid email address")
	}
	if !validation.IsValidPhone(s.Phone) {
		return errors.Validation("Please enter a valid phone number")
	}
	if s.SelectedAddressID == "" {
		return errors.Validation("Please select a shipping address")
	}
	if s.PaymentMethod == "" {
		return errors.Validation("Please select a payment method")
	}
	if s.Cart.IsEmpty() {
		return errors.Validation("Your cart is empty")
	}
	return nil
}

// Submit drives Ready -> Submitting -> Completed. The selected address is
// re-read from the store so the order snapshots the authoritative copy,
// then the order write and cart deletion happen atomically. Any failure
// returns the session to Ready with all working fields intact.
func (uc *CheckoutUseCase) Submit(ctx context.Context, session *CheckoutSession, input SubmitInput) (*entity.Order, error) {
	if session.State == CheckoutCompleted {
		return nil, errors.Conflict("Checkout already completed")
	}

	session.apply(input)
	if err := session.validate(); err != nil {
		return nil, err
	}

	session.State = CheckoutSubmitting

	address, err := uc.addressRepo.GetByID(ctx, session.UserID, session.SelectedAddressID)
	if err != nil {
		session.State = CheckoutReady
		return nil, err
	}

	order := &entity.Order{
		ID:     session.OrderID,
		UserID: session.UserID,
		Items:  session.Cart.Items,
		// Tax is shown at checkout time only; the stored total is the
		// subtotal.
		Total:   session.Cart.Subtotal(),
		Status:  entity.OrderStatusPlaced,
		Address: address,
		ShippingInfo: entity.ShippingInfo{
			FirstName: validation.SanitizeText(session.FirstName),
			LastName:  validation.SanitizeText(session.LastName),
			Email:     validation.NormalizeEmail(session.Email),
			Phone:     validation.SanitizeText(session.Phone),
		},
		PaymentMethod: session.PaymentMethod,
		CreatedAt:     time.Now(),
	}

	if err := uc.orderRepo.Place(ctx, order); err != nil {
		session.State = CheckoutReady
		return nil, err
	}

	session.State = CheckoutCompleted
	return order, nil
}
