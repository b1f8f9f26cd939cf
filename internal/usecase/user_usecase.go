package usecase

import (
	"context"
	"time"

	"campuscart/internal/domain/entity"
	"campuscart/internal/domain/repository"
	"campuscart/pkg/errors"
	"campuscart/pkg/validation"
)

// Payment methods a user may select. Only the label is stored.
var PaymentMethods = []string{"Credit Card", "PayPal", "Cash on Delivery"}

type UserUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Phone     string
	Bio       string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		firstName := validation.SanitizeText(input.FirstName)
		if !validation.IsValidName(firstName) {
			return nil, errors.Validation("Please enter a valid first name")
		}
		user.FirstName = firstName
	}
	if input.LastName != "" {
		lastName := validation.SanitizeText(input.LastName)
		if !validation.IsValidName(lastName) {
			return nil, errors.Validation("Please enter a valid last name")
		}
		user.LastName = lastName
	}
	if input.Phone != "" {
		if !validation.IsValidPhone(input.Phone) {
			return nil, errors.Validation("Please enter a valid phone number")
		}
		user.Phone = validation.SanitizeText(input.Phone)
	}
	if input.Bio != "" {
		user.Bio = validation.SanitizeText(input.Bio)
	}

	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !validation.IsStrongPassword(newPassword) {
		return errors.Validation("Password must be 8-64 characters with at least one letter and one digit")
	}

	if _, _, err := uc.firebaseAuth.SignInWithEmailPassword(user.Email, currentPassword); err != nil {
		return errors.Unauthorized("Current password is incorrect", err)
	}

	if err := uc.firebaseAuth.UpdateUserPassword(ctx, userID, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}

	return nil
}

type SelectPaymentMethodInput struct {
	Method     string
	CardNumber string
	Expiry     string
}

// SelectPaymentMethod stores the chosen method label on the user document.
// Credit Card selections must present a Luhn-valid card number and an
// unexpired MM/YY expiry; the card details themselves are validated and
// discarded, never persisted.
func (uc *UserUseCase) SelectPaymentMethod(ctx context.Context, userID string, input SelectPaymentMethodInput) error {
	valid := false
	for _, m := range PaymentMethods {
		if m == input.Method {
			valid = true
			break
		}
	}
	if !valid {
		return errors.Validation("Please select a payment method")
	}

	if input.Method == "Credit Card" {
		if !validation.IsValidCardNumber(input.CardNumber) {
			return errors.Validation("Please enter a valid card number")
		}
		if !validation.IsValidExpiry(input.Expiry) {
			return errors.Validation("Please enter a valid expiry (MM/YY)")
		}
	}

	return uc.userRepo.SetPaymentMethod(ctx, userID, input.Method)
}
