package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"campuscart/internal/domain/entity"
	"campuscart/internal/domain/repository"
	"campuscart/pkg/errors"
	"campuscart/pkg/validation"
)

type AddressUseCase struct {
	addressRepo repository.AddressRepository
}

func NewAddressUseCase(addressRepo repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{
		addressRepo: addressRepo,
	}
}

func (uc *AddressUseCase) List(ctx context.Context, userID string) ([]*entity.Address, error) {
	return uc.addressRepo.ListByUser(ctx, userID)
}

type AddAddressInput struct {
	Line string
	City string
	Zip  string
}

// Add creates an address; the user's first address becomes the default.
func (uc *AddressUseCase) Add(ctx context.Context, userID string, input AddAddressInput) (*entity.Address, error) {
	line := validation.SanitizeText(input.Line)
	city := validation.SanitizeText(input.City)
	zip := validation.SanitizeText(input.Zip)

	if line == "" || city == "" {
		return nil, errors.Validation("Please enter address line and city")
	}
	if !validation.IsValidZip(zip) {
		return nil, errors.Validation("Please enter a valid zip code")
	}

	existing, err := uc.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	hasDefault := false
	for _, a := range existing {
		if a.IsDefault {
			hasDefault = true
			break
		}
	}

	address := &entity.Address{
		Line:      line,
		City:      city,
		Zip:       zip,
		IsDefault: !hasDefault,
		CreatedAt: time.Now(),
	}

	if err := uc.addressRepo.Create(ctx, userID, address); err != nil {
		return nil, err
	}

	return address, nil
}

func (uc *AddressUseCase) Remove(ctx context.Context, userID, addressID string) error {
	return uc.addressRepo.Delete(ctx, userID, addressID)
}

// SetDefault promotes one address and clears the flag on every sibling.
// The writes fan out in parallel with no rollback: if one fails the others
// remain committed and the exactly-one-default invariant can be transiently
// violated until the user retries. The first error is reported after all
// writes have finished.
func (uc *AddressUseCase) SetDefault(ctx context.Context, userID, addressID string) error {
	addresses, err := uc.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	found := false
	for _, a := range addresses {
		if a.ID == addressID {
			found = true
			break
		}
	}
	if !found {
		return errors.NotFound("Address", nil)
	}

	var g errgroup.Group
	for _, a := range addresses {
		a := a
		g.Go(func() error {
			return uc.addressRepo.SetDefaultFlag(ctx, userID, a.ID, a.ID == addressID)
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Internal("Failed to set default address", err)
	}

	return nil
}
