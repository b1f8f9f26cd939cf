package usecase

import (
	"context"
	"time"

	"campuscart/internal/domain/entity"
	"campuscart/internal/domain/repository"
	"campuscart/pkg/errors"
	"campuscart/pkg/validation"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewProductUseCase(productRepo repository.ProductRepository, userRepo repository.UserRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func (uc *ProductUseCase) List(ctx context.Context, category string, limit, offset int) ([]*entity.Product, int64, error) {
	if category != "" && !entity.IsKnownCategory(category) {
		return nil, 0, errors.BadRequest("Unknown category", nil)
	}
	return uc.productRepo.List(ctx, category, limit, offset)
}

func (uc *ProductUseCase) Search(ctx context.Context, query string, limit, offset int) ([]*entity.Product, int64, error) {
	return uc.productRepo.SearchByName(ctx, validation.SanitizeText(query), limit, offset)
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListByDonor(ctx context.Context, donorID string) ([]*entity.Product, error) {
	return uc.productRepo.ListByDonor(ctx, donorID)
}

type ListingInput struct {
	Name        string
	Description string
	Category    string
	Price       string
	IsDonation  bool
	ImageURI    string
}

func (uc *ProductUseCase) validateListing(input ListingInput) (name, description string, price float64, err error) {
	name = validation.SanitizeText(input.Name)
	description = validation.SanitizeText(input.Description)

	if name == "" {
		return "", "", 0, errors.Validation("Please enter an item name")
	}
	if len(name) < 3 || len(name) > 80 {
		return "", "", 0, errors.Validation("Item name must be 3-80 characters")
	}
	if description == "" {
		return "", "", 0, errors.Validation("Please enter a description")
	}
	if len(description) < 10 || len(description) > 1000 {
		return "", "", 0, errors.Validation("Description must be 10-1000 characters")
	}
	if !entity.IsKnownCategory(input.Category) {
		return "", "", 0, errors.Validation("Please select a category")
	}

	// Price and donation are mutually exclusive; a donation forces price 0.
	if !input.IsDonation {
		cleanPrice := validation.SanitizeText(input.Price)
		if cleanPrice == "" {
			return "", "", 0, errors.Validation("Please enter a price or mark as donation")
		}
		if !validation.IsValidPrice(cleanPrice) {
			return "", "", 0, errors.Validation("Enter a valid price (e.g. 10 or 10.99)")
		}
		price = validation.ToPriceNumber(cleanPrice)
	}

	return name, description, price, nil
}

// CreateListing posts a second-hand item on behalf of a donor.
func (uc *ProductUseCase) CreateListing(ctx context.Context, donorID string, input ListingInput) (*entity.Product, error) {
	donor, err := uc.userRepo.GetByID(ctx, donorID)
	if err != nil {
		return nil, err
	}
	if !donor.CanListItems() {
		return nil, errors.Forbidden("Only donors can post items", nil)
	}

	name, description, price, err := uc.validateListing(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		Name:        name,
		Description: description,
		Category:    input.Category,
		Price:       price,
		IsDonation:  input.IsDonation,
		ImageURI:    input.ImageURI,
		DonorID:     donor.ID,
		DonorEmail:  donor.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateListing(ctx context.Context, donorID, productID string, input ListingInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.DonorID != donorID {
		return nil, errors.Forbidden("You can only edit your own listings", nil)
	}

	name, description, price, err := uc.validateListing(input)
	if err != nil {
		return nil, err
	}

	product.Name = name
	product.Description = description
	product.Category = input.Category
	product.Price = price
	product.IsDonation = input.IsDonation
	product.ImageURI = input.ImageURI

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) DeleteListing(ctx context.Context, donorID, productID string) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.DonorID != donorID {
		return errors.Forbidden("You can only delete your own listings", nil)
	}

	return uc.productRepo.Delete(ctx, productID)
}
