package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuscart/internal/domain/entity"
	apperrors "campuscart/pkg/errors"
)

func newListingFixture() (*ProductUseCase, *fakeProductRepo, *fakeUserRepo) {
	productRepo := newFakeProductRepo()
	userRepo := newFakeUserRepo(
		&entity.User{ID: "donor-1", Email: "donor@example.com", Role: entity.RoleDonor},
		&entity.User{ID: "student-1", Email: "student@example.com", Role: entity.RoleStudent},
	)
	return NewProductUseCase(productRepo, userRepo), productRepo, userRepo
}

func validListing() ListingInput {
	return ListingInput{
		Name:        "Winter Jacket",
		Description: "Barely worn, size medium, warm down fill.",
		Category:    "Apparel",
		Price:       "25.50",
	}
}

func TestCreateListingAsDonor(t *testing.T) {
	uc, _, _ := newListingFixture()

	product, err := uc.CreateListing(context.Background(), "donor-1", validListing())
	require.NoError(t, err)

	assert.Equal(t, "Winter Jacket", product.Name)
	assert.Equal(t, 25.50, product.Price)
	assert.Equal(t, "donor-1", product.DonorID)
	assert.Equal(t, "donor@example.com", product.DonorEmail)
	assert.False(t, product.IsDonation)
}

func TestCreateListingRequiresDonorRole(t *testing.T) {
	uc, _, _ := newListingFixture()

	_, err := uc.CreateListing(context.Background(), "student-1", validListing())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "FORBIDDEN"))
}

func TestCreateListingDonationForcesZeroPrice(t *testing.T) {
	uc, _, _ := newListingFixture()

	input := validListing()
	input.Price = ""
	input.IsDonation = true

	product, err := uc.CreateListing(context.Background(), "donor-1", input)
	require.NoError(t, err)
	assert.True(t, product.IsDonation)
	assert.Zero(t, product.Price)
}

func TestCreateListingValidation(t *testing.T) {
	uc, _, _ := newListingFixture()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*ListingInput)
	}{
		{"name too short", func(in *ListingInput) { in.Name = "ab" }},
		{"name too long", func(in *ListingInput) { in.Name = strings.Repeat("x", 81) }},
		{"description too short", func(in *ListingInput) { in.Description = "too short" }},
		{"unknown category", func(in *ListingInput) { in.Category = "Vehicles" }},
		{"missing price without donation", func(in *ListingInput) { in.Price = "" }},
		{"malformed price", func(in *ListingInput) { in.Price = "10.999" }},
		{"leading zero price", func(in *ListingInput) { in.Price = "01" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validListing()
			tc.mutate(&input)
			_, err := uc.CreateListing(ctx, "donor-1", input)
			assert.Error(t, err)
		})
	}
}

func TestUpdateListingOwnerOnly(t *testing.T) {
	uc, _, _ := newListingFixture()
	ctx := context.Background()

	product, err := uc.CreateListing(ctx, "donor-1", validListing())
	require.NoError(t, err)

	_, err = uc.UpdateListing(ctx, "student-1", product.ID, validListing())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "FORBIDDEN"))

	updated := validListing()
	updated.Name = "Winter Jacket (reduced)"
	updated.Price = "20"
	got, err := uc.UpdateListing(ctx, "donor-1", product.ID, updated)
	require.NoError(t, err)
	assert.Equal(t, "Winter Jacket (reduced)", got.Name)
	assert.Equal(t, 20.0, got.Price)
}

func TestDeleteListingOwnerOnly(t *testing.T) {
	uc, productRepo, _ := newListingFixture()
	ctx := context.Background()

	product, err := uc.CreateListing(ctx, "donor-1", validListing())
	require.NoError(t, err)

	err = uc.DeleteListing(ctx, "student-1", product.ID)
	require.Error(t, err)

	require.NoError(t, uc.DeleteListing(ctx, "donor-1", product.ID))
	_, err = productRepo.GetByID(ctx, product.ID)
	assert.Error(t, err)
}

func TestListRejectsUnknownCategory(t *testing.T) {
	uc, _, _ := newListingFixture()

	_, _, err := uc.List(context.Background(), "Vehicles", 20, 0)
	assert.Error(t, err)
}
