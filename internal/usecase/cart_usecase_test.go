package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuscart/internal/domain/entity"
)

func newCartFixture() (*CartUseCase, *fakeCartRepo, *fakeProductRepo) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(
		&entity.Product{ID: "p1", Name: "Backpack", Price: 10},
		&entity.Product{ID: "p2", Name: "Lamp", Price: 5},
	)
	return NewCartUseCase(cartRepo, productRepo), cartRepo, productRepo
}

func TestAddItemCreatesCartOnFirstAdd(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()
	ctx := context.Background()

	view, err := uc.AddItem(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	assert.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.True(t, cartRepo.exists("u1"))
}

func TestAddItemDoesNotMergeDuplicateProducts(t *testing.T) {
	uc, _, _ := newCartFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	view, err := uc.AddItem(ctx, "u1", "p1", 3)
	require.NoError(t, err)

	// Two adds of the same product stay as two line entries.
	require.Len(t, view.Items, 2)
	assert.Equal(t, 1, view.Items[0].Quantity)
	assert.Equal(t, 3, view.Items[1].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	uc, _, _ := newCartFixture()

	_, err := uc.AddItem(context.Background(), "u1", "missing", 1)
	assert.Error(t, err)
}

func TestChangeQuantityClampsToOne(t *testing.T) {
	uc, _, _ := newCartFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	view, err := uc.ChangeQuantity(ctx, "u1", 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Items[0].Quantity)

	view, err = uc.ChangeQuantity(ctx, "u1", 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Items[0].Quantity)
}

func TestChangeQuantityIndexOutOfRange(t *testing.T) {
	uc, _, _ := newCartFixture()

	_, err := uc.ChangeQuantity(context.Background(), "u1", 0, 1)
	assert.Error(t, err)
}

func TestRemoveItemByPosition(t *testing.T) {
	uc, _, _ := newCartFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, "u1", "p2", 1)
	require.NoError(t, err)

	view, err := uc.RemoveItem(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "p2", view.Items[0].ProductID)
}

func TestSubtotalComputedFresh(t *testing.T) {
	uc, _, _ := newCartFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "u1", "p1", 2) // 10 x 2
	require.NoError(t, err)
	view, err := uc.AddItem(ctx, "u1", "p2", 1) // 5 x 1
	require.NoError(t, err)

	assert.Equal(t, 25.0, view.Subtotal)
}

func TestClearDeletesCartDocument(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "u1", "p1", 1)
	require.NoError(t, err)

	require.NoError(t, uc.Clear(ctx, "u1"))
	assert.False(t, cartRepo.exists("u1"), "cart document should be deleted, not emptied")

	// Clearing an absent cart is a no-op.
	assert.NoError(t, uc.Clear(ctx, "u1"))
}

func TestGetSurfacesStoreFailure(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()
	cartRepo.getErr = fmt.Errorf("store down")

	view, err := uc.Get(context.Background(), "u1")
	assert.Error(t, err, "a store failure must not read as an empty cart")
	assert.Nil(t, view)
}

func TestGetEmptyCart(t *testing.T) {
	uc, _, _ := newCartFixture()

	view, err := uc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Subtotal)
}
