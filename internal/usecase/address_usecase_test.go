package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstAddressBecomesDefault(t *testing.T) {
	repo := newFakeAddressRepo()
	uc := NewAddressUseCase(repo)
	ctx := context.Background()

	first, err := uc.Add(ctx, "u1", AddAddressInput{Line: "12 College St", City: "Toronto"})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := uc.Add(ctx, "u1", AddAddressInput{Line: "99 Queen St", City: "Toronto"})
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	assert.Equal(t, 1, repo.defaultCount("u1"))
}

func TestAddAddressValidation(t *testing.T) {
	uc := NewAddressUseCase(newFakeAddressRepo())
	ctx := context.Background()

	_, err := uc.Add(ctx, "u1", AddAddressInput{Line: "", City: "Toronto"})
	assert.Error(t, err)

	_, err = uc.Add(ctx, "u1", AddAddressInput{Line: "12 College St", City: ""})
	assert.Error(t, err)

	_, err = uc.Add(ctx, "u1", AddAddressInput{Line: "12 College St", City: "Toronto", Zip: "-bad"})
	assert.Error(t, err)

	// Zip is optional.
	_, err = uc.Add(ctx, "u1", AddAddressInput{Line: "12 College St", City: "Toronto", Zip: ""})
	assert.NoError(t, err)
}

func TestSetDefaultLeavesExactlyOne(t *testing.T) {
	repo := newFakeAddressRepo()
	uc := NewAddressUseCase(repo)
	ctx := context.Background()

	a, err := uc.Add(ctx, "u1", AddAddressInput{Line: "A St", City: "Toronto"})
	require.NoError(t, err)
	b, err := uc.Add(ctx, "u1", AddAddressInput{Line: "B St", City: "Toronto"})
	require.NoError(t, err)

	require.NoError(t, uc.SetDefault(ctx, "u1", b.ID))

	assert.Equal(t, 1, repo.defaultCount("u1"))
	got, err := repo.GetByID(ctx, "u1", b.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)

	got, err = repo.GetByID(ctx, "u1", a.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
}

func TestSetDefaultUnknownAddress(t *testing.T) {
	uc := NewAddressUseCase(newFakeAddressRepo())

	err := uc.SetDefault(context.Background(), "u1", "missing")
	assert.Error(t, err)
}

func TestSetDefaultPartialFailureIsDetectable(t *testing.T) {
	repo := newFakeAddressRepo()
	uc := NewAddressUseCase(repo)
	ctx := context.Background()

	a, err := uc.Add(ctx, "u1", AddAddressInput{Line: "A St", City: "Toronto"})
	require.NoError(t, err)
	b, err := uc.Add(ctx, "u1", AddAddressInput{Line: "B St", City: "Toronto"})
	require.NoError(t, err)

	// The write clearing A's flag fails; B's write may still have
	// committed. There is no rollback, so the invariant can be violated
	// transiently and must at least be observable.
	repo.failFlagFor = a.ID

	err = uc.SetDefault(ctx, "u1", b.ID)
	require.Error(t, err)

	count := repo.defaultCount("u1")
	assert.NotEqual(t, 1, count, "partial fan-out failure leaves a detectable default count")
}
