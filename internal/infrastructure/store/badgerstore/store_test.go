package badgerstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldior/backend/internal/domain"
)

func catalog() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Cedar Drift", Description: "Woody and dry",
			Keynotes:     []domain.Keynote{{Name: "Woody"}, {Name: "Amber"}},
			CapacityInML: []domain.CapacityOption{{Volume: 50, Price: 1500}}},
		{ID: "p2", Name: "Rose Dawn", Description: "Soft floral",
			Keynotes:     []domain.Keynote{{Name: "Rose Petal"}},
			CapacityInML: []domain.CapacityOption{{Volume: 50, Price: 900}, {Volume: 100, Price: 1600}}},
		{ID: "p3", Name: "Citrus Coast", Description: "Bright and sharp",
			Keynotes:     []domain.Keynote{{Name: "Citrus"}},
			CapacityInML: []domain.CapacityOption{{Volume: 100, Price: 2400}}},
		{ID: "p4", Name: "Sampler", Description: "No sizes listed",
			Keynotes: []domain.Keynote{{Name: "Mint"}}},
	}
}

func seededProductStore(t *testing.T) *ProductStore {
	t.Helper()
	store := NewProductStore(NewTestBackend(t))
	ctx := context.Background()
	products := catalog()
	for i := range products {
		require.NoError(t, store.Save(ctx, &products[i]))
	}
	return store
}

func TestProductStoreRoundTrip(t *testing.T) {
	store := seededProductStore(t)

	all, err := store.FindAny(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, all, 4)

	// Key order is ascending product ID
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p4", all[3].ID)

	// Nested fields survive the round trip
	assert.Equal(t, []domain.Keynote{{Name: "Woody"}, {Name: "Amber"}}, all[0].Keynotes)
	assert.Equal(t, 900, all[1].CapacityInML[0].Price)
	assert.Empty(t, all[3].CapacityInML)
}

func TestProductStoreLimit(t *testing.T) {
	store := seededProductStore(t)

	limited, err := store.FindAny(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, limited, 3)
}

func TestProductStoreFindMatching(t *testing.T) {
	store := seededProductStore(t)
	ctx := context.Background()

	upper := 2000
	t.Run("notes and price clauses AND together", func(t *testing.T) {
		matches, err := store.FindMatching(ctx, domain.ProductFilter{
			Notes: []string{"rose"},
			Price: &domain.PriceRange{Upper: &upper},
		}, 3)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "p2", matches[0].ID)
	})

	t.Run("note-only filter", func(t *testing.T) {
		matches, err := store.FindMatching(ctx, domain.ProductFilter{Notes: []string{"woody", "citrus"}}, 3)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "p1", matches[0].ID)
		assert.Equal(t, "p3", matches[1].ID)
	})

	t.Run("no match yields empty, not error", func(t *testing.T) {
		matches, err := store.FindMatching(ctx, domain.ProductFilter{Notes: []string{"oud"}}, 3)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("universal filter equals FindAny", func(t *testing.T) {
		matching, err := store.FindMatching(ctx, domain.ProductFilter{}, 3)
		require.NoError(t, err)
		any, err := store.FindAny(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, any, matching)
	})
}

func TestProductStoreCount(t *testing.T) {
	ctx := context.Background()

	empty := NewProductStore(NewTestBackend(t))
	count, err := empty.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	seeded := seededProductStore(t)
	count, err = seeded.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestUserStore(t *testing.T) {
	store := NewUserStore(NewTestBackend(t))
	ctx := context.Background()

	user := &domain.User{
		ID:       "u1",
		Username: "asha",
		Email:    "asha@example.com",
		Addresses: []domain.Address{{
			AddressLine: "12 Rose Lane", City: "Pune", State: "MH", Country: "India", Zipcode: "411001",
		}},
		Favourites: []string{"p2"},
	}
	require.NoError(t, store.Create(ctx, user))

	err := store.Create(ctx, user)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	got, err := store.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "asha", got.Username)
	assert.Equal(t, user.Addresses, got.Addresses)
	assert.Equal(t, []string{"p2"}, got.Favourites)

	_, err = store.GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
