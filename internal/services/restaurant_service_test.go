package services

import (
	"context"
	"testing"

	"github.com/dineatlas/directory-backend/internal/apperr"
	"github.com/dineatlas/directory-backend/internal/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restaurantPayload(name, key, created string) map[string]any {
	return map[string]any{
		"restaurantName": name,
		"streetAddress":  "100 Main St",
		"city":           "Austin",
		"state":          "TX",
		"zipcode":        "78701",
		"primaryPhone":   "512-555-0100",
		"restaurantKey":  key,
		"createdAt":      created,
		"updatedAt":      created,
	}
}

func TestRestaurantCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewRestaurantService(docstore.NewMemory(), "data-entry")

	resp, err := svc.Create(ctx, restaurantPayload("Taco Haven", "taco-haven", "2026-08-01T12:00:00Z"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "taco-haven", resp.RestaurantKey)
	assert.Equal(t, "Restaurant 'Taco Haven' saved successfully", resp.Message)
	assert.Equal(t, "data-entry", resp.CreatedBy)
}

func TestRestaurantCreateMissingFieldIs422(t *testing.T) {
	svc := NewRestaurantService(docstore.NewMemory(), "data-entry")

	payload := restaurantPayload("Taco Haven", "taco-haven", "2026-08-01T12:00:00Z")
	delete(payload, "primaryPhone")

	_, err := svc.Create(context.Background(), payload)
	require.Error(t, err)
	e := apperr.As(err)
	require.NotNil(t, e)
	assert.Equal(t, 422, e.Status())
	assert.Contains(t, e.Message, "primaryPhone")
}

func TestRestaurantCreateAllowsDuplicateKeys(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	svc := NewRestaurantService(store, "data-entry")

	_, err := svc.Create(ctx, restaurantPayload("First", "same-key", "2026-08-01T12:00:00Z"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, restaurantPayload("Second", "same-key", "2026-08-02T12:00:00Z"))
	require.NoError(t, err)

	n, err := store.Count(ctx, "restaurants")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	// Lookup returns the first match.
	doc, err := svc.GetByKey(ctx, "same-key")
	require.NoError(t, err)
	assert.Equal(t, "First", doc["restaurant_name"])
}

func TestRestaurantListDefaultsToCreatedAtDesc(t *testing.T) {
	ctx := context.Background()
	svc := NewRestaurantService(docstore.NewMemory(), "data-entry")

	_, err := svc.Create(ctx, restaurantPayload("Old", "old", "2026-08-01T12:00:00Z"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, restaurantPayload("New", "new", "2026-08-02T12:00:00Z"))
	require.NoError(t, err)

	resp, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "createdAt", resp.SortedBy)
	assert.Equal(t, "desc", resp.Order)
	assert.Equal(t, "New", resp.Restaurants[0]["restaurant_name"])
	assert.Equal(t, "Old", resp.Restaurants[1]["restaurant_name"])
}

func TestRestaurantListSortByNameAsc(t *testing.T) {
	ctx := context.Background()
	svc := NewRestaurantService(docstore.NewMemory(), "data-entry")

	for _, name := range []string{"bravo", "alpha", "charlie"} {
		_, err := svc.Create(ctx, restaurantPayload(name, name, "2026-08-01T12:00:00Z"))
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, "restaurantName", "asc")
	require.NoError(t, err)
	assert.Equal(t, "restaurantName", resp.SortedBy)
	assert.Equal(t, "asc", resp.Order)
	assert.Equal(t, "alpha", resp.Restaurants[0]["restaurant_name"])
	assert.Equal(t, "charlie", resp.Restaurants[2]["restaurant_name"])
}

func TestRestaurantListUnknownSortByFallsBackUnsorted(t *testing.T) {
	ctx := context.Background()
	svc := NewRestaurantService(docstore.NewMemory(), "data-entry")

	_, err := svc.Create(ctx, restaurantPayload("Taco Haven", "taco-haven", "2026-08-01T12:00:00Z"))
	require.NoError(t, err)

	resp, err := svc.List(ctx, "city", "asc")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Empty(t, resp.SortedBy)
	assert.Empty(t, resp.Order)
}

func TestRestaurantGetByKeyNotFound(t *testing.T) {
	svc := NewRestaurantService(docstore.NewMemory(), "data-entry")

	_, err := svc.GetByKey(context.Background(), "non-existent-key-12345")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
