package models

import (
	"testing"

	"github.com/dineatlas/directory-backend/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]any {
	return map[string]any{
		"restaurantName": "Taco Haven",
		"streetAddress":  "100 Main St",
		"city":           "Austin",
		"state":          "TX",
		"zipcode":        "78701",
		"primaryPhone":   "512-555-0100",
		"restaurantKey":  "taco-haven-austin",
		"createdAt":      "2026-08-01T12:00:00Z",
		"updatedAt":      "2026-08-01T12:00:00Z",
	}
}

func TestRestaurantToStorageTranslatesNames(t *testing.T) {
	payload := validPayload()
	payload["websiteUrl"] = "https://tacohaven.example"

	doc, err := RestaurantToStorage(payload)
	require.NoError(t, err)

	assert.Equal(t, "Taco Haven", doc["restaurant_name"])
	assert.Equal(t, "100 Main St", doc["street_address"])
	assert.Equal(t, "taco-haven-austin", doc["restaurant_key"])
	assert.Equal(t, "https://tacohaven.example", doc["website_url"])
	assert.NotContains(t, doc, "restaurantName")
}

func TestRestaurantToStorageAbsentOptionalStoredAsNull(t *testing.T) {
	doc, err := RestaurantToStorage(validPayload())
	require.NoError(t, err)

	require.Contains(t, doc, "menu_url")
	assert.Nil(t, doc["menu_url"])
	require.Contains(t, doc, "notes")
	assert.Nil(t, doc["notes"])
}

func TestRestaurantToStorageMissingRequiredField(t *testing.T) {
	for _, field := range []string{"restaurantName", "city", "restaurantKey", "createdAt"} {
		payload := validPayload()
		delete(payload, field)

		_, err := RestaurantToStorage(payload)
		require.Error(t, err, field)
		e := apperr.As(err)
		require.NotNil(t, e)
		assert.Equal(t, apperr.KindValidation, e.Kind)
		assert.Contains(t, e.Message, field)
	}
}

func TestRestaurantToStorageEmptyRequiredFieldRejected(t *testing.T) {
	payload := validPayload()
	payload["zipcode"] = ""

	_, err := RestaurantToStorage(payload)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.As(err).Kind)
}

func TestRestaurantToExternalRoundTrip(t *testing.T) {
	doc, err := RestaurantToStorage(validPayload())
	require.NoError(t, err)
	doc["_id"] = "abc123"

	out := RestaurantToExternal(doc)
	assert.Equal(t, "abc123", out["id"])
	assert.Equal(t, "Taco Haven", out["restaurantName"])
	assert.Equal(t, "TX", out["state"])
	assert.Nil(t, out["menuUrl"])
	assert.NotContains(t, out, "restaurant_name")
}

func TestRestaurantSortFields(t *testing.T) {
	assert.Equal(t, "created_at", RestaurantSortFields["createdAt"])
	assert.Equal(t, "updated_at", RestaurantSortFields["updatedAt"])
	assert.Equal(t, "restaurant_name", RestaurantSortFields["restaurantName"])
	_, ok := RestaurantSortFields["city"]
	assert.False(t, ok)
}

func TestFieldTableCoversEveryStorageColumn(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range RestaurantFields {
		assert.False(t, seen[f.Storage], "duplicate storage field %s", f.Storage)
		seen[f.Storage] = true
	}

	doc, err := RestaurantToStorage(validPayload())
	require.NoError(t, err)
	assert.Len(t, doc, len(RestaurantFields))
}
