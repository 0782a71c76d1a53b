package models

import (
	"github.com/dineatlas/directory-backend/internal/apperr"
	"github.com/dineatlas/directory-backend/internal/docstore"
)

// RestaurantField maps one external camelCase field to its storage name.
// Adding a field here is the only step needed for both directions of the
// translation; per-field inline assignment invites silent omissions.
type RestaurantField struct {
	External string // camelCase, as sent by clients
	Storage  string // snake_case, as persisted
	Required bool
}

// RestaurantFields is the bidirectional field table for the restaurant
// resource. Timestamps are client-supplied ISO-8601 strings, stored
// verbatim.
var RestaurantFields = []RestaurantField{
	{"restaurantName", "restaurant_name", true},
	{"streetAddress", "street_address", true},
	{"city", "city", true},
	{"state", "state", true},
	{"zipcode", "zipcode", true},
	{"primaryPhone", "primary_phone", true},
	{"websiteUrl", "website_url", false},
	{"menuUrl", "menu_url", false},
	{"menuComments", "menu_comments", false},
	{"gmName", "gm_name", false},
	{"gmPhone", "gm_phone", false},
	{"secondaryPhone", "secondary_phone", false},
	{"thirdPhone", "third_phone", false},
	{"doordashUrl", "doordash_url", false},
	{"uberEatsUrl", "uber_eats_url", false},
	{"grubhubUrl", "grubhub_url", false},
	{"notes", "notes", false},
	{"restaurantKey", "restaurant_key", true},
	{"createdAt", "created_at", true},
	{"updatedAt", "updated_at", true},
}

// RestaurantSortFields maps accepted sortBy query values to storage
// fields. Anything else falls back to unsorted retrieval.
var RestaurantSortFields = map[string]string{
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
	"restaurantName": "restaurant_name",
}

// RestaurantToStorage validates an external payload and translates it to
// storage form. Optional fields absent from the payload are stored as
// nulls. Note restaurant_key uniqueness is NOT checked here or anywhere
// else at write time; lookups take the first match.
func RestaurantToStorage(payload map[string]any) (docstore.Document, error) {
	doc := make(docstore.Document, len(RestaurantFields))
	for _, f := range RestaurantFields {
		v, ok := payload[f.External]
		if f.Required {
			s, isStr := v.(string)
			if !ok || !isStr || s == "" {
				return nil, apperr.Validation("missing required field: %s", f.External)
			}
		}
		if !ok {
			doc[f.Storage] = nil
			continue
		}
		doc[f.Storage] = v
	}
	return doc, nil
}

// RestaurantToExternal translates a storage document back to the
// external camelCase form, using the same table.
func RestaurantToExternal(doc docstore.Document) map[string]any {
	out := make(map[string]any, len(RestaurantFields)+1)
	for _, f := range RestaurantFields {
		out[f.External] = doc[f.Storage]
	}
	if id, ok := doc["_id"]; ok {
		out["id"] = id
	}
	return out
}
