package services

import (
	"context"
	"fmt"

	"github.com/dineatlas/directory-backend/internal/apperr"
	"github.com/dineatlas/directory-backend/internal/docstore"
	"github.com/dineatlas/directory-backend/internal/dto"
	"github.com/dineatlas/directory-backend/internal/models"
)

const restaurantsCollection = "restaurants"

// RestaurantService implements the restaurant contract. Writes are
// unauthenticated; created_by carries the configured operator identity.
type RestaurantService struct {
	store    docstore.Store
	operator string
}

func NewRestaurantService(store docstore.Store, operator string) *RestaurantService {
	return &RestaurantService{store: store, operator: operator}
}

// Create validates and stores a restaurant entry. Duplicate
// restaurant_key values are possible and not detected.
func (s *RestaurantService) Create(ctx context.Context, payload map[string]any) (*dto.RestaurantCreateResponse, error) {
	doc, err := models.RestaurantToStorage(payload)
	if err != nil {
		return nil, err
	}
	doc["created_by"] = s.operator

	id, err := s.store.InsertOne(ctx, restaurantsCollection, doc)
	if err != nil {
		return nil, apperr.Storage(err, "Failed to save restaurant")
	}

	name, _ := doc["restaurant_name"].(string)
	key, _ := doc["restaurant_key"].(string)
	return &dto.RestaurantCreateResponse{
		Success:       true,
		ID:            id,
		RestaurantKey: key,
		Message:       fmt.Sprintf("Restaurant '%s' saved successfully", name),
		CreatedBy:     s.operator,
	}, nil
}

// List returns all restaurants, by default newest first. An unrecognized
// sortBy silently falls back to unsorted retrieval; that leniency is
// part of the contract, not a validation gap.
func (s *RestaurantService) List(ctx context.Context, sortBy, order string) (*dto.RestaurantListResponse, error) {
	if sortBy == "" {
		sortBy = "createdAt"
	}
	if order == "" {
		order = "desc"
	}

	opts := docstore.FindOptions{Limit: docstore.MaxFetch}
	resp := &dto.RestaurantListResponse{}
	if field, ok := models.RestaurantSortFields[sortBy]; ok {
		opts.Sort = &docstore.Sort{Field: field, Desc: order != "asc"}
		resp.SortedBy = sortBy
		resp.Order = order
	}

	docs, err := s.store.Find(ctx, restaurantsCollection, nil, opts)
	if err != nil {
		return nil, apperr.Storage(err, "Failed to fetch restaurants")
	}
	resp.Restaurants = docs
	resp.Count = len(docs)
	return resp, nil
}

// GetByKey returns the first document matching the human-assigned key,
// in storage form.
func (s *RestaurantService) GetByKey(ctx context.Context, key string) (docstore.Document, error) {
	doc, err := s.store.FindOne(ctx, restaurantsCollection, docstore.Filter{"restaurant_key": key})
	if err != nil {
		return nil, apperr.Storage(err, "Failed to fetch restaurant")
	}
	if doc == nil {
		return nil, apperr.NotFound("Restaurant not found")
	}
	return doc, nil
}
