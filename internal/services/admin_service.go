package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/dineatlas/directory-backend/internal/apperr"
	"github.com/dineatlas/directory-backend/internal/docstore"
	"github.com/dineatlas/directory-backend/internal/dto"
)

// AdminService is the read/aggregate/delete surface behind the admin
// dashboard. It has no logic of its own beyond aggregation over the
// same store primitives the public endpoints use.
type AdminService struct {
	store docstore.Store
}

func NewAdminService(store docstore.Store) *AdminService {
	return &AdminService{store: store}
}

func fieldOrUnknown(d docstore.Document, key string) string {
	if v, ok := d[key].(string); ok && v != "" {
		return v
	}
	return "Unknown"
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ListRestaurantsWithStats returns every restaurant plus distinct-value
// stats computed in a single pass.
func (s *AdminService) ListRestaurantsWithStats(ctx context.Context) (*dto.AdminRestaurantsResponse, error) {
	docs, err := s.store.Find(ctx, restaurantsCollection, nil, docstore.FindOptions{Limit: docstore.MaxFetch})
	if err != nil {
		return nil, apperr.Storage(err, "Failed to fetch restaurants")
	}

	cities := make(map[string]struct{})
	states := make(map[string]struct{})
	creators := make(map[string]struct{})
	for _, d := range docs {
		cities[fieldOrUnknown(d, "city")] = struct{}{}
		states[fieldOrUnknown(d, "state")] = struct{}{}
		if v, ok := d["created_by"].(string); ok && v != "" {
			creators[v] = struct{}{}
		}
	}

	return &dto.AdminRestaurantsResponse{
		Restaurants: docs,
		Stats: dto.RestaurantStats{
			TotalCount:     len(docs),
			CitiesCovered:  len(cities),
			StatesCovered:  len(states),
			Cities:         sortedKeys(cities),
			States:         sortedKeys(states),
			CreatedByUsers: sortedKeys(creators),
		},
	}, nil
}

// DatabaseStats counts documents per collection.
func (s *AdminService) DatabaseStats(ctx context.Context) (*dto.DatabaseStatsResponse, error) {
	colls, err := s.store.Collections(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "Failed to fetch database stats")
	}

	stats := make(map[string]int64, len(colls))
	for _, name := range colls {
		n, err := s.store.Count(ctx, name)
		if err != nil {
			return nil, apperr.Storage(err, "Failed to count collection %s", name)
		}
		stats[name] = n
	}

	return &dto.DatabaseStatsResponse{
		Collections:      colls,
		CollectionStats:  stats,
		TotalCollections: len(colls),
	}, nil
}

// DeleteRestaurant hard-deletes by storage id.
func (s *AdminService) DeleteRestaurant(ctx context.Context, id string) (*dto.SuccessResponse, error) {
	deleted, err := s.store.DeleteByID(ctx, restaurantsCollection, id)
	if err != nil {
		return nil, apperr.Storage(err, "Failed to delete restaurant")
	}
	if !deleted {
		return nil, apperr.NotFound("Restaurant not found")
	}
	return &dto.SuccessResponse{
		Success: true,
		Message: fmt.Sprintf("Restaurant %s deleted successfully", id),
	}, nil
}

// DumpCollection returns a collection's raw documents, for the
// dashboard's raw-data view.
func (s *AdminService) DumpCollection(ctx context.Context, name string) (*dto.CollectionDumpResponse, error) {
	docs, err := s.store.Find(ctx, name, nil, docstore.FindOptions{Limit: docstore.MaxFetch})
	if err != nil {
		return nil, apperr.Storage(err, "Failed to fetch collection %s", name)
	}
	return &dto.CollectionDumpResponse{
		Collection: name,
		Documents:  docs,
		Count:      len(docs),
	}, nil
}
