package dto

import "github.com/dineatlas/directory-backend/internal/docstore"

type StatusCheckCreateRequest struct {
	ClientName string `json:"client_name"`
}

type UserProfileCreateRequest struct {
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

type UserProfileUpdateRequest struct {
	DisplayName *string `json:"display_name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

type RestaurantCreateResponse struct {
	Success       bool   `json:"success"`
	ID            string `json:"id"`
	RestaurantKey string `json:"restaurant_key"`
	Message       string `json:"message"`
	CreatedBy     string `json:"created_by"`
}

// RestaurantListResponse returns restaurants in storage form. SortedBy
// and Order echo the applied sort; both are empty when the retrieval was
// unsorted.
type RestaurantListResponse struct {
	Restaurants []docstore.Document `json:"restaurants"`
	Count       int                 `json:"count"`
	SortedBy    string              `json:"sortedBy,omitempty"`
	Order       string              `json:"order,omitempty"`
}

type RestaurantStats struct {
	TotalCount     int      `json:"total_count"`
	CitiesCovered  int      `json:"cities_covered"`
	StatesCovered  int      `json:"states_covered"`
	Cities         []string `json:"cities"`
	States         []string `json:"states"`
	CreatedByUsers []string `json:"created_by_users"`
}

type AdminRestaurantsResponse struct {
	Restaurants []docstore.Document `json:"restaurants"`
	Stats       RestaurantStats     `json:"stats"`
}

type DatabaseStatsResponse struct {
	Collections      []string         `json:"collections"`
	CollectionStats  map[string]int64 `json:"collection_stats"`
	TotalCollections int              `json:"total_collections"`
}

type CollectionDumpResponse struct {
	Collection string              `json:"collection"`
	Documents  []docstore.Document `json:"documents"`
	Count      int                 `json:"count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

type ProtectedResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
	Email   string `json:"email"`
}
