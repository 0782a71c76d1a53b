package services

import (
	"context"
	"time"

	"github.com/dineatlas/directory-backend/internal/apperr"
	"github.com/dineatlas/directory-backend/internal/docstore"
	"github.com/dineatlas/directory-backend/internal/models"
	"github.com/google/uuid"
)

const statusChecksCollection = "status_checks"

// StatusService implements the status-check contract.
type StatusService struct {
	store docstore.Store
}

func NewStatusService(store docstore.Store) *StatusService {
	return &StatusService{store: store}
}

// Create records a liveness ping. Identity and timestamp are generated
// server-side.
func (s *StatusService) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	if clientName == "" {
		return nil, apperr.Validation("missing required field: client_name")
	}

	check := models.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if _, err := s.store.InsertOne(ctx, statusChecksCollection, check.Doc()); err != nil {
		return nil, apperr.Storage(err, "Failed to save status check")
	}
	return &check, nil
}

// List returns up to MaxFetch status checks in store order.
func (s *StatusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	docs, err := s.store.Find(ctx, statusChecksCollection, nil, docstore.FindOptions{Limit: docstore.MaxFetch})
	if err != nil {
		return nil, apperr.Storage(err, "Failed to fetch status checks")
	}

	checks := make([]models.StatusCheck, 0, len(docs))
	for _, d := range docs {
		checks = append(checks, models.StatusCheckFromDoc(d))
	}
	return checks, nil
}
