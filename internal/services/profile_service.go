package services

import (
	"context"
	"time"

	"github.com/dineatlas/directory-backend/internal/apperr"
	"github.com/dineatlas/directory-backend/internal/docstore"
	"github.com/dineatlas/directory-backend/internal/dto"
	"github.com/dineatlas/directory-backend/internal/identity"
	"github.com/dineatlas/directory-backend/internal/models"
)

const userProfilesCollection = "user_profiles"

// ProfileService implements the user-profile contract. Profiles are
// keyed by the identity provider's uid.
type ProfileService struct {
	store docstore.Store
}

func NewProfileService(store docstore.Store) *ProfileService {
	return &ProfileService{store: store}
}

func uidFilter(ident *identity.Identity) docstore.Filter {
	return docstore.Filter{"uid": ident.UID}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Upsert builds a profile from identity claims plus the supplied fields
// and fully replaces any existing profile for the uid. This is a
// replace-or-insert, not a merge.
func (s *ProfileService) Upsert(ctx context.Context, ident *identity.Identity, req dto.UserProfileCreateRequest) (*models.UserProfile, error) {
	now := time.Now().UTC()
	profile := models.UserProfile{
		UID:         ident.UID,
		Email:       ident.Email,
		DisplayName: optional(ident.Name),
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.ReplaceOne(ctx, userProfilesCollection, uidFilter(ident), profile.Doc(), true); err != nil {
		return nil, apperr.Storage(err, "Failed to save profile")
	}
	return &profile, nil
}

// GetOrProvision returns the profile for the identity, creating a
// minimal one from the claims on first read. A side-effecting read.
func (s *ProfileService) GetOrProvision(ctx context.Context, ident *identity.Identity) (*models.UserProfile, error) {
	doc, err := s.store.FindOne(ctx, userProfilesCollection, uidFilter(ident))
	if err != nil {
		return nil, apperr.Storage(err, "Failed to fetch profile")
	}
	if doc != nil {
		p := models.UserProfileFromDoc(doc)
		return &p, nil
	}

	now := time.Now().UTC()
	profile := models.UserProfile{
		UID:         ident.UID,
		Email:       ident.Email,
		DisplayName: optional(ident.Name),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.store.InsertOne(ctx, userProfilesCollection, profile.Doc()); err != nil {
		return nil, apperr.Storage(err, "Failed to save profile")
	}
	return &profile, nil
}

// Update merges only the supplied fields into the existing profile and
// refreshes updated_at.
func (s *ProfileService) Update(ctx context.Context, ident *identity.Identity, req dto.UserProfileUpdateRequest) (*models.UserProfile, error) {
	set := docstore.Document{}
	if req.DisplayName != nil {
		set["display_name"] = *req.DisplayName
	}
	if req.PhoneNumber != nil {
		set["phone_number"] = *req.PhoneNumber
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	set["updated_at"] = time.Now().UTC().Format(time.RFC3339Nano)

	matched, err := s.store.UpdateOne(ctx, userProfilesCollection, uidFilter(ident), set)
	if err != nil {
		return nil, apperr.Storage(err, "Failed to update profile")
	}
	if !matched {
		return nil, apperr.NotFound("Profile not found")
	}

	doc, err := s.store.FindOne(ctx, userProfilesCollection, uidFilter(ident))
	if err != nil {
		return nil, apperr.Storage(err, "Failed to fetch profile")
	}
	if doc == nil {
		return nil, apperr.NotFound("Profile not found")
	}
	p := models.UserProfileFromDoc(doc)
	return &p, nil
}

// Delete hard-deletes the profile. No tombstone.
func (s *ProfileService) Delete(ctx context.Context, ident *identity.Identity) error {
	deleted, err := s.store.DeleteOne(ctx, userProfilesCollection, uidFilter(ident))
	if err != nil {
		return apperr.Storage(err, "Failed to delete profile")
	}
	if !deleted {
		return apperr.NotFound("Profile not found")
	}
	return nil
}
