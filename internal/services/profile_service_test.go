package services

import (
	"context"
	"testing"

	"github.com/dineatlas/directory-backend/internal/apperr"
	"github.com/dineatlas/directory-backend/internal/docstore"
	"github.com/dineatlas/directory-backend/internal/dto"
	"github.com/dineatlas/directory-backend/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity() *identity.Identity {
	return &identity.Identity{UID: "uid-1", Email: "jo@example.com", Name: "Jo"}
}

func strPtr(s string) *string { return &s }

func TestProfileUpsertCreates(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(docstore.NewMemory())

	profile, err := svc.Upsert(ctx, testIdentity(), dto.UserProfileCreateRequest{
		PhoneNumber: strPtr("512-555-0100"),
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", profile.UID)
	assert.Equal(t, "jo@example.com", profile.Email)
	require.NotNil(t, profile.DisplayName)
	assert.Equal(t, "Jo", *profile.DisplayName)
	require.NotNil(t, profile.PhoneNumber)
	assert.Equal(t, "512-555-0100", *profile.PhoneNumber)
	assert.Nil(t, profile.Address)
}

func TestProfileUpsertReplacesInFull(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	svc := NewProfileService(store)

	_, err := svc.Upsert(ctx, testIdentity(), dto.UserProfileCreateRequest{
		PhoneNumber: strPtr("512-555-0100"),
		Address:     strPtr("100 Main St"),
	})
	require.NoError(t, err)

	// Second upsert without an address drops the old one; this is a
	// replace, not a merge.
	profile, err := svc.Upsert(ctx, testIdentity(), dto.UserProfileCreateRequest{
		PhoneNumber: strPtr("512-555-0200"),
	})
	require.NoError(t, err)
	assert.Nil(t, profile.Address)

	n, err := store.Count(ctx, "user_profiles")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestProfileGetProvisionsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	svc := NewProfileService(store)

	profile, err := svc.GetOrProvision(ctx, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, "uid-1", profile.UID)
	assert.Nil(t, profile.PhoneNumber)

	n, err := store.Count(ctx, "user_profiles")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	again, err := svc.GetOrProvision(ctx, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, profile.UID, again.UID)

	n, err = store.Count(ctx, "user_profiles")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestProfileUpdateMergesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(docstore.NewMemory())

	_, err := svc.Upsert(ctx, testIdentity(), dto.UserProfileCreateRequest{
		PhoneNumber: strPtr("512-555-0100"),
		Address:     strPtr("100 Main St"),
	})
	require.NoError(t, err)

	profile, err := svc.Update(ctx, testIdentity(), dto.UserProfileUpdateRequest{
		Address: strPtr("200 Oak Ave"),
	})
	require.NoError(t, err)
	require.NotNil(t, profile.Address)
	assert.Equal(t, "200 Oak Ave", *profile.Address)
	require.NotNil(t, profile.PhoneNumber)
	assert.Equal(t, "512-555-0100", *profile.PhoneNumber)
}

func TestProfileUpdateMissingIsNotFound(t *testing.T) {
	svc := NewProfileService(docstore.NewMemory())

	_, err := svc.Update(context.Background(), testIdentity(), dto.UserProfileUpdateRequest{
		Address: strPtr("200 Oak Ave"),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestProfileDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(docstore.NewMemory())

	_, err := svc.Upsert(ctx, testIdentity(), dto.UserProfileCreateRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, testIdentity()))

	err = svc.Delete(ctx, testIdentity())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
