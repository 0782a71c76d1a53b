package models

import (
	"time"

	"github.com/dineatlas/directory-backend/internal/docstore"
)

// UserProfile is keyed by the identity provider's uid. Optional fields
// serialize as explicit nulls, matching the wire contract.
type UserProfile struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"display_name"`
	PhoneNumber *string   `json:"phone_number"`
	Address     *string   `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p UserProfile) Doc() docstore.Document {
	return docstore.Document{
		"uid":          p.UID,
		"email":        p.Email,
		"display_name": optValue(p.DisplayName),
		"phone_number": optValue(p.PhoneNumber),
		"address":      optValue(p.Address),
		"created_at":   p.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at":   p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func UserProfileFromDoc(doc docstore.Document) UserProfile {
	return UserProfile{
		UID:         docString(doc, "uid"),
		Email:       docString(doc, "email"),
		DisplayName: docOptString(doc, "display_name"),
		PhoneNumber: docOptString(doc, "phone_number"),
		Address:     docOptString(doc, "address"),
		CreatedAt:   docTime(doc, "created_at"),
		UpdatedAt:   docTime(doc, "updated_at"),
	}
}
