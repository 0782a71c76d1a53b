package models

import (
	"time"

	"github.com/dineatlas/directory-backend/internal/docstore"
)

// StatusCheck is a liveness ping recorded by a client. Immutable once
// written; never updated or deleted.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func (s StatusCheck) Doc() docstore.Document {
	return docstore.Document{
		"id":          s.ID,
		"client_name": s.ClientName,
		"timestamp":   s.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func StatusCheckFromDoc(doc docstore.Document) StatusCheck {
	return StatusCheck{
		ID:         docString(doc, "id"),
		ClientName: docString(doc, "client_name"),
		Timestamp:  docTime(doc, "timestamp"),
	}
}
