// Package docstore is the backend-agnostic document store the resource
// contract layer is built on. It exposes per-collection primitives
// (insert, find, partial update, replace, delete, count, collection
// listing) over interchangeable backends.
package docstore

import (
	"context"
	"fmt"

	"github.com/dineatlas/directory-backend/internal/config"
)

// Document is a schemaless record. Documents returned by a Store carry
// their storage identifier under the "_id" key as a string.
type Document = map[string]any

// Filter matches documents by field equality. A nil or empty filter
// matches everything. The special key "_id" matches the storage id.
type Filter = map[string]any

// Sort orders results by a single top-level field.
type Sort struct {
	Field string
	Desc  bool
}

// FindOptions bounds and orders a Find.
type FindOptions struct {
	Sort  *Sort
	Limit int
}

// MaxFetch is the fixed cap applied to unbounded reads. There is no
// pagination beyond it.
const MaxFetch = 1000

// Store is implemented by every backend. Writes are atomic at
// single-document granularity only; nothing here spans documents and
// nothing retries.
type Store interface {
	// InsertOne stores a new document and returns its generated id.
	InsertOne(ctx context.Context, collection string, doc Document) (string, error)

	// Find returns matching documents, optionally sorted and limited.
	Find(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]Document, error)

	// FindOne returns the first matching document, or nil if none match.
	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)

	// ReplaceOne fully replaces the first matching document. With upsert
	// it inserts when nothing matches.
	ReplaceOne(ctx context.Context, collection string, filter Filter, doc Document, upsert bool) error

	// UpdateOne merges set into the first matching document. Reports
	// whether a document matched.
	UpdateOne(ctx context.Context, collection string, filter Filter, set Document) (bool, error)

	// DeleteOne removes the first matching document. Reports whether one
	// was removed.
	DeleteOne(ctx context.Context, collection string, filter Filter) (bool, error)

	// DeleteByID removes a document by its storage id.
	DeleteByID(ctx context.Context, collection, id string) (bool, error)

	// Count returns the number of documents in a collection.
	Count(ctx context.Context, collection string) (int64, error)

	// Collections returns the names of all collections holding data.
	Collections(ctx context.Context) ([]string, error)

	Ping(ctx context.Context) error
	Close() error

	// Backend names the backing implementation, for diagnostics.
	Backend() string
}

// Open creates a Store based on cfg.StoreBackend.
//
// Supported backends:
//
//	"postgres"  - JSONB documents in PostgreSQL (default)
//	"firestore" - Cloud Firestore
//	"memory"    - in-memory (ephemeral, for testing)
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case "postgres", "":
		return OpenPostgres(cfg)
	case "firestore":
		return OpenFirestore(ctx, cfg)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: postgres, firestore, memory)", cfg.StoreBackend)
	}
}
