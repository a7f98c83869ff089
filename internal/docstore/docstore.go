// Package docstore provides a small document store with Firestore-like
// semantics: JSON documents addressed by slash-separated paths, collections
// that documents are added to with generated IDs, and shallow merges on
// write. The production implementation is backed by SQLite.
package docstore

import (
	"context"
	"encoding/json"

	"github.com/jmorales/ciclofit/internal/errors"
)

// ErrNotFound is returned when a document does not exist at the given path.
var ErrNotFound = errors.NewSentinel("document not found")

// Document is one entry returned by Query. ID is the last path segment.
type Document struct {
	ID   string
	Data json.RawMessage
}

// QueryOptions controls ordering and result size of a collection query.
// OrderBy names a top-level JSON field of the stored documents.
type QueryOptions struct {
	OrderBy    string
	Descending bool
	Limit      int
}

// Store is the persistence contract the domain services depend on. Paths are
// slash-separated and scoped under a per-user namespace by the caller.
type Store interface {
	// Get returns the raw document at path or ErrNotFound.
	Get(ctx context.Context, path string) (json.RawMessage, error)

	// Set writes value at path, creating or replacing the document. With
	// merge, top-level fields of value are overlaid on the existing document
	// instead of replacing it wholesale.
	Set(ctx context.Context, path string, value any, merge bool) error

	// Update overlays the given top-level fields on an existing document.
	// Returns ErrNotFound when there is no document at path.
	Update(ctx context.Context, path string, fields map[string]any) error

	// Add stores value as a new document in the collection and returns the
	// generated document ID.
	Add(ctx context.Context, collection string, value any) (string, error)

	// Query returns the documents of a collection.
	Query(ctx context.Context, collection string, opts QueryOptions) ([]Document, error)
}
