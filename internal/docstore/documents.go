package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/jmorales/ciclofit/internal/errors"
)

// fieldNamePattern restricts OrderBy to plain field names since the field is
// interpolated into the json_extract expression.
var fieldNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// collectionOf returns the collection a document path belongs to, i.e. the
// path without its last segment.
func collectionOf(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[:idx]
	}
	return ""
}

func (s *SQLite) Get(ctx context.Context, path string) (json.RawMessage, error) {
	var data []byte
	err := s.readOnly.QueryRowContext(ctx,
		"SELECT data FROM documents WHERE path = ?", path).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(ErrNotFound, "get document", slog.String("path", path))
	}
	if err != nil {
		return nil, fmt.Errorf("get document %s: %w", path, err)
	}
	return data, nil
}

func (s *SQLite) Set(ctx context.Context, path string, value any, merge bool) (err error) {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", path, err)
	}

	tx, err := s.readWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	if merge {
		var existing []byte
		scanErr := tx.QueryRowContext(ctx,
			"SELECT data FROM documents WHERE path = ?", path).Scan(&existing)
		if scanErr != nil && !errors.Is(scanErr, sql.ErrNoRows) {
			return fmt.Errorf("read document for merge %s: %w", path, scanErr)
		}
		if existing != nil {
			if data, err = mergeDocuments(existing, data); err != nil {
				return fmt.Errorf("merge document %s: %w", path, err)
			}
		}
	}

	if err = upsert(ctx, tx, path, data); err != nil {
		return fmt.Errorf("set document %s: %w", path, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *SQLite) Update(ctx context.Context, path string, fields map[string]any) (err error) {
	overlay, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal fields for %s: %w", path, err)
	}

	tx, err := s.readWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	var existing []byte
	scanErr := tx.QueryRowContext(ctx,
		"SELECT data FROM documents WHERE path = ?", path).Scan(&existing)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return errors.Wrap(ErrNotFound, "update document", slog.String("path", path))
	}
	if scanErr != nil {
		return fmt.Errorf("read document for update %s: %w", path, scanErr)
	}

	data, err := mergeDocuments(existing, overlay)
	if err != nil {
		return fmt.Errorf("merge fields into %s: %w", path, err)
	}

	if err = upsert(ctx, tx, path, data); err != nil {
		return fmt.Errorf("update document %s: %w", path, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *SQLite) Add(ctx context.Context, collection string, value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal document for %s: %w", collection, err)
	}

	id := uuid.NewString()
	path := collection + "/" + id
	if _, err = s.readWrite.ExecContext(ctx,
		"INSERT INTO documents (path, collection, data) VALUES (?, ?, ?)",
		path, collection, string(data)); err != nil {
		return "", fmt.Errorf("add document to %s: %w", collection, err)
	}
	return id, nil
}

func (s *SQLite) Query(ctx context.Context, collection string, opts QueryOptions) ([]Document, error) {
	query := "SELECT path, data FROM documents WHERE collection = ?"
	if opts.OrderBy != "" {
		if !fieldNamePattern.MatchString(opts.OrderBy) {
			return nil, fmt.Errorf("invalid order-by field %q", opts.OrderBy)
		}
		query += fmt.Sprintf(" ORDER BY json_extract(data, '$.%s')", opts.OrderBy)
		if opts.Descending {
			query += " DESC"
		}
	}
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	rows, err := s.readOnly.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("query collection %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			path string
			data []byte
		)
		if err = rows.Scan(&path, &data); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, Document{ID: path[strings.LastIndex(path, "/")+1:], Data: data})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collection %s: %w", collection, err)
	}
	return docs, nil
}

// upsert writes the document and bumps updated_at on replacement.
func upsert(ctx context.Context, tx *sql.Tx, path string, data []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO documents (path, collection, data)
		VALUES (?, ?, ?)
		ON CONFLICT (path) DO UPDATE
		SET data       = excluded.data,
		    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
		path, collectionOf(path), string(data))
	if err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

// mergeDocuments overlays the top-level fields of overlay onto existing.
func mergeDocuments(existing, overlay []byte) ([]byte, error) {
	var base map[string]any
	if err := json.Unmarshal(existing, &base); err != nil {
		return nil, fmt.Errorf("unmarshal existing: %w", err)
	}
	var patch map[string]any
	if err := json.Unmarshal(overlay, &patch); err != nil {
		return nil, fmt.Errorf("unmarshal overlay: %w", err)
	}
	if base == nil {
		base = map[string]any{}
	}
	for key, value := range patch {
		base[key] = value
	}
	merged, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("marshal merged: %w", err)
	}
	return merged, nil
}
