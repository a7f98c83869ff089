package gym

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmorales/ciclofit/internal/docstore"
)

// sessionRepository persists the append-only session history per user.
type sessionRepository struct {
	baseRepository
}

func (r *sessionRepository) Add(ctx context.Context, userID string, session Session) (string, error) {
	// The history is ordered by the serialized date string, so every stored
	// timestamp must use the same UTC offset to compare lexicographically.
	session.Date = session.Date.UTC()
	id, err := r.store.Add(ctx, gymPath(userID, "sessions"), session)
	if err != nil {
		return "", fmt.Errorf("add session: %w", err)
	}
	return id, nil
}

// List returns every stored session, newest first.
func (r *sessionRepository) List(ctx context.Context, userID string) ([]Session, error) {
	docs, err := r.store.Query(ctx, gymPath(userID, "sessions"), docstore.QueryOptions{
		OrderBy:    "date",
		Descending: true,
		Limit:      0,
	})
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	sessions := make([]Session, 0, len(docs))
	for _, doc := range docs {
		var session Session
		if err = json.Unmarshal(doc.Data, &session); err != nil {
			return nil, fmt.Errorf("unmarshal session %s: %w", doc.ID, err)
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
