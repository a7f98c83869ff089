package gym

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmorales/ciclofit/internal/docstore"
)

// prRepository persists personal records keyed by exercise ID.
type prRepository struct {
	baseRepository
}

func (r *prRepository) Get(ctx context.Context, userID, exerciseID string) (PersonalRecord, error) {
	var record PersonalRecord
	data, err := r.store.Get(ctx, gymPath(userID, "prs", exerciseID))
	if err != nil {
		return record, fmt.Errorf("get personal record: %w", err)
	}
	if err = json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("unmarshal personal record: %w", err)
	}
	return record, nil
}

func (r *prRepository) Set(ctx context.Context, userID string, record PersonalRecord) error {
	if err := r.store.Set(ctx, gymPath(userID, "prs", record.ExerciseID), record, false); err != nil {
		return fmt.Errorf("set personal record: %w", err)
	}
	return nil
}

// List returns all personal records keyed by exercise ID.
func (r *prRepository) List(ctx context.Context, userID string) (map[string]PersonalRecord, error) {
	docs, err := r.store.Query(ctx, gymPath(userID, "prs"), docstore.QueryOptions{
		OrderBy:    "",
		Descending: false,
		Limit:      0,
	})
	if err != nil {
		return nil, fmt.Errorf("query personal records: %w", err)
	}

	records := make(map[string]PersonalRecord, len(docs))
	for _, doc := range docs {
		var record PersonalRecord
		if err = json.Unmarshal(doc.Data, &record); err != nil {
			return nil, fmt.Errorf("unmarshal personal record %s: %w", doc.ID, err)
		}
		if record.ExerciseID == "" {
			record.ExerciseID = doc.ID
		}
		records[doc.ID] = record
	}
	return records, nil
}
