package gym

import (
	"context"
	"encoding/json"
	"fmt"
)

// evaluationRepository persists the single evaluation document per user.
type evaluationRepository struct {
	baseRepository
}

func (r *evaluationRepository) Get(ctx context.Context, userID string) (Evaluation, error) {
	var eval Evaluation
	data, err := r.store.Get(ctx, gymPath(userID, "evaluation"))
	if err != nil {
		return eval, fmt.Errorf("get evaluation: %w", err)
	}
	if err = json.Unmarshal(data, &eval); err != nil {
		return eval, fmt.Errorf("unmarshal evaluation: %w", err)
	}
	return eval, nil
}

// Set merges the evaluation over the stored document so that fields written
// by other devices survive partial updates.
func (r *evaluationRepository) Set(ctx context.Context, userID string, eval Evaluation) error {
	if err := r.store.Set(ctx, gymPath(userID, "evaluation"), eval, true); err != nil {
		return fmt.Errorf("set evaluation: %w", err)
	}
	return nil
}
