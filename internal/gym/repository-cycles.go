package gym

import (
	"context"
	"encoding/json"
	"fmt"
)

// cycleRepository persists the single current-cycle document per user.
// Writes are last-write-wins.
type cycleRepository struct {
	baseRepository
}

func (r *cycleRepository) Get(ctx context.Context, userID string) (Cycle, error) {
	var cycle Cycle
	data, err := r.store.Get(ctx, gymPath(userID, "currentCycle"))
	if err != nil {
		return cycle, fmt.Errorf("get cycle: %w", err)
	}
	if err = json.Unmarshal(data, &cycle); err != nil {
		return cycle, fmt.Errorf("unmarshal cycle: %w", err)
	}
	return cycle, nil
}

func (r *cycleRepository) Set(ctx context.Context, userID string, cycle Cycle) error {
	if err := r.store.Set(ctx, gymPath(userID, "currentCycle"), cycle, false); err != nil {
		return fmt.Errorf("set cycle: %w", err)
	}
	return nil
}

// Update reads the current cycle, applies modify and writes the result back
// when modify reports a change. The document must exist.
func (r *cycleRepository) Update(ctx context.Context, userID string, modify func(*Cycle) (bool, error)) (Cycle, error) {
	cycle, err := r.Get(ctx, userID)
	if err != nil {
		return cycle, err
	}

	changed, err := modify(&cycle)
	if err != nil {
		return cycle, fmt.Errorf("modify cycle: %w", err)
	}
	if !changed {
		return cycle, nil
	}

	if err = r.Set(ctx, userID, cycle); err != nil {
		return cycle, err
	}
	return cycle, nil
}
