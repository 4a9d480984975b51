// Package memory holds an in-process SlotRepository for tests, with write
// failures that can be switched on.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"todolist/internal/repository"
)

type SlotRepository struct {
	mu    sync.RWMutex
	slots map[string]string

	// FailWrites makes Set return an error, for exercising save failures.
	FailWrites bool
}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{slots: make(map[string]string)}
}

func (r *SlotRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.slots[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", repository.ErrSlotNotFound, key)
	}
	return value, nil
}

func (r *SlotRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("slot key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWrites {
		return errors.New("failed to write slot: write disabled")
	}
	r.slots[key] = value
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.slots[key]; !ok {
		return fmt.Errorf("%w: %s", repository.ErrSlotNotFound, key)
	}
	delete(r.slots, key)
	return nil
}
