package repository

import (
	"context"
	"errors"
)

// ErrSlotNotFound is returned by Get when nothing is stored under the key.
var ErrSlotNotFound = errors.New("slot not found")

// SlotRepository is a string key-value store. The task list lives in a
// single slot as one serialized value.
type SlotRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
