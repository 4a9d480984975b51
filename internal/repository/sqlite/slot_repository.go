package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todolist/internal/repository"
)

type SlotRepository struct {
	db *DB
}

func NewSlotRepository(db *DB) *SlotRepository {
	return &SlotRepository{db: db}
}

type dbSlot struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// get the value stored under key
func (r *SlotRepository) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT key, value, updated_at FROM slots WHERE key = ?`

	var slot dbSlot
	if err := r.db.GetContext(ctx, &slot, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", repository.ErrSlotNotFound, key)
		}
		return "", fmt.Errorf("failed to get slot: %w", err)
	}

	return slot.Value, nil
}

// insert or replace the value stored under key
func (r *SlotRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("slot key cannot be empty")
	}

	query := `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}

	return nil
}

// remove a slot
func (r *SlotRepository) Delete(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("%w: %s", repository.ErrSlotNotFound, key)
	}

	return nil
}
