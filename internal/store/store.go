// Package store owns the canonical task list and keeps it in sync with a
// single persisted slot. Every mutator saves before returning; if the save
// fails the in-memory list is rolled back.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"todolist/internal/domain"
	"todolist/internal/repository"
)

// DefaultKey is the slot the task list is stored under.
const DefaultKey = "tasks"

var (
	ErrNotFound  = errors.New("task not found")
	ErrAmbiguous = errors.New("task reference is ambiguous")
	ErrCorrupt   = errors.New("persisted task list is corrupt")
)

// LoadResult describes what Load found in the slot.
type LoadResult int

const (
	LoadAbsent LoadResult = iota
	LoadOK
	LoadCorrupt
)

func (r LoadResult) String() string {
	switch r {
	case LoadAbsent:
		return "absent"
	case LoadOK:
		return "ok"
	case LoadCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

type Store struct {
	repo   repository.SlotRepository
	key    string
	logger *slog.Logger

	tasks []domain.Task
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(repo repository.SlotRepository, key string, opts ...Option) *Store {
	if key == "" {
		key = DefaultKey
	}

	s := &Store{
		repo:   repo,
		key:    key,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tasks:  make([]domain.Task, 0),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Key is the slot key this store persists to.
func (s *Store) Key() string {
	return s.key
}

// Load replaces the in-memory list with the persisted one. An absent slot
// yields an empty list and no error. A corrupt slot yields an empty list,
// LoadCorrupt, and an error wrapping ErrCorrupt.
func (s *Store) Load(ctx context.Context) (LoadResult, error) {
	data, err := s.repo.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, repository.ErrSlotNotFound) {
			s.tasks = make([]domain.Task, 0)
			s.logger.Debug("no persisted tasks", "key", s.key)
			return LoadAbsent, nil
		}
		return LoadAbsent, fmt.Errorf("failed to read tasks: %w", err)
	}

	if isBlank(data) {
		s.tasks = make([]domain.Task, 0)
		return LoadAbsent, nil
	}

	tasks, assigned, err := Decode(data)
	if err != nil {
		s.tasks = make([]domain.Task, 0)
		s.logger.Warn("persisted tasks are corrupt", "key", s.key, "error", err)
		return LoadCorrupt, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	s.tasks = tasks
	s.logger.Debug("loaded tasks", "key", s.key, "count", len(tasks))

	// ids were missing in the stored data; persist the ones we made up so
	// they stay stable across runs
	if assigned {
		if err := s.Save(ctx); err != nil {
			return LoadOK, err
		}
	}

	return LoadOK, nil
}

// Save writes the whole list to the slot.
func (s *Store) Save(ctx context.Context) error {
	data, err := Encode(s.tasks)
	if err != nil {
		return err
	}

	if err := s.repo.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	s.logger.Debug("saved tasks", "key", s.key, "count", len(s.tasks))
	return nil
}

// Tasks returns a copy of the canonical list in insertion order.
func (s *Store) Tasks() []domain.Task {
	return slices.Clone(s.tasks)
}

func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (domain.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.tasks[i], nil
}

// Resolve finds a task by full id or unique id prefix.
func (s *Store) Resolve(ref string) (domain.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Task{}, fmt.Errorf("%w: empty reference", ErrNotFound)
	}

	if i := s.indexOf(ref); i >= 0 {
		return s.tasks[i], nil
	}

	var match *domain.Task
	for i := range s.tasks {
		if strings.HasPrefix(s.tasks[i].ID, ref) {
			if match != nil {
				return domain.Task{}, fmt.Errorf("%w: %s", ErrAmbiguous, ref)
			}
			match = &s.tasks[i]
		}
	}

	if match == nil {
		return domain.Task{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return *match, nil
}

// NewTaskInput carries the add-form fields. DueDate must already be in
// domain.DueDateLayout or empty.
type NewTaskInput struct {
	Title       string
	Priority    domain.Priority
	DueDate     string
	Description string
}

// Add appends a new, not completed task.
func (s *Store) Add(ctx context.Context, in NewTaskInput) (domain.Task, error) {
	task := domain.NewTask(strings.TrimSpace(in.Title))
	task.Priority = in.Priority
	task.DueDate = strings.TrimSpace(in.DueDate)
	task.Description = in.Description

	if err := task.Validate(); err != nil {
		return domain.Task{}, fmt.Errorf("validation failed: %w", err)
	}

	err := s.mutate(ctx, func(tasks []domain.Task) []domain.Task {
		return append(tasks, *task)
	})
	if err != nil {
		return domain.Task{}, err
	}

	s.logger.Info("task added", "id", task.ID, "title", task.Title)
	return *task, nil
}

// Delete removes the task with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	err := s.mutate(ctx, func(tasks []domain.Task) []domain.Task {
		return slices.Delete(tasks, i, i+1)
	})
	if err != nil {
		return err
	}

	s.logger.Info("task deleted", "id", id)
	return nil
}

// DeleteCompleted removes every completed task and reports how many.
func (s *Store) DeleteCompleted(ctx context.Context) (int, error) {
	before := len(s.tasks)

	err := s.mutate(ctx, func(tasks []domain.Task) []domain.Task {
		return slices.DeleteFunc(tasks, func(t domain.Task) bool {
			return t.Completed
		})
	})
	if err != nil {
		return 0, err
	}

	removed := before - len(s.tasks)
	s.logger.Info("completed tasks purged", "count", removed)
	return removed, nil
}

// Toggle flips the completion flag of the task with the given id.
func (s *Store) Toggle(ctx context.Context, id string) (domain.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	err := s.mutate(ctx, func(tasks []domain.Task) []domain.Task {
		tasks[i].Completed = !tasks[i].Completed
		return tasks
	})
	if err != nil {
		return domain.Task{}, err
	}

	task := s.tasks[i]
	s.logger.Info("task toggled", "id", id, "completed", task.Completed)
	return task, nil
}

// Replace swaps the whole list, used by import.
func (s *Store) Replace(ctx context.Context, tasks []domain.Task) error {
	seen := make(map[string]bool, len(tasks))
	next := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == "" || seen[t.ID] {
			t.ID = domain.NewID()
		}
		seen[t.ID] = true
		next = append(next, t)
	}

	return s.mutate(ctx, func([]domain.Task) []domain.Task {
		return next
	})
}

// Clear deletes the slot, including data that no longer decodes, and
// empties the list. Clearing an absent slot is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.key); err != nil && !errors.Is(err, repository.ErrSlotNotFound) {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	removed := len(s.tasks)
	s.tasks = make([]domain.Task, 0)
	s.logger.Info("task list cleared", "key", s.key, "count", removed)
	return nil
}

// mutate applies fn to a copy of the list, installs the result, and saves.
// The previous list is restored if the save fails.
func (s *Store) mutate(ctx context.Context, fn func([]domain.Task) []domain.Task) error {
	previous := s.tasks
	s.tasks = fn(slices.Clone(s.tasks))

	if err := s.Save(ctx); err != nil {
		s.tasks = previous
		s.logger.Error("save failed, change rolled back", "error", err)
		return err
	}

	return nil
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
}
