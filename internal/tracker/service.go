// Package tracker runs task list commands against a snapshot store.
package tracker

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/todo/internal/core/todo"
)

// TaskService wraps todo.Store with the load, operate, save cycle. Each call
// reads the whole snapshot, applies at most one operation, and writes the
// whole snapshot back. A failed operation never reaches Save.
type TaskService struct {
	store todo.Store
	log   zerolog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(store todo.Store, log zerolog.Logger) *TaskService {
	return &TaskService{
		store: store,
		log:   log.With().Str("component", "task-service").Logger(),
	}
}

// Load returns the current snapshot without writing it back.
func (s *TaskService) Load(ctx context.Context) *todo.List {
	return s.store.Load(ctx)
}

// Save replaces the snapshot.
func (s *TaskService) Save(ctx context.Context, list *todo.List) error {
	if err := s.store.Save(ctx, list); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Add inserts a task into the pending sequence.
func (s *TaskService) Add(ctx context.Context, title, status string) (todo.Entry, error) {
	var entry todo.Entry
	err := s.run(ctx, "add", func(l *todo.List) error {
		entry = l.Insert(title, status)
		return nil
	})
	if err != nil {
		return todo.Entry{}, err
	}

	s.log.Info().Ctx(ctx).Int("index", entry.Index).Str("title", title).Str("status", status).Msg("task added")
	return entry, nil
}

// Complete moves the pending task at index to done.
func (s *TaskService) Complete(ctx context.Context, index int) (todo.Task, error) {
	var task todo.Task
	err := s.run(ctx, "complete", func(l *todo.List) error {
		var err error
		task, err = l.Complete(index)
		return err
	})
	if err != nil {
		return todo.Task{}, err
	}

	s.log.Info().Ctx(ctx).Int("index", index).Str("title", task.Title).Msg("task completed")
	return task, nil
}

// Delete removes the pending task at index.
func (s *TaskService) Delete(ctx context.Context, index int) (todo.Task, error) {
	var task todo.Task
	err := s.run(ctx, "delete", func(l *todo.List) error {
		var err error
		task, err = l.Delete(index)
		return err
	})
	if err != nil {
		return todo.Task{}, err
	}

	s.log.Info().Ctx(ctx).Int("index", index).Str("title", task.Title).Msg("task deleted")
	return task, nil
}

// List returns both sequences with their indices. The snapshot is written
// back afterwards like every other command.
func (s *TaskService) List(ctx context.Context) (todo.Listing, error) {
	var listing todo.Listing
	err := s.run(ctx, "list", func(l *todo.List) error {
		listing = l.List()
		return nil
	})
	return listing, err
}

func (s *TaskService) run(ctx context.Context, op string, fn func(*todo.List) error) error {
	list := s.store.Load(ctx)

	if err := fn(list); err != nil {
		s.log.Debug().Ctx(ctx).Err(err).Str("op", op).Msg("operation rejected, snapshot untouched")
		return fmt.Errorf("%s: %w", op, err)
	}

	return s.Save(ctx, list)
}
