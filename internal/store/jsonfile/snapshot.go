// Package jsonfile persists the task list as a single JSON snapshot file.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/colonyops/todo/internal/core/todo"
)

// SnapshotStore implements todo.Store on top of one JSON file.
type SnapshotStore struct {
	fs   afero.Fs
	path string
	log  zerolog.Logger
}

// NewSnapshotStore creates a store for the snapshot at path on the given filesystem.
// Use afero.NewOsFs() for the real filesystem or afero.NewMemMapFs() in tests.
func NewSnapshotStore(fs afero.Fs, path string, log zerolog.Logger) *SnapshotStore {
	return &SnapshotStore{
		fs:   fs,
		path: path,
		log:  log.With().Str("component", "snapshot").Str("path", path).Logger(),
	}
}

// NewOsSnapshotStore creates a store backed by the operating system filesystem.
func NewOsSnapshotStore(path string, log zerolog.Logger) *SnapshotStore {
	return NewSnapshotStore(afero.NewOsFs(), path, log)
}

// Path returns the snapshot file path.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Load reads the snapshot. Any problem reading or decoding the file yields an
// empty list; the cause is logged and never returned.
func (s *SnapshotStore) Load(ctx context.Context) *todo.List {
	list, err := s.read()
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug().Ctx(ctx).Msg("no snapshot, starting empty")
		} else {
			s.log.Warn().Ctx(ctx).Err(err).Msg("unusable snapshot, starting empty")
		}
		return todo.New()
	}

	s.log.Debug().Ctx(ctx).
		Int("pending", len(list.Pending)).
		Int("done", len(list.Done)).
		Msg("snapshot loaded")

	return list
}

// Save writes the snapshot atomically.
func (s *SnapshotStore) Save(ctx context.Context, list *todo.List) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	data, err := Encode(list)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	s.log.Debug().Ctx(ctx).
		Int("pending", len(list.Pending)).
		Int("done", len(list.Done)).
		Msg("snapshot saved")

	return nil
}

func (s *SnapshotStore) read() (*todo.List, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, err
	}

	return Decode(data)
}

// Encode serializes a list in snapshot form.
func Encode(list *todo.List) ([]byte, error) {
	snap := todo.List{
		Pending: nonNil(list.Pending),
		Done:    nonNil(list.Done),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	return data, nil
}

// Decode parses snapshot bytes. The document must match the snapshot schema:
// an object with "pending" and "done" arrays of {title, status} string objects.
func Decode(data []byte) (*todo.List, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("decode snapshot: empty file")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	if err := validate(doc); err != nil {
		return nil, err
	}

	var list todo.List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	list.Pending = nonNil(list.Pending)
	list.Done = nonNil(list.Done)
	return &list, nil
}

func nonNil(tasks []todo.Task) []todo.Task {
	if tasks == nil {
		return []todo.Task{}
	}
	return tasks
}
