// Package snapshot stores the program as a single gob-encoded file.
package snapshot

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/pkg/logger"
)

// Store implements curriculum.Store on top of one file. Saves write to a
// temporary file in the same directory and rename it over the target, so a
// failed save never leaves a truncated snapshot behind.
type Store struct {
	path string
	log  *logger.Logger
}

var _ curriculum.Store = (*Store)(nil)

// NewStore creates a store for the given file path.
func NewStore(path string, log *logger.Logger) *Store {
	return &Store{
		path: path,
		log:  log.With(logger.Component("snapshot_store"), logger.Path(path)),
	}
}

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// Save encodes the program and replaces the snapshot file.
func (s *Store) Save(ctx context.Context, p *curriculum.Program) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("snapshot: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := gob.NewEncoder(tmp).Encode(toRecord(p)); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("snapshot: replace file: %w", err)
	}

	s.log.Debug("snapshot written")
	return nil
}

// Load decodes the snapshot file. It returns (nil, nil) if the file does
// not exist.
func (s *Store) Load(ctx context.Context) (*curriculum.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("no snapshot found")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: open: %w", err)
	}
	defer f.Close()

	var rec programRecord
	if err := gob.NewDecoder(f).Decode(&rec); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}

	prog, err := fromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("snapshot: restore: %w", err)
	}

	s.log.Debug("snapshot loaded", logger.Int("modules", len(rec.Modules)))
	return prog, nil
}

// Exists reports whether the snapshot file is present.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("snapshot: stat: %w", err)
	}
	return true, nil
}

// Delete removes the snapshot file.
func (s *Store) Delete(ctx context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("snapshot: delete: %w", err)
	}
	return nil
}
