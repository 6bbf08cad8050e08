/*
Package aliasfile implements the file-backed alias repository. It parses the
persisted alias file into the domain store, and rewrites it atomically by
writing a temporary file in the same directory and renaming it into place,
so readers never observe a truncated file.
*/
package aliasfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"github.com/fpsh/fpsh/internal/core/domain/aliasfile"
	"github.com/fpsh/fpsh/internal/core/ports"
	"github.com/fpsh/fpsh/pkg/logging"
)

const (
	lockRetryDelay = 50 * time.Millisecond
	lockTimeout    = 2 * time.Second
)

// FileRepository provides access to one alias file on disk.
type FileRepository struct {
	path    string
	useLock bool
	logger  zerolog.Logger
}

// NewFileRepository creates a repository for the alias file at path.
// When useLock is set, every read-modify-write cycle takes a non-blocking
// advisory lock with bounded retry; by default no locking is done and
// concurrent writers race last-writer-wins, matching the original design.
func NewFileRepository(path string, useLock bool) (ports.AliasRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("alias file path cannot be empty")
	}
	return &FileRepository{
		path:    path,
		useLock: useLock,
		logger:  logging.GetLogger("aliasfile"),
	}, nil
}

// Path returns the alias file location.
func (r *FileRepository) Path() string {
	return r.path
}

// Load parses the alias file. An absent file is an empty store; any other
// read failure is fatal to the current operation.
func (r *FileRepository) Load() (*aliasfile.Store, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return aliasfile.NewStore(), nil
		}
		return nil, fmt.Errorf("failed to read alias file %s: %w", ToUserFriendlyPath(r.path), err)
	}
	return aliasfile.Parse(string(data)), nil
}

// Update runs one read-modify-write cycle. The store seen by fn reflects the
// file at lock-acquisition time; if fn returns an error nothing is written.
func (r *FileRepository) Update(fn func(*aliasfile.Store) error) error {
	if r.useLock {
		unlock, err := r.acquireLock()
		if err != nil {
			return err
		}
		defer unlock()
	}

	store, err := r.Load()
	if err != nil {
		return err
	}
	if err := fn(store); err != nil {
		return err
	}
	return r.persist(store)
}

// persist writes the serialized store to a temporary file beside the target
// and renames it into place.
func (r *FileRepository) persist(store *aliasfile.Store) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".aliases-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary alias file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(store.Serialize()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write alias file %s: %w", ToUserFriendlyPath(r.path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary alias file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set alias file permissions: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace alias file %s: %w", ToUserFriendlyPath(r.path), err)
	}
	r.logger.Debug().Str("path", r.path).Msg("alias file rewritten")
	return nil
}

// acquireLock takes the advisory lock with retry/backoff bounded by
// lockTimeout. The lock is scoped to the single read-modify-write window and
// callers must resolve all operator prompts before entering it.
func (r *FileRepository) acquireLock() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for lock: %w", err)
	}
	fl := flock.New(r.path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	ok, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to lock alias file %s: %w", ToUserFriendlyPath(r.path), err)
	}
	if !ok {
		return nil, fmt.Errorf("alias file %s is locked by another process", ToUserFriendlyPath(r.path))
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			r.logger.Warn().Err(err).Msg("failed to release alias file lock")
		}
	}, nil
}
