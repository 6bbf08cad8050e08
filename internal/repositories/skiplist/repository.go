/*
Package skiplist implements the file-backed skip-list repository: one app ID
per non-comment line, regenerated with a fixed header on every write.
*/
package skiplist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fpsh/fpsh/internal/core/domain/skipset"
	"github.com/fpsh/fpsh/internal/core/ports"
)

// header is written at the top of the skip file on every persist.
const header = "# fpsh skip list\n# One Flatpak application ID per line; listed apps are excluded from sync.\n"

// FileRepository provides access to one skip-list file on disk.
type FileRepository struct {
	path string
}

// NewFileRepository creates a repository for the skip file at path.
func NewFileRepository(path string) (ports.SkipRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("skip file path cannot be empty")
	}
	return &FileRepository{path: path}, nil
}

// Load reads the skip file, ignoring comments and blank lines. An absent
// file yields an empty set.
func (r *FileRepository) Load() (*skipset.Set, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return skipset.New(), nil
		}
		return nil, fmt.Errorf("failed to open skip file %s: %w", r.path, err)
	}
	defer file.Close()

	set := skipset.New()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning skip file %s: %w", r.path, err)
	}
	return set, nil
}

// Persist overwrites the skip file with the fixed header followed by the IDs
// in sorted order, via a temporary file swapped into place.
func (r *FileRepository) Persist(set *skipset.Set) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	var b strings.Builder
	b.WriteString(header)
	for _, id := range set.IDs() {
		b.WriteString(id)
		b.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(dir, ".skip-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary skip file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write skip file %s: %w", r.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary skip file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set skip file permissions: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace skip file %s: %w", r.path, err)
	}
	return nil
}
