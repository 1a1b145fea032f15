// Package cvmatch attaches inbound CV documents to the right candidate via
// a priority cascade over sender identity, message references, fuzzy names
// and document content, fanning one file out to every awaiting application.
package cvmatch

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const maxFilenameLen = 200

var unsafeFilenameChars = regexp.MustCompile(`[^\w\-.]`)

// FileStore writes CV files under a flat directory with collision-free
// names.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// SanitizeFilename strips anything outside [A-Za-z0-9_.-] and caps the
// length so stored names are safe on any filesystem.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if len(name) > maxFilenameLen {
		name = name[len(name)-maxFilenameLen:]
	}
	if name == "" || name == "." {
		name = "upload"
	}
	return name
}

// Save writes data under a UUID-prefixed sanitized name and returns the
// stored path.
func (s *FileStore) Save(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create CV directory: %w", err)
	}

	prefix := strings.ReplaceAll(uuid.NewString(), "-", "")
	path := filepath.Join(s.dir, prefix+"_"+SanitizeFilename(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write CV file: %w", err)
	}
	return path, nil
}
