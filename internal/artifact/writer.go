// Package artifact implements component C2: per-run directory creation and
// per-task log/manifest persistence.
package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// illegalFilenameChars are replaced with an underscore in sanitized names,
// per spec.md §4.2/§4.7.
const illegalFilenameChars = `<>/\|?*:"`

// CreateRunDir creates base/runs/<uuid>/ (recursively) and returns its path.
func CreateRunDir(base string) (string, error) {
	dir := filepath.Join(base, "runs", uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create run directory %s", dir)
	}
	return dir, nil
}

// WriteArtifact writes dir/name with content, truncating any existing file.
func WriteArtifact(dir, name string, content []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.Wrapf(err, "write artifact %s", path)
	}
	return nil
}

// Sanitize replaces filesystem-illegal characters in a task name with
// underscores so it is safe to use as (part of) a filename.
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalFilenameChars, r) {
			return '_'
		}
		return r
	}, name)
}

// Timestamp returns now, converted to UTC, formatted as YYYY-MM-DD_HH-MM-SS.
func Timestamp(now time.Time) string {
	return now.UTC().Format("2006-01-02_15-04-05")
}
