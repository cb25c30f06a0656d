// Package filex has small filesystem helpers for the client's download
// directory and local state files.
package filex

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// EnsureDir creates base/name (and parents) with 0770 permissions and
// returns the absolute path. An empty base means the working directory.
func EnsureDir(base, name string) (string, error) {
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		base = cwd
	}

	dir, err := filepath.Abs(filepath.Join(base, name))
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", name, err)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// EnsureParent creates the parent directory of file when it is missing.
func EnsureParent(file string) error {
	dir := filepath.Dir(file)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// BaseName returns the last element of a slash-separated remote path,
// stripped of any query string. It never returns "", "." or "/".
func BaseName(remote string) string {
	if i := strings.IndexAny(remote, "?#"); i >= 0 {
		remote = remote[:i]
	}
	name := path.Base(remote)
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}
