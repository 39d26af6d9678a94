package dialog

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Catalog loads directory listings from the filesystem. Listings are
// wholesale snapshots; nothing is updated incrementally.
type Catalog struct{}

// NewCatalog creates a catalog
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Canonicalize resolves path to an absolute form with symlinks and
// relative segments resolved.
func (c *Catalog) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", NewIOError("failed to resolve path", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", NewIOError("failed to resolve path", path, err)
	}
	return resolved, nil
}

// Load canonicalizes path and enumerates its immediate children. It
// returns the canonical path together with the entries. Entries whose
// name is not valid text are dropped from the listing; that loss is
// logged at debug level, not reported as an error. Ordering is whatever
// the filesystem returns.
func (c *Catalog) Load(path string) (string, []Entry, error) {
	canonical, err := c.Canonicalize(path)
	if err != nil {
		return "", nil, err
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", nil, NewIOError("failed to stat directory", canonical, err)
	}
	if !info.IsDir() {
		return "", nil, NewIOError("not a directory", canonical, nil)
	}

	children, err := os.ReadDir(canonical)
	if err != nil {
		return "", nil, NewIOError("failed to read directory", canonical, err)
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		name := child.Name()
		if !utf8.ValidString(name) {
			logrus.Debugf("Dropping entry with non-representable name in %s", canonical)
			continue
		}
		entries = append(entries, Entry{
			Path:  filepath.Join(canonical, name),
			Name:  name,
			IsDir: child.IsDir(),
		})
	}

	return canonical, entries, nil
}
