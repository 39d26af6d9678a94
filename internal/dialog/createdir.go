package dialog

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// CreateDirDialog is the nested sub-dialog for naming and creating one
// new directory inside a fixed parent. It exists only while open; the
// owning controller closes it whenever the user navigates away, since
// the parent reference would otherwise go stale.
type CreateDirDialog struct {
	open   bool
	parent string
	input  string
	err    error
}

// Open starts the sub-dialog for the given parent directory. Input is
// reset and validated immediately so the empty-name error shows before
// the first edit.
func (d *CreateDirDialog) Open(parent string) {
	d.reset()
	d.open = true
	d.parent = parent
	d.err = d.validate()
}

// Close discards the sub-dialog state
func (d *CreateDirDialog) Close() {
	d.reset()
}

// IsOpen reports whether the sub-dialog is active
func (d *CreateDirDialog) IsOpen() bool {
	return d.open
}

// Parent returns the directory the new directory will be created in
func (d *CreateDirDialog) Parent() string {
	return d.parent
}

// Input returns the current name text
func (d *CreateDirDialog) Input() string {
	return d.input
}

// Err returns the current field error, nil when the name is usable
func (d *CreateDirDialog) Err() error {
	return d.err
}

// SetInput replaces the name text and re-validates it
func (d *CreateDirDialog) SetInput(text string) {
	if !d.open {
		return
	}
	d.input = text
	d.err = d.validate()
}

// Commit attempts to create parent/input. On success the sub-dialog
// closes and the new path is returned for the caller to fold into its
// listing. On failure the underlying error becomes the field error and
// the sub-dialog stays open with the input intact.
func (d *CreateDirDialog) Commit() (string, error) {
	if !d.open {
		return "", NewValidationError("create directory dialog is not open")
	}
	if d.err != nil {
		return "", d.err
	}

	path := filepath.Join(d.parent, d.input)
	if err := os.Mkdir(path, 0o755); err != nil {
		logrus.Warnf("Failed to create directory %s: %v", path, err)
		d.err = NewIOError("failed to create directory", path, err)
		return "", d.err
	}

	d.Close()
	return path, nil
}

func (d *CreateDirDialog) validate() error {
	if d.input == "" {
		return NewValidationError("the directory name cannot be empty")
	}

	if info, err := os.Stat(filepath.Join(d.parent, d.input)); err == nil && info.IsDir() {
		return NewValidationError("a directory with this name already exists")
	}

	return nil
}

func (d *CreateDirDialog) reset() {
	d.open = false
	d.parent = ""
	d.input = ""
	d.err = nil
}
