package dialog

import (
	"os"
	"path/filepath"
	"unicode/utf8"
)

// IsSelectionValid reports whether the current selection is acceptable
// for mode. In the select modes the selected path must exist, be of the
// right kind and have a displayable name. In SaveFile mode the selection
// itself is optional; only the absence of a save-name error matters.
func IsSelectionValid(mode OperationMode, selected string, saveNameErr error) bool {
	switch mode {
	case SaveFile:
		return saveNameErr == nil
	case SelectDirectory:
		if selected == "" || displayName(selected) == "" {
			return false
		}
		info, err := os.Stat(selected)
		return err == nil && info.IsDir()
	case SelectFile:
		if selected == "" || displayName(selected) == "" {
			return false
		}
		return isRegularFile(selected)
	default:
		return false
	}
}

// ValidateSaveName checks a proposed file name against the current
// directory. It returns nil when the name is usable, otherwise a
// validation error describing the problem. Existing directories with
// the same name are deliberately not rejected here; creating the file
// would fail later with a clearer error.
func ValidateSaveName(input, currentDir string) error {
	if input == "" {
		return NewValidationError("the file name cannot be empty")
	}

	if currentDir == "" {
		// Only reachable when the dialog has no current directory,
		// which indicates a bug in the caller rather than user error.
		return NewValidationError("currently not in a directory")
	}

	if isRegularFile(filepath.Join(currentDir, input)) {
		return NewValidationError("a file with this name already exists")
	}

	return nil
}

// isRegularFile reports whether path exists and is a regular file
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// displayName returns the base name of path when it can be shown as
// text, or "" when it cannot.
func displayName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) || !utf8.ValidString(name) {
		return ""
	}
	return name
}
