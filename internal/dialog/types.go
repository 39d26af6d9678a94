package dialog

// OperationMode determines what kind of path a dialog session accepts.
// It is fixed for the duration of one session.
type OperationMode int

const (
	// SelectFile accepts an existing regular file.
	SelectFile OperationMode = iota
	// SelectDirectory accepts an existing directory.
	SelectDirectory
	// SaveFile accepts a typed file name resolved against the current directory.
	SaveFile
)

// String returns a human readable mode name
func (m OperationMode) String() string {
	switch m {
	case SelectFile:
		return "select file"
	case SelectDirectory:
		return "select directory"
	case SaveFile:
		return "save file"
	default:
		return "unknown"
	}
}

// State represents the lifecycle of one dialog session.
// StateSelected and StateCancelled are terminal; a new Open call resets to StateOpen.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateSelected
	StateCancelled
)

// String returns a human readable state name
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateSelected:
		return "selected"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Entry is one immediate child of the current directory as captured by the
// last listing snapshot. The presentation layer reads these instead of
// re-statting paths.
type Entry struct {
	Path  string
	Name  string
	IsDir bool
}

// Crumb is one segment of the current directory path, paired with the
// absolute path up to and including that segment.
type Crumb struct {
	Name string
	Path string
}

// Mount describes one mounted filesystem the dialog can jump to.
type Mount struct {
	Name string
	Path string
}

// UserDirs holds the well-known user directories shown in the places panel.
// Any field may be empty when the directory does not exist.
type UserDirs struct {
	Home      string
	Desktop   string
	Documents string
	Downloads string
	Pictures  string
	Videos    string
}
