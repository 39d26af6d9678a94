package dialog

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Controller owns one dialog session: the mode, the lifecycle state,
// the navigation history, the current listing snapshot, the selection
// and save-name input, and the create-directory sub-dialog. Every
// operation runs synchronously to completion; the controller is meant
// to be driven by a single logical caller and carries no locking.
type Controller struct {
	mode       OperationMode
	state      State
	result     string
	initialDir string
	showHidden bool

	catalog   *Catalog
	history   History
	listing   []Entry
	createDir CreateDirDialog

	selected    string
	saveName    string
	saveNameErr error

	userDirsProvider UserDirsProvider
	mountProvider    MountProvider
	userDirs         UserDirs
	mounts           []Mount
}

// NewController creates a closed controller whose sessions start in
// initialDir. An empty initialDir falls back to the process working
// directory.
func NewController(initialDir string) *Controller {
	if initialDir == "" {
		initialDir = "."
	}
	return &Controller{
		initialDir:       initialDir,
		showHidden:       true,
		catalog:          NewCatalog(),
		userDirsProvider: NewUserDirsProvider(),
		mountProvider:    NewMountProvider(),
	}
}

// SetProviders replaces the places providers. Mainly useful in tests.
func (c *Controller) SetProviders(users UserDirsProvider, mounts MountProvider) {
	c.userDirsProvider = users
	c.mountProvider = mounts
}

// SetShowHidden controls whether dot-file entries appear in Listing
func (c *Controller) SetShowHidden(show bool) {
	c.showHidden = show
}

// Open starts a new session in the configured initial directory.
func (c *Controller) Open(mode OperationMode) {
	c.OpenAt(mode, c.initialDir)
}

// OpenAt starts a new session in the given directory. All prior session
// state is discarded. A directory that cannot be loaded is not fatal:
// the session opens with an empty listing and no history.
func (c *Controller) OpenAt(mode OperationMode, dir string) {
	c.reset()
	c.mode = mode
	c.state = StateOpen
	c.refreshPlaces()

	if mode == SaveFile {
		c.saveNameErr = ValidateSaveName(c.saveName, "")
	}

	if err := c.loadDirectory(dir); err != nil {
		logrus.Warnf("Failed to load initial directory %s: %v", dir, err)
	}
}

// Navigate loads path as the new current directory, recording it in the
// history. Navigating to the already-current directory is a no-op; use
// Refresh to force a reload. On load failure the listing, history and
// selection are left untouched and the error is returned for display.
func (c *Controller) Navigate(path string) error {
	return c.loadDirectory(path)
}

// Back moves one entry towards the oldest visited directory and reloads
// the listing. It reports false when no older entry exists.
func (c *Controller) Back() bool {
	if !c.history.Back() {
		return false
	}
	c.reloadCurrent(true)
	return true
}

// Forward moves one entry towards the most recent visited directory and
// reloads the listing. It reports false when no newer entry exists.
func (c *Controller) Forward() bool {
	if !c.history.Forward() {
		return false
	}
	c.reloadCurrent(true)
	return true
}

// Up navigates to the parent of the current directory
func (c *Controller) Up() error {
	parent, ok := c.parentDir()
	if !ok {
		return nil
	}
	return c.Navigate(parent)
}

// Refresh reloads the current listing and re-derives the places panel
// without touching history or selection.
func (c *Controller) Refresh() {
	c.refreshPlaces()
	c.reloadCurrent(false)
}

// Select marks path as the selected item. In SaveFile mode selecting an
// existing regular file seeds the save-name input with that file's
// name, proposing to overwrite it.
func (c *Controller) Select(path string) {
	c.selected = path

	if c.mode == SaveFile {
		if name := displayName(path); name != "" && isRegularFile(path) {
			c.SetSaveName(name)
		}
	}
}

// SetSaveName replaces the save-name text and re-validates it against
// the current directory.
func (c *Controller) SetSaveName(text string) {
	c.saveName = text
	c.revalidateSaveName()
}

// Confirm finishes the session with the current selection. It reports
// false, leaving the session open, when the selection is not valid for
// the mode.
func (c *Controller) Confirm() bool {
	if !c.IsSelectionValid() {
		return false
	}

	switch c.mode {
	case SaveFile:
		cur, ok := c.history.Current()
		if !ok {
			// IsSelectionValid already guards this: without a current
			// directory the save name carries a validation error.
			return false
		}
		c.result = filepath.Join(cur, c.saveName)
	default:
		c.result = c.selected
	}

	c.state = StateSelected
	return true
}

// Cancel finishes the session without a result
func (c *Controller) Cancel() {
	c.state = StateCancelled
}

// OpenCreateDirectory opens the create-directory sub-dialog for the
// current directory. Without a current directory it does nothing.
func (c *Controller) OpenCreateDirectory() {
	if cur, ok := c.history.Current(); ok {
		c.createDir.Open(cur)
	}
}

// SetCreateDirectoryName replaces the sub-dialog's name text
func (c *Controller) SetCreateDirectoryName(text string) {
	c.createDir.SetInput(text)
}

// CommitCreateDirectory creates the named directory. On success the new
// path is folded into the listing and selected, and the sub-dialog
// closes. On failure the sub-dialog stays open with a field error.
func (c *Controller) CommitCreateDirectory() error {
	path, err := c.createDir.Commit()
	if err != nil {
		return err
	}
	c.CreateDirectoryResult(path)
	return nil
}

// CancelCreateDirectory discards the sub-dialog
func (c *Controller) CancelCreateDirectory() {
	c.createDir.Close()
}

// CreateDirectoryResult inserts a freshly created directory into the
// listing and selects it. This is the one point where the sub-dialog's
// output re-enters the main listing.
func (c *Controller) CreateDirectoryResult(path string) {
	c.listing = append(c.listing, Entry{
		Path:  path,
		Name:  filepath.Base(path),
		IsDir: true,
	})
	c.Select(path)
}

// State returns the lifecycle state of the session
func (c *Controller) State() State {
	return c.state
}

// Mode returns the operation mode of the session
func (c *Controller) Mode() OperationMode {
	return c.mode
}

// Result returns the selected path once the session reached
// StateSelected.
func (c *Controller) Result() (string, bool) {
	if c.state != StateSelected {
		return "", false
	}
	return c.result, true
}

// CurrentDirectory returns the directory whose contents populate the
// listing, or false when no directory has been loaded.
func (c *Controller) CurrentDirectory() (string, bool) {
	return c.history.Current()
}

// Breadcrumbs decomposes the current directory into path segments with
// their cumulative absolute paths, root first.
func (c *Controller) Breadcrumbs() []Crumb {
	cur, ok := c.history.Current()
	if !ok {
		return nil
	}

	sep := string(filepath.Separator)
	crumbs := []Crumb{}
	if strings.HasPrefix(cur, sep) {
		crumbs = append(crumbs, Crumb{Name: sep, Path: sep})
		cur = strings.TrimPrefix(cur, sep)
	}

	acc := crumbs
	path := ""
	if len(acc) > 0 {
		path = sep
	}
	for _, segment := range strings.Split(cur, sep) {
		if segment == "" {
			continue
		}
		path = filepath.Join(path, segment)
		acc = append(acc, Crumb{Name: segment, Path: path})
	}
	return acc
}

// Listing returns the current snapshot, optionally narrowed by a
// case-insensitive substring match against entry names. Hidden entries
// are dropped when the controller is configured to hide them. The
// snapshot order is preserved.
func (c *Controller) Listing(filter string) []Entry {
	needle := strings.ToLower(filter)
	out := make([]Entry, 0, len(c.listing))
	for _, e := range c.listing {
		if !c.showHidden && strings.HasPrefix(e.Name, ".") {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Name), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CanGoBack reports whether Back would move
func (c *Controller) CanGoBack() bool {
	return c.history.CanGoBack()
}

// CanGoForward reports whether Forward would move
func (c *Controller) CanGoForward() bool {
	return c.history.CanGoForward()
}

// CanGoUp reports whether the current directory has a parent
func (c *Controller) CanGoUp() bool {
	_, ok := c.parentDir()
	return ok
}

// Selected returns the selected item, or false when nothing is selected
func (c *Controller) Selected() (string, bool) {
	if c.selected == "" {
		return "", false
	}
	return c.selected, true
}

// IsSelectionValid reports whether Confirm would succeed right now
func (c *Controller) IsSelectionValid() bool {
	return IsSelectionValid(c.mode, c.selected, c.saveNameErr)
}

// SaveName returns the save-name text
func (c *Controller) SaveName() string {
	return c.saveName
}

// SaveNameError returns the save-name field error, nil when the name is
// usable.
func (c *Controller) SaveNameError() error {
	return c.saveNameErr
}

// CreateDirOpen reports whether the create-directory sub-dialog is open
func (c *Controller) CreateDirOpen() bool {
	return c.createDir.IsOpen()
}

// CreateDirInput returns the sub-dialog's name text
func (c *Controller) CreateDirInput() string {
	return c.createDir.Input()
}

// CreateDirError returns the sub-dialog's field error
func (c *Controller) CreateDirError() error {
	return c.createDir.Err()
}

// UserDirs returns the places panel's user directories as of the last
// open or refresh.
func (c *Controller) UserDirs() UserDirs {
	return c.userDirs
}

// Mounts returns the places panel's mounted filesystems as of the last
// open or refresh.
func (c *Controller) Mounts() []Mount {
	return c.mounts
}

// loadDirectory canonicalizes path, no-ops when it is already current,
// otherwise loads its contents and records the visit. History is only
// mutated after the load succeeded, so a failed navigation leaves the
// session exactly as it was.
func (c *Controller) loadDirectory(path string) error {
	canonical, err := c.catalog.Canonicalize(path)
	if err != nil {
		return err
	}

	if cur, ok := c.history.Current(); ok && cur == canonical {
		return nil
	}

	_, entries, err := c.catalog.Load(canonical)
	if err != nil {
		logrus.Warnf("Failed to load directory %s: %v", canonical, err)
		return err
	}

	c.history.NavigateTo(canonical)
	c.applyListing(entries, true)
	return nil
}

// reloadCurrent reloads the listing for the current directory without
// touching history. On failure the listing goes stale rather than the
// session failing; the error is logged and swallowed.
func (c *Controller) reloadCurrent(clearSelection bool) {
	cur, ok := c.history.Current()
	if !ok {
		return
	}

	_, entries, err := c.catalog.Load(cur)
	if err != nil {
		logrus.Warnf("Failed to reload directory %s: %v", cur, err)
		return
	}

	c.applyListing(entries, clearSelection)
}

// applyListing installs a fresh snapshot. The create-directory
// sub-dialog closes on every content load since its parent directory
// may no longer be the current one.
func (c *Controller) applyListing(entries []Entry, clearSelection bool) {
	c.listing = entries
	c.createDir.Close()
	if clearSelection {
		c.selected = ""
	}
	c.revalidateSaveName()
}

func (c *Controller) revalidateSaveName() {
	if c.mode != SaveFile || c.state != StateOpen {
		return
	}
	cur, _ := c.history.Current()
	c.saveNameErr = ValidateSaveName(c.saveName, cur)
}

func (c *Controller) refreshPlaces() {
	c.userDirs = c.userDirsProvider.UserDirs()
	c.mounts = c.mountProvider.Mounts()
}

func (c *Controller) parentDir() (string, bool) {
	cur, ok := c.history.Current()
	if !ok {
		return "", false
	}
	parent := filepath.Dir(cur)
	if parent == cur {
		return "", false
	}
	return parent, true
}

func (c *Controller) reset() {
	c.state = StateClosed
	c.result = ""
	c.history.Reset()
	c.listing = nil
	c.createDir.Close()
	c.selected = ""
	c.saveName = ""
	c.saveNameErr = nil
	c.userDirs = UserDirs{}
	c.mounts = nil
}
