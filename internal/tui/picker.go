package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/fspick/fspick/internal/dialog"
	"github.com/fspick/fspick/internal/tui/theme"
)

// KeyMap defines keybindings for the picker
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Home      key.Binding
	End       key.Binding
	Enter     key.Binding
	Select    key.Binding
	Parent    key.Binding
	Back      key.Binding
	Forward   key.Binding
	Refresh   key.Binding
	Search    key.Binding
	NewDir    key.Binding
	SaveName  key.Binding
	Confirm   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "go to start"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "go to end"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open dir / select file"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Parent: key.NewBinding(
			key.WithKeys("backspace", "u"),
			key.WithHelp("bksp/u", "parent directory"),
		),
		Back: key.NewBinding(
			key.WithKeys("[", "alt+left"),
			key.WithHelp("[", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]", "alt+right"),
			key.WithHelp("]", "forward"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r/f5", "refresh"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NewDir: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new directory"),
		),
		SaveName: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "edit file name"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "confirm"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Select, k.Confirm, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Enter, k.Select, k.Parent, k.Back, k.Forward},
		{k.Search, k.NewDir, k.SaveName, k.Refresh},
		{k.Confirm, k.Help, k.Quit},
	}
}

type inputFocus int

const (
	focusList inputFocus = iota
	focusSearch
	focusSaveName
	focusCreateDir
)

// PickerModel renders one dialog session. All state and invariants live
// in the controller; the model only reads queries and emits commands.
type PickerModel struct {
	ctrl   *dialog.Controller
	keyMap KeyMap
	help   help.Model

	searchInput textinput.Model
	nameInput   textinput.Model
	dirInput    textinput.Model
	focus       inputFocus

	cursor       int
	scrollOffset int
	statusErr    string

	windowWidth  int
	windowHeight int
}

// NewPickerModel creates a picker over an already-opened controller
func NewPickerModel(ctrl *dialog.Controller) *PickerModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 128
	search.Width = 20

	name := textinput.New()
	name.Placeholder = "file name"
	name.CharLimit = 255
	name.Width = 32
	name.SetValue(ctrl.SaveName())

	dir := textinput.New()
	dir.Placeholder = "directory name"
	dir.CharLimit = 255
	dir.Width = 32

	h := help.New()

	return &PickerModel{
		ctrl:         ctrl,
		keyMap:       DefaultKeyMap(),
		help:         h,
		searchInput:  search,
		nameInput:    name,
		dirInput:     dir,
		windowWidth:  80,
		windowHeight: 24,
	}
}

// Init implements the bubbletea.Model interface
func (m *PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements the bubbletea.Model interface
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.focus {
		case focusSearch:
			return m.handleSearchKeys(msg)
		case focusSaveName:
			return m.handleSaveNameKeys(msg)
		case focusCreateDir:
			return m.handleCreateDirKeys(msg)
		}
		return m.handleListKeys(msg)

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleListKeys handles keys while the entry list has focus
func (m *PickerModel) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.visibleEntries()

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.ctrl.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.statusErr = ""

	case key.Matches(msg, m.keyMap.Down):
		if m.cursor+1 < len(entries) {
			m.cursor++
		}
		m.statusErr = ""

	case key.Matches(msg, m.keyMap.Home):
		m.cursor = 0

	case key.Matches(msg, m.keyMap.End):
		if len(entries) > 0 {
			m.cursor = len(entries) - 1
		}

	case key.Matches(msg, m.keyMap.Enter):
		if m.cursor < len(entries) {
			entry := entries[m.cursor]
			if entry.IsDir {
				m.navigate(entry.Path)
			} else {
				m.selectEntry(entry.Path)
			}
		}

	case key.Matches(msg, m.keyMap.Select):
		if m.cursor < len(entries) {
			m.selectEntry(entries[m.cursor].Path)
		}

	case key.Matches(msg, m.keyMap.Parent):
		if m.ctrl.CanGoUp() {
			if err := m.ctrl.Up(); err != nil {
				m.statusErr = err.Error()
			} else {
				m.resetCursor()
			}
		}

	case key.Matches(msg, m.keyMap.Back):
		if m.ctrl.Back() {
			m.resetCursor()
		}

	case key.Matches(msg, m.keyMap.Forward):
		if m.ctrl.Forward() {
			m.resetCursor()
		}

	case key.Matches(msg, m.keyMap.Refresh):
		m.ctrl.Refresh()
		m.statusErr = ""

	case key.Matches(msg, m.keyMap.Search):
		m.focus = focusSearch
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keyMap.NewDir):
		m.ctrl.OpenCreateDirectory()
		if m.ctrl.CreateDirOpen() {
			m.dirInput.SetValue("")
			m.focus = focusCreateDir
			return m, m.dirInput.Focus()
		}

	case key.Matches(msg, m.keyMap.SaveName):
		if m.ctrl.Mode() == dialog.SaveFile {
			m.focus = focusSaveName
			return m, m.nameInput.Focus()
		}

	case key.Matches(msg, m.keyMap.Confirm):
		return m.confirm()

	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleSearchKeys handles keys while the search field has focus
func (m *PickerModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchInput.SetValue("")
		fallthrough
	case tea.KeyEnter:
		m.searchInput.Blur()
		m.focus = focusList
		m.resetCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.resetCursor()
	return m, cmd
}

// handleSaveNameKeys handles keys while the save-name field has focus
func (m *PickerModel) handleSaveNameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyTab:
		m.nameInput.Blur()
		m.focus = focusList
		return m, nil
	case tea.KeyEnter:
		m.nameInput.Blur()
		m.focus = focusList
		return m.confirm()
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.ctrl.SetSaveName(m.nameInput.Value())
	return m, cmd
}

// handleCreateDirKeys handles keys while the new-directory field has focus
func (m *PickerModel) handleCreateDirKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.ctrl.CancelCreateDirectory()
		m.dirInput.Blur()
		m.focus = focusList
		return m, nil
	case tea.KeyEnter:
		if err := m.ctrl.CommitCreateDirectory(); err != nil {
			// Field error is rendered from the controller; keep focus so
			// the user can fix the name.
			return m, nil
		}
		m.dirInput.Blur()
		m.focus = focusList
		m.moveCursorToSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.dirInput, cmd = m.dirInput.Update(msg)
	m.ctrl.SetCreateDirectoryName(m.dirInput.Value())
	return m, cmd
}

// navigate loads a directory and resets the viewport on success
func (m *PickerModel) navigate(path string) {
	if err := m.ctrl.Navigate(path); err != nil {
		logrus.Warnf("Navigation to %s failed: %v", path, err)
		m.statusErr = err.Error()
		return
	}
	m.statusErr = ""
	m.resetCursor()
}

func (m *PickerModel) selectEntry(path string) {
	m.ctrl.Select(path)
	if m.ctrl.Mode() == dialog.SaveFile {
		m.nameInput.SetValue(m.ctrl.SaveName())
	}
}

func (m *PickerModel) confirm() (tea.Model, tea.Cmd) {
	if m.ctrl.Confirm() {
		return m, tea.Quit
	}
	m.statusErr = "selection is not valid for " + m.ctrl.Mode().String()
	return m, nil
}

func (m *PickerModel) resetCursor() {
	m.cursor = 0
	m.scrollOffset = 0
}

// moveCursorToSelection puts the cursor on the selected entry, used
// after a directory was created and auto-selected.
func (m *PickerModel) moveCursorToSelection() {
	selected, ok := m.ctrl.Selected()
	if !ok {
		return
	}
	for i, entry := range m.visibleEntries() {
		if entry.Path == selected {
			m.cursor = i
			return
		}
	}
}

func (m *PickerModel) visibleEntries() []dialog.Entry {
	return m.ctrl.Listing(m.searchInput.Value())
}

// listHeight returns the number of entry rows that fit the window
func (m *PickerModel) listHeight() int {
	h := m.windowHeight - 8 // header, bottom bar, footer
	if h < 3 {
		h = 3
	}
	return h
}

// adjustScroll keeps the cursor inside the visible window
func (m *PickerModel) adjustScroll() {
	height := m.listHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+height {
		m.scrollOffset = m.cursor - height + 1
	}
}

// View implements the bubbletea.Model interface
func (m *PickerModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	list := m.renderList()

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebar,
		lipgloss.NewStyle().Width(2).Render("  "),
		list,
	)

	bottom := m.renderBottomBar()
	footer := theme.CreateFooterStyle().Render(m.help.View(m.keyMap))

	return header + "\n" + content + "\n" + bottom + "\n" + footer
}

// renderHeader renders the mode title, navigation indicators,
// breadcrumb and search field.
func (m *PickerModel) renderHeader() string {
	title := theme.CreateHeaderStyle().Render(fmt.Sprintf("fspick - %s", m.ctrl.Mode()))

	nav := make([]string, 0, 3)
	nav = append(nav, navIndicator("◀", m.ctrl.CanGoBack()))
	nav = append(nav, navIndicator("▶", m.ctrl.CanGoForward()))
	nav = append(nav, navIndicator("▲", m.ctrl.CanGoUp()))

	crumbStyle := theme.CreateBreadcrumbStyle()
	sepStyle := theme.CreateSecondaryTextStyle()
	var crumbs []string
	for i, crumb := range m.ctrl.Breadcrumbs() {
		if i > 0 {
			crumbs = append(crumbs, sepStyle.Render(">"))
		}
		crumbs = append(crumbs, crumbStyle.Render(crumb.Name))
	}

	search := ""
	if m.focus == focusSearch || m.searchInput.Value() != "" {
		search = "  🔍 " + m.searchInput.View()
	}

	return title + "  " + strings.Join(nav, " ") + "  " + strings.Join(crumbs, " ") + search
}

func navIndicator(symbol string, enabled bool) string {
	if enabled {
		return theme.CreateBreadcrumbStyle().Render(symbol)
	}
	return theme.CreateSecondaryTextStyle().Render(symbol)
}

// renderSidebar renders the places panel with user directories and mounts
func (m *PickerModel) renderSidebar() string {
	var b strings.Builder
	header := theme.CreateSectionHeaderStyle()
	item := theme.CreateSecondaryTextStyle()

	b.WriteString(header.Render("Places"))
	b.WriteString("\n")

	dirs := m.ctrl.UserDirs()
	for _, place := range []struct {
		label string
		path  string
	}{
		{"🏠 Home", dirs.Home},
		{"🖵 Desktop", dirs.Desktop},
		{"🗐 Documents", dirs.Documents},
		{"📥 Downloads", dirs.Downloads},
		{"🖼 Pictures", dirs.Pictures},
		{"🎞 Videos", dirs.Videos},
	} {
		if place.path == "" {
			continue
		}
		b.WriteString(item.Render(place.label))
		b.WriteString("\n")
	}

	mounts := m.ctrl.Mounts()
	if len(mounts) > 0 {
		b.WriteString("\n")
		b.WriteString(header.Render("Devices"))
		b.WriteString("\n")
		for _, mount := range mounts {
			b.WriteString(item.Render("🖴 " + mount.Name))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Width(22).Render(b.String())
}

// renderList renders the visible window of the directory listing
func (m *PickerModel) renderList() string {
	entries := m.visibleEntries()
	if len(entries) == 0 {
		return theme.CreateSecondaryTextStyle().Render("No entries")
	}

	if m.cursor >= len(entries) {
		m.cursor = len(entries) - 1
	}
	m.adjustScroll()

	selected, _ := m.ctrl.Selected()
	height := m.listHeight()
	end := m.scrollOffset + height
	if end > len(entries) {
		end = len(entries)
	}

	var b strings.Builder
	for i := m.scrollOffset; i < end; i++ {
		entry := entries[i]

		icon := "🖹"
		style := theme.CreateBreadcrumbStyle()
		if entry.IsDir {
			icon = "🗀"
			style = theme.CreateDirectoryStyle()
		}

		marker := "  "
		if entry.Path == selected {
			marker = "✓ "
		}

		line := fmt.Sprintf("%s%s %s", marker, icon, entry.Name)
		if i == m.cursor {
			b.WriteString(theme.CreateSelectedRowStyle().Render(line))
		} else {
			b.WriteString(style.Render(line))
		}
		b.WriteString("\n")
	}

	count := theme.CreateSecondaryTextStyle().Render(fmt.Sprintf("%d entries", len(entries)))
	return b.String() + count
}

// renderBottomBar renders the selection / save-name row, the
// create-directory row when open, and any status error.
func (m *PickerModel) renderBottomBar() string {
	var b strings.Builder
	errStyle := theme.CreateErrorStyle()

	if m.ctrl.CreateDirOpen() {
		b.WriteString("🗀 New directory: ")
		b.WriteString(m.dirInput.View())
		if err := m.ctrl.CreateDirError(); err != nil {
			b.WriteString("  ")
			b.WriteString(errStyle.Render(errorMessage(err)))
		}
		b.WriteString("\n")
	}

	switch m.ctrl.Mode() {
	case dialog.SaveFile:
		b.WriteString("File name: ")
		b.WriteString(m.nameInput.View())
		if err := m.ctrl.SaveNameError(); err != nil {
			b.WriteString("  ")
			b.WriteString(errStyle.Render(errorMessage(err)))
		}
	case dialog.SelectDirectory:
		b.WriteString("Selected directory: " + m.renderSelection())
	default:
		b.WriteString("Selected file: " + m.renderSelection())
	}

	if m.statusErr != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.statusErr))
	}

	return b.String()
}

func (m *PickerModel) renderSelection() string {
	selected, ok := m.ctrl.Selected()
	if !ok || !m.ctrl.IsSelectionValid() {
		return theme.CreateSecondaryTextStyle().Render("none")
	}
	return theme.CreateHeaderStyle().Render(filepath.Base(selected))
}

// errorMessage prefers the bare field message over the full chain
func errorMessage(err error) string {
	var de *dialog.Error
	if errors.As(err, &de) {
		return de.Message()
	}
	return err.Error()
}
