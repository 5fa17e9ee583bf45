package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuEntry identifies a top-level screen reachable from the menu.
type MenuEntry int

const (
	MenuEntryControls MenuEntry = iota
	MenuEntryThemes
	MenuEntryProfiles
	MenuEntryQuit
)

var menuEntryTitles = map[MenuEntry]string{
	MenuEntryControls: "Controls",
	MenuEntryThemes:   "Themes",
	MenuEntryProfiles: "Profiles",
	MenuEntryQuit:     "Quit",
}

// MenuModel is the Bubble Tea model for the top-level menu.
type MenuModel struct {
	entries   []MenuEntry
	cursor    int
	width     int
	height    int
	profile   string
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuEntry // Set when user selects an entry
}

// NewMenuModel creates a new menu model.
func NewMenuModel(profile string, width, height int) MenuModel {
	return MenuModel{
		entries: []MenuEntry{
			MenuEntryControls,
			MenuEntryThemes,
			MenuEntryProfiles,
			MenuEntryQuit,
		},
		width:     width,
		height:    height,
		profile:   profile,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.entries[m.cursor]
		if selected == MenuEntryQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
		return m, nil
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  M O T O 2 D  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	subtitle := "Profile: " + m.profile
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+menuEntryTitles[entry], m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu entry, or nil if none selected.
func (m MenuModel) Selected() *MenuEntry {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
