package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openmoto/moto2d/internal/storage"
)

// ProfilesModel is the Bubble Tea model for the profile picker.
type ProfilesModel struct {
	store *storage.Store

	profiles  []string
	cursor    int
	active    string
	entering  bool
	nameInput string
	status    string
	width     int
	height    int
	goingBack bool
	selected  string // Set when user activates a profile
}

// NewProfilesModel creates a profile picker with the given active profile.
func NewProfilesModel(store *storage.Store, active string, width, height int) ProfilesModel {
	m := ProfilesModel{
		store:  store,
		active: active,
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// reload refreshes the profile list from the store.
func (m *ProfilesModel) reload() {
	profiles, err := m.store.Profiles()
	if err != nil {
		m.status = fmt.Sprintf("could not list profiles: %v", err)
		return
	}
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	m.profiles = names
	if m.cursor >= len(m.profiles) {
		m.cursor = maxInt(0, len(m.profiles)-1)
	}
}

// Init initializes the picker.
func (m ProfilesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ProfilesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.entering {
			return m.handleNameInput(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleNameInput collects the new profile name, one key at a time.
func (m ProfilesModel) handleNameInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.entering = false
		m.nameInput = ""
		m.status = ""

	case "enter":
		name := strings.TrimSpace(m.nameInput)
		m.entering = false
		m.nameInput = ""
		if name == "" {
			m.status = "profile name cannot be empty"
			return m, nil
		}
		if err := m.store.CreateProfile(name); err != nil {
			m.status = fmt.Sprintf("could not create profile: %v", err)
			return m, nil
		}
		m.status = "created profile " + name
		m.reload()

	case "backspace":
		if len(m.nameInput) > 0 {
			m.nameInput = m.nameInput[:len(m.nameInput)-1]
		}

	default:
		if len(msg.Runes) == 1 {
			m.nameInput += string(msg.Runes)
		}
	}

	return m, nil
}

// handleKey processes picker commands.
func (m ProfilesModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.goingBack = true

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.profiles)-1 {
			m.cursor++
		}

	case "n":
		m.entering = true
		m.nameInput = ""
		m.status = ""

	case "d":
		if len(m.profiles) == 0 {
			return m, nil
		}
		name := m.profiles[m.cursor]
		if name == m.active {
			m.status = "cannot delete the active profile"
			return m, nil
		}
		if err := m.store.DeleteProfile(name); err != nil {
			m.status = fmt.Sprintf("could not delete profile: %v", err)
			return m, nil
		}
		m.status = "deleted profile " + name
		m.reload()

	case "enter":
		if len(m.profiles) == 0 {
			return m, nil
		}
		m.active = m.profiles[m.cursor]
		m.selected = m.active
		m.status = "active profile: " + m.active
	}

	return m, nil
}

// View renders the picker.
func (m ProfilesModel) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(" Profiles"))
	b.WriteString("\n\n")

	if len(m.profiles) == 0 {
		b.WriteString("  no profiles yet — press n to create one\n")
	}
	for i, p := range m.profiles {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		marker := ""
		if p == m.active {
			marker = " (active)"
		}
		b.WriteString(fmt.Sprintf("%s%s%s\n", cursor, p, marker))
	}

	b.WriteString("\n")
	if m.entering {
		b.WriteString("  new profile name: " + m.nameInput + "_\n")
	} else {
		b.WriteString("  enter: activate  |  n: new  |  d: delete  |  esc: back\n")
	}

	if m.status != "" {
		b.WriteString("\n  ")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(m.status))
		b.WriteString("\n")
	}

	return b.String()
}

// GoingBack returns true if user requested to leave the picker.
func (m ProfilesModel) GoingBack() bool {
	return m.goingBack
}

// Active returns the currently selected active profile.
func (m ProfilesModel) Active() string {
	return m.active
}
