package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/openmoto/moto2d/internal/storage"
)

// sessionState identifies which screen the session currently shows.
type sessionState int

const (
	stateMenu sessionState = iota
	stateControls
	stateThemes
	stateProfiles
)

// SessionModel manages the menu -> screen -> menu flow. It is the
// top-level model for both local and SSH sessions.
type SessionModel struct {
	store   *storage.Store
	dataDir string
	profile string
	width   int
	height  int

	state    sessionState
	menu     MenuModel
	controls ControlsModel
	themes   ThemesModel
	profiles ProfilesModel
	quitting bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(store *storage.Store, dataDir, profile string, width, height int) SessionModel {
	return SessionModel{
		store:   store,
		dataDir: dataDir,
		profile: profile,
		width:   width,
		height:  height,
		menu:    NewMenuModel(profile, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.state {
	case stateControls:
		return m.updateControls(msg)
	case stateThemes:
		return m.updateThemes(msg)
	case stateProfiles:
		return m.updateProfiles(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		switch *selected {
		case MenuEntryControls:
			m.state = stateControls
			m.controls = NewControlsModel(m.store, m.profile, m.width, m.height)
			return m, m.controls.Init()
		case MenuEntryThemes:
			m.state = stateThemes
			m.themes = NewThemesModel(m.store, m.dataDir, m.width, m.height)
			return m, m.themes.Init()
		case MenuEntryProfiles:
			m.state = stateProfiles
			m.profiles = NewProfilesModel(m.store, m.profile, m.width, m.height)
			return m, m.profiles.Init()
		}
	}

	return m, cmd
}

// updateControls handles updates when in the controls editor.
func (m SessionModel) updateControls(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.controls.Update(msg)
	if controlsModel, ok := newModel.(ControlsModel); ok {
		m.controls = controlsModel
	}

	if m.controls.GoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateThemes handles updates when in the theme browser.
func (m SessionModel) updateThemes(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.themes.Update(msg)
	if themesModel, ok := newModel.(ThemesModel); ok {
		m.themes = themesModel
	}

	if m.themes.GoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateProfiles handles updates when in the profile picker.
func (m SessionModel) updateProfiles(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.profiles.Update(msg)
	if profilesModel, ok := newModel.(ProfilesModel); ok {
		m.profiles = profilesModel
	}

	// Profile activation applies to the rest of the session.
	m.profile = m.profiles.Active()

	if m.profiles.GoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu resets the session to a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.menu = NewMenuModel(m.profile, m.width, m.height)
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateControls:
		return m.controls.View()
	case stateThemes:
		return m.themes.View()
	case stateProfiles:
		return m.profiles.View()
	default:
		return m.menu.View()
	}
}

// Profile returns the profile active at the end of the session.
func (m SessionModel) Profile() string {
	return m.profile
}

// RunSession runs a local terminal session and returns the profile that
// was active when it ended.
func RunSession(store *storage.Store, dataDir, profile string, width, height int) (string, error) {
	model := NewSessionModel(store, dataDir, profile, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return profile, err
	}

	if m, ok := finalModel.(SessionModel); ok {
		return m.Profile(), nil
	}
	return profile, nil
}
