package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openmoto/moto2d/internal/input"
	"github.com/openmoto/moto2d/internal/storage"
)

// controlRow ties a table row back to the binding it shows.
type controlRow struct {
	global bool
	g      input.GlobalAction
	player int
	a      input.PlayerAction
}

// ControlsKeyMap defines the key bindings for the controls editor.
type ControlsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Rebind key.Binding
	Unbind key.Binding
	Reset  key.Binding
	Save   key.Binding
	Back   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ControlsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Rebind, k.Unbind, k.Save, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ControlsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Rebind, k.Unbind},
		{k.Reset, k.Save, k.Back},
	}
}

// DefaultControlsKeyMap returns default key bindings.
func DefaultControlsKeyMap() ControlsKeyMap {
	return ControlsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Rebind: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "rebind"),
		),
		Unbind: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "unbind"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "defaults"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// ControlsModel is the Bubble Tea model for the key binding editor.
type ControlsModel struct {
	store   *storage.Store
	profile string
	handler *input.Handler

	rows      []controlRow
	table     table.Model
	help      help.Model
	keys      ControlsKeyMap
	width     int
	height    int
	capturing bool
	status    string
	dirty     bool
	goingBack bool
}

// NewControlsModel creates a controls editor for a profile, loading its
// stored bindings on top of the defaults.
func NewControlsModel(store *storage.Store, profile string, width, height int) ControlsModel {
	handler := input.NewHandler()
	status := ""
	if err := handler.Load(store, profile); err != nil {
		status = fmt.Sprintf("could not load bindings: %v", err)
	}

	m := ControlsModel{
		store:   store,
		profile: profile,
		handler: handler,
		help:    help.New(),
		keys:    DefaultControlsKeyMap(),
		width:   width,
		height:  height,
		status:  status,
	}
	m.rows = buildControlRows()
	m.table = m.createTable()
	m.refreshRows()
	return m
}

// buildControlRows lists every editable binding: player actions by slot,
// then the global actions.
func buildControlRows() []controlRow {
	var rows []controlRow
	for p := 0; p < input.NumPlayers; p++ {
		for a := input.PlayerAction(0); a < input.NumPlayerActions; a++ {
			rows = append(rows, controlRow{player: p, a: a})
		}
	}
	for g := input.GlobalAction(0); g < input.NumGlobalActions; g++ {
		rows = append(rows, controlRow{global: true, g: g})
	}
	return rows
}

// createTable creates the binding table.
func (m *ControlsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Scope", Width: 10},
		{Title: "Action", Width: 32},
		{Title: "Key", Width: 24},
	}

	height := m.height - 8
	if height < 4 {
		height = 4
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// refreshRows rebuilds the table rows from the handler state.
func (m *ControlsModel) refreshRows() {
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		if r.global {
			keyLabel := m.handler.GlobalKey(r.g).Label()
			if !m.handler.GlobalKeyCustomizable(r.g) {
				keyLabel += " (fixed)"
			}
			rows[i] = table.Row{"Global", m.handler.GlobalKeyHelp(r.g), keyLabel}
			continue
		}
		rows[i] = table.Row{
			fmt.Sprintf("Player %d", r.player+1),
			m.handler.PlayerKeyHelp(r.a, r.player),
			m.handler.PlayerKey(r.a, r.player).Label(),
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the controls editor.
func (m ControlsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ControlsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.capturing {
			return m.handleCapture(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(4, msg.Height-8))
		return m, nil
	}

	return m, nil
}

// handleCapture assigns the next pressed key to the selected binding.
func (m ControlsModel) handleCapture(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.capturing = false

	if msg.String() == "esc" {
		m.status = "rebind cancelled"
		return m, nil
	}

	newKey := KeyFromMsg(msg)
	row := m.rows[m.table.Cursor()]

	if !row.global && !m.handler.IsFreeKey(newKey) {
		m.status = fmt.Sprintf("%s is already bound to another action", newKey.Label())
		return m, nil
	}

	if row.global {
		m.handler.SetGlobalKey(row.g, newKey)
	} else {
		m.handler.SetPlayerKey(row.a, row.player, newKey)
	}
	m.dirty = true
	m.status = fmt.Sprintf("bound %s", newKey.Label())
	m.refreshRows()
	return m, nil
}

// handleKey processes editor commands.
func (m ControlsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		return m, nil

	case key.Matches(msg, m.keys.Rebind):
		row := m.rows[m.table.Cursor()]
		if row.global && !m.handler.GlobalKeyCustomizable(row.g) {
			m.status = "this binding cannot be changed"
			return m, nil
		}
		m.capturing = true
		m.status = "press a key (esc to cancel)"
		return m, nil

	case key.Matches(msg, m.keys.Unbind):
		row := m.rows[m.table.Cursor()]
		if row.global {
			if !m.handler.GlobalKeyCustomizable(row.g) {
				m.status = "this binding cannot be changed"
				return m, nil
			}
			m.handler.SetGlobalKey(row.g, input.Key{})
		} else {
			m.handler.SetPlayerKey(row.a, row.player, input.Key{})
		}
		m.dirty = true
		m.status = "unbound"
		m.refreshRows()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.handler.SetDefaults()
		m.dirty = true
		m.status = "defaults restored (not yet saved)"
		m.refreshRows()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		if err := m.handler.Save(m.store, m.profile); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
		} else {
			m.dirty = false
			m.status = "saved to profile " + m.profile
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the editor.
func (m ControlsModel) View() string {
	header := fmt.Sprintf(" Controls — %s", m.profile)
	if m.dirty {
		header += " *"
	}

	status := m.status
	if m.capturing {
		status = "press a key (esc to cancel)"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(header),
		m.table.View(),
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(status),
		m.help.View(m.keys),
	)
}

// GoingBack returns true if user requested to leave the editor.
func (m ControlsModel) GoingBack() bool {
	return m.goingBack
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
