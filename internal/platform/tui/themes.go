package tui

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openmoto/moto2d/internal/storage"
	"github.com/openmoto/moto2d/internal/theme"
)

// ThemesKeyMap defines the key bindings for the theme browser.
type ThemesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Verify key.Binding
	Back   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ThemesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Verify, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ThemesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Open}, {k.Verify, k.Back}}
}

// DefaultThemesKeyMap returns default key bindings.
func DefaultThemesKeyMap() ThemesKeyMap {
	return ThemesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Verify: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "verify files"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// themeDetail holds the loaded state of one theme for the detail view.
type themeDetail struct {
	name          string
	file          string
	spriteCounts  map[theme.SpriteType]int
	musics        int
	sounds        int
	requiredFiles int
	verified      bool
	mismatches    []theme.Mismatch
}

// ThemesModel is the Bubble Tea model for the theme browser.
type ThemesModel struct {
	store   *storage.Store
	dataDir string

	entries   []storage.ThemeEntry
	table     table.Model
	help      help.Model
	keys      ThemesKeyMap
	detail    *themeDetail
	width     int
	height    int
	status    string
	goingBack bool
}

// NewThemesModel creates a theme browser over the catalog.
func NewThemesModel(store *storage.Store, dataDir string, width, height int) ThemesModel {
	m := ThemesModel{
		store:   store,
		dataDir: dataDir,
		help:    help.New(),
		keys:    DefaultThemesKeyMap(),
		width:   width,
		height:  height,
	}

	entries, err := store.Themes()
	if err != nil {
		m.status = fmt.Sprintf("could not list themes: %v", err)
	}
	m.entries = entries
	m.table = m.createTable()
	return m
}

// createTable creates the catalog table.
func (m *ThemesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Theme", Width: 24},
		{Title: "File", Width: 48},
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{e.Name, e.File}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(maxInt(4, m.height-8)),
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

// Init initializes the browser.
func (m ThemesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ThemesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(4, msg.Height-8))
		return m, nil
	}

	return m, nil
}

// handleKey processes browser commands.
func (m ThemesModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if m.detail != nil {
			m.detail = nil
			return m, nil
		}
		m.goingBack = true
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if len(m.entries) == 0 {
			return m, nil
		}
		m.openDetail(false)
		return m, nil

	case key.Matches(msg, m.keys.Verify):
		if len(m.entries) == 0 {
			return m, nil
		}
		m.openDetail(true)
		return m, nil
	}

	if m.detail == nil {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// openDetail loads the selected theme and optionally verifies its files.
func (m *ThemesModel) openDetail(verify bool) {
	entry := m.entries[m.table.Cursor()]
	name, file := entry.Name, entry.File

	th := theme.New()
	if err := th.Load(file); err != nil {
		m.status = fmt.Sprintf("could not load %s: %v", name, err)
		return
	}

	d := &themeDetail{
		name:          th.Name(),
		file:          file,
		spriteCounts:  make(map[theme.SpriteType]int),
		musics:        len(th.Musics()),
		sounds:        len(th.Sounds()),
		requiredFiles: len(th.RequiredFiles()),
	}
	for _, s := range th.Sprites() {
		d.spriteCounts[s.Type()]++
	}

	if verify {
		mismatches, err := theme.Verify(th, m.dataDir)
		if err != nil {
			m.status = fmt.Sprintf("verify failed: %v", err)
		} else {
			d.verified = true
			d.mismatches = mismatches
		}
	}

	m.detail = d
	m.status = ""
}

// View renders the browser or the detail view.
func (m ThemesModel) View() string {
	if m.detail != nil {
		return m.viewDetail()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(" Themes"),
		m.table.View(),
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(m.status),
		m.help.View(m.keys),
	)
}

// viewDetail renders the loaded theme summary.
func (m ThemesModel) viewDetail() string {
	d := m.detail

	types := make([]theme.SpriteType, 0, len(d.spriteCounts))
	for t := range d.spriteCounts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(" Theme: " + d.name),
		"  file: " + d.file,
		"",
	}
	for _, t := range types {
		lines = append(lines, fmt.Sprintf("  %-18s %d", t.String(), d.spriteCounts[t]))
	}
	lines = append(lines,
		"",
		"  musics: "+strconv.Itoa(d.musics),
		"  sounds: "+strconv.Itoa(d.sounds),
		"  required files: "+strconv.Itoa(d.requiredFiles),
	)

	if d.verified {
		if len(d.mismatches) == 0 {
			lines = append(lines, "",
				lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("  all files verified"))
		} else {
			lines = append(lines, "",
				lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
					Render(fmt.Sprintf("  %d files failed verification:", len(d.mismatches))))
			for i, mm := range d.mismatches {
				if i == 10 {
					lines = append(lines, fmt.Sprintf("    ... and %d more", len(d.mismatches)-10))
					break
				}
				lines = append(lines, fmt.Sprintf("    %s (%s)", mm.Path, mm.Reason))
			}
		}
	}

	lines = append(lines, "", "  esc: back")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// GoingBack returns true if user requested to leave the browser.
func (m ThemesModel) GoingBack() bool {
	return m.goingBack
}
