// Package tui provides the interactive terminal editor for the display
// configuration. It follows the Elm architecture via Bubbletea: edits are
// written through the console service immediately, push runs as a command.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hellolumen/lumenctl/internal/core/domain"
	"github.com/hellolumen/lumenctl/internal/core/ports/driving"
)

// row identifies an editable line in the editor.
type row int

const (
	rowLeft row = iota
	rowCenter
	rowRight
	rowTheme
	rowOrientation
	rowSpeed
	rowAccent
	rowCount
)

var rowLabels = map[row]string{
	rowLeft:        "Left",
	rowCenter:      "Center",
	rowRight:       "Right",
	rowTheme:       "Theme",
	rowOrientation: "Orientation",
	rowSpeed:       "Speed",
	rowAccent:      "Accent",
}

// pushResultMsg reports the outcome of an async push.
type pushResultMsg struct {
	ok bool
}

// viewType selects which editor surface is shown.
type viewType int

const (
	viewDisplay viewType = iota
	viewIntegration
)

// Model is the configuration editor.
type Model struct {
	console driving.ConsoleService
	styles  *Styles

	view    viewType
	cursor  row
	editing bool
	pushing bool
	status  string
	err     error

	accentInput textinput.Model

	// Integration view state.
	integration string
	field       integrationField
	fieldInput  textinput.Model
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// NewModel creates the editor over the given console service.
func NewModel(console driving.ConsoleService) *Model {
	accent := textinput.New()
	accent.Placeholder = "#ff8800"
	accent.CharLimit = 7
	accent.Width = 10

	field := textinput.New()
	field.Width = 48

	integration := domain.IntegrationSpotify
	if names := console.State().Integrations.Names(); len(names) > 0 {
		integration = names[0]
	}

	return &Model{
		console:     console,
		styles:      DefaultStyles(),
		accentInput: accent,
		fieldInput:  field,
		integration: integration,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pushResultMsg:
		m.pushing = false
		if msg.ok {
			m.status = "Config uploaded successfully"
			m.err = nil
		} else {
			m.err = errors.New("failed to upload config")
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.view == viewIntegration {
			return m.updateIntegration(msg)
		}
		if m.editing {
			return m.updateAccentEdit(msg)
		}
		return m.updateNavigation(msg)
	}
	return m, nil
}

func (m *Model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.view = viewIntegration
		m.err = nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < rowCount-1 {
			m.cursor++
		}
	case "left", "h":
		m.cycle(-1)
	case "right", "l":
		m.cycle(1)
	case "enter":
		if m.cursor == rowAccent {
			m.editing = true
			m.accentInput.SetValue(m.console.State().Display.AccentColor)
			m.accentInput.Focus()
			return m, textinput.Blink
		}
		m.cycle(1)
	case "p":
		if !m.pushing {
			m.pushing = true
			m.status = "Uploading..."
			m.err = nil
			return m, m.pushCmd()
		}
	}
	return m, nil
}

func (m *Model) updateAccentEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.accentInput.Blur()
		return m, nil
	case "enter":
		if err := m.console.SetAccentColor(m.accentInput.Value()); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.editing = false
		m.accentInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.accentInput, cmd = m.accentInput.Update(msg)
	return m, cmd
}

// cycle advances the value under the cursor by delta.
func (m *Model) cycle(delta int) {
	display := m.console.State().Display
	var err error

	switch m.cursor {
	case rowLeft, rowCenter, rowRight:
		region := regionFor(m.cursor)
		widgets := domain.AllWidgets()
		next := widgets[step(indexOfWidget(widgets, display.Widget(region)), delta, len(widgets))]
		err = m.console.SetWidget(region, next)
	case rowTheme:
		themes := domain.AllThemes()
		next := themes[step(indexOfTheme(themes, display.Theme), delta, len(themes))]
		err = m.console.SetTheme(next)
	case rowOrientation:
		orientations := domain.AllOrientations()
		next := orientations[step(indexOfOrientation(orientations, display.Orientation), delta, len(orientations))]
		err = m.console.SetOrientation(next)
	case rowSpeed:
		err = m.console.SetCharactersPerSecond(display.CharactersPerSecond + delta)
	case rowAccent:
		// Edited via text input, not cycled.
		return
	}

	if err != nil {
		m.err = err
	} else {
		m.err = nil
	}
}

func (m *Model) pushCmd() tea.Cmd {
	return func() tea.Msg {
		return pushResultMsg{ok: m.console.PushDisplayConfig(context.Background())}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.view == viewIntegration {
		return m.integrationView()
	}

	display := m.console.State().Display
	out := m.styles.Title.Render("Lumen Display Configuration") + "\n"

	for r := row(0); r < rowCount; r++ {
		value := m.rowValue(r, display)
		line := m.styles.Label.Render(rowLabels[r]) + " " + m.styles.Value.Render(value)
		if r == m.cursor {
			line = m.styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		out += line + "\n"
	}

	switch {
	case m.err != nil:
		out += m.styles.Error.Render(m.err.Error())
	case m.status != "":
		out += m.styles.Status.Render(m.status)
	}

	out += m.styles.Help.Render("\n↑/↓ select · ←/→ change · enter edit accent · tab integrations · p push · q quit")
	return out
}

func (m *Model) rowValue(r row, display domain.DisplayConfig) string {
	switch r {
	case rowLeft, rowCenter, rowRight:
		return display.Widget(regionFor(r)).String()
	case rowTheme:
		return display.Theme.String()
	case rowOrientation:
		return display.Orientation.String()
	case rowSpeed:
		return fmt.Sprintf("%d chars/s", display.CharactersPerSecond)
	case rowAccent:
		if m.editing {
			return m.accentInput.View()
		}
		return display.AccentColor
	default:
		return ""
	}
}

// Run starts the editor and blocks until it exits.
func Run(console driving.ConsoleService) error {
	program := tea.NewProgram(NewModel(console), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

func regionFor(r row) domain.Region {
	switch r {
	case rowCenter:
		return domain.RegionCenter
	case rowRight:
		return domain.RegionRight
	default:
		return domain.RegionLeft
	}
}

// step advances index by delta, wrapping around length.
func step(index, delta, length int) int {
	return ((index+delta)%length + length) % length
}

func indexOfWidget(widgets []domain.Widget, w domain.Widget) int {
	for i, candidate := range widgets {
		if candidate == w {
			return i
		}
	}
	return 0
}

func indexOfTheme(themes []domain.Theme, t domain.Theme) int {
	for i, candidate := range themes {
		if candidate == t {
			return i
		}
	}
	return 0
}

func indexOfOrientation(orientations []domain.Orientation, o domain.Orientation) int {
	for i, candidate := range orientations {
		if candidate == o {
			return i
		}
	}
	return 0
}
