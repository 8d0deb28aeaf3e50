package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hellolumen/lumenctl/internal/core/domain"
)

// integrationField identifies an editable OAuth registration field.
type integrationField int

const (
	fieldClientID integrationField = iota
	fieldClientSecret
	fieldAuthorizeURL
	fieldCallbackURL
	fieldTokenURL
	fieldCount
)

var fieldLabels = map[integrationField]string{
	fieldClientID:     "Client ID",
	fieldClientSecret: "Client Secret",
	fieldAuthorizeURL: "Authorize URL",
	fieldCallbackURL:  "Callback URL",
	fieldTokenURL:     "Token URL",
}

func (f integrationField) value(cfg domain.OAuthClientConfig) string {
	switch f {
	case fieldClientID:
		return cfg.ClientID
	case fieldClientSecret:
		return cfg.ClientSecret
	case fieldAuthorizeURL:
		return cfg.AuthorizeURL
	case fieldCallbackURL:
		return cfg.CallbackURL
	case fieldTokenURL:
		return cfg.GetTokenURL
	default:
		return ""
	}
}

func (f integrationField) apply(cfg *domain.OAuthClientConfig, value string) {
	switch f {
	case fieldClientID:
		cfg.ClientID = value
	case fieldClientSecret:
		cfg.ClientSecret = value
	case fieldAuthorizeURL:
		cfg.AuthorizeURL = value
	case fieldCallbackURL:
		cfg.CallbackURL = value
	case fieldTokenURL:
		cfg.GetTokenURL = value
	}
}

func (m *Model) updateIntegration(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateIntegrationEdit(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.view = viewDisplay
		m.err = nil
	case "up", "k":
		if m.field > 0 {
			m.field--
		}
	case "down", "j":
		if m.field < fieldCount-1 {
			m.field++
		}
	case "left", "h":
		m.cycleIntegration(-1)
	case "right", "l":
		m.cycleIntegration(1)
	case "enter":
		cfg, err := m.console.Integration(m.integration)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.editing = true
		m.fieldInput.SetValue(m.field.value(cfg))
		m.fieldInput.Focus()
		return m, nil
	}
	return m, nil
}

func (m *Model) updateIntegrationEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.fieldInput.Blur()
		return m, nil
	case "enter":
		cfg, err := m.console.Integration(m.integration)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.field.apply(&cfg, m.fieldInput.Value())
		if err := m.console.SetIntegration(m.integration, cfg); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.editing = false
		m.fieldInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.fieldInput, cmd = m.fieldInput.Update(msg)
	return m, cmd
}

// cycleIntegration moves to the previous or next registered integration.
func (m *Model) cycleIntegration(delta int) {
	names := m.console.State().Integrations.Names()
	if len(names) == 0 {
		return
	}
	index := 0
	for i, name := range names {
		if name == m.integration {
			index = i
			break
		}
	}
	m.integration = names[step(index, delta, len(names))]
}

func (m *Model) integrationView() string {
	cfg, err := m.console.Integration(m.integration)
	if err != nil {
		return m.styles.Error.Render(err.Error())
	}

	out := m.styles.Title.Render("Integration: "+m.integration) + "\n"
	for f := integrationField(0); f < fieldCount; f++ {
		value := f.value(cfg)
		if f == fieldClientSecret && !(m.editing && f == m.field) {
			value = maskValue(value)
		}
		if m.editing && f == m.field {
			value = m.fieldInput.View()
		}
		if value == "" {
			value = "(not set)"
		}
		line := m.styles.Label.Render(fieldLabels[f]) + " " + m.styles.Value.Render(value)
		if f == m.field {
			line = m.styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		out += line + "\n"
	}

	status := "ready"
	if !cfg.HasCredentials() {
		status = "incomplete"
	}
	out += m.styles.Status.Render("Status: " + status)

	if m.err != nil {
		out += m.styles.Error.Render("\n" + m.err.Error())
	}

	out += m.styles.Help.Render("\n↑/↓ select · ←/→ integration · enter edit · tab display · q quit")
	return out
}

func maskValue(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
