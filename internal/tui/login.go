package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"launchpad-client/internal/domain"
)

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loggingIn {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setLoginFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setLoginFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "enter":
			if m.focus < fieldPassword {
				m.setLoginFocus(m.focus + 1)
				return m, nil
			}
			if strings.TrimSpace(m.inputs[fieldUsername].Value()) == "" {
				m.loginErr = "Username is required."
				return m, nil
			}
			m.loginErr = ""
			m.loggingIn = true
			return m, m.loginCmd()
		}

	case loginResultMsg:
		m.loggingIn = false
		if msg.err != nil {
			// A rejected login is retryable; anything else means the
			// server is unreachable.
			if errors.Is(msg.err, domain.ErrLoginFailed) {
				m.loginErr = msg.err.Error()
			} else {
				m.logger.Printf("login transport error: %v", msg.err)
				m.loginErr = "Unable to connect to server."
			}
			return m, nil
		}
		m.ctrl = msg.ctrl
		m.mode = modeSession
		m.notice = msg.welcome
		m.busy = true
		return m, m.loadCatalogCmd()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setLoginFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m Model) loginView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Logic Launchpad — Login"))
	b.WriteString("\n\n")
	labels := []string{"Server URL:", "Username:", "Password:"}
	for i, input := range m.inputs {
		b.WriteString(loginLabelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	if m.loggingIn {
		b.WriteString("\n" + helpStyle.Render("Logging in..."))
	} else if m.loginErr != "" {
		b.WriteString("\n" + errorStyle.Render(m.loginErr))
	}
	b.WriteString("\n\n" + helpStyle.Render("enter: login • tab: next field • ctrl+c: quit"))
	return loginBoxStyle.Render(b.String())
}
