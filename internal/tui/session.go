package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"launchpad-client/internal/app"
	"launchpad-client/internal/domain"
)

const (
	listPaneWidth   = 32
	resultPaneWidth = 40
)

func (m Model) updateSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.questions = msg.view.Questions
		if msg.view.AllComplete {
			m.notice = app.AllDoneNotice()
		}
		return m, nil

	case questionActivatedMsg:
		m.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, domain.ErrIndexOutOfRange) {
				// Display-layer bug: log loudly, keep the session alive.
				m.logger.Printf("select intent out of range: %v", msg.err)
				return m, nil
			}
			return m, m.fail(msg.err)
		}
		view := msg.view
		m.active = &view
		m.cursor = msg.index - 1
		m.resultText = ""
		m.notice = ""
		m.quotaLabel = view.QuotaLabel
		m.description.SetContent(view.Description)
		m.description.GotoTop()
		m.answer.SetValue(view.Answer)
		if view.Editable {
			m.editing = true
			return m, m.answer.Focus()
		}
		m.editing = false
		m.answer.Blur()
		return m, nil

	case submissionResultMsg:
		m.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, domain.ErrSubmissionInFlight) ||
				errors.Is(msg.err, domain.ErrSubmissionLocked) ||
				errors.Is(msg.err, domain.ErrQuestionFinished) ||
				errors.Is(msg.err, domain.ErrQuestionNotFound) {
				m.logger.Printf("rejected submit intent for question %d: %v", msg.id, msg.err)
				return m, nil
			}
			return m, m.fail(msg.err)
		}
		out := msg.outcome
		m.quotaLabel = out.QuotaLabel
		m.notice = out.Notice
		m.resultText = out.Message
		m.accepted = out.Accepted
		if out.State != domain.StateOpen {
			if m.active != nil {
				m.active.Editable = false
				m.active.State = out.State
			}
			m.editing = false
			m.answer.Blur()
		}
		if out.Accepted && msg.index >= 1 && msg.index <= len(m.questions) {
			m.questions[msg.index-1].Finished = true
		}
		if out.AllComplete {
			m.notice = app.AllDoneNotice()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleSessionKey(msg)
	}

	return m, nil
}

func (m Model) handleSessionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// One intent at a time: while a call is outstanding the matching
	// controls are disabled wholesale.
	if m.busy {
		return m, nil
	}
	// The desktop client's answer box rejects paste; same here.
	if m.editing && msg.Paste {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.editing = false
		m.answer.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if m.active != nil && m.active.Editable {
			m.editing = !m.editing
			if m.editing {
				return m, m.answer.Focus()
			}
			m.answer.Blur()
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.active == nil || !m.active.Editable {
			return m, nil
		}
		m.busy = true
		return m, m.submitAnswerCmd(m.active.Index, m.active.ID, m.answer.Value())
	}

	if m.editing {
		var cmd tea.Cmd
		m.answer, cmd = m.answer.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.questions)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.questions) > 0 {
			m.busy = true
			return m, m.selectQuestionCmd(m.cursor + 1)
		}
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.description, cmd = m.description.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) sessionView() string {
	list := m.listPane()
	main := m.mainPane()
	result := m.resultPane()

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, main, result)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Logic Launchpad"))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) listPane() string {
	var b strings.Builder
	b.WriteString(listTitleStyle.Render("Questions List"))
	b.WriteString("\n")
	for i, q := range m.questions {
		b.WriteString(questionRow(i+1, q, i == m.cursor))
		b.WriteString("\n")
	}
	if len(m.questions) == 0 {
		b.WriteString(helpStyle.Render("loading..."))
	}
	return listStyle.Width(listPaneWidth).Render(b.String())
}

func (m Model) mainPane() string {
	var b strings.Builder
	if m.active == nil {
		b.WriteString(paneTitleStyle.Render("Select a question"))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("Select a question to view the description."))
	} else {
		b.WriteString(paneTitleStyle.Render(m.active.Title))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Description:"))
		b.WriteString("\n")
		b.WriteString(m.description.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Answer:"))
		b.WriteString("\n")
		b.WriteString(m.answer.View())
		b.WriteString("\n")
		b.WriteString(quotaStyle.Render(m.quotaLabel))
	}
	return paneStyle.Render(b.String())
}

func (m Model) resultPane() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Result:"))
	b.WriteString("\n")
	if m.resultText != "" {
		style := resultRejectedStyle
		if m.accepted {
			style = resultAcceptedStyle
		}
		b.WriteString(style.Render(m.resultText))
	}
	return paneStyle.Width(resultPaneWidth).Render(b.String())
}

func (m Model) statusBar() string {
	if m.notice != "" {
		return noticeStyle.Render(m.notice)
	}
	if m.busy {
		return helpStyle.Render("waiting for server...")
	}
	help := "↑/↓: navigate • enter: open question • ctrl+c: quit"
	if m.active != nil && m.active.Editable {
		help = "tab: list/editor • ctrl+s: submit • esc: back to list • ctrl+c: quit"
	}
	return helpStyle.Render(help)
}

// questionRow renders one list entry: 1-based index, title, and a check
// marker once the question is finished.
func questionRow(displayIndex int, q domain.QuestionSummary, selected bool) string {
	row := fmt.Sprintf("%d. %s", displayIndex, q.Title)
	if q.Finished {
		row += " ✓"
	}
	switch {
	case selected:
		return listSelectedStyle.Render("> " + row)
	case q.Finished:
		return listFinishedStyle.Render("  " + row)
	default:
		return listItemStyle.Render("  " + row)
	}
}

func descriptionHeight(total int) int {
	h := (total - 12) / 2
	if h < 5 {
		h = 5
	}
	return h
}

func editorHeight(total int) int {
	h := (total - 12) / 2
	if h < 5 {
		h = 5
	}
	return h
}
