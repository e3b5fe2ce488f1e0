// Package tui is the display layer: it renders controller state and turns
// key presses into controller intents. All quiz rules live in internal/app;
// this package only draws what it is told and forwards what the user did.
package tui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"launchpad-client/internal/app"
	"launchpad-client/internal/domain"
	"launchpad-client/internal/gateway"
)

// viewMode represents the current screen.
type viewMode int

const (
	modeLogin viewMode = iota
	modeSession
)

// Messages produced by commands wrapping controller calls.

type loginResultMsg struct {
	ctrl    *app.SessionController
	welcome string
	err     error
}

type catalogLoadedMsg struct {
	view app.CatalogView
	err  error
}

type questionActivatedMsg struct {
	index int
	view  app.QuestionView
	err   error
}

type submissionResultMsg struct {
	index   int
	id      int
	outcome app.SubmissionOutcome
	err     error
}

// Model is the root Bubble Tea model.
type Model struct {
	width  int
	height int
	mode   viewMode
	keys   KeyMap
	logger *log.Logger

	timeout time.Duration

	// Login form.
	inputs    []textinput.Model
	focus     int
	loginErr  string
	loggingIn bool

	// Session state. The controller is the only authority over question
	// state; everything below is render data from its notifications.
	ctrl        *app.SessionController
	questions   []domain.QuestionSummary
	cursor      int
	active      *app.QuestionView
	answer      textarea.Model
	description viewport.Model
	resultText  string
	accepted    bool
	notice      string
	quotaLabel  string
	busy        bool
	editing     bool

	fatal    error
	quitting bool
}

const (
	fieldServer = iota
	fieldUsername
	fieldPassword
)

// NewModel builds the root model starting at the login screen.
func NewModel(serverAddr string, timeout time.Duration, logger *log.Logger) Model {
	server := textinput.New()
	server.Placeholder = "host:port"
	server.SetValue(serverAddr)
	server.CharLimit = 128

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	answer := textarea.New()
	answer.CharLimit = 0

	return Model{
		mode:        modeLogin,
		keys:        DefaultKeyMap(),
		logger:      logger,
		timeout:     timeout,
		inputs:      []textinput.Model{server, username, password},
		focus:       fieldUsername,
		answer:      answer,
		description: viewport.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.mode {
	case modeLogin:
		return m.updateLogin(msg)
	default:
		return m.updateSession(msg)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case modeLogin:
		return m.loginView()
	default:
		return m.sessionView()
	}
}

// FatalErr reports the error that tore the session down, if any. The cli
// layer surfaces it after the program exits.
func (m Model) FatalErr() error {
	return m.fatal
}

// fail records a session-fatal error and quits; there is no recovery path.
func (m *Model) fail(err error) tea.Cmd {
	m.logger.Printf("fatal session error: %v", err)
	m.fatal = err
	m.quitting = true
	return tea.Quit
}

// Commands. Each wraps exactly one controller call; the controller processes
// one intent to completion before the next is issued (the busy flag keeps
// the UI from firing overlapping ones).

func (m Model) loginCmd() tea.Cmd {
	creds := domain.Credentials{
		ServerAddr: m.inputs[fieldServer].Value(),
		Username:   m.inputs[fieldUsername].Value(),
		Password:   m.inputs[fieldPassword].Value(),
	}
	timeout := m.timeout
	return func() tea.Msg {
		client := gateway.New(creds.ServerAddr, timeout)
		welcome, err := client.Login(context.Background(), creds.Username, creds.Password)
		if err != nil {
			return loginResultMsg{err: err}
		}
		return loginResultMsg{ctrl: app.NewSessionController(client), welcome: welcome}
	}
}

func (m Model) loadCatalogCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		view, err := ctrl.LoadCatalog(context.Background())
		return catalogLoadedMsg{view: view, err: err}
	}
}

func (m Model) selectQuestionCmd(displayIndex int) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		view, err := ctrl.SelectQuestion(context.Background(), displayIndex)
		return questionActivatedMsg{index: displayIndex, view: view, err: err}
	}
}

func (m Model) submitAnswerCmd(displayIndex, id int, answer string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		outcome, err := ctrl.SubmitAnswer(context.Background(), id, answer)
		return submissionResultMsg{index: displayIndex, id: id, outcome: outcome, err: err}
	}
}

func (m *Model) resize() {
	if m.width <= 0 {
		return
	}
	mainWidth := m.width - listPaneWidth - resultPaneWidth - 8
	if mainWidth < 20 {
		mainWidth = 20
	}
	m.description.Width = mainWidth
	m.description.Height = descriptionHeight(m.height)
	m.answer.SetWidth(mainWidth)
	m.answer.SetHeight(editorHeight(m.height))
}
