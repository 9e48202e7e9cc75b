// internal/ui/login.go
package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mveldt/chime/internal/auth"
	"github.com/mveldt/chime/internal/store"
)

var (
	loginTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	loginErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	loginHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// LoggedInMsg signals a successful login or registration.
type LoggedInMsg struct {
	User *store.User
}

// LoginModel is the login/registration form shown before the player.
type LoginModel struct {
	auth     *auth.Service
	login    textinput.Model
	password textinput.Model
	errText  string
}

// NewLogin creates the login form with the login field focused.
func NewLogin(svc *auth.Service) LoginModel {
	login := textinput.New()
	login.Placeholder = "login"
	login.CharLimit = auth.MaxLoginLen
	login.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = auth.MaxPasswordLen
	password.EchoMode = textinput.EchoPassword

	return LoginModel{
		auth:     svc,
		login:    login,
		password: password,
	}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab":
			if m.login.Focused() {
				m.login.Blur()
				m.password.Focus()
			} else {
				m.password.Blur()
				m.login.Focus()
			}
			return m, nil

		case "enter":
			return m.submit(m.auth.Login)

		case "ctrl+r":
			return m.submit(func(login, password string) (*store.User, error) {
				return m.auth.Register(login, password)
			})
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m LoginModel) submit(fn func(login, password string) (*store.User, error)) (LoginModel, tea.Cmd) {
	user, err := fn(m.login.Value(), m.password.Value())
	if err != nil {
		m.errText = loginErrorText(err)
		return m, nil
	}
	m.errText = ""
	return m, func() tea.Msg { return LoggedInMsg{User: user} }
}

func loginErrorText(err error) string {
	var verr *auth.ValidationError
	switch {
	case errors.As(err, &verr):
		return "Error: " + verr.Rule
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Error: Invalid login or password."
	case errors.Is(err, auth.ErrLoginTaken):
		return "Error: this login is already occupied."
	default:
		return "Error: " + err.Error()
	}
}

func (m LoginModel) View() string {
	lines := loginTitleStyle.Render("chime — sign in") + "\n" +
		m.login.View() + "\n" +
		m.password.View() + "\n"
	if m.errText != "" {
		lines += loginErrStyle.Render(m.errText) + "\n"
	}
	lines += loginHelpStyle.Render("enter: log in · ctrl+r: register · ctrl+c: quit")
	return lines
}
