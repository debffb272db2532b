package auth

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/dto"
	apperrors "github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/errors"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AuthPort interface {
	Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error)
	Register(ctx context.Context, input authdto.RegisterInput) (authdto.RegisterOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoggedInMsg bubbles to the app model so it can flip the session and route.
type LoggedInMsg struct {
	Err error
}

type RegisteredMsg struct {
	Msg string
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type mode int

const (
	modeLogin mode = iota
	modeRegister
)

const fieldCount = 2

type Model struct {
	port AuthPort

	username textinput.Model
	password textinput.Model
	focus    int
	mode     mode

	spinner    spinner.Model
	submitting bool
	errText    string
	infoText   string
	width      int
	height     int
}

func New(port AuthPort) Model {
	user := textinput.New()
	user.Placeholder = "Username"
	user.CharLimit = 128
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.CharLimit = 128
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:     port,
		username: user,
		password: pass,
		spinner:  sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoggedInMsg:
		m.submitting = false
		if msg.Err != nil {
			m.errText = serverText(msg.Err)
		}
		return m, nil

	case RegisteredMsg:
		m.submitting = false
		if msg.Err != nil {
			m.errText = serverText(msg.Err)
			return m, nil
		}
		// Registration worked; drop back to the login form with the
		// username kept so the user only re-types the password.
		m.mode = modeLogin
		m.infoText = msg.Msg
		return m, nil

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "ctrl+r":
			if m.mode == modeLogin {
				m.mode = modeRegister
			} else {
				m.mode = modeLogin
			}
			m.errText = ""
			m.infoText = ""
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	title := "Login"
	action := "enter: login"
	toggle := "ctrl+r: need an account? sign up"
	if m.mode == modeRegister {
		title = "Register"
		action = "enter: register"
		toggle = "ctrl+r: back to login"
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(title) + "\n\n")
	sb.WriteString(m.username.View() + "\n")
	sb.WriteString(m.password.View() + "\n\n")
	if m.submitting {
		sb.WriteString(m.spinner.View() + " working…\n")
	}
	if m.errText != "" {
		sb.WriteString(theme.Bad.Render(m.errText) + "\n")
	}
	if m.infoText != "" {
		sb.WriteString(theme.Good.Render(m.infoText) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render(action+"  "+toggle))

	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Padding(1, 2).
		Render(sb.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) setFocus(idx int) {
	m.focus = idx
	if idx == 0 {
		m.username.Focus()
		m.password.Blur()
	} else {
		m.username.Blur()
		m.password.Focus()
	}
}

func (m Model) submit() (Model, tea.Cmd) {
	username := strings.TrimSpace(m.username.Value())
	password := m.password.Value()
	if username == "" || password == "" {
		m.errText = "An unexpected error occurred."
		return m, nil
	}
	m.submitting = true
	m.errText = ""
	m.infoText = ""
	if m.mode == modeRegister {
		return m, tea.Batch(m.spinner.Tick, m.registerCmd(username, password))
	}
	return m, tea.Batch(m.spinner.Tick, m.loginCmd(username, password))
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.Login(context.Background(), authdto.LoginInput{
			Username: username,
			Password: password,
		})
		return LoggedInMsg{Err: err}
	}
}

func (m Model) registerCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Register(context.Background(), authdto.RegisterInput{
			Username: username,
			Password: password,
		})
		return RegisteredMsg{Msg: out.Msg, Err: err}
	}
}

// serverText prefers the backend's own words over Go error prose.
func serverText(err error) string {
	if msg, ok := apperrors.ServerMessage(err); ok {
		return msg
	}
	return "An unexpected error occurred."
}
