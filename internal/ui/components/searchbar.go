package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/ui/theme"
)

// SearchSubmitMsg is emitted when the user confirms a query.
type SearchSubmitMsg struct{ Query string }

// SearchCancelMsg is emitted when the user presses esc.
type SearchCancelMsg struct{}

var (
	searchStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Surface1).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	searchFocusedStyle = searchStyle.BorderForeground(theme.Peach)
)

// SearchBar is the always-visible semantic search input at the top of the
// dashboard. It only collects the query; running it is the app model's job.
type SearchBar struct {
	input   textinput.Model
	focused bool
	width   int
}

func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Ask a question..."
	ti.CharLimit = 512
	return SearchBar{input: ti}
}

// Focused reports whether the bar is capturing keystrokes.
func (s SearchBar) Focused() bool { return s.focused }

// Focus starts capturing keystrokes without clearing the current query.
func (s *SearchBar) Focus() tea.Cmd {
	s.focused = true
	return s.input.Focus()
}

func (s *SearchBar) SetWidth(w int) {
	s.width = w
	s.input.Width = w - 10
}

func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			s.focused = false
			s.input.Blur()
			return s, func() tea.Msg { return SearchCancelMsg{} }
		case "enter":
			query := strings.TrimSpace(s.input.Value())
			s.focused = false
			s.input.Blur()
			return s, func() tea.Msg { return SearchSubmitMsg{Query: query} }
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s SearchBar) View() string {
	style := searchStyle
	if s.focused {
		style = searchFocusedStyle
	}
	w := s.width
	if w < 20 {
		w = 64
	}
	return style.Width(w - 2).Render("? " + s.input.View())
}
