package feeds

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	fdto "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/dto"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type FeedPort interface {
	List(ctx context.Context) ([]fdto.FeedOutput, error)
	Add(ctx context.Context, input fdto.AddInput) (fdto.FeedOutput, error)
	Delete(ctx context.Context, id int) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type FeedsLoadedMsg struct {
	Feeds []fdto.FeedOutput
	Err   error
}

type FeedAddedMsg struct {
	Feed fdto.FeedOutput
	Err  error
}

type FeedDeletedMsg struct{ Err error }

// ─── list item ───────────────────────────────────────────────────────────────

type feedItem struct {
	feed fdto.FeedOutput
}

func (i feedItem) Title() string       { return i.feed.URL }
func (i feedItem) Description() string { return "#" + strconv.Itoa(i.feed.ID) }
func (i feedItem) FilterValue() string { return i.feed.URL }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   FeedPort
	logger *zap.Logger

	list    list.Model
	input   textinput.Model
	adding  bool
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port FeedPort, logger *zap.Logger) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "RSS Feeds"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "https://example.com/rss"
	ti.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		logger:  logger,
		list:    l,
		input:   ti,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-3)

	case FeedsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.logger.Warn("feed list failed", zap.Error(msg.Err))
			return m, nil
		}
		items := make([]list.Item, len(msg.Feeds))
		for i, f := range msg.Feeds {
			items[i] = feedItem{feed: f}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case FeedAddedMsg:
		if msg.Err != nil {
			// The URL stays in the box so the user can fix it.
			m.logger.Warn("feed add failed", zap.Error(msg.Err))
			return m, nil
		}
		m.input.SetValue("")
		cmds = append(cmds, m.loadCmd())

	case FeedDeletedMsg:
		if msg.Err != nil {
			m.logger.Warn("feed delete failed", zap.Error(msg.Err))
			return m, nil
		}
		cmds = append(cmds, m.loadCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.adding {
			switch msg.String() {
			case "esc":
				m.adding = false
				m.input.Blur()
				return m, nil
			case "enter":
				url := strings.TrimSpace(m.input.Value())
				if url == "" {
					return m, nil
				}
				m.adding = false
				m.input.Blur()
				return m, m.addCmd(url)
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		if !m.Filtering() {
			switch msg.String() {
			case "a":
				m.adding = true
				return m, m.input.Focus()
			case "d":
				if item, ok := m.list.SelectedItem().(feedItem); ok {
					return m, m.deleteCmd(item.feed.ID)
				}
				return m, nil
			case "r":
				return m, m.loadCmd()
			}
		}
	}

	if !m.loading {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading feeds…")
	}

	inputStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Width(m.width - 2).
		Padding(0, 1)
	if m.adding {
		inputStyle = inputStyle.BorderForeground(theme.Lavender)
	}
	inputPane := inputStyle.Render(m.input.View())

	hint := theme.Muted.Render("a: add feed  d: delete  r: refresh")
	return lipgloss.JoinVertical(lipgloss.Left, inputPane, m.list.View(), hint)
}

// Filtering reports whether the feed list's search filter is open.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Typing reports whether the URL box is capturing keys.
func (m Model) Typing() bool { return m.adding }

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		feeds, err := m.port.List(context.Background())
		return FeedsLoadedMsg{Feeds: feeds, Err: err}
	}
}

func (m Model) addCmd(url string) tea.Cmd {
	return func() tea.Msg {
		feed, err := m.port.Add(context.Background(), fdto.AddInput{URL: url})
		return FeedAddedMsg{Feed: feed, Err: err}
	}
}

func (m Model) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		return FeedDeletedMsg{Err: m.port.Delete(context.Background(), id)}
	}
}
