package app

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	authdomain "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/domain"
	authdto "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/dto"
	searchdto "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/dto"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/ui/components"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/ui/theme"
	authview "github.com/CloudAceEmma/xu-ai-news-rag/internal/ui/views/auth"
	feedsview "github.com/CloudAceEmma/xu-ai-news-rag/internal/ui/views/feeds"
	knowledgeview "github.com/CloudAceEmma/xu-ai-news-rag/internal/ui/views/knowledge"
	reportsview "github.com/CloudAceEmma/xu-ai-news-rag/internal/ui/views/reports"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type authPort interface {
	Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error)
	Register(ctx context.Context, input authdto.RegisterInput) (authdto.RegisterOutput, error)
	Logout(ctx context.Context) (authdto.SessionOutput, error)
	Restore(ctx context.Context) (authdto.SessionOutput, error)
}

type searchPort interface {
	Ask(ctx context.Context, input searchdto.AskInput) (searchdto.ResultOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabKnowledge tabID = iota
	tabFeeds
	tabReports
	tabCount
)

var tabLabels = [tabCount]string{
	"Knowledge Base", "RSS Feeds", "Reports",
}

// ─── async messages ───────────────────────────────────────────────────────────

type sessionRestoredMsg struct {
	session authdto.SessionOutput
	err     error
}

type loggedOutMsg struct{ err error }

type searchDoneMsg struct {
	result searchdto.ResultOutput
	err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the session, the route guard,
// tab routing, and the semantic search bar. All business logic is delegated
// to port interfaces; all rendering is delegated to sub-views.
type Model struct {
	auth   authPort
	search searchPort
	logger *zap.Logger

	// ports kept so the dashboard can be rebuilt fresh after login
	knowledgePort knowledgeview.KnowledgePort
	feedPort      feedsview.FeedPort
	reportPort    reportsview.ReportPort

	session authdomain.Session
	route   authdomain.Route

	authView    authview.Model
	knowView    knowledgeview.Model
	feedsView   feedsview.Model
	reportsView reportsview.Model

	searchBar    components.SearchBar
	searchResult searchdto.ResultOutput
	hasResult    bool

	activeTab tabID
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	auth authPort,
	search searchPort,
	knowledge knowledgeview.KnowledgePort,
	feeds feedsview.FeedPort,
	reports reportsview.ReportPort,
	logger *zap.Logger,
) Model {
	return Model{
		auth:          auth,
		search:        search,
		logger:        logger,
		knowledgePort: knowledge,
		feedPort:      feeds,
		reportPort:    reports,
		route:         authdomain.RouteAuth,
		authView:      authview.New(auth),
		knowView:      knowledgeview.New(knowledge, logger),
		feedsView:     feedsview.New(feeds, logger),
		reportsView:   reportsview.New(reports, logger),
		searchBar:     components.NewSearchBar(),
		status:        "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.authView.Init(), m.restoreCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchBar.SetWidth(m.width)
		m.propagateSize()

	case sessionRestoredMsg:
		if msg.err != nil {
			m.logger.Warn("session restore failed", zap.Error(msg.err))
		}
		if msg.session.Authenticated {
			m.session = m.session.Authenticate()
		}
		m.route = authdomain.Resolve(authdomain.RouteDashboard, m.session)
		if m.route == authdomain.RouteDashboard {
			cmds = append(cmds, m.knowView.Init(), m.feedsView.Init(), m.reportsView.Init())
		}
		return m, tea.Batch(cmds...)

	case loggedOutMsg:
		if msg.err != nil {
			m.logger.Warn("logout failed", zap.Error(msg.err))
		}
		// The token is gone either way; drop all dashboard state.
		m.session = m.session.Clear()
		m.route = authdomain.Resolve(authdomain.RouteAuth, m.session)
		m.resetDashboard()
		m.status = "logged out"
		return m, m.authView.Init()

	case searchDoneMsg:
		if msg.err != nil {
			m.logger.Warn("search failed", zap.Error(msg.err))
			return m, nil
		}
		m.searchResult = msg.result
		m.hasResult = true
		return m, nil

	case components.SearchSubmitMsg:
		var cmd tea.Cmd
		m.searchBar, cmd = m.searchBar.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Query != "" {
			cmds = append(cmds, m.askCmd(msg.Query))
		}
		return m, tea.Batch(cmds...)

	// Auth transitions bubble up from the auth view; the view itself still
	// sees the message so it can clear its spinner and show errors.
	case authview.LoggedInMsg:
		var cmd tea.Cmd
		m.authView, cmd = m.authView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err == nil {
			m.session = m.session.Authenticate()
			m.route = authdomain.Resolve(authdomain.RouteDashboard, m.session)
			m.resetDashboard()
			m.status = "ready"
			cmds = append(cmds, m.knowView.Init(), m.feedsView.Init(), m.reportsView.Init())
		}
		return m, tea.Batch(cmds...)

	case authview.RegisteredMsg:
		var cmd tea.Cmd
		m.authView, cmd = m.authView.Update(msg)
		return m, cmd

	// Module responses go to their owning view no matter which tab is
	// active, so nothing is lost while the user is looking elsewhere.
	case knowledgeview.DocumentsLoadedMsg, knowledgeview.UploadDoneMsg,
		knowledgeview.UpdateDoneMsg, knowledgeview.DeleteDoneMsg:
		var cmd tea.Cmd
		m.knowView, cmd = m.knowView.Update(msg)
		return m, cmd

	case feedsview.FeedsLoadedMsg, feedsview.FeedAddedMsg, feedsview.FeedDeletedMsg:
		var cmd tea.Cmd
		m.feedsView, cmd = m.feedsView.Update(msg)
		return m, cmd

	case reportsview.KeywordsLoadedMsg, reportsview.ClusteringLoadedMsg:
		var cmd tea.Cmd
		m.reportsView, cmd = m.reportsView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.route == authdomain.RouteAuth {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.authView, cmd = m.authView.Update(msg)
			return m, cmd
		}

		// The search bar intercepts all input while focused.
		if m.searchBar.Focused() {
			var cmd tea.Cmd
			m.searchBar, cmd = m.searchBar.Update(msg)
			return m, cmd
		}

		// Yield to sub-view while the user is typing into it.
		if m.subViewTyping() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "/":
			return m, m.searchBar.Focus()
		case "ctrl+l":
			return m, m.logoutCmd()
		}
	}

	if m.route == authdomain.RouteAuth {
		var cmd tea.Cmd
		m.authView, cmd = m.authView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabKnowledge:
		m.knowView, tabCmd = m.knowView.Update(msg)
	case tabFeeds:
		m.feedsView, tabCmd = m.feedsView.Update(msg)
	case tabReports:
		m.reportsView, tabCmd = m.reportsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()

	if m.route == authdomain.RouteAuth {
		body := lipgloss.NewStyle().Width(m.width).Height(m.height - lipgloss.Height(header)).
			Render(m.authView.View())
		return lipgloss.JoinVertical(lipgloss.Left, header, body)
	}

	searchBar := m.searchBar.View()
	result := m.renderResult()
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()

	chromeH := lipgloss.Height(header) + lipgloss.Height(searchBar) +
		lipgloss.Height(tabBar) + lipgloss.Height(statusBar)
	if result != "" {
		chromeH += lipgloss.Height(result)
	}
	contentH := m.height - chromeH
	if contentH < 1 {
		contentH = 1
	}

	content := lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.activeView())

	parts := []string{header, searchBar}
	if result != "" {
		parts = append(parts, result)
	}
	parts = append(parts, tabBar, content, statusBar)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabKnowledge:
		return m.knowView.View()
	case tabFeeds:
		return m.feedsView.View()
	case tabReports:
		return m.reportsView.View()
	}
	return ""
}

func (m Model) renderHeader() string {
	title := theme.Title.Render("XU-News-AI-RAG")
	var right string
	if m.session.Authenticated {
		right = theme.Muted.Render("ctrl+l: logout")
	}
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	bar := " " + title + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m Model) renderResult() string {
	if !m.hasResult {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.searchResult.Answer)
	if m.searchResult.Source != "" {
		sb.WriteString("\n" + theme.Muted.Render("Source: "+m.searchResult.Source))
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Green).
		Background(theme.Mantle).
		Width(m.width - 2).
		Padding(0, 1).
		Render(sb.String())
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("/:search  tab:switch  ctrl+l:logout  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewTyping reports whether the active tab is capturing free-form input,
// in which case global key bindings must yield.
func (m Model) subViewTyping() bool {
	switch m.activeTab {
	case tabKnowledge:
		return m.knowView.Filtering() || m.knowView.Typing()
	case tabFeeds:
		return m.feedsView.Filtering() || m.feedsView.Typing()
	case tabReports:
		return m.reportsView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 8}
	m.authView, _ = m.authView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - 1})
	m.knowView, _ = m.knowView.Update(sz)
	m.feedsView, _ = m.feedsView.Update(sz)
	m.reportsView, _ = m.reportsView.Update(sz)
}

// resetDashboard rebuilds all dashboard sub-views so a fresh login never
// sees the previous user's data.
func (m *Model) resetDashboard() {
	m.knowView = knowledgeview.New(m.knowledgePort, m.logger)
	m.feedsView = feedsview.New(m.feedPort, m.logger)
	m.reportsView = reportsview.New(m.reportPort, m.logger)
	m.searchResult = searchdto.ResultOutput{}
	m.hasResult = false
	m.activeTab = tabKnowledge
	m.propagateSize()
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) restoreCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.Restore(context.Background())
		return sessionRestoredMsg{session: session, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.auth.Logout(context.Background())
		return loggedOutMsg{err: err}
	}
}

func (m Model) askCmd(query string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.search.Ask(context.Background(), searchdto.AskInput{Query: query})
		return searchDoneMsg{result: result, err: err}
	}
}
