package reports

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	rdto "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/dto"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ReportPort interface {
	Keywords(ctx context.Context) (rdto.KeywordReportOutput, error)
	Clustering(ctx context.Context) (rdto.ClusterReportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type KeywordsLoadedMsg struct {
	Report rdto.KeywordReportOutput
	Err    error
}

type ClusteringLoadedMsg struct {
	Report rdto.ClusterReportOutput
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Reports are generated on demand, never on tab entry; both panels stay
// empty until the user asks for them.
type Model struct {
	port   ReportPort
	logger *zap.Logger

	keywords    []string
	hasKeywords bool
	clusters    rdto.ClusterReportOutput
	hasClusters bool

	width  int
	height int
}

func New(port ReportPort, logger *zap.Logger) Model {
	return Model{port: port, logger: logger}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case KeywordsLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("keyword report failed", zap.Error(msg.Err))
			return m, nil
		}
		m.keywords = msg.Report.Keywords
		m.hasKeywords = true

	case ClusteringLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("clustering report failed", zap.Error(msg.Err))
			return m, nil
		}
		m.clusters = msg.Report
		m.hasClusters = true

	case tea.KeyMsg:
		switch msg.String() {
		case "k":
			return m, m.keywordsCmd()
		case "c":
			return m, m.clusteringCmd()
		}
	}
	return m, nil
}

func (m Model) View() string {
	paneW := m.width/2 - 2

	paneStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(paneW).
		Height(m.height - 3).
		Padding(0, 1)

	left := paneStyle.Render(m.keywordPane())
	right := paneStyle.Render(m.clusterPane())
	hint := theme.Muted.Render("k: generate keywords  c: generate clusters")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right), hint)
}

// Filtering exists so the app model can treat all tabs uniformly.
func (m Model) Filtering() bool { return false }

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) keywordPane() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Top 10 Keywords") + "\n\n")
	switch {
	case !m.hasKeywords:
		sb.WriteString(theme.Muted.Render("press k to generate"))
	case len(m.keywords) == 0:
		sb.WriteString(theme.Muted.Render("no keywords yet"))
	default:
		// The backend already ranks them; the order is meaningful.
		for i, kw := range m.keywords {
			sb.WriteString(fmt.Sprintf("%2d. %s\n", i+1, kw))
		}
	}
	return sb.String()
}

func (m Model) clusterPane() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Document Clusters") + "\n\n")
	switch {
	case !m.hasClusters:
		sb.WriteString(theme.Muted.Render("press c to generate"))
	case m.clusters.Err != "":
		sb.WriteString(theme.Bad.Render(m.clusters.Err))
	default:
		labels := make([]string, 0, len(m.clusters.Clusters))
		for label := range m.clusters.Clusters {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			sb.WriteString(theme.Hot.Render(label) + "\n")
			sb.WriteString("  " + strings.Join(m.clusters.Clusters[label], ", ") + "\n")
		}
	}
	return sb.String()
}

func (m Model) keywordsCmd() tea.Cmd {
	return func() tea.Msg {
		report, err := m.port.Keywords(context.Background())
		return KeywordsLoadedMsg{Report: report, Err: err}
	}
}

func (m Model) clusteringCmd() tea.Cmd {
	return func() tea.Msg {
		report, err := m.port.Clustering(context.Background())
		return ClusteringLoadedMsg{Report: report, Err: err}
	}
}
