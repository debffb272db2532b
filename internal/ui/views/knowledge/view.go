package knowledge

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	kdto "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/dto"
	apperrors "github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/errors"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type KnowledgePort interface {
	List(ctx context.Context, input kdto.ListInput) ([]kdto.DocumentOutput, error)
	Upload(ctx context.Context, input kdto.UploadInput) (kdto.UploadOutput, error)
	Update(ctx context.Context, input kdto.UpdateInput) error
	Delete(ctx context.Context, id int) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type DocumentsLoadedMsg struct {
	Docs []kdto.DocumentOutput
	Err  error
}

type UploadDoneMsg struct {
	Msg string
	Err error
}

type UpdateDoneMsg struct{ Err error }

type DeleteDoneMsg struct{ Err error }

// ─── list item ───────────────────────────────────────────────────────────────

type docItem struct {
	doc kdto.DocumentOutput
}

func (i docItem) Title() string { return filepath.Base(i.doc.FilePath) }
func (i docItem) Description() string {
	desc := i.doc.DocumentType
	if i.doc.Source != "" {
		desc += "  " + i.doc.Source
	}
	if i.doc.Tags != "" {
		desc += "  [" + i.doc.Tags + "]"
	}
	return desc
}
func (i docItem) FilterValue() string { return i.doc.FilePath + " " + i.doc.Tags }

// ─── model ───────────────────────────────────────────────────────────────────

type pane int

const (
	paneBrowse pane = iota
	paneUpload
	paneEdit
	paneFilter
)

type Model struct {
	port   KnowledgePort
	logger *zap.Logger

	list    list.Model
	spinner spinner.Model
	loading bool

	// The upload form deliberately keeps its values after a successful
	// upload; only the status line changes.
	uploadFile   textinput.Model
	uploadSource textinput.Model
	uploadTags   textinput.Model
	uploadMsg    string
	uploadErr    string

	editSource textinput.Model
	editTags   textinput.Model
	editID     int

	filterType  textinput.Model
	filterStart textinput.Model
	filterEnd   textinput.Model
	filter      kdto.ListInput

	pane  pane
	focus int

	width  int
	height int
}

func New(port KnowledgePort, logger *zap.Logger) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Knowledge Base"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	input := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 512
		return ti
	}

	return Model{
		port:         port,
		logger:       logger,
		list:         l,
		spinner:      sp,
		loading:      true,
		uploadFile:   input("path to file"),
		uploadSource: input("source"),
		uploadTags:   input("tags (comma separated)"),
		editSource:   input("source"),
		editTags:     input("tags (comma separated)"),
		filterType:   input("document type"),
		filterStart:  input("start date (YYYY-MM-DD)"),
		filterEnd:    input("end date (YYYY-MM-DD)"),
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
		m.resize()

	case DocumentsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			// The dashboard keeps whatever it was showing; the failure
			// only reaches the log file.
			m.logger.Warn("document list failed", zap.Error(msg.Err))
			return m, nil
		}
		items := make([]list.Item, len(msg.Docs))
		for i, d := range msg.Docs {
			items[i] = docItem{doc: d}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case UploadDoneMsg:
		if msg.Err != nil {
			m.uploadMsg = ""
			m.uploadErr = serverText(msg.Err)
			return m, nil
		}
		m.uploadErr = ""
		m.uploadMsg = msg.Msg
		cmds = append(cmds, m.loadCmd())

	case UpdateDoneMsg:
		if msg.Err != nil {
			m.logger.Warn("document update failed", zap.Error(msg.Err))
			return m, nil
		}
		cmds = append(cmds, m.loadCmd())

	case DeleteDoneMsg:
		if msg.Err != nil {
			m.logger.Warn("document delete failed", zap.Error(msg.Err))
			return m, nil
		}
		cmds = append(cmds, m.loadCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch m.pane {
		case paneUpload:
			return m.updateUpload(msg)
		case paneEdit:
			return m.updateEdit(msg)
		case paneFilter:
			return m.updateFilter(msg)
		}
		if !m.Filtering() {
			switch msg.String() {
			case "u":
				m.pane = paneUpload
				m.focus = 0
				return m, m.focusUpload()
			case "e":
				if item, ok := m.list.SelectedItem().(docItem); ok {
					m.pane = paneEdit
					m.focus = 0
					m.editID = item.doc.ID
					m.editSource.SetValue(item.doc.Source)
					m.editTags.SetValue(item.doc.Tags)
					return m, m.focusEdit()
				}
				return m, nil
			case "d":
				if item, ok := m.list.SelectedItem().(docItem); ok {
					return m, m.deleteCmd(item.doc.ID)
				}
				return m, nil
			case "f":
				m.pane = paneFilter
				m.focus = 0
				return m, m.focusFilter()
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
			m.spinner.View()+" Loading documents…")
	}

	listW := m.width * 6 / 10
	sideW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	sideStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(sideW - 2).
		Height(m.height - 2).
		Padding(0, 1)
	if m.pane != paneBrowse {
		sideStyle = sideStyle.BorderForeground(theme.Lavender)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, sideStyle.Render(m.sideView()))
}

// Filtering reports whether the document list's search filter is open.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Typing reports whether one of the side-pane forms is capturing keys.
func (m Model) Typing() bool {
	return m.pane != paneBrowse
}

// ─── forms ───────────────────────────────────────────────────────────────────

func (m Model) updateUpload(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pane = paneBrowse
		m.blurAll()
		return m, nil
	case "tab", "down":
		m.focus = (m.focus + 1) % 3
		return m, m.focusUpload()
	case "shift+tab", "up":
		m.focus = (m.focus + 2) % 3
		return m, m.focusUpload()
	case "enter":
		if strings.TrimSpace(m.uploadFile.Value()) == "" {
			m.uploadMsg = ""
			m.uploadErr = "Please select a file to upload."
			return m, nil
		}
		m.uploadErr = ""
		return m, m.uploadCmd(kdto.UploadInput{
			FilePath: strings.TrimSpace(m.uploadFile.Value()),
			Source:   strings.TrimSpace(m.uploadSource.Value()),
			Tags:     strings.TrimSpace(m.uploadTags.Value()),
		})
	}
	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.uploadFile, cmd = m.uploadFile.Update(msg)
	case 1:
		m.uploadSource, cmd = m.uploadSource.Update(msg)
	case 2:
		m.uploadTags, cmd = m.uploadTags.Update(msg)
	}
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pane = paneBrowse
		m.blurAll()
		return m, nil
	case "tab", "down", "shift+tab", "up":
		m.focus = (m.focus + 1) % 2
		return m, m.focusEdit()
	case "enter":
		input := kdto.UpdateInput{
			ID:     m.editID,
			Source: strings.TrimSpace(m.editSource.Value()),
			Tags:   strings.TrimSpace(m.editTags.Value()),
		}
		m.pane = paneBrowse
		m.blurAll()
		return m, m.updateCmd(input)
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.editSource, cmd = m.editSource.Update(msg)
	} else {
		m.editTags, cmd = m.editTags.Update(msg)
	}
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pane = paneBrowse
		m.blurAll()
		return m, nil
	case "tab", "down":
		m.focus = (m.focus + 1) % 3
		return m, m.focusFilter()
	case "shift+tab", "up":
		m.focus = (m.focus + 2) % 3
		return m, m.focusFilter()
	case "enter":
		m.filter = kdto.ListInput{
			Type:      strings.TrimSpace(m.filterType.Value()),
			StartDate: strings.TrimSpace(m.filterStart.Value()),
			EndDate:   strings.TrimSpace(m.filterEnd.Value()),
		}
		m.pane = paneBrowse
		m.blurAll()
		return m, m.loadCmd()
	}
	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.filterType, cmd = m.filterType.Update(msg)
	case 1:
		m.filterStart, cmd = m.filterStart.Update(msg)
	case 2:
		m.filterEnd, cmd = m.filterEnd.Update(msg)
	}
	return m, cmd
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 6 / 10
	m.list.SetSize(listW, m.height)
}

func (m *Model) blurAll() {
	m.uploadFile.Blur()
	m.uploadSource.Blur()
	m.uploadTags.Blur()
	m.editSource.Blur()
	m.editTags.Blur()
	m.filterType.Blur()
	m.filterStart.Blur()
	m.filterEnd.Blur()
}

func (m *Model) focusUpload() tea.Cmd {
	m.blurAll()
	switch m.focus {
	case 0:
		return m.uploadFile.Focus()
	case 1:
		return m.uploadSource.Focus()
	default:
		return m.uploadTags.Focus()
	}
}

func (m *Model) focusEdit() tea.Cmd {
	m.blurAll()
	if m.focus == 0 {
		return m.editSource.Focus()
	}
	return m.editTags.Focus()
}

func (m *Model) focusFilter() tea.Cmd {
	m.blurAll()
	switch m.focus {
	case 0:
		return m.filterType.Focus()
	case 1:
		return m.filterStart.Focus()
	default:
		return m.filterEnd.Focus()
	}
}

func (m Model) sideView() string {
	var sb strings.Builder
	switch m.pane {
	case paneUpload:
		sb.WriteString(theme.Title.Render("Upload Document") + "\n\n")
		sb.WriteString(m.uploadFile.View() + "\n")
		sb.WriteString(m.uploadSource.View() + "\n")
		sb.WriteString(m.uploadTags.View() + "\n\n")
		sb.WriteString(theme.Muted.Render("enter: upload  esc: back"))
	case paneEdit:
		sb.WriteString(theme.Title.Render(fmt.Sprintf("Edit Document #%d", m.editID)) + "\n\n")
		sb.WriteString(m.editSource.View() + "\n")
		sb.WriteString(m.editTags.View() + "\n\n")
		sb.WriteString(theme.Muted.Render("enter: save  esc: cancel"))
	case paneFilter:
		sb.WriteString(theme.Title.Render("Filter Documents") + "\n\n")
		sb.WriteString(m.filterType.View() + "\n")
		sb.WriteString(m.filterStart.View() + "\n")
		sb.WriteString(m.filterEnd.View() + "\n\n")
		sb.WriteString(theme.Muted.Render("enter: apply  esc: back"))
	default:
		sb.WriteString(theme.Title.Render("Documents") + "\n\n")
		sb.WriteString(theme.Muted.Render("u: upload  e: edit  d: delete") + "\n")
		sb.WriteString(theme.Muted.Render("f: filter  r: refresh  /: search"))
	}
	if m.uploadErr != "" {
		sb.WriteString("\n\n" + theme.Bad.Render(m.uploadErr))
	}
	if m.uploadMsg != "" {
		sb.WriteString("\n\n" + theme.Good.Render(m.uploadMsg))
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		docs, err := m.port.List(context.Background(), filter)
		return DocumentsLoadedMsg{Docs: docs, Err: err}
	}
}

func (m Model) uploadCmd(input kdto.UploadInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Upload(context.Background(), input)
		return UploadDoneMsg{Msg: out.Msg, Err: err}
	}
}

func (m Model) updateCmd(input kdto.UpdateInput) tea.Cmd {
	return func() tea.Msg {
		return UpdateDoneMsg{Err: m.port.Update(context.Background(), input)}
	}
}

func (m Model) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		return DeleteDoneMsg{Err: m.port.Delete(context.Background(), id)}
	}
}

func serverText(err error) string {
	if msg, ok := apperrors.ServerMessage(err); ok {
		return msg
	}
	return "An unexpected error occurred."
}
