package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
	"github.com/ChiobiJason/asa-policy-frontend/internal/portal"
	"github.com/ChiobiJason/asa-policy-frontend/internal/search"
	"github.com/ChiobiJason/asa-policy-frontend/internal/view"
)

type browseTab int

const (
	tabPolicies browseTab = iota
	tabBylaws
)

// Messages flowing through the browse view.
type (
	groupsMsg struct {
		groups []portal.Group
		err    error
	}
	bylawsMsg struct {
		docs []view.Document
		err  error
	}
	// NewItemsMsg announces newly approved documents found by the poller.
	NewItemsMsg struct {
		Count int
	}
	bannerClearMsg struct{}
)

const bannerDuration = 8 * time.Second

// BrowseDeps are the injected dependencies of the browse view. Handlers
// are explicit references, nothing is looked up dynamically at call time.
type BrowseDeps struct {
	Client       *api.Client
	Logger       *zap.Logger
	PollInterval time.Duration
	Theme        Theme
}

// BrowseModel is the interactive listing: three collapsible policy
// sections plus a flat bylaws tab, local search, a detail pane, and a
// background poller that announces newly approved policies.
type BrowseModel struct {
	deps       BrowseDeps
	styles     Styles
	aggregator *portal.Aggregator
	controller *portal.Controller
	poller     *portal.Poller
	content    *ContentRenderer

	ctx    context.Context
	cancel context.CancelFunc

	searchInput textinput.Model
	viewport    viewport.Model
	spinner     spinner.Model

	tab       browseTab
	bylaws    []view.Document
	detail    *view.Document
	cursor    int
	searching bool
	loading   bool
	errMsg    string
	banner    string

	width  int
	height int
}

// NewBrowseModel assembles the browse view.
func NewBrowseModel(deps BrowseDeps) *BrowseModel {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	styles := NewStyles(deps.Theme)

	input := textinput.New()
	input.Placeholder = "search by name, number or section"
	input.CharLimit = 100
	input.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Info

	ctx, cancel := context.WithCancel(context.Background())

	m := &BrowseModel{
		deps:        deps,
		styles:      styles,
		aggregator:  portal.NewAggregator(deps.Client, deps.Logger),
		controller:  portal.NewController(),
		content:     NewContentRenderer(80, deps.Theme.IsDark),
		ctx:         ctx,
		cancel:      cancel,
		searchInput: input,
		viewport:    viewport.New(0, 0),
		spinner:     sp,
		loading:     true,
	}
	return m
}

// AttachPoller wires the change-detection poller. Called by RunBrowse once
// the program exists, since the notifier needs program.Send.
func (m *BrowseModel) AttachPoller(notify portal.Notifier) {
	m.poller = portal.NewPoller(m.fetchIDs, notify, m.deps.PollInterval, m.deps.Logger)
}

func (m *BrowseModel) fetchIDs(ctx context.Context) ([]string, error) {
	records, err := m.deps.Client.ApprovedPolicies(ctx, "")
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.PolicyID
	}
	return ids, nil
}

// Init starts data loading and the poll loop.
func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchGroupsCmd(),
		m.fetchBylawsCmd(),
		m.startPollerCmd(),
	)
}

func (m *BrowseModel) startPollerCmd() tea.Cmd {
	return func() tea.Msg {
		if m.poller != nil {
			m.poller.Start(m.ctx)
		}
		return nil
	}
}

func (m *BrowseModel) fetchGroupsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, api.DefaultTimeout)
		defer cancel()
		groups, err := m.aggregator.FetchGroups(ctx)
		return groupsMsg{groups: groups, err: err}
	}
}

func (m *BrowseModel) fetchBylawsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, api.DefaultTimeout)
		defer cancel()
		records, err := m.deps.Client.ApprovedBylaws(ctx)
		if err != nil {
			return bylawsMsg{err: err}
		}
		docs := view.MapBylaws(records)
		view.SortDocuments(docs)
		return bylawsMsg{docs: docs}
	}
}

func clearBannerCmd() tea.Cmd {
	return tea.Tick(bannerDuration, func(time.Time) tea.Msg {
		return bannerClearMsg{}
	})
}

// shutdown cancels the poller and every in-flight fetch. Must run before
// tea.Quit so no request outlives the view.
func (m *BrowseModel) shutdown() {
	if m.poller != nil {
		m.poller.Stop()
	}
	m.cancel()
}

// Update handles messages.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6
		m.content = NewContentRenderer(msg.Width-6, m.styles.Theme.IsDark)
		if m.detail != nil {
			m.viewport.SetContent(m.renderDetail(*m.detail))
		}
		return m, nil

	case tea.FocusMsg:
		if m.poller != nil {
			m.poller.Resume(m.ctx)
		}
		return m, nil

	case tea.BlurMsg:
		if m.poller != nil {
			m.poller.Pause()
		}
		return m, nil

	case groupsMsg:
		m.loading = false
		if msg.err != nil {
			// Degrade to an empty listing; the footer shows the problem.
			m.deps.Logger.Warn("listing fetch failed", zap.Error(msg.err))
			m.errMsg = api.UserMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.controller.SetGroups(msg.groups)
		m.clampCursor()
		return m, nil

	case bylawsMsg:
		if msg.err != nil {
			m.deps.Logger.Warn("bylaws fetch failed", zap.Error(msg.err))
			return m, nil
		}
		m.bylaws = msg.docs
		m.clampCursor()
		return m, nil

	case NewItemsMsg:
		noun := "policies"
		if msg.Count == 1 {
			noun = "policy"
		}
		m.banner = fmt.Sprintf("%d new %s approved", msg.Count, noun)
		// Re-render with fresh data; open/closed section state is kept by
		// the controller.
		return m, tea.Batch(m.fetchGroupsCmd(), clearBannerCmd())

	case bannerClearMsg:
		m.banner = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.loading {
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.detail != nil {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.controller.SetQuery("")
			m.clampCursor()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.controller.SetQuery(m.searchInput.Value())
			m.clampCursor()
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.shutdown()
		return m, tea.Quit

	case "esc":
		if m.detail != nil {
			m.detail = nil
			return m, nil
		}
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "tab":
		if m.tab == tabPolicies {
			m.tab = tabBylaws
		} else {
			m.tab = tabPolicies
		}
		m.cursor = 0
		m.detail = nil
		return m, nil

	case "1", "2", "3":
		if m.tab == tabPolicies && m.detail == nil {
			m.controller.ToggleSection(msg.String())
			m.clampCursor()
		}
		return m, nil

	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetchGroupsCmd(), m.fetchBylawsCmd())

	case "x":
		m.banner = ""
		return m, nil

	case "up", "k":
		if m.detail == nil && m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.detail == nil && m.cursor < len(m.visibleDocs())-1 {
			m.cursor++
		}

	case "enter":
		if m.detail == nil {
			docs := m.visibleDocs()
			if m.cursor < len(docs) {
				doc := docs[m.cursor]
				m.detail = &doc
				m.viewport.SetContent(m.renderDetail(doc))
				m.viewport.GotoTop()
			}
			return m, nil
		}
	}

	if m.detail != nil {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// visibleDocs flattens the current tab into the navigable card list:
// filtered, sorted, and skipping collapsed sections.
func (m *BrowseModel) visibleDocs() []view.Document {
	if m.tab == tabBylaws {
		return search.Filter(m.bylaws, m.controller.Query())
	}
	groups, noResults := m.controller.Visible()
	if noResults {
		return nil
	}
	var docs []view.Document
	for _, g := range groups {
		if !m.controller.IsOpen(g.Section.Key) {
			continue
		}
		docs = append(docs, g.Documents...)
	}
	return docs
}

func (m *BrowseModel) clampCursor() {
	if n := len(m.visibleDocs()); m.cursor >= n {
		m.cursor = 0
	}
}

func (m *BrowseModel) renderDetail(doc view.Document) string {
	header := m.styles.Title.Render(fmt.Sprintf("%s  %s", doc.DisplayID, doc.Title))
	meta := m.styles.Subtitle.Render(fmt.Sprintf("status: %s  updated: %s", doc.Status, doc.UpdatedAt))
	body := m.content.Render(doc.Content)
	return lipgloss.JoinVertical(lipgloss.Left, header, meta, "", body)
}

// View renders the page.
func (m *BrowseModel) View() string {
	var sb strings.Builder

	title := "ASA Policy Portal — Policies"
	if m.tab == tabBylaws {
		title = "ASA Policy Portal — Bylaws"
	}
	sb.WriteString(m.styles.Header.Width(m.width).Render(title))
	sb.WriteString("\n")

	if m.banner != "" {
		sb.WriteString(m.styles.Banner.Render(m.banner + "  (x to dismiss)"))
		sb.WriteString("\n")
	}

	if m.searching || m.searchInput.Value() != "" {
		sb.WriteString("  " + m.searchInput.View() + "\n")
	}

	switch {
	case m.detail != nil:
		sb.WriteString(m.viewport.View())
	case m.loading:
		sb.WriteString(m.styles.Content.Render(m.spinner.View() + " loading…"))
	case m.tab == tabBylaws:
		sb.WriteString(m.viewBylaws())
	default:
		sb.WriteString(m.viewSections())
	}

	sb.WriteString("\n")
	sb.WriteString(m.footer())
	return sb.String()
}

func (m *BrowseModel) viewSections() string {
	groups, noResults := m.controller.Visible()
	if noResults {
		return m.styles.Content.Render(
			m.styles.EmptyState.Render(fmt.Sprintf("no policies match %q", m.controller.Query())))
	}

	var sb strings.Builder
	docs := m.visibleDocs()
	flat := 0
	queryActive := m.controller.Query() != ""

	for _, g := range groups {
		open := m.controller.IsOpen(g.Section.Key)
		marker := "▾"
		if !open {
			marker = "▸"
		}
		header := fmt.Sprintf("%s %s (%d)", marker, g.Section.Label, len(g.Documents))
		sb.WriteString(" " + m.styles.SectionHeader.Render(header))
		sb.WriteString("\n")

		if !open {
			continue
		}
		if len(g.Documents) == 0 {
			if !queryActive {
				sb.WriteString(m.styles.EmptyState.Render("no policies in this section yet"))
				sb.WriteString("\n")
			}
			continue
		}
		for _, doc := range g.Documents {
			line := fmt.Sprintf("%-8s %s", doc.DisplayID, doc.Title)
			if flat < len(docs) && m.cursor == flat {
				sb.WriteString(m.styles.CardSelected.Render("> " + line))
			} else {
				sb.WriteString(m.styles.Card.Render(line))
			}
			sb.WriteString("\n")
			flat++
		}
	}

	if m.errMsg != "" {
		sb.WriteString("\n " + m.styles.Error.Render(m.errMsg) + "\n")
	}
	return sb.String()
}

func (m *BrowseModel) viewBylaws() string {
	docs := m.visibleDocs()
	if len(docs) == 0 {
		if m.controller.Query() != "" {
			return m.styles.Content.Render(
				m.styles.EmptyState.Render(fmt.Sprintf("no bylaws match %q", m.controller.Query())))
		}
		return m.styles.Content.Render(m.styles.EmptyState.Render("no bylaws yet"))
	}

	var sb strings.Builder
	for i, doc := range docs {
		line := fmt.Sprintf("%-6s %s", doc.DisplayID, doc.Title)
		if m.cursor == i {
			sb.WriteString(m.styles.CardSelected.Render("> " + line))
		} else {
			sb.WriteString(m.styles.Card.Render(line))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *BrowseModel) footer() string {
	var state string
	if m.poller != nil {
		state = "  poll: " + m.poller.State().String()
	}
	help := "↑/↓ move • enter open • esc back • / search • 1-3 fold section • tab bylaws • r refresh • q quit"
	return m.styles.Footer.Render(help + state)
}

// RunBrowse starts the interactive browse view and blocks until exit.
func RunBrowse(deps BrowseDeps) error {
	model := NewBrowseModel(deps)

	var program *tea.Program
	model.AttachPoller(func(count int) {
		if program != nil {
			program.Send(NewItemsMsg{Count: count})
		}
	})

	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	_, err := program.Run()
	model.shutdown()
	return err
}
