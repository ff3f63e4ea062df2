// Package tui implements the interactive transaction dashboard.
package tui

import (
	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/ledger"
	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/tui/components"
	"github.com/Veraticus/txnview/internal/tui/themes"
	"github.com/Veraticus/txnview/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current state of the TUI.
type State int

const (
	// StateLoading waits for the source load.
	StateLoading State = iota
	// StateReady has a batch, or an error, and accepts all input.
	StateReady
)

// Model holds the dashboard state.
//
// transactions is written once per mount, when the load message arrives.
// lastError is only ever set by a failed load and is never cleared.
type Model struct {
	theme        themes.Theme
	lastError    error
	cache        *ledger.FilterCache
	transactions []model.Transaction
	current      ledger.View
	help         help.Model
	spinner      spinner.Model
	filter       components.DateFilterModel
	summary      components.SummaryModel
	table        components.TransactionTableModel
	pagerView    components.PagerModel
	config       Config
	keymap       KeyMap
	pager        ledger.Pager
	generation   int
	width        int
	height       int
	state        State
	quitting     bool
}

// New creates a dashboard model.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = cfg.Theme.StatusPending

	m := Model{
		config:    cfg,
		theme:     cfg.Theme,
		keymap:    DefaultKeyMap(),
		cache:     &ledger.FilterCache{},
		pager:     ledger.NewPager(cfg.PageSize),
		help:      help.New(),
		spinner:   s,
		filter:    components.NewDateFilter(cfg.Theme, cfg.Start, cfg.End),
		summary:   components.NewSummary(cfg.Theme),
		table:     components.NewTransactionTable(cfg.Theme, max(cfg.PageSize, 1)),
		pagerView: components.NewPager(cfg.Theme),
		state:     StateLoading,
	}
	m.resize(cfg.Width, cfg.Height)
	m.refresh(false)
	return m
}

// Init starts the source load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadTransactions())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case transactionsLoadedMsg:
		m.handleLoaded(msg)
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey routes a key press to navigation, the filter inputs or quit.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.PrevPage):
		m.pager = m.pager.Prev()
		m.refresh(false)
		return m, nil

	case key.Matches(msg, m.keymap.NextPage):
		m.pager = m.pager.Next(m.current.TotalPages)
		m.refresh(false)
		return m, nil

	case key.Matches(msg, m.keymap.SwitchField):
		return m, m.filter.FocusNext()

	case key.Matches(msg, m.keymap.ClearField):
		m.filter.ClearFocused()
		m.refresh(m.config.ClampOnFilter)
		return m, nil
	}

	oldStart, oldEnd := m.filter.Values()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if start, end := m.filter.Values(); start != oldStart || end != oldEnd {
		m.refresh(m.config.ClampOnFilter)
	}
	return m, cmd
}

// handleLoaded stores the batch, or the failure, from the source load.
func (m *Model) handleLoaded(msg transactionsLoadedMsg) {
	m.state = StateReady

	if msg.err != nil {
		m.lastError = common.NewUserError(common.LoadFailedMessage, msg.err)
		common.LogError(msg.err, "failed to load transactions", nil)
		m.refresh(false)
		return
	}

	m.transactions = msg.transactions
	m.generation++
	common.LogInfo("transactions loaded", common.Fields{"count": len(msg.transactions)})
	m.refresh(false)
}

// refresh recomputes the derived view from the current inputs.
func (m *Model) refresh(clamp bool) {
	start, end := m.filter.Bounds()
	filtered := m.cache.Filter(m.generation, m.transactions, start, end)

	if clamp {
		m.pager = m.pager.Clamp(ledger.TotalPages(len(filtered), m.pager.Size()))
	}

	m.current = ledger.Derive(filtered, m.pager.Page(), m.pager.Size())
	m.table.SetRows(viewmodel.NewRowViews(m.current.Rows))
}

// resize adjusts component sizes when the terminal resizes.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	// Outer box border (2) and padding (4).
	inner := max(width-6, 40)
	m.summary.Resize(inner)
	m.table.Resize(inner)
	m.help.Width = inner
}

// Dashboard returns the display data for the current state.
func (m Model) Dashboard() viewmodel.DashboardView {
	startText, endText := m.filter.Values()
	start, end := m.filter.Bounds()

	load := viewmodel.LoadDone
	switch {
	case m.state == StateLoading:
		load = viewmodel.LoadPending
	case m.lastError != nil:
		load = viewmodel.LoadFailed
	}

	return viewmodel.DashboardView{
		Error:      common.UserMessage(m.lastError),
		TotalLabel: viewmodel.FormatAmount(m.current.Total),
		Rows:       viewmodel.NewRowViews(m.current.Rows),
		Count:      m.current.Count,
		Page:       m.current.Page,
		TotalPages: m.current.TotalPages,
		Load:       load,
		Filter: viewmodel.FilterView{
			Start:        startText,
			End:          endText,
			Focused:      m.filter.Focused(),
			StartInvalid: start.State() == model.BoundInvalid,
			EndInvalid:   end.State() == model.BoundInvalid,
		},
	}
}

// State returns the load state.
func (m Model) State() State {
	return m.state
}

// Err returns the load error, if any.
func (m Model) Err() error {
	return m.lastError
}

// Transactions returns the loaded batch.
func (m Model) Transactions() []model.Transaction {
	return m.transactions
}

// Current returns the derived ledger view.
func (m Model) Current() ledger.View {
	return m.current
}
