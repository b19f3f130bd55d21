package tui

import (
	"context"
	"slices"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/pagectl/internal/logging"
	"github.com/rshade/pagectl/internal/pagination"
	"github.com/rshade/pagectl/internal/source"
	listview "github.com/rshade/pagectl/internal/tui/list"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// maxDots is the largest page count drawn as dots; beyond it the indicator switches to numbers.
const maxDots = 20

// pageInputWidth is the visible width of the page-number field.
const pageInputWidth = 6

// Focus identifies which affordance receives key input.
type Focus int

const (
	// FocusList routes keys to page navigation and the item list.
	FocusList Focus = iota
	// FocusSizeMenu routes keys to the page-size menu.
	FocusSizeMenu
	// FocusPageInput routes keys to the page-number field.
	FocusPageInput
)

// ConfigUpdatedMsg carries a configuration pushed by the host while the view is running.
type ConfigUpdatedMsg struct {
	Config pagination.Config
}

// PagerOptions configures a PagerModel.
type PagerOptions struct {
	// ID identifies the control instance in logs.
	ID string
	// Text overrides the range formatters.
	Text pagination.Text
	// Labels overrides the affordance captions.
	Labels pagination.Labels
	// OnChange is called after the view has loaded each newly selected page.
	OnChange pagination.ChangeFunc
}

// PagerModel is the Bubble Tea model for paging through a Source.
type PagerModel struct {
	ctx    context.Context
	logger zerolog.Logger

	ctrl     *pagination.Controller
	src      source.Source
	onChange pagination.ChangeFunc

	// pending collects changes emitted during one Update; the page is loaded afterwards
	// so that configuration pushes never happen inside the controller's callback.
	pending []pagination.Change

	items *listview.Model[string]
	input textinput.Model
	dots  paginator.Model
	help  help.Model
	keys  KeyMap

	focus      Focus
	sizeCursor int

	width    int
	height   int
	quitting bool

	chosen    string
	hasChosen bool
}

// NewPagerModel creates a PagerModel over src, seeded from cfg.
// When src is non-nil its total replaces cfg.TotalItems and cfg.PagesUnknown.
func NewPagerModel(ctx context.Context, cfg pagination.Config, src source.Source, opts PagerOptions) *PagerModel {
	logger := logging.ComponentLogger(*logging.FromContext(ctx), "tui")

	m := &PagerModel{
		ctx:      ctx,
		logger:   logger,
		src:      src,
		onChange: opts.OnChange,
		items:    listview.New(defaultWidth, defaultHeight, renderItem),
		input:    newPageInput(opts.Labels.WithDefaults().PageNumber),
		dots:     newDots(),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		width:    defaultWidth,
		height:   defaultHeight,
	}

	m.ctrl = pagination.New(m.withSource(cfg),
		pagination.WithID(opts.ID),
		pagination.WithText(opts.Text),
		pagination.WithLabels(opts.Labels),
		pagination.WithLogger(logger),
		pagination.WithOnChange(func(c pagination.Change) {
			m.pending = append(m.pending, c)
		}),
	)

	m.loadPage()
	m.syncKeys()
	m.layout()
	return m
}

func newPageInput(label string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.Prompt = label + ": "
	ti.CharLimit = 9
	ti.Width = pageInputWidth
	return ti
}

func newDots() paginator.Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = SelectedStyle.Render("•")
	p.InactiveDot = SubtleStyle.Render("◦")
	p.ArabicFormat = "%d/%d"
	return p
}

func renderItem(item string, index int, selected bool) string {
	line := strconv.Itoa(index) + ". " + item
	if selected {
		return CursorStyle.Render("> " + line)
	}
	return "  " + line
}

// withSource overlays the source's total onto cfg.
func (m *PagerModel) withSource(cfg pagination.Config) pagination.Config {
	if m.src == nil {
		return cfg
	}
	total, known := m.src.Total()
	cfg.TotalItems = total
	cfg.PagesUnknown = !known
	return cfg
}

// Controller exposes the underlying controller.
func (m *PagerModel) Controller() *pagination.Controller {
	return m.ctrl
}

// Focus returns the affordance that currently receives keys.
func (m *PagerModel) Focus() Focus {
	return m.focus
}

// Chosen returns the item picked with the choose key, if the view was closed that way.
func (m *PagerModel) Chosen() (string, bool) {
	return m.chosen, m.hasChosen
}

// Init implements tea.Model.
func (m *PagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case ConfigUpdatedMsg:
		m.ctrl.SetConfig(m.withSource(msg.Config))
		m.loadPage()
		if m.focus == FocusPageInput && !m.ctrl.PageInputEnabled() {
			m.closePageInput()
		}

	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)
	}

	m.flushChanges()
	m.syncKeys()
	m.layout()
	return m, cmd
}

func (m *PagerModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch m.focus {
	case FocusSizeMenu:
		return m.handleSizeMenuKey(msg)
	case FocusPageInput:
		return m.handlePageInputKey(msg)
	case FocusList:
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Choose):
		if item := m.items.SelectedItem(); item != nil {
			m.chosen = *item
			m.hasChosen = true
			m.quitting = true
			return tea.Quit
		}
	case key.Matches(msg, m.keys.Backward):
		if m.ctrl.CanBackward() {
			m.ctrl.Backward()
		}
	case key.Matches(msg, m.keys.Forward):
		if m.ctrl.CanForward() {
			m.ctrl.Forward()
		}
	case key.Matches(msg, m.keys.Size):
		if !m.ctrl.Config().Disabled {
			m.openSizeMenu()
		}
	case key.Matches(msg, m.keys.PageEntry):
		if m.ctrl.PageInputEnabled() {
			return m.openPageInput()
		}
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.items.Update(msg)
	}
	return nil
}

func (m *PagerModel) openSizeMenu() {
	m.focus = FocusSizeMenu
	sizes := m.ctrl.Config().PageSizes
	m.sizeCursor = max(slices.Index(sizes, m.ctrl.State().PageSize), 0)
}

func (m *PagerModel) handleSizeMenuKey(msg tea.KeyMsg) tea.Cmd {
	sizes := m.ctrl.Config().PageSizes

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.focus = FocusList
	case key.Matches(msg, m.keys.MenuPrev):
		if m.sizeCursor > 0 {
			m.sizeCursor--
		}
	case key.Matches(msg, m.keys.MenuNext):
		if m.sizeCursor < len(sizes)-1 {
			m.sizeCursor++
		}
	case key.Matches(msg, m.keys.Submit):
		if m.sizeCursor < len(sizes) {
			m.ctrl.ChangeSizeInput(strconv.Itoa(sizes[m.sizeCursor]))
		}
		m.focus = FocusList
	}
	return nil
}

func (m *PagerModel) openPageInput() tea.Cmd {
	m.focus = FocusPageInput
	m.input.SetValue("")
	return m.input.Focus()
}

func (m *PagerModel) closePageInput() {
	m.focus = FocusList
	m.input.Blur()
	m.input.SetValue("")
}

func (m *PagerModel) handlePageInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closePageInput()
		return nil
	case key.Matches(msg, m.keys.Submit):
		raw := m.input.Value()
		if !m.ctrl.JumpToInput(raw) {
			m.logger.Debug().Str("input", raw).Msg("page entry ignored")
		}
		m.closePageInput()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// flushChanges loads the newly selected page for each change emitted in this update.
func (m *PagerModel) flushChanges() {
	if len(m.pending) == 0 {
		return
	}
	changes := m.pending
	m.pending = nil

	m.loadPage()
	for _, c := range changes {
		if m.onChange != nil {
			m.onChange(c)
		}
	}
}

// loadPage asks the source for the current page and feeds the end-of-stream
// signal back as configuration.
func (m *PagerModel) loadPage() {
	state := m.ctrl.State()
	if m.src != nil {
		m.items.SetItems(m.src.Page(state.Offset(), state.PageSize), state.Offset())

		cfg := m.ctrl.Config()
		if last := m.src.Exhausted(state.Offset(), state.PageSize); last != cfg.IsLastPage {
			cfg.IsLastPage = last
			m.ctrl.SetConfig(cfg)
		}
	}

	total := m.ctrl.TotalPages()
	if m.ctrl.Config().PagesUnknown {
		total = state.Page
	}
	m.dots.TotalPages = max(total, 1)
	m.dots.Page = min(max(state.Page-1, 0), m.dots.TotalPages-1)
	if m.dots.TotalPages > maxDots || m.ctrl.Config().PagesUnknown {
		m.dots.Type = paginator.Arabic
	} else {
		m.dots.Type = paginator.Dots
	}

	m.logger.Debug().
		Int("page", state.Page).
		Int("page_size", state.PageSize).
		Int("items", m.items.ItemCount()).
		Msg("page loaded")
}

// syncKeys mirrors the controller's enablement onto the key bindings so help
// only lists what is currently possible.
func (m *PagerModel) syncKeys() {
	disabled := m.ctrl.Config().Disabled
	m.keys.Backward.SetEnabled(m.ctrl.CanBackward())
	m.keys.Forward.SetEnabled(m.ctrl.CanForward())
	m.keys.Size.SetEnabled(!disabled)
	m.keys.PageEntry.SetEnabled(m.ctrl.PageInputEnabled())
}

// layout gives the item list whatever rows the bar, menus, dots and help leave free.
func (m *PagerModel) layout() {
	chrome := lipgloss.Height(lipgloss.JoinVertical(lipgloss.Left, m.chromeSections()...))
	m.items.SetSize(m.width, m.height-chrome)
}
