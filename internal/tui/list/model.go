package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// RenderFunc renders one item. index is the item's one-based position in the whole collection.
type RenderFunc[T any] func(item T, index int, selected bool) string

// Model shows the items of a single page with a cursor.
// Only the rows that fit in the viewport are rendered, kept around the cursor.
type Model[T any] struct {
	items      []T
	offset     int
	selected   int
	renderFunc RenderFunc[T]

	// visibleFrom is the first visible item index
	visibleFrom int
	// visibleTo is the last visible item index (exclusive)
	visibleTo int

	height int
	width  int
}

// New creates an empty page model with a viewport of width columns and height rows.
func New[T any](width, height int, renderFunc RenderFunc[T]) *Model[T] {
	return &Model[T]{
		renderFunc: renderFunc,
		width:      width,
		height:     max(height, 1),
	}
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles cursor keys and resizes.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// SetSize changes the viewport. Heights below one row are treated as one.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = max(height, 1)
	m.updateVisibleRange()
}

//nolint:exhaustive // Only cursor movement keys apply to a page list.
func (m *Model[T]) handleKeyMsg(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.Type {
	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown:
		m.move(1)
	case tea.KeyHome:
		m.selected = 0
	case tea.KeyEnd:
		m.selected = len(m.items) - 1
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			switch msg.Runes[0] {
			case 'j':
				m.move(1)
			case 'k':
				m.move(-1)
			}
		}
	default:
	}
	m.updateVisibleRange()
}

func (m *Model[T]) move(delta int) {
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.items) {
		m.selected = len(m.items) - 1
	}
}

// updateVisibleRange centers the viewport on the cursor, clamped to the page.
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	from := max(m.selected-m.height/halfViewportDivisor, 0)
	to := from + m.height
	if to > len(m.items) {
		to = len(m.items)
		from = max(to-m.height, 0)
	}

	m.visibleFrom = from
	m.visibleTo = to
}

// SetItems replaces the page contents. offset is the zero-based collection index of items[0].
func (m *Model[T]) SetItems(items []T, offset int) {
	m.items = items
	m.offset = offset
	m.selected = 0
	m.updateVisibleRange()
}

// View renders the visible rows, one per line, cut to the viewport width.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	row := lipgloss.NewStyle().MaxWidth(m.width)

	var sb strings.Builder
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		if i > m.visibleFrom {
			sb.WriteString("\n")
		}
		sb.WriteString(row.Render(m.renderFunc(m.items[i], m.offset+i+1, i == m.selected)))
	}
	return sb.String()
}

// ItemCount returns the number of items on the page.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// SelectedItem returns the item under the cursor, or nil for an empty page.
func (m *Model[T]) SelectedItem() *T {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
