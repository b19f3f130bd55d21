package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagectl/internal/pagination"
	"github.com/rshade/pagectl/internal/source"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestPager(t *testing.T, cfg pagination.Config, src source.Source) (*PagerModel, *[]pagination.Change) {
	t.Helper()
	var changes []pagination.Change
	m := NewPagerModel(context.Background(), cfg, src, PagerOptions{
		ID:       "test",
		OnChange: func(c pagination.Change) { changes = append(changes, c) },
	})
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	return m, &changes
}

func send(m *PagerModel, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestPagerModel_InitialPage(t *testing.T) {
	m, changes := newTestPager(t, pagination.Config{PageSizes: []int{10, 20, 50}}, source.Sequence{Count: 23})

	assert.Nil(t, m.Init())
	assert.Equal(t, pagination.State{Page: 1, PageSize: 10}, m.Controller().State())
	assert.Equal(t, 10, m.items.ItemCount())
	assert.Empty(t, *changes, "seeding does not notify")

	view := m.View()
	assert.Contains(t, view, "1-10 of 23 items")
	assert.Contains(t, view, "1 of 3 pages")
	assert.Contains(t, view, "1. item 1")
	assert.Contains(t, view, "items per page")
}

func TestPagerModel_StepNavigation(t *testing.T) {
	m, changes := newTestPager(t, pagination.Config{PageSizes: []int{10, 20, 50}}, source.Sequence{Count: 23})

	send(m, keyRight, keyRight)
	assert.Equal(t, pagination.State{Page: 3, PageSize: 10}, m.Controller().State())
	assert.Equal(t, 3, m.items.ItemCount())
	assert.Contains(t, m.View(), "21-23 of 23 items")
	assert.False(t, m.keys.Forward.Enabled())

	send(m, keyRight)
	assert.Equal(t, 3, m.Controller().State().Page, "forward is disabled on the last page")

	send(m, keyLeft)
	assert.Equal(t, 2, m.Controller().State().Page)

	assert.Equal(t, []pagination.Change{
		{Page: 2, PageSize: 10},
		{Page: 3, PageSize: 10},
		{Page: 2, PageSize: 10},
	}, *changes)
}

func TestPagerModel_SizeMenu(t *testing.T) {
	m, changes := newTestPager(t, pagination.Config{PageSizes: []int{10, 20, 50}}, source.Sequence{Count: 100})
	send(m, keyRight, keyRight)
	*changes = nil

	send(m, keyRunes("s"))
	require.Equal(t, FocusSizeMenu, m.Focus())
	assert.Contains(t, m.View(), "> 10")

	send(m, keyRight, keyEnter)
	assert.Equal(t, FocusList, m.Focus())
	assert.Equal(t, pagination.State{Page: 1, PageSize: 20}, m.Controller().State())
	assert.Equal(t, 20, m.items.ItemCount())
	assert.Equal(t, []pagination.Change{{Page: 1, PageSize: 20}}, *changes)

	send(m, keyRunes("s"), keyLeft, keyEsc)
	assert.Equal(t, FocusList, m.Focus())
	assert.Equal(t, 20, m.Controller().State().PageSize, "cancelled menu keeps the size")
	assert.Len(t, *changes, 1)
}

func TestPagerModel_PageEntry(t *testing.T) {
	tests := []struct {
		name     string
		typed    string
		wantPage int
		emitted  bool
	}{
		{name: "valid page", typed: "3", wantPage: 3, emitted: true},
		{name: "past the end", typed: "9", wantPage: 1},
		{name: "zero", typed: "0", wantPage: 1},
		{name: "not a number", typed: "x", wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, changes := newTestPager(t, pagination.Config{PageSizes: []int{10}}, source.Sequence{Count: 23})

			send(m, keyRunes("g"))
			require.Equal(t, FocusPageInput, m.Focus())

			send(m, keyRunes(tt.typed), keyEnter)
			assert.Equal(t, FocusList, m.Focus())
			assert.Equal(t, tt.wantPage, m.Controller().State().Page)
			assert.Equal(t, tt.emitted, len(*changes) == 1)
		})
	}
}

func TestPagerModel_PageEntryCancel(t *testing.T) {
	m, changes := newTestPager(t, pagination.Config{PageSizes: []int{10}}, source.Sequence{Count: 23})
	send(m, keyRunes("g"), keyRunes("2"), keyEsc)
	assert.Equal(t, FocusList, m.Focus())
	assert.Equal(t, 1, m.Controller().State().Page)
	assert.Empty(t, *changes)
}

func TestPagerModel_PageEntrySuppressed(t *testing.T) {
	m, _ := newTestPager(t, pagination.Config{PageSizes: []int{10}, PageInputDisabled: true}, source.Sequence{Count: 23})
	send(m, keyRunes("g"))
	assert.Equal(t, FocusList, m.Focus())
	assert.NotContains(t, m.View(), "[1]")
}

func TestPagerModel_UnknownTotal(t *testing.T) {
	m, changes := newTestPager(t, pagination.Config{PageSizes: []int{10}}, source.Sequence{Count: 25, Unknown: true})

	assert.Contains(t, m.View(), "1-10 items")
	assert.Contains(t, m.View(), "page 1")

	send(m, keyRunes("g"))
	assert.Equal(t, FocusList, m.Focus(), "page entry is unavailable without a total")

	send(m, keyRight, keyRight)
	assert.Equal(t, 3, m.Controller().State().Page)
	assert.True(t, m.Controller().Config().IsLastPage, "stream end is signalled as the last page")
	assert.False(t, m.Controller().CanForward())
	assert.Contains(t, m.View(), "21-30 items")

	send(m, keyRight)
	assert.Equal(t, 3, m.Controller().State().Page)
	assert.Len(t, *changes, 2)

	send(m, keyLeft)
	assert.False(t, m.Controller().Config().IsLastPage)
	assert.True(t, m.Controller().CanForward())
}

func TestPagerModel_ConfigUpdate(t *testing.T) {
	m, changes := newTestPager(t, pagination.Config{PageSizes: []int{10, 20}}, source.Sequence{Count: 100})
	send(m, keyRight, keyRight)
	*changes = nil

	send(m, ConfigUpdatedMsg{Config: pagination.Config{PageSizes: []int{10, 20}}})
	assert.Equal(t, 3, m.Controller().State().Page, "unchanged menu keeps the page")

	send(m, ConfigUpdatedMsg{Config: pagination.Config{PageSizes: []int{25, 50}}})
	assert.Equal(t, pagination.State{Page: 1, PageSize: 25}, m.Controller().State())
	assert.Equal(t, 25, m.items.ItemCount())
	assert.Equal(t, 100, m.Controller().Config().TotalItems, "source total survives config pushes")

	send(m, ConfigUpdatedMsg{Config: pagination.Config{PageSizes: []int{25, 50}, Page: 4}})
	assert.Equal(t, 4, m.Controller().State().Page)
	assert.Contains(t, m.items.View(), "76. item 76")
	assert.Empty(t, *changes, "configuration pushes never notify")
}

func TestPagerModel_Disabled(t *testing.T) {
	m, changes := newTestPager(t, pagination.Config{PageSizes: []int{10, 20}, Disabled: true}, source.Sequence{Count: 100})

	send(m, keyRight, keyRunes("s"), keyRunes("g"))
	assert.Equal(t, FocusList, m.Focus())
	assert.Equal(t, 1, m.Controller().State().Page)
	assert.Empty(t, *changes)
}

func TestPagerModel_Quit(t *testing.T) {
	m, _ := newTestPager(t, pagination.Config{PageSizes: []int{10}}, source.Sequence{Count: 5})
	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestPagerModel_HelpToggle(t *testing.T) {
	m, _ := newTestPager(t, pagination.Config{PageSizes: []int{10}}, source.Sequence{Count: 5})
	assert.False(t, m.help.ShowAll)
	send(m, keyRunes("?"))
	assert.True(t, m.help.ShowAll)
}

func TestPagerModel_ViewFitsWindow(t *testing.T) {
	m, _ := newTestPager(t, pagination.Config{PageSizes: []int{50}}, source.Sequence{Count: 200})

	sizes := []tea.WindowSizeMsg{{Width: 80, Height: 24}, {Width: 100, Height: 30}, {Width: 160, Height: 40}}
	for _, size := range sizes {
		send(m, size)
		for _, showAll := range []bool{false, true} {
			m.help.ShowAll = showAll
			send(m, keyRunes("s"))
			view := m.View()
			lines := strings.Split(view, "\n")
			assert.LessOrEqual(t, len(lines), size.Height, "%dx%d full help %v", size.Width, size.Height, showAll)
			for _, line := range lines {
				assert.LessOrEqual(t, lipgloss.Width(line), size.Width, "%dx%d line %q", size.Width, size.Height, line)
			}
			assert.Contains(t, view, "1-50 of 200 items")
			send(m, keyEsc)
		}
	}
}

func TestPagerModel_ListScrollsWithCursor(t *testing.T) {
	m, _ := newTestPager(t, pagination.Config{PageSizes: []int{50}}, source.Sequence{Count: 200})
	send(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Contains(t, m.View(), "1. item 1")
	assert.NotContains(t, m.View(), "50. item 50")

	for i := 0; i < 49; i++ {
		send(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	lines := strings.Split(m.View(), "\n")
	assert.LessOrEqual(t, len(lines), 24)
	assert.Contains(t, lines[0], "31. item 31")
	assert.Contains(t, m.View(), "50. item 50")
}

func TestPagerModel_ChooseItem(t *testing.T) {
	m, changes := newTestPager(t, pagination.Config{PageSizes: []int{10}}, source.Sequence{Count: 23})

	_, ok := m.Chosen()
	assert.False(t, ok)

	send(m, keyRight, tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	item, ok := m.Chosen()
	assert.True(t, ok)
	assert.Equal(t, "item 12", item)
	assert.Len(t, *changes, 1)
}

func TestPagerModel_ChooseOnEmptyPage(t *testing.T) {
	m, _ := newTestPager(t, pagination.Config{PageSizes: []int{10}}, source.Sequence{Count: 0})

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	_, ok := m.Chosen()
	assert.False(t, ok)
}
