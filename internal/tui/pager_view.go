package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// barGap separates the left and right halves of the navigation bar.
const barGap = 4

// View implements tea.Model.
func (m *PagerModel) View() string {
	if m.quitting {
		return ""
	}

	sections := append([]string{m.renderItems()}, m.chromeSections()...)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// chromeSections renders everything below the item list.
func (m *PagerModel) chromeSections() []string {
	sections := []string{m.renderBar()}
	if m.focus == FocusSizeMenu {
		sections = append(sections, m.renderSizeMenu())
	}
	if dots := m.dots.View(); dots != "" {
		sections = append(sections, dots)
	}
	return append(sections, m.help.View(m.keys))
}

func (m *PagerModel) renderItems() string {
	if m.items.ItemCount() == 0 {
		return SubtleStyle.Render("No items on this page.")
	}
	return m.items.View()
}

// renderBar draws the size selector, range text, and step controls on one line.
// When the captions do not fit the width, the steps shrink to their icons.
func (m *PagerModel) renderBar() string {
	labels := m.ctrl.Labels()
	disabled := m.ctrl.Config().Disabled

	size := "[" + strconv.Itoa(m.ctrl.State().PageSize) + "]"
	if disabled {
		size = DisabledStyle.Render(size)
	} else {
		size = ButtonStyle.Render(size)
	}

	left := strings.Join([]string{
		size,
		SubtleStyle.Render(labels.ItemsPerPage),
		SubtleStyle.Render(SeparatorText),
		TextStyle.Render(m.ctrl.ItemText()),
	}, " ")

	right := m.renderSteps(IconBackward+" "+labels.Backward, labels.Forward+" "+IconForward)
	if lipgloss.Width(left)+barGap+lipgloss.Width(right) > m.width {
		right = m.renderSteps(IconBackward, IconForward)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < barGap {
		gap = barGap
	}
	return BarStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m *PagerModel) renderSteps(backward, forward string) string {
	return strings.Join([]string{
		TextStyle.Render(m.ctrl.PageText()),
		m.renderStep(backward, m.ctrl.CanBackward()),
		m.renderPageEntry(),
		m.renderStep(forward, m.ctrl.CanForward()),
	}, "  ")
}

func (m *PagerModel) renderStep(label string, enabled bool) string {
	if enabled {
		return ButtonStyle.Render(label)
	}
	return DisabledStyle.Render(label)
}

// renderPageEntry draws the page-number field, or a separator when entry is suppressed.
func (m *PagerModel) renderPageEntry() string {
	if !m.ctrl.PageInputEnabled() {
		return SubtleStyle.Render(SeparatorText)
	}
	if m.focus == FocusPageInput {
		return m.input.View()
	}
	return SubtleStyle.Render("[" + strconv.Itoa(m.ctrl.State().Page) + "]")
}

func (m *PagerModel) renderSizeMenu() string {
	sizes := m.ctrl.Config().PageSizes
	options := make([]string, len(sizes))
	for i, size := range sizes {
		label := strconv.Itoa(size)
		if i == m.sizeCursor {
			options[i] = SelectedStyle.Render("> " + label)
		} else {
			options[i] = "  " + label
		}
	}
	title := SubtleStyle.Render(m.ctrl.Labels().ItemsPerPage)
	return MenuStyle.Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, options...)...))
}
