package preview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

const (
	gap    = 1
	bar    = "━"
	dot    = "●"
	faint  = 0.6
	margin = 2
)

// View draws the mock interface. Blocks that have not started yet keep their
// space but stay blank.
func (m Model) View() string {
	if m.layout.Empty() {
		return lipgloss.NewStyle().
			Width(m.Width).
			Height(5).
			Align(lipgloss.Center, lipgloss.Center).
			Faint(true).
			Render(m.layout.Placeholder)
	}

	var (
		rows  []string
		group Group
		cells []string
	)

	flush := func() {
		if len(cells) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, lo.Interleave(cells, spacers(len(cells)-1))...))
		}
		cells = nil
	}

	for i, block := range m.layout.Blocks {
		if block.Group != group {
			flush()
			group = block.Group
		}
		cells = append(cells, m.renderBlock(i, block, m.cellWidth(block.Group)))
	}
	flush()

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func spacers(n int) []string {
	if n <= 0 {
		return nil
	}
	return lo.Times(n, func(int) string { return strings.Repeat(" ", gap) })
}

func (m Model) cellWidth(group Group) int {
	switch group {
	case GroupGrid2:
		return (m.Width - gap) / 2
	case GroupGrid3:
		return (m.Width - 2*gap) / 3
	default:
		return m.Width
	}
}

func (m Model) renderBlock(i int, block Block, width int) string {
	full := m.drawBlock(block, width)

	if !m.Visible(i) {
		return blank(full)
	}

	scaled := full
	if scale := m.Scale(i); scale < 1 {
		inner := int(math.Round(float64(width) * scale))
		scaled = lipgloss.PlaceHorizontal(width, lipgloss.Center, m.drawBlock(block, inner))
	}

	if m.Opacity(i) < faint {
		scaled = lipgloss.NewStyle().Faint(true).Render(scaled)
	}
	return scaled
}

func blank(s string) string {
	return lipgloss.NewStyle().
		Width(lipgloss.Width(s)).
		Height(lipgloss.Height(s)).
		Render("")
}

func (m Model) drawBlock(block Block, width int) string {
	ink := lipgloss.NewStyle().Foreground(block.Ink.Lipgloss())
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(block.Border.Lipgloss()).
		Width(max(width-margin, 1))

	switch block.Group {
	case GroupHeader:
		return lipgloss.NewStyle().
			Background(block.Fill.Lipgloss()).
			Foreground(block.Ink.Lipgloss()).
			Width(width).
			Render(" " + dot + " " + strings.Repeat(bar, max(width/4, 1)))
	case GroupContent:
		return box.Render(lipgloss.JoinVertical(lipgloss.Left,
			ink.Render(dot+" "+strings.Repeat(bar, max(width/2, 1))),
			ink.Render(strings.Repeat(bar, max(width/3, 1))),
		))
	case GroupGrid2:
		if block.Name == "visualize" {
			return box.Height(2).Align(lipgloss.Center, lipgloss.Center).Render(ink.Bold(true).Render("Visualize"))
		}
		return box.Render(lipgloss.JoinVertical(lipgloss.Left,
			ink.Render(strings.Repeat(bar, max(width/2, 1))),
			ink.Faint(true).Render(strings.Repeat(bar, max(width/3, 1))),
		))
	case GroupGrid3:
		return box.Height(2).Render("")
	case GroupEngage:
		return lipgloss.NewStyle().
			Background(block.Fill.Lipgloss()).
			Width(width).
			Padding(1, 0).
			Align(lipgloss.Center).
			Render(m.typewriter.Style.Render(m.fitTitle(m.typewriter.Visible())))
	default:
		return box.Render(block.Name)
	}
}
