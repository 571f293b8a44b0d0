package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the frame, one gauge row per controller, a spare row and the
// help footer
func (m Model) View() string {
	width, height := m.Width, m.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	// Border takes two columns, a one-cell margin on each side two more.
	innerWidth := width - 2
	gaugeWidth := innerWidth - 2
	if gaugeWidth < 1 {
		gaugeWidth = 1
	}

	rows := make([]string, 0, len(m.Controllers)+1)
	for i, c := range m.Controllers {
		fg, bg := rowColors(i, m.Cursor)
		label := GaugeLabel(c, m.Aliases[c.Path])
		rows = append(rows, RenderGauge(label, c.Percent(), gaugeWidth, fg, bg))
	}
	if len(m.Controllers) == 0 {
		rows = append(rows, emptyStyle.Render("No brightness controllers found"))
	}
	rows = append(rows, "")

	gauges := lipgloss.NewStyle().
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))

	footer := lipgloss.NewStyle().
		Padding(0, 1).
		Render(m.Help.View(m.Keys))

	// Top border is drawn separately, bottom border takes one more line.
	bodyHeight := height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	gaugeHeight := bodyHeight - lipgloss.Height(footer)
	if gaugeHeight < 0 {
		gaugeHeight = 0
	}
	gauges = lipgloss.NewStyle().Height(gaugeHeight).MaxHeight(gaugeHeight).Render(gauges)

	body := lipgloss.JoinVertical(lipgloss.Left, gauges, footer)
	frame := frameStyle.
		Width(innerWidth).
		Height(bodyHeight).
		MaxHeight(bodyHeight + 1).
		Render(body)

	return renderTopBorder(Title, width) + "\n" + frame
}
