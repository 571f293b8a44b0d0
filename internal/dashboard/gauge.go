package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/lightmixer/internal/light"
)

// GaugeLabel returns the text drawn over a controller's gauge, e.g.
// "/sys/class/backlight/intel_backlight (4800 / 96000 = 5 %)".
func GaugeLabel(c *light.Controller, alias string) string {
	name := c.Path
	if alias != "" {
		name += " [" + alias + "]"
	}
	return fmt.Sprintf("%s (%d / %d = %d %%)", name, c.Brightness, c.MaxBrightness, c.Percent())
}

// RenderGauge draws a one-line horizontal gauge width cells wide with label
// centered over it. The leftmost percent of the cells form the filled part,
// drawn in inverted colors. Widths are measured in terminal cells.
func RenderGauge(label string, percent uint64, width int, fg, bg lipgloss.Color) string {
	if width <= 0 {
		return ""
	}

	text := ansi.Truncate(label, width, "")
	pad := width - ansi.StringWidth(text)
	line := strings.Repeat(" ", pad/2) + text + strings.Repeat(" ", pad-pad/2)

	filled := width * int(min(percent, 100)) / 100
	left, right := splitCells(line, filled)

	filledStyle := lipgloss.NewStyle().Foreground(bg).Background(fg)
	remainStyle := lipgloss.NewStyle().Foreground(fg).Background(bg)

	var b strings.Builder
	if left != "" {
		b.WriteString(filledStyle.Render(left))
	}
	if right != "" {
		b.WriteString(remainStyle.Render(right))
	}
	return b.String()
}

// splitCells cuts s after n cells. A wide rune crossing the cut is replaced
// by spaces on both sides so each part keeps its exact width.
func splitCells(s string, n int) (string, string) {
	var left, right strings.Builder
	col := 0
	for _, r := range s {
		w := ansi.StringWidth(string(r))
		switch {
		case col+w <= n:
			left.WriteRune(r)
		case col >= n:
			right.WriteRune(r)
		default:
			left.WriteString(strings.Repeat(" ", n-col))
			right.WriteString(strings.Repeat(" ", col+w-n))
		}
		col += w
	}
	return left.String(), right.String()
}
