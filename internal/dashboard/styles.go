package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Title shown centered in the top border
const Title = "light mixer"

// Default size used until the first tea.WindowSizeMsg arrives
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Gauge palette
var (
	GaugeForeground  = lipgloss.Color("0")  // Black
	GaugeBackground  = lipgloss.Color("3")  // Yellow - even rows
	GaugeBackground2 = lipgloss.Color("11") // Light yellow - odd rows

	BorderColor = lipgloss.Color("#E5C07B")
	SubtleColor = lipgloss.Color("#626262")
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderTop(false).
			BorderForeground(BorderColor)

	borderStyle = lipgloss.NewStyle().
			Foreground(BorderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(BorderColor).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)
)

// rowColors returns the gauge foreground/background for a row. Rows alternate
// between two backgrounds by parity; the cursor row has them swapped.
func rowColors(index, cursor int) (fg, bg lipgloss.Color) {
	fg, bg = GaugeForeground, GaugeBackground2
	if index%2 == 0 {
		bg = GaugeBackground
	}
	if index == cursor {
		fg, bg = bg, fg
	}
	return fg, bg
}

// renderTopBorder draws "╭──── title ────╮" across width columns.
func renderTopBorder(title string, width int) string {
	b := lipgloss.RoundedBorder()
	inner := width - 2
	if inner < 0 {
		inner = 0
	}

	label := " " + title + " "
	if lipgloss.Width(label) > inner {
		return borderStyle.Render(b.TopLeft + strings.Repeat(b.Top, inner) + b.TopRight)
	}

	left := (inner - lipgloss.Width(label)) / 2
	right := inner - lipgloss.Width(label) - left
	return borderStyle.Render(b.TopLeft+strings.Repeat(b.Top, left)) +
		titleStyle.Render(label) +
		borderStyle.Render(strings.Repeat(b.Top, right)+b.TopRight)
}
