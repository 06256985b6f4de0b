package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	mutedColor   = lipgloss.Color("245") // Gray
	valueColor   = lipgloss.Color("252") // Light gray
	errorColor   = lipgloss.Color("196") // Red
	nameColor    = lipgloss.Color("39")  // Blue

	// Header style
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Section title style
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(mutedColor).
			MarginTop(1)

	// Variable name column
	nameStyle = lipgloss.NewStyle().
			Foreground(nameColor).
			Width(24)

	// Variable value column
	valueStyle = lipgloss.NewStyle().
			Foreground(valueColor)

	// Error banner style
	errorBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(errorColor).
				MarginBottom(1)

	// Footer hint style
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	// Spinner style
	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	// Help overlay style
	helpStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)
)

// swatchCell renders a fixed-width colored cell for a variable value. Values
// without a renderable color (transparent, unparsable) come back as a muted
// placeholder so rows keep their alignment.
func swatchCell(value string, width int) string {
	blank := lipgloss.NewStyle().Width(width)
	c, ok := parseColor(value)
	if !ok {
		return blank.Foreground(mutedColor).Render(centerText("none", width))
	}
	return lipgloss.NewStyle().
		Width(width).
		Background(lipgloss.Color(c.Hex())).
		Foreground(labelColor(c)).
		Render("")
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
