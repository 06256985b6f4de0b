package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// parseColor turns a CSS color value produced by the variable builder into a
// colorful.Color. Hex, hsl() and hsla() forms are supported; the keyword
// "transparent" and anything unrecognized report false.
func parseColor(value string) (colorful.Color, bool) {
	v := strings.TrimSpace(value)
	switch {
	case v == "" || strings.EqualFold(v, "transparent"):
		return colorful.Color{}, false
	case strings.HasPrefix(v, "#"):
		c, err := colorful.Hex(v)
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	case strings.HasPrefix(v, "hsl"):
		return parseHSL(v)
	default:
		return colorful.Color{}, false
	}
}

// parseHSL reads the hsl()/hsla() shapes the color math emits. The alpha
// channel is parsed but discarded; terminal cells have no transparency.
func parseHSL(value string) (colorful.Color, bool) {
	var h, s, l, a float64
	if _, err := fmt.Sscanf(value, "hsla(%f, %f%%, %f%%, %f)", &h, &s, &l, &a); err == nil {
		return colorful.Hsl(h, s/100, l/100).Clamped(), true
	}
	if _, err := fmt.Sscanf(value, "hsl(%f, %f%%, %f%%)", &h, &s, &l); err == nil {
		return colorful.Hsl(h, s/100, l/100).Clamped(), true
	}
	return colorful.Color{}, false
}

// termColor converts a variable value into a lipgloss color usable as a cell
// background. The second return is false for transparent or unparsable values.
func termColor(value string) (lipgloss.Color, bool) {
	c, ok := parseColor(value)
	if !ok {
		return "", false
	}
	return lipgloss.Color(c.Hex()), true
}

// labelColor picks a readable label color for the given background.
func labelColor(c colorful.Color) lipgloss.Color {
	_, _, l := c.Hsl()
	if l > 0.55 {
		return lipgloss.Color("#1f2937")
	}
	return lipgloss.Color("#f9fafb")
}
