// Package theme derives the render-ready variable set for a widget: color
// math primitives, the 13-step neutral grayscale ramp, surface and accent
// palettes, radius/density presets, and the builder that composes them into
// the flat cw-* variable map the runtime stylesheet consumes.
//
// Everything here is pure and total. Inputs arrive sanitized and validated,
// so no function in this package returns an error; absence of an optional
// value always has a defined fallback.
package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// Lighten moves each RGB channel toward 255 by amount of its remaining
// headroom, flooring the result. Expects a valid "#RRGGBB" input; derived
// output is lowercase.
func Lighten(hex string, amount float64) string {
	r, g, b := splitHex(hex)
	return joinHex(
		r+int(float64(255-r)*amount),
		g+int(float64(255-g)*amount),
		b+int(float64(255-b)*amount),
	)
}

// Darken moves each RGB channel toward 0 by amount, flooring the result.
func Darken(hex string, amount float64) string {
	r, g, b := splitHex(hex)
	return joinHex(
		int(float64(r)*(1-amount)),
		int(float64(g)*(1-amount)),
		int(float64(b)*(1-amount)),
	)
}

// HSL renders an hsl() color string. Saturation and lightness are percentages
// and may be fractional.
func HSL(hue int, saturation, lightness float64) string {
	return "hsl(" + strconv.Itoa(hue) + ", " + formatNumber(saturation) + "%, " + formatNumber(lightness) + "%)"
}

// HSLA renders an hsla() color string with an alpha channel.
func HSLA(hue int, saturation, lightness, alpha float64) string {
	return "hsla(" + strconv.Itoa(hue) + ", " + formatNumber(saturation) + "%, " + formatNumber(lightness) + "%, " + formatNumber(alpha) + ")"
}

// formatNumber renders a float the way the runtime stylesheet templates
// numbers: no exponent, no trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func splitHex(hex string) (r, g, b int) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff)
}

func joinHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

func clampChannel(c int) int {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}
