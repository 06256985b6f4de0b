package theme

// Surface is the set of semantic surface colors for one color scheme.
type Surface struct {
	Background      string
	Surface         string
	ComposerSurface string
	Border          string
	Text            string
	SubText         string
	HoverSurface    string
}

// SurfacePalette derives the seven semantic surface roles from the grayscale
// parameters. The dark and light formulas use different saturation and
// lightness slopes from GrayscaleRamp on purpose: the ramp feeds the generic
// gray-N tokens while this palette feeds the semantic roles directly, and the
// two must not be conflated.
func SurfacePalette(hue, tint, shade int, isDark bool) Surface {
	if isDark {
		saturation := 5 + float64(tint)*2
		lightness := 10 + float64(shade)*0.5
		textSaturation := max(0, saturation-10)

		return Surface{
			Background:      HSL(hue, saturation, lightness),
			Surface:         HSL(hue, saturation, lightness+5),
			ComposerSurface: HSL(hue, saturation, lightness+5),
			Border:          HSLA(hue, saturation, 90, 0.08),
			Text:            HSL(hue, textSaturation, 90),
			SubText:         HSL(hue, textSaturation, 60),
			HoverSurface:    HSLA(hue, saturation, 90, 0.05),
		}
	}

	saturation := 10 + float64(tint)*3
	lightness := 98 - float64(shade)*2

	return Surface{
		Background:      HSL(hue, saturation, lightness),
		Surface:         HSL(hue, saturation, lightness-5),
		ComposerSurface: HSL(hue, saturation, 100),
		Border:          HSLA(hue, saturation, 10, 0.08),
		Text:            HSL(hue, saturation, 10),
		SubText:         HSL(hue, saturation, 40),
		HoverSurface:    HSLA(hue, saturation, 10, 0.05),
	}
}
