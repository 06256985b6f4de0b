package theme

// Accent is the brand color with its derived interaction variants.
type Accent struct {
	Primary string
	Hover   string
	Active  string
	Light   string
	Lighter string
}

// AccentPalette derives hover/active/light/lighter variants from the base
// color. Level 1 to 3 steepens the hover and active darkening; anything out
// of range falls back to 1. Primary passes through untouched.
func AccentPalette(base string, level int) Accent {
	if level < 1 || level > 3 {
		level = 1
	}

	hoverAmount := 0.15 + float64(level)*0.05

	return Accent{
		Primary: base,
		Hover:   Darken(base, hoverAmount),
		Active:  Darken(base, hoverAmount*1.5),
		Light:   Lighten(base, 0.9),
		Lighter: Lighten(base, 0.95),
	}
}
