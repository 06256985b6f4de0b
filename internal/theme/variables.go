package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hullochat/hullo/internal/config"
	"github.com/hullochat/hullo/internal/translate"
)

// Variables is the flat variable set handed to the rendering layer. It keeps
// insertion order so the same configuration always renders byte-identical
// output; overwriting a name keeps its original position.
type Variables struct {
	names  []string
	values map[string]string
}

func newVariables() *Variables {
	return &Variables{values: make(map[string]string, 64)}
}

// Set adds or overwrites a variable.
func (v *Variables) Set(name, value string) {
	if _, ok := v.values[name]; !ok {
		v.names = append(v.names, name)
	}
	v.values[name] = value
}

// Get returns the value for name.
func (v *Variables) Get(name string) (string, bool) {
	value, ok := v.values[name]
	return value, ok
}

// Len returns the number of variables in the set.
func (v *Variables) Len() int {
	return len(v.names)
}

// Names returns the variable names in build order.
func (v *Variables) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// SortedNames returns the variable names in lexical order.
func (v *Variables) SortedNames() []string {
	out := v.Names()
	sort.Strings(out)
	return out
}

// Map returns a copy of the name to value mapping.
func (v *Variables) Map() map[string]string {
	out := make(map[string]string, len(v.values))
	for name, value := range v.values {
		out[name] = value
	}
	return out
}

// CSS renders the set as a :root custom-property block in build order.
func (v *Variables) CSS() string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, name := range v.names {
		fmt.Fprintf(&sb, "  --%s: %s;\n", name, v.values[name])
	}
	sb.WriteString("}\n")
	return sb.String()
}

// BuildVariables composes the complete variable set for one runtime
// configuration. Precedence throughout: explicit field beats derived color
// beats hardcoded light/dark fallback. The result always contains the full
// variable contract, with no missing entries.
func BuildVariables(rc *translate.RuntimeConfig) *Variables {
	if rc == nil {
		rc = translate.Translate(nil)
	}

	vars := newVariables()
	isDark := rc.Theme.ColorScheme == "dark"

	// Identity variables with the hardcoded scheme fallbacks. Later steps
	// overwrite most of these with derived values.
	fallbackBg, fallbackText := "#ffffff", "#1f2937"
	if isDark {
		fallbackBg, fallbackText = "#111827", "#f9fafb"
	}

	accentBase := config.DefaultColor
	if rc.Theme.Color.Accent != nil {
		accentBase = rc.Theme.Color.Accent.Base
	}

	vars.Set("cw-color-scheme", rc.Theme.ColorScheme)
	vars.Set("cw-primary-color", accentBase)
	vars.Set("cw-icon-color", accentBase)
	vars.Set("cw-bg", fallbackBg)
	vars.Set("cw-text-color", fallbackText)

	buildRadius(vars, rc.Theme)
	buildSpacing(vars, rc.Theme.Density)

	// Grayscale ramp and surface palette, from the configured triple or the
	// neutral default.
	gs := rc.Theme.Color.Grayscale
	if gs == nil {
		gs = &translate.GrayscaleSpec{
			Hue:   config.DefaultTintHue,
			Tint:  config.DefaultTintLevel,
			Shade: config.DefaultShadeLevel,
		}
	}

	for i, color := range GrayscaleRamp(gs.Hue, gs.Tint, gs.Shade) {
		vars.Set("cw-"+RampStepName(i), color)
	}

	surface := SurfacePalette(gs.Hue, gs.Tint, gs.Shade, isDark)
	vars.Set("cw-bg", surface.Background)
	vars.Set("cw-surface", surface.Surface)
	vars.Set("cw-composer-bg", surface.ComposerSurface)
	vars.Set("cw-border-color", surface.Border)
	vars.Set("cw-text-color", surface.Text)
	vars.Set("cw-subtext-color", surface.SubText)
	vars.Set("cw-hover-bg", surface.HoverSurface)

	// Accent palette; its primary becomes the primary and icon color.
	level := 1
	if rc.Theme.Color.Accent != nil {
		level = rc.Theme.Color.Accent.Level
	}
	accent := AccentPalette(accentBase, level)
	vars.Set("cw-accent-primary", accent.Primary)
	vars.Set("cw-accent-hover", accent.Hover)
	vars.Set("cw-accent-active", accent.Active)
	vars.Set("cw-accent-light", accent.Light)
	vars.Set("cw-accent-lighter", accent.Lighter)
	vars.Set("cw-primary-color", accent.Primary)
	vars.Set("cw-icon-color", accent.Primary)

	// Explicit overrides land after the derived palettes and always win.
	if s := rc.Theme.Color.Surface; s != nil {
		if s.Background != nil {
			vars.Set("cw-bg", *s.Background)
		}
		if s.Foreground != nil {
			vars.Set("cw-text-color", *s.Foreground)
		}
	}
	if rc.Theme.Color.Icon != nil {
		vars.Set("cw-icon-color", *rc.Theme.Color.Icon)
	}

	buildMessages(vars, rc.Theme.Color.UserMessage, accent)
	buildTypography(vars, rc.Theme.Typography)

	return vars
}

func buildRadius(vars *Variables, t translate.Theme) {
	base, isPill := radiusBase(t)

	vars.Set("cw-radius", px(base))
	vars.Set("cw-radius-sm", px(max(0, base-4)))
	vars.Set("cw-radius-md", px(base))
	vars.Set("cw-radius-lg", px(base+4))
	vars.Set("cw-radius-xl", px(base+8))

	full := base * 2
	if isPill {
		full = 9999
	}
	vars.Set("cw-radius-full", px(full))
}

// radiusBase resolves the base corner radius: the legacy pixel value when
// the document carried one, otherwise the preset table.
func radiusBase(t translate.Theme) (float64, bool) {
	if t.RadiusPx != nil {
		return float64(*t.RadiusPx), false
	}

	name := t.Radius
	base, ok := radiusPresets[name]
	if !ok {
		name = config.DefaultRadius
		base = radiusPresets[name]
	}
	return base, name == "pill"
}

func buildSpacing(vars *Variables, density string) {
	factors, ok := densityPresets[density]
	if !ok {
		factors = densityPresets[config.DefaultDensity]
	}

	for i, step := range spacingSteps {
		vars.Set("cw-spacing-"+spacingNames[i], px(step*factors.Padding))
	}
	vars.Set("cw-gap", px(baseGap*factors.Gap))
}

// buildMessages resolves the chat bubble colors. Per field: an explicit
// user-message override wins, then the accent primary as background with
// white text. Assistant bubbles are always transparent with body text.
func buildMessages(vars *Variables, um *translate.MessageSpec, accent Accent) {
	userBg := accent.Primary
	userText := "#ffffff"
	if um != nil {
		if um.Background != nil {
			userBg = *um.Background
		}
		if um.Text != nil {
			userText = *um.Text
		}
	}

	vars.Set("cw-user-msg-bg", userBg)
	vars.Set("cw-user-msg-text", userText)
	vars.Set("cw-assistant-msg-bg", "transparent")

	bodyText, _ := vars.Get("cw-text-color")
	vars.Set("cw-assistant-msg-text", bodyText)
}

func buildTypography(vars *Variables, t translate.Typography) {
	vars.Set("cw-font-family", t.FontFamily)
	vars.Set("cw-font-mono", t.MonoFontFamily)
	vars.Set("cw-font-size", px(float64(t.FontSize)))
	vars.Set("cw-font-size-sm", px(float64(t.FontSize-2)))
	vars.Set("cw-font-size-lg", px(float64(t.FontSize+2)))
	vars.Set("cw-font-size-xl", px(float64(t.FontSize+4)))
}

func px(v float64) string {
	return formatNumber(v) + "px"
}
