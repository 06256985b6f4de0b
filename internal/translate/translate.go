package translate

import (
	"github.com/hullochat/hullo/internal/config"
)

// Translate reshapes a sanitized document into the runtime schema. It is
// total: every absent field has a defined fallback and no input can fail.
//
// The legacy top-level "theme" blob in the document is deliberately never
// consulted; advancedStyling and behavior are the structured properties that
// survive legacy stripping. The canonical theme is rebuilt from the flat and
// legacy section fields on every call.
func Translate(cfg *config.WidgetConfig) *RuntimeConfig {
	if cfg == nil {
		cfg = &config.WidgetConfig{}
	}

	rc := &RuntimeConfig{
		Branding:    translateBranding(cfg),
		Theme:       translateTheme(cfg),
		StartScreen: translateStartScreen(cfg),
		Composer:    translateComposer(cfg),
		Connection:  translateConnection(cfg),
	}

	if cfg.AdvancedStyling != nil && boolOr(false, cfg.AdvancedStyling.Enabled) {
		rc.AdvancedStyling = &AdvancedStyling{
			Enabled:   true,
			CustomCSS: stringOr("", cfg.AdvancedStyling.CustomCSS),
		}
	}

	if cfg.Behavior != nil {
		rc.Behavior = &Behavior{
			AutoOpenDelaySeconds: intOr(0, cfg.Behavior.AutoOpenDelaySeconds),
			PersistSession:       boolOr(true, cfg.Behavior.PersistSession),
		}
	}

	return rc
}

func translateBranding(cfg *config.WidgetConfig) Branding {
	b := cfg.Branding
	if b == nil {
		b = &config.BrandingConfig{}
	}

	return Branding{
		CompanyName:  stringOr(config.DefaultCompanyName, b.CompanyName),
		WelcomeText:  stringOr(config.DefaultWelcomeText, b.WelcomeText),
		FirstMessage: stringOr(config.DefaultFirstMessage, b.FirstMessage),
		LogoURL:      copyString(b.LogoURL),
		BadgeVisible: boolOr(true, b.BrandingEnabled),
	}
}

func translateTheme(cfg *config.WidgetConfig) Theme {
	style := cfg.Style
	if style == nil {
		style = &config.StyleConfig{}
	}

	theme := Theme{
		ColorScheme: stringOr(config.DefaultThemeMode, cfg.ThemeMode, style.Theme),
		Color:       translateColor(cfg),
		Density:     stringOr(config.DefaultDensity, cfg.Density),
		Typography: Typography{
			FontFamily:     stringOr(config.DefaultFontFamily, cfg.FontFamily, style.FontFamily),
			MonoFontFamily: stringOr(config.DefaultMonoFontFamily, cfg.MonoFontFamily),
			FontSize:       intOr(config.DefaultFontSize, cfg.FontSize, style.FontSize),
			FontSource:     nonEmpty(cfg.CustomFontCSS),
		},
	}

	// Radius: the flat preset wins; the legacy pixel value is carried raw so
	// the builder can derive the radius scale from it.
	switch {
	case cfg.Radius != nil && *cfg.Radius != "":
		theme.Radius = *cfg.Radius
	case style.CornerRadius != nil:
		theme.RadiusPx = copyInt(style.CornerRadius)
	default:
		theme.Radius = config.DefaultRadius
	}

	return theme
}

func translateColor(cfg *config.WidgetConfig) Color {
	color := Color{
		Icon: copyString(cfg.IconColor),
	}

	// Accent: flat accentColor beats the legacy single primary color. The
	// legacy color derives at level 1, same as an unspecified level.
	switch {
	case cfg.AccentColor != nil && *cfg.AccentColor != "":
		color.Accent = &AccentSpec{
			Base:  *cfg.AccentColor,
			Level: clampLevel(intOr(1, cfg.AccentLevel)),
		}
	case cfg.Style != nil && cfg.Style.PrimaryColor != nil && *cfg.Style.PrimaryColor != "":
		color.Accent = &AccentSpec{Base: *cfg.Style.PrimaryColor, Level: 1}
	}

	if cfg.TintHue != nil || cfg.TintLevel != nil || cfg.ShadeLevel != nil {
		color.Grayscale = &GrayscaleSpec{
			Hue:   intOr(config.DefaultTintHue, cfg.TintHue),
			Tint:  intOr(config.DefaultTintLevel, cfg.TintLevel),
			Shade: intOr(config.DefaultShadeLevel, cfg.ShadeLevel),
		}
	}

	if boolOr(false, cfg.UseCustomSurfaceColors) &&
		(cfg.SurfaceBackgroundColor != nil || cfg.SurfaceForegroundColor != nil) {
		color.Surface = &SurfaceSpec{
			Background: copyString(cfg.SurfaceBackgroundColor),
			Foreground: copyString(cfg.SurfaceForegroundColor),
		}
	}

	if cfg.UserMessageBgColor != nil || cfg.UserMessageTextColor != nil {
		color.UserMessage = &MessageSpec{
			Background: copyString(cfg.UserMessageBgColor),
			Text:       copyString(cfg.UserMessageTextColor),
		}
	}

	return color
}

func translateStartScreen(cfg *config.WidgetConfig) StartScreen {
	welcome := ""
	if cfg.Branding != nil {
		welcome = stringOr("", cfg.Branding.WelcomeText)
	}

	prompts := make([]string, 0, len(cfg.StarterPrompts))
	prompts = append(prompts, cfg.StarterPrompts...)

	return StartScreen{
		Greeting: stringOr(config.DefaultWelcomeText, cfg.Greeting, &welcome),
		Prompts:  prompts,
	}
}

func translateComposer(cfg *config.WidgetConfig) Composer {
	return Composer{
		Placeholder: stringOr(config.DefaultPlaceholder, cfg.Placeholder),
		Disclaimer:  nonEmpty(cfg.Disclaimer),
		Attachments: Attachments{
			Enabled:      boolOr(false, cfg.EnableAttachments),
			MaxFileSize:  intOr(config.DefaultMaxFileSize, cfg.MaxFileSize),
			MaxFileCount: intOr(config.DefaultMaxFileCount, cfg.MaxFileCount),
		},
	}
}

func translateConnection(cfg *config.WidgetConfig) Connection {
	conn := Connection{RelayEndpoint: config.RelayEndpoint}
	if cfg.Connection != nil {
		conn.WebhookURL = copyString(cfg.Connection.WebhookURL)
	}
	return conn
}

// stringOr returns the first non-nil, non-empty candidate, else the fallback.
func stringOr(fallback string, candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return *c
		}
	}
	return fallback
}

// intOr returns the first non-nil candidate, else the fallback. Zero is a
// meaningful value for several fields, so presence alone decides.
func intOr(fallback int, candidates ...*int) int {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return fallback
}

func boolOr(fallback bool, candidates ...*bool) bool {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return fallback
}

// nonEmpty returns a copy of s when it holds a non-empty string, else nil.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 3 {
		return 3
	}
	return level
}
