// Package config models the widget configuration document: the semi-structured
// tree the visual editor produces and the dashboard persists. The document
// carries two overlapping shapes at once, the legacy nested sections
// (branding, style, connection, features, advanced) and the newer flat
// "playground" fields, and both may be present in the same document. The
// flat shape wins wherever the two describe the same concept; that precedence
// is resolved by the translate package, never here.
//
// Every field is optional at this layer. Pointer types distinguish "absent"
// from an explicit zero value, which matters for booleans like
// brandingEnabled where false and unset mean different things.
package config

// WidgetConfig is one widget's editable configuration document.
//
// The struct round-trips through JSON (canonical) and YAML (CLI convenience)
// without loss: absent fields stay absent, explicit false/empty values are
// preserved.
type WidgetConfig struct {
	WidgetID *string `json:"widgetId,omitempty" yaml:"widgetId,omitempty" validate:"omitnil,min=1,max=64"`

	// Legacy nested sections.
	Branding   *BrandingConfig   `json:"branding,omitempty" yaml:"branding,omitempty" validate:"required"`
	Style      *StyleConfig      `json:"style,omitempty" yaml:"style,omitempty"`
	Connection *ConnectionConfig `json:"connection,omitempty" yaml:"connection,omitempty"`
	Features   *FeaturesConfig   `json:"features,omitempty" yaml:"features,omitempty"`
	Advanced   *AdvancedConfig   `json:"advanced,omitempty" yaml:"advanced,omitempty"`

	// Theme is a stale runtime-shaped blob written by old editor builds. It
	// is persisted untouched but deliberately never translated; the canonical
	// theme is rebuilt from the fields below on every render.
	Theme map[string]any `json:"theme,omitempty" yaml:"theme,omitempty"`

	// Structured properties that survive legacy stripping.
	AdvancedStyling *AdvancedStylingConfig `json:"advancedStyling,omitempty" yaml:"advancedStyling,omitempty"`
	Behavior        *BehaviorConfig        `json:"behavior,omitempty" yaml:"behavior,omitempty"`

	// Flat playground shape.
	ThemeMode   *string `json:"themeMode,omitempty" yaml:"themeMode,omitempty" validate:"omitnil,oneof=light dark"`
	AccentColor *string `json:"accentColor,omitempty" yaml:"accentColor,omitempty" validate:"omitnil,hex6"`
	AccentLevel *int    `json:"accentLevel,omitempty" yaml:"accentLevel,omitempty" validate:"omitnil,min=1,max=3"`

	TintHue    *int `json:"tintHue,omitempty" yaml:"tintHue,omitempty" validate:"omitnil,min=0,max=360"`
	TintLevel  *int `json:"tintLevel,omitempty" yaml:"tintLevel,omitempty" validate:"omitnil,min=0,max=100"`
	ShadeLevel *int `json:"shadeLevel,omitempty" yaml:"shadeLevel,omitempty" validate:"omitnil,min=-50,max=50"`

	UseCustomSurfaceColors *bool   `json:"useCustomSurfaceColors,omitempty" yaml:"useCustomSurfaceColors,omitempty"`
	SurfaceBackgroundColor *string `json:"surfaceBackgroundColor,omitempty" yaml:"surfaceBackgroundColor,omitempty" validate:"omitnil,hex6"`
	SurfaceForegroundColor *string `json:"surfaceForegroundColor,omitempty" yaml:"surfaceForegroundColor,omitempty" validate:"omitnil,hex6"`

	UserMessageBgColor   *string `json:"userMessageBgColor,omitempty" yaml:"userMessageBgColor,omitempty" validate:"omitnil,hex6"`
	UserMessageTextColor *string `json:"userMessageTextColor,omitempty" yaml:"userMessageTextColor,omitempty" validate:"omitnil,hex6"`
	IconColor            *string `json:"iconColor,omitempty" yaml:"iconColor,omitempty" validate:"omitnil,hex6"`

	Radius  *string `json:"radius,omitempty" yaml:"radius,omitempty" validate:"omitnil,oneof=none small medium large pill"`
	Density *string `json:"density,omitempty" yaml:"density,omitempty" validate:"omitnil,oneof=compact normal spacious"`

	FontFamily     *string `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty" validate:"omitnil,min=1,max=120"`
	MonoFontFamily *string `json:"monoFontFamily,omitempty" yaml:"monoFontFamily,omitempty" validate:"omitnil,min=1,max=120"`
	FontSize       *int    `json:"fontSize,omitempty" yaml:"fontSize,omitempty" validate:"omitnil,min=12,max=20"`
	CustomFontCSS  *string `json:"customFontCss,omitempty" yaml:"customFontCss,omitempty" validate:"omitnil,max=10000"`

	Greeting       *string  `json:"greeting,omitempty" yaml:"greeting,omitempty" validate:"omitnil,max=200"`
	StarterPrompts []string `json:"starterPrompts,omitempty" yaml:"starterPrompts,omitempty" validate:"omitempty,max=4,dive,min=1,max=80"`

	Placeholder       *string `json:"placeholder,omitempty" yaml:"placeholder,omitempty" validate:"omitnil,max=120"`
	Disclaimer        *string `json:"disclaimer,omitempty" yaml:"disclaimer,omitempty" validate:"omitnil,max=500"`
	EnableAttachments *bool   `json:"enableAttachments,omitempty" yaml:"enableAttachments,omitempty"`
	MaxFileSize       *int    `json:"maxFileSize,omitempty" yaml:"maxFileSize,omitempty" validate:"omitnil,min=1,max=50"`
	MaxFileCount      *int    `json:"maxFileCount,omitempty" yaml:"maxFileCount,omitempty" validate:"omitnil,min=1,max=10"`
}

// BrandingConfig holds identity text, the logo and launcher appearance.
type BrandingConfig struct {
	CompanyName  *string `json:"companyName,omitempty" yaml:"companyName,omitempty" validate:"required,min=1,max=100"`
	WelcomeText  *string `json:"welcomeText,omitempty" yaml:"welcomeText,omitempty" validate:"required,min=1,max=200"`
	FirstMessage *string `json:"firstMessage,omitempty" yaml:"firstMessage,omitempty" validate:"required,min=1,max=500"`
	LogoURL      *string `json:"logoUrl,omitempty" yaml:"logoUrl,omitempty" validate:"omitnil,secureurl"`

	// BrandingEnabled controls the "powered by" badge; basic tier cannot
	// turn it off.
	BrandingEnabled *bool `json:"brandingEnabled,omitempty" yaml:"brandingEnabled,omitempty"`

	LauncherIcon          *string `json:"launcherIcon,omitempty" yaml:"launcherIcon,omitempty" validate:"omitnil,oneof=chat message help custom"`
	CustomLauncherIconURL *string `json:"customLauncherIconUrl,omitempty" yaml:"customLauncherIconUrl,omitempty" validate:"omitnil,secureurl"`

	ShowAvatar *bool   `json:"showAvatar,omitempty" yaml:"showAvatar,omitempty"`
	AvatarURL  *string `json:"avatarUrl,omitempty" yaml:"avatarUrl,omitempty" validate:"omitnil,secureurl"`
}

// StyleConfig is the legacy appearance section, superseded field by field by
// the flat playground shape.
type StyleConfig struct {
	Theme        *string `json:"theme,omitempty" yaml:"theme,omitempty" validate:"omitnil,oneof=light dark"`
	PrimaryColor *string `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty" validate:"omitnil,hex6"`
	FontFamily   *string `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty" validate:"omitnil,min=1,max=120"`
	FontSize     *int    `json:"fontSize,omitempty" yaml:"fontSize,omitempty" validate:"omitnil,min=12,max=20"`
	CornerRadius *int    `json:"cornerRadius,omitempty" yaml:"cornerRadius,omitempty" validate:"omitnil,min=0,max=20"`
}

// ConnectionConfig wires the widget to the customer's backend.
type ConnectionConfig struct {
	WebhookURL     *string `json:"webhookUrl,omitempty" yaml:"webhookUrl,omitempty" validate:"omitnil,secureurl"`
	TimeoutSeconds *int    `json:"timeoutSeconds,omitempty" yaml:"timeoutSeconds,omitempty" validate:"omitnil,min=10,max=60"`
}

// FeaturesConfig toggles optional widget features. Email transcript and the
// rating prompt are tier-gated.
type FeaturesConfig struct {
	EmailTranscript *bool `json:"emailTranscript,omitempty" yaml:"emailTranscript,omitempty"`
	RatingPrompt    *bool `json:"ratingPrompt,omitempty" yaml:"ratingPrompt,omitempty"`
	SoundEnabled    *bool `json:"soundEnabled,omitempty" yaml:"soundEnabled,omitempty"`
}

// AdvancedConfig is the legacy advanced box. It is persisted as-is and never
// enters the runtime schema; advancedStyling replaced it.
type AdvancedConfig struct {
	ZIndex    *int    `json:"zIndex,omitempty" yaml:"zIndex,omitempty" validate:"omitnil,min=0,max=99999"`
	CustomCSS *string `json:"customCss,omitempty" yaml:"customCss,omitempty" validate:"omitnil,max=10000"`
}

// AdvancedStylingConfig gates custom CSS injection. Enabled is tier-gated.
type AdvancedStylingConfig struct {
	Enabled   *bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	CustomCSS *string `json:"customCss,omitempty" yaml:"customCss,omitempty" validate:"omitnil,max=10000"`
}

// BehaviorConfig tunes runtime behavior; passed through to the renderer.
type BehaviorConfig struct {
	AutoOpenDelaySeconds *int  `json:"autoOpenDelaySeconds,omitempty" yaml:"autoOpenDelaySeconds,omitempty" validate:"omitnil,min=0,max=120"`
	PersistSession       *bool `json:"persistSession,omitempty" yaml:"persistSession,omitempty"`
}

// Clone returns a deep copy. The sanitizer works on a clone so the caller's
// document is never mutated.
func (c *WidgetConfig) Clone() *WidgetConfig {
	if c == nil {
		return nil
	}

	out := &WidgetConfig{
		WidgetID: clonePtr(c.WidgetID),

		ThemeMode:   clonePtr(c.ThemeMode),
		AccentColor: clonePtr(c.AccentColor),
		AccentLevel: clonePtr(c.AccentLevel),

		TintHue:    clonePtr(c.TintHue),
		TintLevel:  clonePtr(c.TintLevel),
		ShadeLevel: clonePtr(c.ShadeLevel),

		UseCustomSurfaceColors: clonePtr(c.UseCustomSurfaceColors),
		SurfaceBackgroundColor: clonePtr(c.SurfaceBackgroundColor),
		SurfaceForegroundColor: clonePtr(c.SurfaceForegroundColor),

		UserMessageBgColor:   clonePtr(c.UserMessageBgColor),
		UserMessageTextColor: clonePtr(c.UserMessageTextColor),
		IconColor:            clonePtr(c.IconColor),

		Radius:  clonePtr(c.Radius),
		Density: clonePtr(c.Density),

		FontFamily:     clonePtr(c.FontFamily),
		MonoFontFamily: clonePtr(c.MonoFontFamily),
		FontSize:       clonePtr(c.FontSize),
		CustomFontCSS:  clonePtr(c.CustomFontCSS),

		Greeting:       clonePtr(c.Greeting),
		StarterPrompts: cloneSlice(c.StarterPrompts),

		Placeholder:       clonePtr(c.Placeholder),
		Disclaimer:        clonePtr(c.Disclaimer),
		EnableAttachments: clonePtr(c.EnableAttachments),
		MaxFileSize:       clonePtr(c.MaxFileSize),
		MaxFileCount:      clonePtr(c.MaxFileCount),
	}

	if c.Branding != nil {
		b := BrandingConfig{
			CompanyName:           clonePtr(c.Branding.CompanyName),
			WelcomeText:           clonePtr(c.Branding.WelcomeText),
			FirstMessage:          clonePtr(c.Branding.FirstMessage),
			LogoURL:               clonePtr(c.Branding.LogoURL),
			BrandingEnabled:       clonePtr(c.Branding.BrandingEnabled),
			LauncherIcon:          clonePtr(c.Branding.LauncherIcon),
			CustomLauncherIconURL: clonePtr(c.Branding.CustomLauncherIconURL),
			ShowAvatar:            clonePtr(c.Branding.ShowAvatar),
			AvatarURL:             clonePtr(c.Branding.AvatarURL),
		}
		out.Branding = &b
	}
	if c.Style != nil {
		s := StyleConfig{
			Theme:        clonePtr(c.Style.Theme),
			PrimaryColor: clonePtr(c.Style.PrimaryColor),
			FontFamily:   clonePtr(c.Style.FontFamily),
			FontSize:     clonePtr(c.Style.FontSize),
			CornerRadius: clonePtr(c.Style.CornerRadius),
		}
		out.Style = &s
	}
	if c.Connection != nil {
		cc := ConnectionConfig{
			WebhookURL:     clonePtr(c.Connection.WebhookURL),
			TimeoutSeconds: clonePtr(c.Connection.TimeoutSeconds),
		}
		out.Connection = &cc
	}
	if c.Features != nil {
		f := FeaturesConfig{
			EmailTranscript: clonePtr(c.Features.EmailTranscript),
			RatingPrompt:    clonePtr(c.Features.RatingPrompt),
			SoundEnabled:    clonePtr(c.Features.SoundEnabled),
		}
		out.Features = &f
	}
	if c.Advanced != nil {
		a := AdvancedConfig{
			ZIndex:    clonePtr(c.Advanced.ZIndex),
			CustomCSS: clonePtr(c.Advanced.CustomCSS),
		}
		out.Advanced = &a
	}
	if c.AdvancedStyling != nil {
		a := AdvancedStylingConfig{
			Enabled:   clonePtr(c.AdvancedStyling.Enabled),
			CustomCSS: clonePtr(c.AdvancedStyling.CustomCSS),
		}
		out.AdvancedStyling = &a
	}
	if c.Behavior != nil {
		b := BehaviorConfig{
			AutoOpenDelaySeconds: clonePtr(c.Behavior.AutoOpenDelaySeconds),
			PersistSession:       clonePtr(c.Behavior.PersistSession),
		}
		out.Behavior = &b
	}
	if c.Theme != nil {
		out.Theme = deepCopyMap(c.Theme)
	}

	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return val
	}
}
