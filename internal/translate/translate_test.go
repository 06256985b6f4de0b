package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hullochat/hullo/internal/config"
)

func ptr[T any](v T) *T { return &v }

func TestTranslateEmptyDocumentUsesDefaults(t *testing.T) {
	t.Parallel()

	rc := Translate(&config.WidgetConfig{})

	assert.Equal(t, config.DefaultCompanyName, rc.Branding.CompanyName)
	assert.Equal(t, config.DefaultWelcomeText, rc.Branding.WelcomeText)
	assert.Equal(t, config.DefaultFirstMessage, rc.Branding.FirstMessage)
	assert.True(t, rc.Branding.BadgeVisible)
	assert.Nil(t, rc.Branding.LogoURL)

	assert.Equal(t, "light", rc.Theme.ColorScheme)
	assert.Nil(t, rc.Theme.Color.Accent)
	assert.Nil(t, rc.Theme.Color.Grayscale)
	assert.Nil(t, rc.Theme.Color.Surface)
	assert.Equal(t, config.DefaultRadius, rc.Theme.Radius)
	assert.Equal(t, config.DefaultDensity, rc.Theme.Density)
	assert.Equal(t, config.DefaultFontSize, rc.Theme.Typography.FontSize)
	assert.Equal(t, config.DefaultFontFamily, rc.Theme.Typography.FontFamily)

	assert.Equal(t, config.DefaultWelcomeText, rc.StartScreen.Greeting)
	assert.Empty(t, rc.StartScreen.Prompts)
	assert.NotNil(t, rc.StartScreen.Prompts, "prompts must be an empty list, not null")

	assert.Equal(t, config.DefaultPlaceholder, rc.Composer.Placeholder)
	assert.False(t, rc.Composer.Attachments.Enabled)
	assert.Equal(t, config.DefaultMaxFileSize, rc.Composer.Attachments.MaxFileSize)

	assert.Nil(t, rc.Connection.WebhookURL)
	assert.Equal(t, config.RelayEndpoint, rc.Connection.RelayEndpoint)

	assert.Nil(t, rc.AdvancedStyling)
	assert.Nil(t, rc.Behavior)
}

func TestTranslateNilDocument(t *testing.T) {
	t.Parallel()

	rc := Translate(nil)
	assert.Equal(t, config.DefaultCompanyName, rc.Branding.CompanyName)
	assert.Equal(t, config.RelayEndpoint, rc.Connection.RelayEndpoint)
}

func TestColorSchemePrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config.WidgetConfig
		want string
	}{
		{
			name: "legacy style theme only",
			cfg:  &config.WidgetConfig{Style: &config.StyleConfig{Theme: ptr("dark")}},
			want: "dark",
		},
		{
			name: "flat mode wins over legacy",
			cfg: &config.WidgetConfig{
				ThemeMode: ptr("light"),
				Style:     &config.StyleConfig{Theme: ptr("dark")},
			},
			want: "light",
		},
		{
			name: "nothing set falls back to light",
			cfg:  &config.WidgetConfig{},
			want: "light",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Translate(tc.cfg).Theme.ColorScheme)
		})
	}
}

func TestAccentResolution(t *testing.T) {
	t.Parallel()

	t.Run("flat accent with level", func(t *testing.T) {
		t.Parallel()

		rc := Translate(&config.WidgetConfig{
			AccentColor: ptr("#0ea5e9"),
			AccentLevel: ptr(3),
			Style:       &config.StyleConfig{PrimaryColor: ptr("#ff0000")},
		})

		require.NotNil(t, rc.Theme.Color.Accent)
		assert.Equal(t, "#0ea5e9", rc.Theme.Color.Accent.Base)
		assert.Equal(t, 3, rc.Theme.Color.Accent.Level)
	})

	t.Run("flat accent defaults to level 1", func(t *testing.T) {
		t.Parallel()

		rc := Translate(&config.WidgetConfig{AccentColor: ptr("#0ea5e9")})
		require.NotNil(t, rc.Theme.Color.Accent)
		assert.Equal(t, 1, rc.Theme.Color.Accent.Level)
	})

	t.Run("legacy primary color derives at level 1", func(t *testing.T) {
		t.Parallel()

		rc := Translate(&config.WidgetConfig{
			Style: &config.StyleConfig{PrimaryColor: ptr("#ff0000")},
		})

		require.NotNil(t, rc.Theme.Color.Accent)
		assert.Equal(t, "#ff0000", rc.Theme.Color.Accent.Base)
		assert.Equal(t, 1, rc.Theme.Color.Accent.Level)
	})
}

func TestGrayscalePresence(t *testing.T) {
	t.Parallel()

	t.Run("absent when no inputs", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, Translate(&config.WidgetConfig{}).Theme.Color.Grayscale)
	})

	t.Run("partial inputs take defaults", func(t *testing.T) {
		t.Parallel()

		rc := Translate(&config.WidgetConfig{TintLevel: ptr(40)})
		gs := rc.Theme.Color.Grayscale
		require.NotNil(t, gs)
		assert.Equal(t, config.DefaultTintHue, gs.Hue)
		assert.Equal(t, 40, gs.Tint)
		assert.Equal(t, 0, gs.Shade)
	})

	t.Run("explicit zero shade is kept", func(t *testing.T) {
		t.Parallel()

		rc := Translate(&config.WidgetConfig{TintHue: ptr(12), ShadeLevel: ptr(0)})
		gs := rc.Theme.Color.Grayscale
		require.NotNil(t, gs)
		assert.Equal(t, 12, gs.Hue)
		assert.Equal(t, 0, gs.Shade)
	})
}

func TestSurfaceRequiresOptIn(t *testing.T) {
	t.Parallel()

	base := func() *config.WidgetConfig {
		return &config.WidgetConfig{
			SurfaceBackgroundColor: ptr("#101828"),
			SurfaceForegroundColor: ptr("#f2f4f7"),
		}
	}

	t.Run("colors without opt-in are ignored", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, Translate(base()).Theme.Color.Surface)
	})

	t.Run("opt-in carries both colors", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		cfg.UseCustomSurfaceColors = ptr(true)

		surface := Translate(cfg).Theme.Color.Surface
		require.NotNil(t, surface)
		assert.Equal(t, "#101828", *surface.Background)
		assert.Equal(t, "#f2f4f7", *surface.Foreground)
	})

	t.Run("opt-in without colors stays absent", func(t *testing.T) {
		t.Parallel()

		rc := Translate(&config.WidgetConfig{UseCustomSurfaceColors: ptr(true)})
		assert.Nil(t, rc.Theme.Color.Surface)
	})
}

func TestRadiusResolution(t *testing.T) {
	t.Parallel()

	t.Run("flat preset wins over legacy pixels", func(t *testing.T) {
		t.Parallel()

		rc := Translate(&config.WidgetConfig{
			Radius: ptr("pill"),
			Style:  &config.StyleConfig{CornerRadius: ptr(8)},
		})

		assert.Equal(t, "pill", rc.Theme.Radius)
		assert.Nil(t, rc.Theme.RadiusPx)
	})

	t.Run("legacy pixels carried raw", func(t *testing.T) {
		t.Parallel()

		rc := Translate(&config.WidgetConfig{
			Style: &config.StyleConfig{CornerRadius: ptr(8)},
		})

		assert.Empty(t, rc.Theme.Radius)
		require.NotNil(t, rc.Theme.RadiusPx)
		assert.Equal(t, 8, *rc.Theme.RadiusPx)
	})

	t.Run("default preset", func(t *testing.T) {
		t.Parallel()

		rc := Translate(&config.WidgetConfig{})
		assert.Equal(t, "medium", rc.Theme.Radius)
		assert.Nil(t, rc.Theme.RadiusPx)
	})
}

func TestLegacyThemeBlobIsDropped(t *testing.T) {
	t.Parallel()

	cfg := &config.WidgetConfig{
		Theme: map[string]any{
			"colorScheme": "dark",
			"color":       map[string]any{"accent": map[string]any{"primary": "#123456"}},
		},
		AdvancedStyling: &config.AdvancedStylingConfig{
			Enabled:   ptr(true),
			CustomCSS: ptr(".cw-widget { border: 0; }"),
		},
		Behavior: &config.BehaviorConfig{AutoOpenDelaySeconds: ptr(5)},
	}

	rc := Translate(cfg)

	// The stale blob must not leak: the canonical theme is rebuilt from the
	// structured fields, so everything stays at defaults here.
	assert.Equal(t, "light", rc.Theme.ColorScheme)
	assert.Nil(t, rc.Theme.Color.Accent)

	// The structured survivors pass through.
	require.NotNil(t, rc.AdvancedStyling)
	assert.True(t, rc.AdvancedStyling.Enabled)
	assert.Equal(t, ".cw-widget { border: 0; }", rc.AdvancedStyling.CustomCSS)

	require.NotNil(t, rc.Behavior)
	assert.Equal(t, 5, rc.Behavior.AutoOpenDelaySeconds)
	assert.True(t, rc.Behavior.PersistSession)
}

func TestAdvancedStylingAbsentUnlessEnabled(t *testing.T) {
	t.Parallel()

	rc := Translate(&config.WidgetConfig{
		AdvancedStyling: &config.AdvancedStylingConfig{
			Enabled:   ptr(false),
			CustomCSS: ptr(".x{}"),
		},
	})
	assert.Nil(t, rc.AdvancedStyling)
}

func TestStartScreenFallsBackToWelcomeText(t *testing.T) {
	t.Parallel()

	t.Run("flat greeting wins", func(t *testing.T) {
		t.Parallel()

		rc := Translate(&config.WidgetConfig{
			Greeting: ptr("Ahoy!"),
			Branding: &config.BrandingConfig{WelcomeText: ptr("Hello")},
		})
		assert.Equal(t, "Ahoy!", rc.StartScreen.Greeting)
	})

	t.Run("welcome text backs the greeting", func(t *testing.T) {
		t.Parallel()

		rc := Translate(&config.WidgetConfig{
			Branding: &config.BrandingConfig{WelcomeText: ptr("Hello")},
		})
		assert.Equal(t, "Hello", rc.StartScreen.Greeting)
	})
}

func TestComposerAndConnection(t *testing.T) {
	t.Parallel()

	rc := Translate(&config.WidgetConfig{
		Placeholder:       ptr("Ask away…"),
		Disclaimer:        ptr("Replies may take a minute."),
		EnableAttachments: ptr(true),
		MaxFileSize:       ptr(25),
		MaxFileCount:      ptr(5),
		Connection:        &config.ConnectionConfig{WebhookURL: ptr("https://api.example.com/hook")},
	})

	assert.Equal(t, "Ask away…", rc.Composer.Placeholder)
	require.NotNil(t, rc.Composer.Disclaimer)
	assert.Equal(t, "Replies may take a minute.", *rc.Composer.Disclaimer)
	assert.True(t, rc.Composer.Attachments.Enabled)
	assert.Equal(t, 25, rc.Composer.Attachments.MaxFileSize)
	assert.Equal(t, 5, rc.Composer.Attachments.MaxFileCount)

	require.NotNil(t, rc.Connection.WebhookURL)
	assert.Equal(t, "https://api.example.com/hook", *rc.Connection.WebhookURL)
	assert.Equal(t, config.RelayEndpoint, rc.Connection.RelayEndpoint)
}

func TestTranslateIsDeterministic(t *testing.T) {
	t.Parallel()

	cfg := &config.WidgetConfig{
		ThemeMode:      ptr("dark"),
		AccentColor:    ptr("#0ea5e9"),
		TintHue:        ptr(200),
		StarterPrompts: []string{"Pricing?", "Docs?"},
	}

	assert.Equal(t, Translate(cfg), Translate(cfg))
}

func TestTranslateDoesNotAliasDocument(t *testing.T) {
	t.Parallel()

	cfg := &config.WidgetConfig{
		Branding:       &config.BrandingConfig{LogoURL: ptr("https://cdn.example.com/a.png")},
		StarterPrompts: []string{"One"},
	}

	rc := Translate(cfg)
	*cfg.Branding.LogoURL = "https://cdn.example.com/b.png"
	cfg.StarterPrompts[0] = "Two"

	assert.Equal(t, "https://cdn.example.com/a.png", *rc.Branding.LogoURL)
	assert.Equal(t, "One", rc.StartScreen.Prompts[0])
}
