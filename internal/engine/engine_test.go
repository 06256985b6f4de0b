package engine

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hullochat/hullo/internal/config"
	"github.com/hullochat/hullo/internal/logger"
	"github.com/hullochat/hullo/internal/tier"
	hulloerrors "github.com/hullochat/hullo/pkg/errors"
)

func ptr[T any](v T) *T { return &v }

func TestProcessEndToEnd(t *testing.T) {
	t.Parallel()

	// A basic-tier customer hand-edited their stored document: shorthand
	// color, disabled badge, enabled a paid feature.
	cfg := &config.WidgetConfig{
		AccentColor: ptr("#F00"),
		Branding: &config.BrandingConfig{
			CompanyName:     ptr("Acme"),
			BrandingEnabled: ptr(false),
		},
		AdvancedStyling: &config.AdvancedStylingConfig{
			Enabled:   ptr(true),
			CustomCSS: ptr(".cw-header { display: none; }"),
		},
	}

	result, err := New(nil).Process(cfg, tier.Basic)
	require.NoError(t, err)

	require.NotNil(t, result.Sanitized.AccentColor)
	assert.Equal(t, "#FF0000", *result.Sanitized.AccentColor)
	assert.True(t, *result.Sanitized.Branding.BrandingEnabled)
	assert.False(t, *result.Sanitized.AdvancedStyling.Enabled)

	assert.Equal(t, "Acme", result.Runtime.Branding.CompanyName)
	assert.True(t, result.Runtime.Branding.BadgeVisible)
	assert.Nil(t, result.Runtime.AdvancedStyling, "disabled styling never reaches the runtime")

	primary, ok := result.Variables.Get("cw-accent-primary")
	require.True(t, ok)
	assert.Equal(t, "#FF0000", primary)

	// The input document itself stays untouched.
	assert.Equal(t, "#F00", *cfg.AccentColor)
	assert.False(t, *cfg.Branding.BrandingEnabled)
}

func TestProcessNeverRejects(t *testing.T) {
	t.Parallel()

	docs := []*config.WidgetConfig{
		nil,
		{},
		{
			AccentColor: ptr("definitely not a color"),
			Branding:    &config.BrandingConfig{LogoURL: ptr("ftp://nope")},
			FontSize:    ptr(-100),
			TintHue:     ptr(9999),
		},
		{
			Branding: &config.BrandingConfig{
				LauncherIcon:          ptr("custom"),
				CustomLauncherIconURL: ptr(""),
				ShowAvatar:            ptr(true),
			},
			StarterPrompts: []string{"", "", strings.Repeat("x", 500)},
			Theme:          map[string]any{"old": "#bad"},
		},
	}

	eng := New(nil)
	for _, tr := range tier.All() {
		for i, doc := range docs {
			result, err := eng.Process(doc, tr)
			require.NoError(t, err, "doc %d tier %s", i, tr)
			require.NotNil(t, result.Runtime)
			assert.Greater(t, result.Variables.Len(), 0)
		}
	}
}

func TestValidateDoesNotCorrect(t *testing.T) {
	t.Parallel()

	eng := New(nil)

	cfg := &config.WidgetConfig{
		Branding: &config.BrandingConfig{
			CompanyName:     ptr("Acme"),
			WelcomeText:     ptr("Hi"),
			FirstMessage:    ptr("Hello"),
			BrandingEnabled: ptr(false),
		},
	}

	err := eng.Validate(cfg, tier.Basic)
	var vErr *hulloerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Violations, 1)
	assert.Equal(t, "branding.brandingEnabled", vErr.Violations[0].FieldPath)
	assert.Equal(t, "tier_policy", vErr.Violations[0].Rule)

	require.NoError(t, eng.Validate(cfg, tier.Pro))
}

func TestProcessLogsStages(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	_, err = New(log).Process(&config.WidgetConfig{}, tier.Pro)
	require.NoError(t, err)

	stages := map[string]bool{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if stage, ok := entry["stage"].(string); ok {
			stages[stage] = true
		}
	}
	for _, want := range []string{"sanitize", "validate", "translate", "build"} {
		assert.True(t, stages[want], "missing stage log for %s", want)
	}
}
