package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	original := &WidgetConfig{
		WidgetID: ptr("w_123"),
		Branding: &BrandingConfig{
			CompanyName:     ptr("Acme"),
			BrandingEnabled: ptr(false),
		},
		ThemeMode:      ptr("dark"),
		StarterPrompts: []string{"Pricing?", "Book a demo"},
		Theme: map[string]any{
			"color": map[string]any{"accent": map[string]any{"primary": "#0ea5e9"}},
		},
	}

	clone := original.Clone()
	require.NotNil(t, clone)

	*clone.Branding.CompanyName = "Other"
	*clone.Branding.BrandingEnabled = true
	clone.StarterPrompts[0] = "changed"
	clone.Theme["color"].(map[string]any)["accent"].(map[string]any)["primary"] = "#000000"

	assert.Equal(t, "Acme", *original.Branding.CompanyName)
	assert.False(t, *original.Branding.BrandingEnabled)
	assert.Equal(t, "Pricing?", original.StarterPrompts[0])
	assert.Equal(t, "#0ea5e9",
		original.Theme["color"].(map[string]any)["accent"].(map[string]any)["primary"])
}

func TestCloneNilReceiver(t *testing.T) {
	t.Parallel()

	var cfg *WidgetConfig
	assert.Nil(t, cfg.Clone())
}

func TestClonePreservesAbsence(t *testing.T) {
	t.Parallel()

	original := &WidgetConfig{ThemeMode: ptr("light")}
	clone := original.Clone()

	assert.Nil(t, clone.Branding)
	assert.Nil(t, clone.StarterPrompts)
	assert.Nil(t, clone.Theme)
	assert.Nil(t, clone.AccentColor)
	require.NotNil(t, clone.ThemeMode)
	assert.Equal(t, "light", *clone.ThemeMode)
}

func TestJSONRoundTripKeepsExplicitFalse(t *testing.T) {
	t.Parallel()

	cfg := &WidgetConfig{
		Branding: &BrandingConfig{BrandingEnabled: ptr(false)},
		Features: &FeaturesConfig{SoundEnabled: ptr(true)},
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var decoded WidgetConfig
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.NotNil(t, decoded.Branding.BrandingEnabled)
	assert.False(t, *decoded.Branding.BrandingEnabled)
	require.NotNil(t, decoded.Features.SoundEnabled)
	assert.True(t, *decoded.Features.SoundEnabled)
	assert.Nil(t, decoded.Features.EmailTranscript, "absent field must stay absent")
}
