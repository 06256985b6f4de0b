package preview

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorHex(t *testing.T) {
	t.Parallel()

	c, ok := parseColor("#4F46E5")
	require.True(t, ok)
	assert.Equal(t, "#4f46e5", c.Hex())

	c, ok = parseColor("#ff0000")
	require.True(t, ok)
	assert.Equal(t, "#ff0000", c.Hex())
}

func TestParseColorHSL(t *testing.T) {
	t.Parallel()

	c, ok := parseColor("hsl(220, 10%, 98%)")
	require.True(t, ok)
	_, _, l := c.Hsl()
	assert.InDelta(t, 0.98, l, 0.01)

	c, ok = parseColor("hsla(220, 10%, 8%, 0.5)")
	require.True(t, ok)
	_, _, l = c.Hsl()
	assert.InDelta(t, 0.08, l, 0.01)
}

func TestParseColorRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{"transparent", "transparent"},
		{"empty", ""},
		{"keyword", "tomato"},
		{"malformed hex", "#zzzzzz"},
		{"malformed hsl", "hsl(220)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, ok := parseColor(tt.value)
			assert.False(t, ok)
		})
	}
}

func TestTermColor(t *testing.T) {
	t.Parallel()

	c, ok := termColor("#FF0000")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#ff0000"), c)

	_, ok = termColor("transparent")
	assert.False(t, ok)
}

func TestLabelColorContrast(t *testing.T) {
	t.Parallel()

	light, ok := parseColor("#ffffff")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#1f2937"), labelColor(light))

	dark, ok := parseColor("#111827")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#f9fafb"), labelColor(dark))
}
