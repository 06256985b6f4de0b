package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "Acme Support", want: "acme-support"},
		{name: "mixedCharacters", input: "My_Widget v1.0", want: "my-widget-v1-0"},
		{name: "leadingTrailingSeparators", input: "--Prod--", want: "prod"},
		{name: "separatorRuns", input: "A    B!!C", want: "a-b-c"},
		{name: "nothingUsable", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilenameTruncates(t *testing.T) {
	got := SanitizeFilename(strings.Repeat("abc", 25))

	assert.LessOrEqual(t, len(got), widgetIDMaxLength)
	assert.True(t, strings.HasPrefix(got, "abcabcabc"))
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestValidateWidgetID(t *testing.T) {
	for _, id := range []string{
		"acme",
		"acme-support",
		"abc123",
		strings.Repeat("a", widgetIDMaxLength),
	} {
		assert.NoError(t, ValidateWidgetID(id), "id %q", id)
	}

	for _, id := range []string{
		"",
		"Acme",
		"-leading",
		"trailing-",
		"has_underscore",
		strings.Repeat("a", widgetIDMaxLength+1),
	} {
		assert.Error(t, ValidateWidgetID(id), "id %q", id)
	}
}

func TestGenerateWidgetID(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "simple", path: "/tmp/acme-support.json", want: "acme-support"},
		{name: "uppercaseAndSpaces", path: "/configs/Prod Widget.yaml", want: "prod-widget"},
		{name: "noExtension", path: "/configs/staging", want: "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateWidgetID(tt.path)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, ValidateWidgetID(got))
		})
	}
}

func TestGenerateWidgetIDLongName(t *testing.T) {
	got := GenerateWidgetID("/configs/" + strings.Repeat("abc", 30) + ".json")

	require.NoError(t, ValidateWidgetID(got))
	assert.LessOrEqual(t, len(got), widgetIDMaxLength)
}

func TestGenerateWidgetIDFallback(t *testing.T) {
	// A name with no usable characters falls back to a random ID.
	got := GenerateWidgetID("/tmp/!!!.json")

	require.NoError(t, ValidateWidgetID(got))
	assert.True(t, strings.HasPrefix(got, "widget-"))

	// Two fallbacks must not collide.
	assert.NotEqual(t, got, GenerateWidgetID("/tmp/???.json"))
}
