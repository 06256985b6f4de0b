package registry

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Widget IDs are lowercase slugs: letters and digits with single hyphens
// between them.
const widgetIDMaxLength = 64

var widgetIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

// GenerateWidgetID derives a registry ID from a configuration path, so
// "Acme Support.json" registers as "acme-support".
func GenerateWidgetID(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	id := SanitizeFilename(base)
	if id == "" {
		id = randomWidgetID()
	}
	return id
}

// randomWidgetID is the fallback for paths that sanitize to nothing, such as
// a file named only with punctuation.
func randomWidgetID() string {
	return fmt.Sprintf("widget-%s", uuid.NewString()[:8])
}

// ValidateWidgetID ensures the provided ID matches the allowed pattern.
func ValidateWidgetID(id string) error {
	if id == "" {
		return fmt.Errorf("widget ID cannot be empty")
	}
	if len(id) > widgetIDMaxLength {
		return fmt.Errorf("widget ID %q is too long: maximum length is %d characters", id, widgetIDMaxLength)
	}
	if !widgetIDPattern.MatchString(id) {
		return fmt.Errorf("invalid widget ID %q: must match %s", id, widgetIDPattern.String())
	}
	return nil
}

// SanitizeFilename lowercases a filename and collapses every run of
// non-alphanumeric characters into a single interior hyphen.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	hyphenPending := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if hyphenPending && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphenPending = false
			b.WriteRune(r)
		default:
			hyphenPending = true
		}
	}

	out := b.String()
	if len(out) > widgetIDMaxLength {
		out = strings.TrimRight(out[:widgetIDMaxLength], "-")
	}
	return out
}
