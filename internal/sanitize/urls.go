package sanitize

import (
	"net/url"
	"strings"

	"github.com/hullochat/hullo/internal/config"
)

// fixURLs applies the secure-scheme rule to the four URL fields: localhost
// URLs pass unchanged, http rewrites to https, https stays, and anything
// else (unparsable, unexpected scheme) becomes absent.
func fixURLs(cfg *config.WidgetConfig) {
	if cfg.Branding != nil {
		cfg.Branding.LogoURL = sanitizeURL(cfg.Branding.LogoURL)
		cfg.Branding.CustomLauncherIconURL = sanitizeURL(cfg.Branding.CustomLauncherIconURL)
		cfg.Branding.AvatarURL = sanitizeURL(cfg.Branding.AvatarURL)
	}
	if cfg.Connection != nil {
		cfg.Connection.WebhookURL = sanitizeURL(cfg.Connection.WebhookURL)
	}
}

// sanitizeURL returns the corrected URL or nil when the value cannot be made
// acceptable. The localhost check runs before the https rewrite so local
// development URLs survive verbatim.
func sanitizeURL(raw *string) *string {
	if raw == nil || *raw == "" {
		return nil
	}

	s := *raw
	if strings.Contains(strings.ToLower(s), "localhost") {
		return raw
	}

	if strings.HasPrefix(strings.ToLower(s), "http://") {
		s = "https://" + s[len("http://"):]
	}

	parsed, err := url.Parse(s)
	if err != nil || !strings.EqualFold(parsed.Scheme, "https") || parsed.Host == "" {
		return nil
	}

	return &s
}
