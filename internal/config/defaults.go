package config

// Defaults applied when a field is absent from the document. The translator
// falls back to these after exhausting the flat and legacy shapes; the
// sanitizer uses them to backfill required branding text.
const (
	DefaultCompanyName  = "Hullo"
	DefaultWelcomeText  = "Hi there 👋"
	DefaultFirstMessage = "Ask us anything — we reply in a few minutes."

	// DefaultColor seeds every color-valued fallback: accent, primary and
	// icon colors, and the replacement for malformed values the sanitizer
	// cannot repair.
	DefaultColor = "#4F46E5"

	DefaultLauncherIcon = "chat"

	DefaultThemeMode = "light"
	DefaultFontSize  = 14
	DefaultRadius    = "medium"
	DefaultDensity   = "normal"

	DefaultFontFamily     = "system-ui, -apple-system, 'Segoe UI', Roboto, sans-serif"
	DefaultMonoFontFamily = "ui-monospace, SFMono-Regular, Menlo, monospace"

	DefaultPlaceholder = "Type a message…"

	DefaultTimeoutSeconds = 30
	DefaultMaxFileSize    = 10
	DefaultMaxFileCount   = 3

	// RelayPath is the relay route; RelayEndpoint is the managed relay the
	// runtime uses when no webhook is configured.
	RelayPath     = "/v1/relay"
	RelayEndpoint = "https://relay.hullo.chat" + RelayPath
)

// Default grayscale inputs: a cool blue-leaning hue with no tint or shade.
const (
	DefaultTintHue    = 220
	DefaultTintLevel  = 0
	DefaultShadeLevel = 0
)
