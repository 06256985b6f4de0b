// Package translate reshapes the editable configuration document into the
// nested runtime schema the rendering layer consumes. Translation is a pure
// view: it is derived fresh on every call, never persisted, and never fails.
//
// The precedence rule applied throughout: a flat playground field, when
// present, overrides the corresponding legacy nested field, which overrides a
// hardcoded default.
package translate

// RuntimeConfig is the canonical nested tree consumed by the widget runtime.
type RuntimeConfig struct {
	Branding        Branding         `json:"branding"`
	Theme           Theme            `json:"theme"`
	StartScreen     StartScreen      `json:"startScreen"`
	Composer        Composer         `json:"composer"`
	Connection      Connection       `json:"connection"`
	AdvancedStyling *AdvancedStyling `json:"advancedStyling,omitempty"`
	Behavior        *Behavior        `json:"behavior,omitempty"`
}

// Branding carries the identity block shown in the widget header.
type Branding struct {
	CompanyName  string  `json:"companyName"`
	WelcomeText  string  `json:"welcomeText"`
	FirstMessage string  `json:"firstMessage"`
	LogoURL      *string `json:"logoUrl,omitempty"`
	BadgeVisible bool    `json:"badgeVisible"`
}

// Theme groups every appearance input the variable builder consumes.
type Theme struct {
	ColorScheme string `json:"colorScheme"`
	Color       Color  `json:"color"`

	// Radius is a preset name. When the document only carried the legacy
	// pixel value, Radius is empty and RadiusPx holds the base instead.
	Radius   string `json:"radius,omitempty"`
	RadiusPx *int   `json:"radiusPx,omitempty"`

	Density    string     `json:"density"`
	Typography Typography `json:"typography"`
}

// Color holds the optional color specifications. A nil member means "derive
// from defaults"; the builder guarantees a fallback for every one.
type Color struct {
	Accent      *AccentSpec    `json:"accent,omitempty"`
	Grayscale   *GrayscaleSpec `json:"grayscale,omitempty"`
	Surface     *SurfaceSpec   `json:"surface,omitempty"`
	UserMessage *MessageSpec   `json:"userMessage,omitempty"`
	Icon        *string        `json:"icon,omitempty"`
}

// AccentSpec is the brand color and its derivation intensity.
type AccentSpec struct {
	Base  string `json:"base"`
	Level int    `json:"level"`
}

// GrayscaleSpec parameterizes the neutral ramp and surface palettes.
type GrayscaleSpec struct {
	Hue   int `json:"hue"`
	Tint  int `json:"tint"`
	Shade int `json:"shade"`
}

// SurfaceSpec carries explicit surface overrides; set only when the document
// opted into custom surface colors.
type SurfaceSpec struct {
	Background *string `json:"background,omitempty"`
	Foreground *string `json:"foreground,omitempty"`
}

// MessageSpec carries explicit user-message bubble overrides.
type MessageSpec struct {
	Background *string `json:"background,omitempty"`
	Text       *string `json:"text,omitempty"`
}

// Typography is the resolved font stack.
type Typography struct {
	FontFamily     string  `json:"fontFamily"`
	MonoFontFamily string  `json:"monoFontFamily"`
	FontSize       int     `json:"fontSize"`
	FontSource     *string `json:"fontSource,omitempty"`
}

// StartScreen is the pre-conversation greeting block.
type StartScreen struct {
	Greeting string   `json:"greeting"`
	Prompts  []string `json:"prompts"`
}

// Composer configures the message input area.
type Composer struct {
	Placeholder string      `json:"placeholder"`
	Disclaimer  *string     `json:"disclaimer,omitempty"`
	Attachments Attachments `json:"attachments"`
}

// Attachments gates file uploads in the composer.
type Attachments struct {
	Enabled      bool `json:"enabled"`
	MaxFileSize  int  `json:"maxFileSize"`
	MaxFileCount int  `json:"maxFileCount"`
}

// Connection wires the runtime to the customer's backend. RelayEndpoint is
// always synthesized, never sourced from user input.
type Connection struct {
	WebhookURL    *string `json:"webhookUrl,omitempty"`
	RelayEndpoint string  `json:"relayEndpoint"`
}

// AdvancedStyling is present only when the document enabled it.
type AdvancedStyling struct {
	Enabled   bool   `json:"enabled"`
	CustomCSS string `json:"customCss"`
}

// Behavior passes runtime behavior tuning through.
type Behavior struct {
	AutoOpenDelaySeconds int  `json:"autoOpenDelaySeconds"`
	PersistSession       bool `json:"persistSession"`
}
