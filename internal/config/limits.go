package config

// Numeric bounds shared by the validator tags and the sanitizer clamps. The
// two must agree or the sanitize-then-validate guarantee breaks, so both
// read from here.
const (
	MinFontSize = 12
	MaxFontSize = 20

	MinCornerRadius = 0
	MaxCornerRadius = 20

	MinTimeoutSeconds = 10
	MaxTimeoutSeconds = 60

	MinZIndex = 0
	MaxZIndex = 99999

	MaxCustomCSSLength = 10000

	MinAccentLevel = 1
	MaxAccentLevel = 3

	MinTintHue = 0
	MaxTintHue = 360

	MinTintLevel = 0
	MaxTintLevel = 100

	MinShadeLevel = -50
	MaxShadeLevel = 50

	MinAutoOpenDelay = 0
	MaxAutoOpenDelay = 120

	MaxStarterPrompts      = 4
	MaxStarterPromptLength = 80

	MaxCompanyNameLength  = 100
	MaxWelcomeTextLength  = 200
	MaxFirstMessageLength = 500
	MaxGreetingLength     = 200
	MaxPlaceholderLength  = 120
	MaxDisclaimerLength   = 500
	MaxFontFamilyLength   = 120
	MaxWidgetIDLength     = 64

	MinMaxFileSize = 1
	MaxMaxFileSize = 50

	MinMaxFileCount = 1
	MaxMaxFileCount = 10
)

// LauncherIcons lists the accepted built-in launcher icon names. "custom"
// requires customLauncherIconUrl to be set.
var LauncherIcons = []string{"chat", "message", "help", "custom"}

// RadiusPresets lists accepted corner radius preset names.
var RadiusPresets = []string{"none", "small", "medium", "large", "pill"}

// DensityPresets lists accepted layout density names.
var DensityPresets = []string{"compact", "normal", "spacious"}

// ThemeModes lists accepted color scheme names.
var ThemeModes = []string{"light", "dark"}
