// Package sanitize auto-corrects a configuration document so it satisfies
// tier policy and basic data integrity without ever rejecting it. A document
// a user can edit must never become permanently unsavable because of one bad
// field, so every malformed value has a safe correction.
//
// Sanitize is deterministic and idempotent, and its output always passes
// validation for the tier it was sanitized against. The input document is
// deep-copied, never mutated.
package sanitize

import (
	"github.com/hullochat/hullo/internal/config"
	"github.com/hullochat/hullo/internal/tier"
)

// Sanitize returns a policy-compliant copy of the document for the given
// tier.
func Sanitize(cfg *config.WidgetConfig, t tier.Tier) *config.WidgetConfig {
	out := cfg.Clone()
	if out == nil {
		out = &config.WidgetConfig{}
	}

	fixColors(out)
	fixColorFields(out)
	fixURLs(out)
	fixEnums(out)
	backfillBranding(out)
	enforceTier(out, t)
	fixLauncherIcon(out)
	fixAvatar(out)
	clampNumbers(out)
	trimStrings(out)
	fixStarterPrompts(out)

	return out
}

// backfillBranding guarantees the branding section exists with non-empty
// required text, backfilling the fixed defaults.
func backfillBranding(cfg *config.WidgetConfig) {
	if cfg.Branding == nil {
		cfg.Branding = &config.BrandingConfig{}
	}

	b := cfg.Branding
	if b.CompanyName == nil || *b.CompanyName == "" {
		b.CompanyName = ptr(config.DefaultCompanyName)
	}
	if b.WelcomeText == nil || *b.WelcomeText == "" {
		b.WelcomeText = ptr(config.DefaultWelcomeText)
	}
	if b.FirstMessage == nil || *b.FirstMessage == "" {
		b.FirstMessage = ptr(config.DefaultFirstMessage)
	}
}

// enforceTier coerces tier-gated fields to tier-legal values. Gated features
// are only ever forced off, never on: a tier may always opt out.
func enforceTier(cfg *config.WidgetConfig, t tier.Tier) {
	policy := tier.PolicyFor(t)

	if policy.BrandingForcedOn {
		cfg.Branding.BrandingEnabled = ptr(true)
	}

	if !policy.AdvancedStylingAllowed && cfg.AdvancedStyling != nil {
		if cfg.AdvancedStyling.Enabled != nil && *cfg.AdvancedStyling.Enabled {
			cfg.AdvancedStyling.Enabled = ptr(false)
		}
	}

	if cfg.Features != nil {
		if !policy.EmailTranscriptAllowed && cfg.Features.EmailTranscript != nil && *cfg.Features.EmailTranscript {
			cfg.Features.EmailTranscript = ptr(false)
		}
		if !policy.RatingPromptAllowed && cfg.Features.RatingPrompt != nil && *cfg.Features.RatingPrompt {
			cfg.Features.RatingPrompt = ptr(false)
		}
	}
}

// fixEnums drops unrecognized enum values rather than coercing them, leaving
// translation to fall back to its own default. The launcher icon is the
// exception: it reverts to the default icon so the custom-icon consistency
// rule below has a defined input.
func fixEnums(cfg *config.WidgetConfig) {
	cfg.ThemeMode = keepOneOf(cfg.ThemeMode, config.ThemeModes)
	cfg.Radius = keepOneOf(cfg.Radius, config.RadiusPresets)
	cfg.Density = keepOneOf(cfg.Density, config.DensityPresets)

	if cfg.Style != nil {
		cfg.Style.Theme = keepOneOf(cfg.Style.Theme, config.ThemeModes)
	}

	if cfg.Branding != nil && cfg.Branding.LauncherIcon != nil {
		if !contains(config.LauncherIcons, *cfg.Branding.LauncherIcon) {
			cfg.Branding.LauncherIcon = ptr(config.DefaultLauncherIcon)
		}
	}
}

// fixLauncherIcon keeps the launcher icon and its custom URL consistent: a
// custom icon without a usable URL reverts to the default icon, and any
// non-custom icon always clears the URL. Runs after URL sanitization.
func fixLauncherIcon(cfg *config.WidgetConfig) {
	b := cfg.Branding

	isCustom := b.LauncherIcon != nil && *b.LauncherIcon == "custom"
	if isCustom && b.CustomLauncherIconURL == nil {
		b.LauncherIcon = ptr(config.DefaultLauncherIcon)
		isCustom = false
	}
	if !isCustom {
		b.CustomLauncherIconURL = nil
	}
}

// fixAvatar turns the avatar off when no usable avatar URL survived URL
// sanitization.
func fixAvatar(cfg *config.WidgetConfig) {
	b := cfg.Branding
	if b.ShowAvatar != nil && *b.ShowAvatar && b.AvatarURL == nil {
		b.ShowAvatar = ptr(false)
	}
}

func clampNumbers(cfg *config.WidgetConfig) {
	clampInt(cfg.FontSize, config.MinFontSize, config.MaxFontSize)
	clampInt(cfg.AccentLevel, config.MinAccentLevel, config.MaxAccentLevel)
	clampInt(cfg.TintHue, config.MinTintHue, config.MaxTintHue)
	clampInt(cfg.TintLevel, config.MinTintLevel, config.MaxTintLevel)
	clampInt(cfg.ShadeLevel, config.MinShadeLevel, config.MaxShadeLevel)
	clampInt(cfg.MaxFileSize, config.MinMaxFileSize, config.MaxMaxFileSize)
	clampInt(cfg.MaxFileCount, config.MinMaxFileCount, config.MaxMaxFileCount)

	if cfg.Style != nil {
		clampInt(cfg.Style.FontSize, config.MinFontSize, config.MaxFontSize)
		clampInt(cfg.Style.CornerRadius, config.MinCornerRadius, config.MaxCornerRadius)
	}
	if cfg.Connection != nil {
		clampInt(cfg.Connection.TimeoutSeconds, config.MinTimeoutSeconds, config.MaxTimeoutSeconds)
	}
	if cfg.Advanced != nil {
		clampInt(cfg.Advanced.ZIndex, config.MinZIndex, config.MaxZIndex)
	}
	if cfg.Behavior != nil {
		clampInt(cfg.Behavior.AutoOpenDelaySeconds, config.MinAutoOpenDelay, config.MaxAutoOpenDelay)
	}
}

func trimStrings(cfg *config.WidgetConfig) {
	cfg.WidgetID = emptyToNil(truncateRunes(cfg.WidgetID, config.MaxWidgetIDLength))

	b := cfg.Branding
	b.CompanyName = truncateRunes(b.CompanyName, config.MaxCompanyNameLength)
	b.WelcomeText = truncateRunes(b.WelcomeText, config.MaxWelcomeTextLength)
	b.FirstMessage = truncateRunes(b.FirstMessage, config.MaxFirstMessageLength)

	cfg.Greeting = truncateRunes(cfg.Greeting, config.MaxGreetingLength)
	cfg.Placeholder = truncateRunes(cfg.Placeholder, config.MaxPlaceholderLength)
	cfg.Disclaimer = truncateRunes(cfg.Disclaimer, config.MaxDisclaimerLength)
	cfg.FontFamily = emptyToNil(truncateRunes(cfg.FontFamily, config.MaxFontFamilyLength))
	cfg.MonoFontFamily = emptyToNil(truncateRunes(cfg.MonoFontFamily, config.MaxFontFamilyLength))
	cfg.CustomFontCSS = truncateRunes(cfg.CustomFontCSS, config.MaxCustomCSSLength)

	if cfg.Style != nil {
		cfg.Style.FontFamily = emptyToNil(truncateRunes(cfg.Style.FontFamily, config.MaxFontFamilyLength))
	}
	if cfg.Advanced != nil {
		cfg.Advanced.CustomCSS = truncateRunes(cfg.Advanced.CustomCSS, config.MaxCustomCSSLength)
	}
	if cfg.AdvancedStyling != nil {
		cfg.AdvancedStyling.CustomCSS = truncateRunes(cfg.AdvancedStyling.CustomCSS, config.MaxCustomCSSLength)
	}
}

// fixStarterPrompts drops empty entries, truncates the rest and caps the
// list length.
func fixStarterPrompts(cfg *config.WidgetConfig) {
	if len(cfg.StarterPrompts) == 0 {
		cfg.StarterPrompts = nil
		return
	}

	kept := make([]string, 0, len(cfg.StarterPrompts))
	for _, prompt := range cfg.StarterPrompts {
		if prompt == "" {
			continue
		}
		r := []rune(prompt)
		if len(r) > config.MaxStarterPromptLength {
			prompt = string(r[:config.MaxStarterPromptLength])
		}
		kept = append(kept, prompt)
		if len(kept) == config.MaxStarterPrompts {
			break
		}
	}

	if len(kept) == 0 {
		cfg.StarterPrompts = nil
		return
	}
	cfg.StarterPrompts = kept
}

func keepOneOf(s *string, allowed []string) *string {
	if s == nil {
		return nil
	}
	if contains(allowed, *s) {
		return s
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func clampInt(p *int, lo, hi int) {
	if p == nil {
		return
	}
	if *p < lo {
		*p = lo
	}
	if *p > hi {
		*p = hi
	}
}

// truncateRunes caps *s at limit runes. Validation counts runes, so the trim
// has to as well or multibyte text would slip past the cap.
func truncateRunes(s *string, limit int) *string {
	if s == nil {
		return nil
	}
	r := []rune(*s)
	if len(r) > limit {
		v := string(r[:limit])
		return &v
	}
	return s
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func ptr[T any](v T) *T { return &v }
