package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hullochat/hullo/internal/tier"
	hulloerrors "github.com/hullochat/hullo/pkg/errors"
)

// Validate checks a configuration document against structural, range and
// tier-conditional rules. It returns nil when the document is acceptable, or
// a *hulloerrors.ValidationError carrying every violated rule with its field
// path. Validation never stops at the first failure.
//
// A freshly sanitized document always passes for the tier it was sanitized
// against. Validation exists for documents that did not just come out of the
// sanitizer: imports, hand-edited files, or stored documents whose tier
// changed underneath them.
func Validate(cfg *WidgetConfig, t tier.Tier) error {
	if cfg == nil {
		return hulloerrors.NewFieldViolation("config", "required", "configuration document is nil")
	}

	var violations []hulloerrors.Violation

	if err := validatorInstance().Struct(cfg); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("validate config: %w", err)
		}
		for _, fe := range fieldErrs {
			violations = append(violations, violationFromFieldError(fe))
		}
	}

	violations = append(violations, tierViolations(cfg, t)...)
	violations = append(violations, crossFieldViolations(cfg)...)

	if len(violations) > 0 {
		return hulloerrors.NewValidationError(violations)
	}

	return nil
}

// tierViolations rejects, rather than silently fixes, tier-forbidden values.
// The sanitizer coerces these on save; the validator reports them so callers
// know an unsanitized document cannot be trusted as-is.
func tierViolations(cfg *WidgetConfig, t tier.Tier) []hulloerrors.Violation {
	policy := tier.PolicyFor(t)

	var out []hulloerrors.Violation

	if policy.BrandingForcedOn && cfg.Branding != nil &&
		cfg.Branding.BrandingEnabled != nil && !*cfg.Branding.BrandingEnabled {
		out = append(out, hulloerrors.Violation{
			FieldPath: "branding.brandingEnabled",
			Rule:      "tier_policy",
			Message:   fmt.Sprintf("tier %q cannot disable branding", t),
		})
	}

	if !policy.AdvancedStylingAllowed && cfg.AdvancedStyling != nil &&
		cfg.AdvancedStyling.Enabled != nil && *cfg.AdvancedStyling.Enabled {
		out = append(out, hulloerrors.Violation{
			FieldPath: "advancedStyling.enabled",
			Rule:      "tier_policy",
			Message:   fmt.Sprintf("tier %q cannot enable advanced styling", t),
		})
	}

	if cfg.Features != nil {
		if !policy.EmailTranscriptAllowed && cfg.Features.EmailTranscript != nil && *cfg.Features.EmailTranscript {
			out = append(out, hulloerrors.Violation{
				FieldPath: "features.emailTranscript",
				Rule:      "tier_policy",
				Message:   fmt.Sprintf("tier %q cannot enable email transcripts", t),
			})
		}
		if !policy.RatingPromptAllowed && cfg.Features.RatingPrompt != nil && *cfg.Features.RatingPrompt {
			out = append(out, hulloerrors.Violation{
				FieldPath: "features.ratingPrompt",
				Rule:      "tier_policy",
				Message:   fmt.Sprintf("tier %q cannot enable the rating prompt", t),
			})
		}
	}

	return out
}

func crossFieldViolations(cfg *WidgetConfig) []hulloerrors.Violation {
	var out []hulloerrors.Violation

	if cfg.Branding != nil {
		b := cfg.Branding
		if b.LauncherIcon != nil && *b.LauncherIcon == "custom" && b.CustomLauncherIconURL == nil {
			out = append(out, hulloerrors.Violation{
				FieldPath: "branding.customLauncherIconUrl",
				Rule:      "required_with",
				Message:   `is required when launcherIcon is "custom"`,
			})
		}
		if b.ShowAvatar != nil && *b.ShowAvatar && b.AvatarURL == nil {
			out = append(out, hulloerrors.Violation{
				FieldPath: "branding.avatarUrl",
				Rule:      "required_with",
				Message:   "is required when showAvatar is true",
			})
		}
	}

	return out
}
