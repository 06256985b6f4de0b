// Package tier defines the subscription tiers and the per-tier feature
// policy applied during sanitization and validation.
package tier

import (
	"fmt"
	"strings"
)

// Tier is a widget's subscription level. A widget's tier is assigned by the
// billing system and is immutable for the lifetime of a configuration
// document; the engine only ever reads it.
type Tier string

const (
	Basic  Tier = "basic"
	Pro    Tier = "pro"
	Agency Tier = "agency"
)

// rank orders tiers by capability. Higher rank never loses a capability a
// lower rank has.
var rank = map[Tier]int{Basic: 0, Pro: 1, Agency: 2}

// All returns the known tiers ordered by increasing capability.
func All() []Tier {
	return []Tier{Basic, Pro, Agency}
}

// Parse converts user input (flag values, stored documents) into a Tier.
func Parse(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown tier %q (expected basic, pro or agency)", s)
	}
	return t, nil
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	_, ok := rank[t]
	return ok
}

// AtLeast reports whether t has at least the capability of other.
func (t Tier) AtLeast(other Tier) bool {
	return rank[t] >= rank[other]
}

func (t Tier) String() string {
	return string(t)
}

// Policy describes what a tier may and may not enable. Forced settings are
// applied by the sanitizer; disallowed settings are rejected by the validator
// when found in documents that bypassed sanitization.
type Policy struct {
	// BrandingForcedOn pins the "powered by" badge on; only paid tiers may
	// turn it off.
	BrandingForcedOn bool

	AdvancedStylingAllowed bool
	EmailTranscriptAllowed bool
	RatingPromptAllowed    bool
}

var policies = map[Tier]Policy{
	Basic: {
		BrandingForcedOn:       true,
		AdvancedStylingAllowed: false,
		EmailTranscriptAllowed: false,
		RatingPromptAllowed:    false,
	},
	Pro: {
		BrandingForcedOn:       false,
		AdvancedStylingAllowed: true,
		EmailTranscriptAllowed: true,
		RatingPromptAllowed:    true,
	},
	Agency: {
		BrandingForcedOn:       false,
		AdvancedStylingAllowed: true,
		EmailTranscriptAllowed: true,
		RatingPromptAllowed:    true,
	},
}

// PolicyFor returns the policy table entry for t. Unknown tiers get the most
// restrictive policy so that a corrupted tier value can never unlock paid
// features.
func PolicyFor(t Tier) Policy {
	if p, ok := policies[t]; ok {
		return p
	}
	return policies[Basic]
}
