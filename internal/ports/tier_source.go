package ports

import (
	"github.com/hullochat/hullo/internal/tier"
)

// TierSource resolves the subscription tier that governs a widget's
// sanitization and validation. The CLI answers from the tier recorded at
// registration time; the hosted service answers from the billing system, so
// a downgrade takes effect on the next render without re-registering.
type TierSource interface {
	TierFor(widgetID string) (tier.Tier, error)
}
