package theme

// radiusPresets maps corner radius preset names to a base value in px. The
// pill preset is special-cased: its full variant stays 9999 instead of
// doubling.
var radiusPresets = map[string]float64{
	"none":   0,
	"small":  6,
	"medium": 12,
	"large":  18,
	"pill":   9999,
}

type densityFactors struct {
	Padding float64
	Gap     float64
}

var densityPresets = map[string]densityFactors{
	"compact":  {Padding: 0.75, Gap: 0.75},
	"normal":   {Padding: 1, Gap: 1},
	"spacious": {Padding: 1.25, Gap: 1.25},
}

// spacingSteps are the five base spacing values scaled by the density
// padding factor; spacingNames are their variant suffixes.
var (
	spacingSteps = [...]float64{4, 8, 12, 16, 24}
	spacingNames = [...]string{"xs", "sm", "md", "lg", "xl"}
)

const baseGap = 8.0
