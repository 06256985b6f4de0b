package theme

import "strconv"

// rampLightness is the fixed lightness sequence for the neutral ramp. Step 0
// is lightest (light-mode backgrounds), step 12 darkest (dark-mode
// backgrounds and dark text). Which step serves which semantic role is the
// caller's business; the ramp only produces the scale.
var rampLightness = [...]float64{98, 96, 92, 88, 80, 70, 60, 50, 40, 30, 22, 14, 8}

// RampSteps is the number of steps in the grayscale ramp.
const RampSteps = len(rampLightness)

// GrayscaleRamp produces the neutral ramp for (hue, tint, shade). Tint drives
// saturation (tint*2 for every step); shade biases each step's lightness by
// shade*2, clamped to [0,100].
func GrayscaleRamp(hue, tint, shade int) []string {
	saturation := float64(tint) * 2

	steps := make([]string, RampSteps)
	for i, base := range rampLightness {
		steps[i] = HSL(hue, saturation, clampPercent(base+float64(shade)*2))
	}
	return steps
}

// RampStepName returns the token name for ramp step i ("gray-0" … "gray-12").
func RampStepName(i int) string {
	return "gray-" + strconv.Itoa(i)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
