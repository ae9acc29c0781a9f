package mathutil

import (
	"math"
)

// KaiserBeta returns the Kaiser window β for a desired stopband
// attenuation in dB:
//
//	att > 50:       β = 0.1102 (att - 8.7)
//	21 ≤ att ≤ 50:  β = 0.5842 (att - 21)^0.4 + 0.07886 (att - 21)
//	att < 21:       β = 0
func KaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > kaiserAttHigh:
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	case attenuation >= kaiserAttMedium:
		d := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(d, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*d
	default:
		return 0
	}
}

// KaiserAttenuation roughly inverts KaiserBeta using the high-attenuation
// branch. Used for reporting only.
func KaiserAttenuation(beta float64) float64 {
	if beta < kaiserBetaMinThreshold {
		return 0
	}
	return kaiserBetaHighOffset + beta/kaiserBetaHighCoeff1
}

// Kaiser evaluates a Kaiser window of half-width halfSpan at offset x from
// its centre. The result is 1 at x = 0 and 0 outside [-halfSpan, halfSpan].
func Kaiser(x, halfSpan, beta float64) float64 {
	if halfSpan <= 0 {
		return 0
	}
	r := x / halfSpan
	if r < -1 || r > 1 {
		return 0
	}
	return BesselI0(beta*math.Sqrt(1-r*r)) / BesselI0(beta)
}
