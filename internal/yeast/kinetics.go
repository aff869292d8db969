package yeast

import "math"

// Asymptote curve: a parabola with its vertex at asymptoteVertex, flat beyond it.
const (
	asymptoteVertex  = 0.011
	asymptoteScale   = 24_546.
	asymptoteMaximum = 2.97

	lagCoefficient = 0.0068
	lagExponent    = -0.937
)

// EstimatedLag returns the lag-phase duration [h] for a fresh-yeast fraction (relative to flour).
// It shortens as yeast increases and is infinite without yeast.
func EstimatedLag(yeastFraction float64) float64 {
	if yeastFraction <= 0 {
		return math.Inf(1)
	}
	return lagCoefficient * math.Pow(yeastFraction, lagExponent)
}

// MaximumVolumeExpansionRatio returns the Gompertz asymptote for a fresh-yeast fraction.
func MaximumVolumeExpansionRatio(yeastFraction float64) float64 {
	if yeastFraction <= 0 {
		return 0
	}
	if yeastFraction < asymptoteVertex {
		return asymptoteScale * (2*asymptoteVertex - yeastFraction) * yeastFraction
	}
	return asymptoteMaximum
}
