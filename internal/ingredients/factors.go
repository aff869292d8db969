package ingredients

import "math"

// Sugar: glucose-equivalent concentration in the dough water [g/l].
const (
	SugarLowConcentration = 30.
	SugarMaxConcentration = 650.

	sugarPolynomialCoefficient = 0.0002
)

// SaltMaxConcentration is the salinity of the dough water [g/l] at which growth stops.
const SaltMaxConcentration = 250.

// Hydration response (water fraction relative to flour), a parabola normalized to its peak.
const (
	hydrationA = -0.3154
	hydrationB = 2.084
	hydrationC = -1.694
)

var (
	HydrationMin  = (-hydrationB + math.Sqrt(hydrationB*hydrationB-4*hydrationA*hydrationC)) / (2 * hydrationC)
	HydrationMax  = (-hydrationB - math.Sqrt(hydrationB*hydrationB-4*hydrationA*hydrationC)) / (2 * hydrationC)
	hydrationPeak = hydrationA - hydrationB*hydrationB/(4*hydrationC)
)

// Chlorine dioxide in water [mg/l].
const (
	chlorineDioxideA = 0.0931
	chlorineDioxideB = 0.0011
)

// WaterChlorineDioxideMax is the concentration at which the chlorine dioxide factor reaches zero.
var WaterChlorineDioxideMax = (-chlorineDioxideA + math.Sqrt(chlorineDioxideA*chlorineDioxideA+4*chlorineDioxideB)) / (2 * chlorineDioxideB)

// Pressure [Pa].
const (
	StandardAtmosphere        = 101_325.
	MinimumInhibitoryPressure = 10e6

	pressureCoefficient = 0.0024
	pressureExponent    = 1.5
)

// SugarFactor returns the growth correction for a glucose-equivalent concentration [g/l].
// Below SugarLowConcentration a mild polynomial stimulation applies, above it a logarithmic
// decay reaching zero at SugarMaxConcentration.
func SugarFactor(concentration float64) float64 {
	switch {
	case concentration <= 0:
		return 1
	case concentration < SugarLowConcentration:
		return 1 + sugarPolynomialCoefficient*concentration*(SugarLowConcentration-concentration)
	case concentration < SugarMaxConcentration:
		return 1 - math.Log(concentration/SugarLowConcentration)/math.Log(SugarMaxConcentration/SugarLowConcentration)
	default:
		return 0
	}
}

// SaltFactor decays linearly to zero at SaltMaxConcentration [g/l].
func SaltFactor(concentration float64) float64 {
	if concentration <= 0 {
		return 1
	}
	return math.Max(1-concentration/SaltMaxConcentration, 0)
}

// HydrationFactor is zero at HydrationMin and HydrationMax and 1 at the vertex in between.
func HydrationFactor(hydration float64) float64 {
	if hydration <= HydrationMin || hydration >= HydrationMax {
		return 0
	}
	return (hydrationA + (hydrationB+hydrationC*hydration)*hydration) / hydrationPeak
}

// ChlorineDioxideFactor decays polynomially with the chlorine dioxide content [mg/l], clipped at zero.
func ChlorineDioxideFactor(concentration float64) float64 {
	if concentration <= 0 {
		return 1
	}
	return math.Max(1-(chlorineDioxideA+chlorineDioxideB*concentration)*concentration, 0)
}

// PHFactor is the Rosso cardinal pH model: zero outside (phMin, phMax), one at phOpt.
func PHFactor(ph, phMin, phOpt, phMax float64) float64 {
	if ph <= phMin || ph >= phMax {
		return 0
	}
	num := (ph - phMin) * (ph - phMax)
	return num / (num - (ph-phOpt)*(ph-phOpt))
}

// PressureFactor is 1 up to MinimumInhibitoryPressure and decays as a power law above it.
func PressureFactor(pressure float64) float64 {
	if pressure <= MinimumInhibitoryPressure {
		return 1
	}
	return math.Max(1-pressureCoefficient*math.Pow((pressure-MinimumInhibitoryPressure)/1e6, pressureExponent), 0)
}
