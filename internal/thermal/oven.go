package thermal

import (
	"fmt"
	"math"

	"pizza_dough/internal/models"
)

// ----------- Heat transfer constants -----------
const (
	StefanBoltzmann = 5.670374419e-8 // W/(m²·K⁴)
	AbsoluteZero    = 273.15         // °C to K offset
	LatentHeat      = 2.257e6        // J/kg, vaporization of water

	// thin-layer drying constant k = dryingRate·exp(−dryingActivation/T[K]) [1/s]
	dryingRate       = 2.8e6
	dryingActivation = 7850.
)

// ConvectiveCoefficient is the oven air heat-transfer coefficient [W/(m²·K)] at temperature [°C].
func ConvectiveCoefficient(oven models.OvenType, temperature float64) (float64, error) {
	switch oven {
	case models.OvenForcedAir:
		return 15 + 0.05*temperature, nil
	case models.OvenNaturalConvection:
		return 5 + 0.015*temperature, nil
	default:
		return 0, fmt.Errorf("%w: unknown oven type %q", models.ErrValidation, oven)
	}
}

// DryingConstant is the surface drying rate [1/s] at temperature [°C].
func DryingConstant(temperature float64) float64 {
	return dryingRate * math.Exp(-dryingActivation/(temperature+AbsoluteZero))
}

func radiation(emissivity, source, surface float64) float64 {
	ts, tf := source+AbsoluteZero, surface+AbsoluteZero
	return emissivity * StefanBoltzmann * (ts*ts*ts*ts - tf*tf*tf*tf)
}
