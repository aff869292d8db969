package ingredients

import "pizza_dough/internal/yeast"

// Factor names reported when a factor inhibits growth completely.
const (
	FactorSugar           = "sugar"
	FactorSalt            = "salt"
	FactorHydration       = "hydration"
	FactorChlorineDioxide = "chlorine_dioxide"
	FactorPH              = "ph"
	FactorPressure        = "atmospheric_pressure"
)

// Factors holds the individual growth corrections of a composition.
type Factors struct {
	Sugar           float64
	Salt            float64
	Hydration       float64
	ChlorineDioxide float64
	PH              float64
	Pressure        float64
}

// EnvironmentFactors evaluates every ingredient correction of c for strain m.
func EnvironmentFactors(c Composition, m yeast.Model) Factors {
	f := Factors{
		Sugar:           SugarFactor(c.SugarConcentration()),
		Salt:            SaltFactor(c.SaltConcentration()),
		Hydration:       HydrationFactor(c.DoughWater()),
		ChlorineDioxide: ChlorineDioxideFactor(c.WaterChlorineDioxide),
		PH:              1,
		Pressure:        PressureFactor(c.AtmosphericPressure),
	}
	if m.HasPHBounds() {
		f.PH = PHFactor(c.PH(), m.PHMin, m.PHOpt, m.PHMax)
	}
	return f
}

// Product is the combined correction factor.
func (f Factors) Product() float64 {
	return f.Sugar * f.Salt * f.Hydration * f.ChlorineDioxide * f.PH * f.Pressure
}

// Inhibiting returns the name of the first factor that is zero, if any.
func (f Factors) Inhibiting() (string, bool) {
	for _, nv := range []struct {
		name  string
		value float64
	}{
		{FactorSugar, f.Sugar},
		{FactorSalt, f.Salt},
		{FactorHydration, f.Hydration},
		{FactorChlorineDioxide, f.ChlorineDioxide},
		{FactorPH, f.PH},
		{FactorPressure, f.Pressure},
	} {
		if nv.value <= 0 {
			return nv.name, true
		}
	}
	return "", false
}
