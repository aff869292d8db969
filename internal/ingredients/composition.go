// Package ingredients turns ingredient additions into an immutable dough composition
// (fractions relative to flour mass) and maps it to multiplicative growth corrections.
package ingredients

import (
	"math"

	"pizza_dough/internal/yeast"
)

// Composition is the immutable result of a Builder. All fractions are relative to flour mass.
type Composition struct {
	Water                float64 // total water
	WaterChlorineDioxide float64 // mg/l, mass-weighted over all water additions
	WaterPH              float64 // mass-weighted over all water additions

	Sugar            float64 // sugar ingredients
	SugarGlucose     float64 // glucose equivalents carried by the sugar ingredients
	SugarWater       float64 // water content of the sugar ingredients (fraction of their mass)
	SugarDescription SugarType

	Fat        float64 // fat ingredients
	FatDensity float64 // kg/m³
	FatWater   float64 // fraction of fat ingredient mass
	FatSalt    float64 // fraction of fat ingredient mass
	FatType    FatType

	Salt float64 // total salt

	YeastType       yeast.Type
	YeastRawContent float64 // fraction of the yeast product that is yeast

	FlourPH             float64
	AtmosphericPressure float64 // Pa

	// CorrectForIngredients subtracts water and salt carried by other ingredients.
	CorrectForIngredients bool

	fatPHSum    float64
	fatPHWeight float64
}

// TotalFraction is 1 (flour) plus every additive fraction, yeast included.
func (c Composition) TotalFraction(yeastFraction float64) float64 {
	return 1 + c.Water + c.Sugar + c.Fat + c.Salt + yeastFraction
}

// PH is the weighted average of flour, water and (when it carries water) fat pH.
func (c Composition) PH() float64 {
	sum := c.FlourPH + c.WaterPH*c.Water + c.fatPHSum
	weight := 1 + c.Water + c.fatPHWeight
	return sum / weight
}

// DoughWater is the water of the mixed dough relative to flour. With correction the water
// fraction already covers what sugar and fat carry, unless they carry more than that.
func (c Composition) DoughWater() float64 {
	carried := c.SugarWater*c.Sugar + c.FatWater*c.Fat
	if c.CorrectForIngredients {
		return math.Max(c.Water, carried)
	}
	return c.Water + carried
}

// DoughSalt is the salt of the mixed dough relative to flour, fat-borne salt included.
func (c Composition) DoughSalt() float64 {
	carried := c.FatSalt * c.Fat
	if c.CorrectForIngredients {
		return math.Max(c.Salt, carried)
	}
	return c.Salt + carried
}

// SugarConcentration is the glucose-equivalent content of the dough water [g/l].
func (c Composition) SugarConcentration() float64 {
	if c.SugarGlucose <= 0 {
		return 0
	}
	water := c.DoughWater()
	if water <= 0 {
		return SugarMaxConcentration
	}
	return c.SugarGlucose * 1000 / water
}

// SaltConcentration is the salinity of the dough water [g/l].
func (c Composition) SaltConcentration() float64 {
	salt := c.DoughSalt()
	if salt <= 0 {
		return 0
	}
	water := c.DoughWater()
	if water <= 0 {
		return SaltMaxConcentration
	}
	return salt * 1000 / water
}
