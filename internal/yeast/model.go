// Package yeast holds the strain records and the growth kinetics shared by all strains:
// a Rosso cardinal-temperature secondary model feeding a modified Gompertz primary model.
package yeast

import (
	"fmt"
	"math"

	"pizza_dough/internal/models"
)

// Model is the cardinal description of a strain. Strains differ only in these constants.
type Model struct {
	Name string

	TemperatureMin float64 // °C
	TemperatureOpt float64 // °C
	TemperatureMax float64 // °C

	// MaximumSpecificGrowthRate is the rate at TemperatureOpt [1/h].
	MaximumSpecificGrowthRate float64

	// Optional pH bounds; all zero disables the pH correction.
	PHMin float64
	PHOpt float64
	PHMax float64
}

// Validate checks TemperatureMin < TemperatureOpt < TemperatureMax and the optional pH bounds.
func (m Model) Validate() error {
	if !(m.TemperatureMin < m.TemperatureOpt && m.TemperatureOpt < m.TemperatureMax) {
		return fmt.Errorf("%w: strain %q cardinal temperatures %g < %g < %g not ordered",
			models.ErrValidation, m.Name, m.TemperatureMin, m.TemperatureOpt, m.TemperatureMax)
	}
	if !(m.MaximumSpecificGrowthRate > 0) {
		return fmt.Errorf("%w: strain %q maximum specific growth rate %g must be > 0",
			models.ErrValidation, m.Name, m.MaximumSpecificGrowthRate)
	}
	if m.HasPHBounds() && !(0 <= m.PHMin && m.PHMin < m.PHOpt && m.PHOpt < m.PHMax && m.PHMax <= 14) {
		return fmt.Errorf("%w: strain %q pH bounds %g < %g < %g not ordered within [0, 14]",
			models.ErrValidation, m.Name, m.PHMin, m.PHOpt, m.PHMax)
	}
	return nil
}

// HasPHBounds reports whether the strain declares a pH range.
func (m Model) HasPHBounds() bool {
	return m.PHMin != 0 || m.PHOpt != 0 || m.PHMax != 0
}

// SpecificGrowthRate is the Rosso CTMI maximum specific growth rate at temperature [1/h].
// It is zero at or outside the cardinal bounds.
func (m Model) SpecificGrowthRate(temperature float64) float64 {
	if temperature <= m.TemperatureMin || temperature >= m.TemperatureMax {
		return 0
	}
	tMin, tOpt, tMax := m.TemperatureMin, m.TemperatureOpt, m.TemperatureMax
	d := (temperature - tMax) * (temperature - tMin) * (temperature - tMin)
	e := (tOpt - tMin) * ((tOpt-tMin)*(temperature-tOpt) - (tOpt-tMax)*(tOpt+tMin-2*temperature))
	return m.MaximumSpecificGrowthRate * d / e
}

// VolumeExpansionRatio evaluates the modified Gompertz model.
//
//	ratio = alpha · exp(−exp(μ·e·(lag − time)/alpha + 1))
//
// where μ is the specific growth rate at temperature scaled by correctionFactor.
// time and lag are in hours. The result is 0 when time <= 0, alpha <= 0 or μ <= 0.
func (m Model) VolumeExpansionRatio(time, lag, alpha, temperature, correctionFactor float64) float64 {
	mu := correctionFactor * m.SpecificGrowthRate(temperature)
	if time <= 0 || alpha <= 0 || mu <= 0 {
		return 0
	}
	return alpha * math.Exp(-math.Exp(mu*math.E*(lag-time)/alpha+1))
}
