package models

import (
	"fmt"
	"math"
)

// OvenType selects the convective heat-transfer correlation.
type OvenType string

const (
	OvenForcedAir         OvenType = "forced_air"
	OvenNaturalConvection OvenType = "natural_convection"
)

// Pan describes the baking tray. Either Diameter (round) or Width×Length (rectangular) is set; lengths in meters.
type Pan struct {
	Material  string  `json:"material"` // aluminum | steel | cast_iron
	Thickness float64 `json:"thickness_m"`
	Diameter  float64 `json:"diameter_m,omitempty"`
	Width     float64 `json:"width_m,omitempty"`
	Length    float64 `json:"length_m,omitempty"`
}

// Area returns the pan surface in m².
func (p Pan) Area() float64 {
	if p.Diameter > 0 {
		return math.Pi * p.Diameter * p.Diameter / 4
	}
	return p.Width * p.Length
}

// BakingInstruments is the equipment a bake request runs on.
type BakingInstruments struct {
	OvenType             OvenType `json:"oven_type"`
	TopHeating           bool     `json:"top_heating"`
	BottomHeating        bool     `json:"bottom_heating"`
	MaxBakingTemperature float64  `json:"max_baking_temperature_c"`
	Pan                  Pan      `json:"pan"`
}

// Validate checks the instrument description.
func (b BakingInstruments) Validate() error {
	switch b.OvenType {
	case OvenForcedAir, OvenNaturalConvection:
	default:
		return fmt.Errorf("%w: unknown oven type %q", ErrValidation, b.OvenType)
	}
	if !b.TopHeating && !b.BottomHeating {
		return fmt.Errorf("%w: oven needs top or bottom heating", ErrValidation)
	}
	if !(b.MaxBakingTemperature > 0) {
		return fmt.Errorf("%w: max baking temperature %g must be > 0", ErrValidation, b.MaxBakingTemperature)
	}
	if !(b.Pan.Thickness > 0) {
		return fmt.Errorf("%w: pan thickness %g must be > 0", ErrValidation, b.Pan.Thickness)
	}
	if !(b.Pan.Area() > 0) {
		return fmt.Errorf("%w: pan needs a diameter or width and length", ErrValidation)
	}
	return nil
}

// BakingInstructions is the outcome of a bake request.
type BakingInstructions struct {
	ID                 string    `json:"id"`
	BakingTemperature  float64   `json:"baking_temperature_c"`
	BakingDuration     float64   `json:"baking_duration_s"`
	MinimumTemperature float64   `json:"minimum_temperature_c"` // coldest node at the end of the bake
	Warnings           []Warning `json:"warnings,omitempty"`
}
