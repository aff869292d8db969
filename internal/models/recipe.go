package models

import "time"

// Recipe holds absolute ingredient masses in grams, derived once by the mass solver.
type Recipe struct {
	ID string `json:"id"`

	Flour float64 `json:"flour_g"`
	Water float64 `json:"water_g"`
	Sugar float64 `json:"sugar_g"`
	Fat   float64 `json:"fat_g"`
	Salt  float64 `json:"salt_g"`
	Yeast float64 `json:"yeast_g"`

	// WaterTemperature is set only when both ingredient and dough temperatures were supplied.
	WaterTemperature *float64 `json:"water_temperature_c,omitempty"`
	// DoughTemperature is the requested dough temperature, if any.
	DoughTemperature *float64 `json:"dough_temperature_c,omitempty"`

	YeastFraction        float64 `json:"yeast_fraction"`           // fresh-yeast equivalent, relative to flour
	VolumeExpansionRatio float64 `json:"volume_expansion_ratio"`   // at the end of the whole procedure
	DoughDensity         float64 `json:"dough_density_kg_m3"`      // unleavened
	DoughMoisture        float64 `json:"dough_moisture_dry_basis"` // kg water / kg dry matter

	Schedule *Schedule `json:"schedule,omitempty"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// DoughWeight is the sum of all ingredient masses.
func (r Recipe) DoughWeight() float64 {
	return r.Flour + r.Water + r.Sugar + r.Fat + r.Salt + r.Yeast
}

// StageWindow is the wall-clock span of one leavening stage.
type StageWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Schedule anchors a procedure on the wall clock, computed backwards from the bake instant.
type Schedule struct {
	DoughMaking     time.Time     `json:"dough_making"`
	Stages          []StageWindow `json:"stages"`
	StretchAndFolds []time.Time   `json:"stretch_and_folds,omitempty"` // first stage start plus the running sum of lapses
	Seasoning       time.Time     `json:"seasoning"`
	Bake            time.Time     `json:"bake"`
}
