package ingredients

import (
	"fmt"

	"pizza_dough/internal/models"
)

// Specific heats [J/(kg·K)].
const (
	FlourSpecificHeat = 1800.
	WaterSpecificHeat = 4186.
	SugarSpecificHeat = 1250.
	FatSpecificHeat   = 1970.
	SaltSpecificHeat  = 880.
	YeastSpecificHeat = 3200.
)

// Densities [kg/m³].
const (
	FlourDensity = 1450.
	WaterDensity = 1000.
	SugarDensity = 1590.
	SaltDensity  = 2165.
	YeastDensity = 1100.
)

// Water carried by the non-liquid ingredients, fraction of their mass.
const (
	FlourMoisture = 0.14
	YeastMoisture = 0.7
)

// Honey defaults: carbohydrate and water content.
const (
	HoneyCarbohydrate = 0.80
	HoneyWater        = 0.17
)

// DoughDensity estimates the density of the unleavened dough [kg/m³] by ideal mixing of the
// ingredient densities.
func DoughDensity(r models.Recipe, c Composition) float64 {
	fatDensity := c.FatDensity
	if fatDensity <= 0 {
		fatDensity = 1
	}
	volume := r.Flour/FlourDensity + r.Water/WaterDensity + r.Sugar/SugarDensity +
		r.Fat/fatDensity + r.Salt/SaltDensity + r.Yeast/YeastDensity
	if volume <= 0 {
		return 0
	}
	return r.DoughWeight() / volume
}

// DoughMoisture is the water content of the dough on a dry basis [kg water / kg dry matter].
func DoughMoisture(r models.Recipe, c Composition) float64 {
	water := r.Water + r.Flour*FlourMoisture + r.Sugar*c.SugarWater + r.Fat*c.FatWater + r.Yeast*YeastMoisture
	dry := r.DoughWeight() - water
	if dry <= 0 {
		return 0
	}
	return water / dry
}

// WaterTemperature solves the mixing energy balance for the water temperature [°C] that brings
// every other ingredient, at ingredientsTemperature, to doughTemperature.
func WaterTemperature(r models.Recipe, ingredientsTemperature, doughTemperature float64) (float64, error) {
	waterCapacity := r.Water * WaterSpecificHeat
	if !(waterCapacity > 0) {
		return 0, fmt.Errorf("%w: water mass %g must be > 0 to set the dough temperature", models.ErrValidation, r.Water)
	}
	others := r.Flour*FlourSpecificHeat + r.Sugar*SugarSpecificHeat + r.Fat*FatSpecificHeat +
		r.Salt*SaltSpecificHeat + r.Yeast*YeastSpecificHeat
	return doughTemperature + others*(doughTemperature-ingredientsTemperature)/waterCapacity, nil
}
