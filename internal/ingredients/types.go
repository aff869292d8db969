package ingredients

import (
	"fmt"
	"strings"

	"pizza_dough/internal/models"
)

// SugarType identifies the carbohydrate; disaccharides count twice their monomers on hydrolysis.
type SugarType string

const (
	SugarGlucose SugarType = "glucose"
	SugarSucrose SugarType = "sucrose"
	SugarMaltose SugarType = "maltose"
	SugarHoney   SugarType = "honey"
)

const disaccharideEquivalence = 360.31 / 342.30

// GlucoseEquivalence is the mass of glucose equivalents per mass of carbohydrate.
func (s SugarType) GlucoseEquivalence() (float64, error) {
	switch SugarType(strings.ToLower(string(s))) {
	case SugarGlucose, SugarHoney:
		return 1, nil
	case SugarSucrose, SugarMaltose:
		return disaccharideEquivalence, nil
	default:
		return 0, fmt.Errorf("%w: unknown sugar type %q", models.ErrValidation, string(s))
	}
}

// FatType identifies the fat ingredient.
type FatType string

const (
	FatOliveOil FatType = "olive_oil"
	FatSeedOil  FatType = "seed_oil"
	FatButter   FatType = "butter"
	FatLard     FatType = "lard"
)

func (f FatType) valid() bool {
	switch FatType(strings.ToLower(string(f))) {
	case FatOliveOil, FatSeedOil, FatButter, FatLard:
		return true
	}
	return false
}
