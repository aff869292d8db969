package ingredients

import (
	"fmt"
	"math"

	"pizza_dough/internal/models"
	"pizza_dough/internal/yeast"
)

const (
	defaultFlourPH         = 6.1
	defaultYeastRawContent = 1.
)

// Builder accumulates ingredient additions and produces an immutable Composition.
// Running averages are kept as weighted sums so the result does not depend on call order.
// The first invalid argument is retained and returned by Build; later calls are ignored.
type Builder struct {
	err error

	water, waterClO2Sum, waterPHSum float64

	sugar, sugarGlucose, sugarWaterSum float64
	sugarType                          SugarType

	fat, fatVolume, fatWaterSum, fatSaltSum float64
	fatPHSum, fatPHWeight                   float64
	fatType                                 FatType

	salt float64

	yeastType       yeast.Type
	yeastRawContent float64

	flourPH  float64
	pressure float64
	correct  bool
}

// NewBuilder returns a builder with standard atmosphere, default flour pH, fresh yeast
// and ingredient-content correction enabled.
func NewBuilder() *Builder {
	return &Builder{
		yeastType:       yeast.TypeFresh,
		yeastRawContent: defaultYeastRawContent,
		flourPH:         defaultFlourPH,
		pressure:        StandardAtmosphere,
		correct:         true,
	}
}

func (b *Builder) fail(format string, args ...any) *Builder {
	if b.err == nil {
		b.err = fmt.Errorf("%w: "+format, append([]any{models.ErrValidation}, args...)...)
	}
	return b
}

func nonNegative(v float64) bool { return v >= 0 && !math.IsInf(v, 1) }

func unit(v float64) bool { return v >= 0 && v <= 1 }

func validPH(v float64) bool { return v >= 0 && v <= 14 }

// AddWater adds water with its chlorine dioxide content [mg/l] and pH.
func (b *Builder) AddWater(fraction, chlorineDioxide, ph float64) *Builder {
	switch {
	case b.err != nil:
		return b
	case !nonNegative(fraction):
		return b.fail("water fraction %g must be >= 0", fraction)
	case !(chlorineDioxide >= 0 && chlorineDioxide <= WaterChlorineDioxideMax):
		return b.fail("chlorine dioxide %g mg/l outside [0, %.3f]", chlorineDioxide, WaterChlorineDioxideMax)
	case !validPH(ph):
		return b.fail("water pH %g outside [0, 14]", ph)
	}
	b.water += fraction
	b.waterClO2Sum += chlorineDioxide * fraction
	b.waterPHSum += ph * fraction
	return b
}

// AddSugar adds a sugar ingredient. carbohydrate and water are fractions of the ingredient mass.
func (b *Builder) AddSugar(fraction float64, typ SugarType, carbohydrate, water float64) *Builder {
	if b.err != nil {
		return b
	}
	equivalence, err := typ.GlucoseEquivalence()
	switch {
	case err != nil:
		return b.fail("sugar type %q unknown", string(typ))
	case !nonNegative(fraction):
		return b.fail("sugar fraction %g must be >= 0", fraction)
	case !unit(carbohydrate):
		return b.fail("sugar carbohydrate content %g outside [0, 1]", carbohydrate)
	case !unit(water):
		return b.fail("sugar water content %g outside [0, 1]", water)
	case carbohydrate+water > 1:
		return b.fail("sugar carbohydrate %g + water %g exceed 1", carbohydrate, water)
	}
	b.sugar += fraction
	b.sugarGlucose += fraction * carbohydrate * equivalence
	b.sugarWaterSum += fraction * water
	if fraction > 0 {
		b.sugarType = typ
	}
	return b
}

// AddFat adds a fat ingredient. density is in kg/m³, water and salt are fractions of the
// ingredient mass; ph is used only when the fat carries water.
func (b *Builder) AddFat(fraction float64, typ FatType, density, water, salt, ph float64) *Builder {
	switch {
	case b.err != nil:
		return b
	case !typ.valid():
		return b.fail("fat type %q unknown", string(typ))
	case !nonNegative(fraction):
		return b.fail("fat fraction %g must be >= 0", fraction)
	case !(density > 0) || math.IsInf(density, 1):
		return b.fail("fat density %g must be > 0", density)
	case !unit(water):
		return b.fail("fat water content %g outside [0, 1]", water)
	case !unit(salt):
		return b.fail("fat salt content %g outside [0, 1]", salt)
	case water+salt > 1:
		return b.fail("fat water %g + salt %g exceed 1", water, salt)
	case water > 0 && !validPH(ph):
		return b.fail("fat pH %g outside [0, 14]", ph)
	}
	b.fat += fraction
	b.fatVolume += fraction / density
	b.fatWaterSum += fraction * water
	b.fatSaltSum += fraction * salt
	if water > 0 {
		b.fatPHSum += fraction * ph
		b.fatPHWeight += fraction
	}
	if fraction > 0 {
		b.fatType = typ
	}
	return b
}

// AddSalt adds salt.
func (b *Builder) AddSalt(fraction float64) *Builder {
	switch {
	case b.err != nil:
		return b
	case !nonNegative(fraction):
		return b.fail("salt fraction %g must be >= 0", fraction)
	}
	b.salt += fraction
	return b
}

// WithYeast sets the yeast product type and the fraction of it that is actual yeast.
func (b *Builder) WithYeast(typ yeast.Type, rawContent float64) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := typ.FreshEquivalence(); err != nil {
		return b.fail("yeast type %q unknown", string(typ))
	}
	if !(rawContent > 0 && rawContent <= 1) {
		return b.fail("yeast raw content %g outside (0, 1]", rawContent)
	}
	b.yeastType = typ
	b.yeastRawContent = rawContent
	return b
}

// WithFlourPH overrides the flour pH.
func (b *Builder) WithFlourPH(ph float64) *Builder {
	if b.err != nil {
		return b
	}
	if !validPH(ph) {
		return b.fail("flour pH %g outside [0, 14]", ph)
	}
	b.flourPH = ph
	return b
}

// WithAtmosphericPressure overrides the pressure [Pa].
func (b *Builder) WithAtmosphericPressure(pressure float64) *Builder {
	if b.err != nil {
		return b
	}
	if !(pressure > 0) || math.IsInf(pressure, 1) {
		return b.fail("atmospheric pressure %g Pa must be > 0", pressure)
	}
	b.pressure = pressure
	return b
}

// CorrectForIngredients toggles subtraction of water and salt carried by other ingredients.
func (b *Builder) CorrectForIngredients(correct bool) *Builder {
	b.correct = correct
	return b
}

// Build returns the composition or the first validation error.
func (b *Builder) Build() (Composition, error) {
	if b.err != nil {
		return Composition{}, b.err
	}
	c := Composition{
		Water:                 b.water,
		Sugar:                 b.sugar,
		SugarGlucose:          b.sugarGlucose,
		SugarDescription:      b.sugarType,
		Fat:                   b.fat,
		FatType:               b.fatType,
		Salt:                  b.salt,
		YeastType:             b.yeastType,
		YeastRawContent:       b.yeastRawContent,
		FlourPH:               b.flourPH,
		AtmosphericPressure:   b.pressure,
		CorrectForIngredients: b.correct,
		fatPHSum:              b.fatPHSum,
		fatPHWeight:           b.fatPHWeight,
	}
	if b.water > 0 {
		c.WaterChlorineDioxide = b.waterClO2Sum / b.water
		c.WaterPH = b.waterPHSum / b.water
	}
	if b.sugar > 0 {
		c.SugarWater = b.sugarWaterSum / b.sugar
	}
	if b.fat > 0 {
		c.FatDensity = b.fat / b.fatVolume
		c.FatWater = b.fatWaterSum / b.fat
		c.FatSalt = b.fatSaltSum / b.fat
	}
	return c, nil
}
