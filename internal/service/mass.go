package service

import (
	"fmt"
	"math"

	"pizza_dough/internal/ingredients"
	"pizza_dough/internal/logger"
	"pizza_dough/internal/models"
)

// MassOptions controls the fixed-point iteration on the flour mass.
type MassOptions struct {
	Tolerance     float64 // g
	Damping       float64
	MaxIterations int
}

func DefaultMassOptions() MassOptions {
	return MassOptions{Tolerance: 0.01, Damping: 0.6, MaxIterations: 1000}
}

// MassSolver turns flour-relative fractions into absolute masses for a target dough weight.
type MassSolver struct {
	opts MassOptions
	log  *logger.Logger
}

func NewMassSolver(opts MassOptions, log *logger.Logger) *MassSolver {
	if log == nil {
		log = logger.Nop()
	}
	return &MassSolver{opts: opts, log: log}
}

// YeastMass is the mass of the chosen yeast product for a fresh-yeast fraction and a flour mass.
func YeastMass(c ingredients.Composition, yeastFraction, flour float64) (float64, error) {
	equivalence, err := c.YeastType.FreshEquivalence()
	if err != nil {
		return 0, err
	}
	raw := c.YeastRawContent
	if raw <= 0 {
		raw = 1
	}
	return flour * yeastFraction * equivalence / raw, nil
}

// Solve returns the recipe masses and the warnings raised by oversupplied ingredients.
func (m *MassSolver) Solve(c ingredients.Composition, yeastFraction, doughWeight float64) (models.Recipe, []models.Warning, error) {
	if !(doughWeight > 0) || math.IsInf(doughWeight, 1) {
		return models.Recipe{}, nil, fmt.Errorf("%w: dough weight %g g must be > 0", models.ErrValidation, doughWeight)
	}
	if !(yeastFraction >= 0) {
		return models.Recipe{}, nil, fmt.Errorf("%w: yeast fraction %g must be >= 0", models.ErrValidation, yeastFraction)
	}
	perFlour, err := YeastMass(c, yeastFraction, 1)
	if err != nil {
		return models.Recipe{}, nil, err
	}
	total := c.TotalFraction(perFlour)

	flour := doughWeight / total
	var r models.Recipe
	var excess excessMasses
	for i := 0; i < m.opts.MaxIterations; i++ {
		r, excess = masses(c, perFlour, flour)
		residual := doughWeight - r.DoughWeight()
		if math.Abs(residual) < m.opts.Tolerance {
			w := &warnings{log: m.log}
			excess.report(w)
			m.log.Debugw("masses_solved", "flour", r.Flour, "iterations", i+1, "residual", residual)
			return r, w.list, nil
		}
		flour += m.opts.Damping * residual / total
	}
	return models.Recipe{}, nil, fmt.Errorf("%w: %d iterations, dough weight %.3f g, target %.3f g",
		ErrMassNotConverged, m.opts.MaxIterations, r.DoughWeight(), doughWeight)
}

// excessMasses are the (positive) amounts by which other ingredients already exceed
// the water, fat or salt the composition calls for.
type excessMasses struct {
	water, fat, salt float64
}

func (e excessMasses) report(w *warnings) {
	for _, x := range []struct {
		name   string
		excess float64
	}{{"water", e.water}, {"fat", e.fat}, {"salt", e.salt}} {
		if x.excess > 0 {
			w.add(models.WarningExcessIngredient,
				fmt.Sprintf("other ingredients already supply %.2f g more %s than required", x.excess, x.name),
				"ingredient", x.name, "excess_g", x.excess)
		}
	}
}

func masses(c ingredients.Composition, yeastPerFlour, flour float64) (models.Recipe, excessMasses) {
	r := models.Recipe{
		Flour: flour,
		Water: flour * c.Water,
		Sugar: flour * c.Sugar,
		Fat:   flour * c.Fat,
		Salt:  flour * c.Salt,
		Yeast: flour * yeastPerFlour,
	}
	if c.CorrectForIngredients {
		r.Water -= r.Fat*c.FatWater + r.Sugar*c.SugarWater
		r.Salt -= r.Fat * c.FatSalt
	}
	var e excessMasses
	r.Water, e.water = clamp(r.Water)
	r.Fat, e.fat = clamp(r.Fat)
	r.Salt, e.salt = clamp(r.Salt)
	return r, e
}

func clamp(mass float64) (float64, float64) {
	if mass < 0 {
		return 0, -mass
	}
	return mass, 0
}
