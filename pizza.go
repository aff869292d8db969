// Package pizza_dough computes pizza dough recipes and baking instructions: the yeast needed to
// reach a target volume expansion over a multi-stage leavening procedure, the ingredient masses
// for a target dough weight, and the oven temperature and time that bring the pizza core to a
// safe temperature.
//
// The calculator is a thin facade over internal/service; it is safe for concurrent use.
package pizza_dough

import (
	"context"

	"pizza_dough/internal/ingredients"
	"pizza_dough/internal/logger"
	"pizza_dough/internal/models"
	"pizza_dough/internal/repository"
	"pizza_dough/internal/service"
	"pizza_dough/internal/yeast"
)

type (
	Procedure           = models.Procedure
	LeaveningStage      = models.LeaveningStage
	StretchAndFoldStage = models.StretchAndFoldStage
	Recipe              = models.Recipe
	Schedule            = models.Schedule
	StageWindow         = models.StageWindow
	Pan                 = models.Pan
	OvenType            = models.OvenType
	BakingInstruments   = models.BakingInstruments
	BakingInstructions  = models.BakingInstructions
	Warning             = models.Warning
	WarningEvent        = models.WarningEvent

	Composition = ingredients.Composition
	Builder     = ingredients.Builder

	// LogFilter selects journaled warnings.
	LogFilter = service.LogFilter
)

// ErrValidation classifies out-of-range arguments.
var ErrValidation = models.ErrValidation

// NewComposition starts a composition with flour pH 6.1, standard pressure and fresh yeast.
func NewComposition() *Builder { return ingredients.NewBuilder() }

// Strains lists the yeast strains a Calculator can be created for.
func Strains() []string { return yeast.Strains() }

// Calculator solves recipes for one yeast strain and journals their warnings.
type Calculator struct {
	svc *service.Service
}

// New returns a calculator for the named strain with default solver settings and a silent logger.
func New(strain string) (*Calculator, error) {
	return NewWithOptions(strain, service.DefaultOptions(), nil)
}

// NewWithOptions is New with explicit solver settings and logger; a nil logger discards output.
func NewWithOptions(strain string, opts service.Options, log *logger.Logger) (*Calculator, error) {
	m, err := yeast.Lookup(strain)
	if err != nil {
		return nil, err
	}
	svc, err := service.NewService(m, opts, repository.NewRepository(), log)
	if err != nil {
		return nil, err
	}
	return &Calculator{svc: svc}, nil
}

// CreateRecipe solves the yeast fraction for p, then the masses for doughWeight grams.
// ingredientsTemperature and doughTemperature are optional; when both are set the recipe carries
// the water temperature that brings the mixed dough to doughTemperature.
func (c *Calculator) CreateRecipe(ctx context.Context, p Procedure, comp Composition, doughWeight float64,
	ingredientsTemperature, doughTemperature *float64) (Recipe, error) {
	return c.svc.CreateRecipe(ctx, service.RecipeRequest{
		Procedure:              p,
		Composition:            comp,
		DoughWeight:            doughWeight,
		IngredientsTemperature: ingredientsTemperature,
		DoughTemperature:       doughTemperature,
	})
}

// BakeRecipe finds the oven temperature that bakes r to targetHeight meters and the time
// its coldest point needs to reach the doneness temperature.
func (c *Calculator) BakeRecipe(ctx context.Context, r Recipe, targetHeight float64, instruments BakingInstruments) (BakingInstructions, error) {
	return c.svc.BakeRecipe(ctx, r, targetHeight, instruments)
}

// Schedule anchors p on the wall clock, backwards from p.TimeToBake.
func (c *Calculator) Schedule(p Procedure) (Schedule, error) {
	return c.svc.Schedule(p)
}

// Warnings returns the journaled warnings matching f.
func (c *Calculator) Warnings(ctx context.Context, f LogFilter) ([]WarningEvent, error) {
	return c.svc.WarningLog.List(ctx, f)
}
