package service

import (
	"context"
	"fmt"

	"pizza_dough/internal/config"
	"pizza_dough/internal/ingredients"
	"pizza_dough/internal/logger"
	"pizza_dough/internal/models"
	"pizza_dough/internal/numeric"
	"pizza_dough/internal/repository"
	"pizza_dough/internal/yeast"

	"github.com/google/uuid"
)

// WarningLog exposes the journal of warnings raised by past requests.
type WarningLog interface {
	Record(ctx context.Context, requestID string, warnings []models.Warning) error
	List(ctx context.Context, f LogFilter) ([]models.WarningEvent, error)
}

// Options groups the settings of every solver.
type Options struct {
	Leavening LeaveningOptions
	Mass      MassOptions
	Oven      OvenOptions
}

func DefaultOptions() Options {
	return Options{
		Leavening: DefaultLeaveningOptions(),
		Mass:      DefaultMassOptions(),
		Oven:      DefaultOvenOptions(),
	}
}

// OptionsFromConfig maps the loaded configuration onto solver options.
func OptionsFromConfig(cfg config.Config) Options {
	in := cfg.Oven.Integrator
	return Options{
		Leavening: LeaveningOptions{
			YeastMax:          cfg.Leavening.YeastMax,
			Tolerance:         cfg.Leavening.Tolerance,
			ResidualTolerance: cfg.Leavening.ResidualTolerance,
			MaxEvaluations:    cfg.Leavening.MaxEvaluations,
		},
		Mass: MassOptions{
			Tolerance:     cfg.Mass.Tolerance,
			Damping:       cfg.Mass.Damping,
			MaxIterations: cfg.Mass.MaxIterations,
		},
		Oven: OvenOptions{
			DonenessTemperature: cfg.Oven.DonenessTemperature,
			MaillardTemperature: cfg.Oven.MaillardTemperature,
			MaxBakingDuration:   cfg.Oven.MaxBakingDuration,
			DurationTolerance:   cfg.Oven.DurationTolerance,
			MaxEvaluations:      cfg.Oven.MaxEvaluations,
			CheeseThickness:     cfg.Oven.CheeseThickness,
			TomatoThickness:     cfg.Oven.TomatoThickness,
			DoughLayers:         cfg.Oven.DoughLayers,
			AmbientTemperature:  cfg.Oven.AmbientTemperature,
			EquilibriumMoisture: cfg.Oven.EquilibriumMoisture,
			Integrator: numeric.IntegratorOptions{
				RelativeTolerance: in.RelativeTolerance,
				AbsoluteTolerance: in.AbsoluteTolerance,
				InitialStep:       in.InitialStep.Seconds(),
				MaxSteps:          in.MaxSteps,
			},
		},
	}
}

// RecipeRequest is the input of CreateRecipe.
type RecipeRequest struct {
	Procedure   models.Procedure
	Composition ingredients.Composition
	DoughWeight float64 // g

	// Both must be set for the water temperature to be computed.
	IngredientsTemperature *float64 // °C
	DoughTemperature       *float64 // °C
}

// Service aggregates the solvers into the recipe and bake pipeline.
type Service struct {
	Leavening *LeaveningService
	Mass      *MassSolver
	Oven      *OvenService
	WarningLog

	log *logger.Logger
}

// NewService wires the solvers for one yeast strain.
func NewService(strain yeast.Model, opts Options, repos *repository.Repository, log *logger.Logger) (*Service, error) {
	if err := strain.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	if repos == nil {
		repos = repository.NewRepository()
	}
	return &Service{
		Leavening:  NewLeaveningService(strain, opts.Leavening, log),
		Mass:       NewMassSolver(opts.Mass, log),
		Oven:       NewOvenService(opts.Oven, log),
		WarningLog: NewWarningLogService(repos.WarningRepo),
		log:        log,
	}, nil
}

// CreateRecipe solves the yeast quantity for the procedure, then the absolute masses for the
// dough weight, and completes the recipe with the derived properties and the schedule.
func (s *Service) CreateRecipe(ctx context.Context, req RecipeRequest) (models.Recipe, error) {
	requestID := uuid.NewString()
	log := s.log.With("request_id", requestID)

	p, c := req.Procedure, req.Composition
	if err := p.Validate(); err != nil {
		return models.Recipe{}, err
	}
	if !(req.DoughWeight > 0) {
		return models.Recipe{}, fmt.Errorf("%w: dough weight %g g must be > 0", models.ErrValidation, req.DoughWeight)
	}

	root, err := s.Leavening.YeastFraction(p, c)
	if err != nil {
		log.Errorw("yeast_solve_failed", "err", err)
		return models.Recipe{}, err
	}
	r, warns, err := s.Mass.Solve(c, root.X, req.DoughWeight)
	if err != nil {
		log.Errorw("mass_solve_failed", "err", err)
		return models.Recipe{}, err
	}
	w := &warnings{log: log, list: warns}

	correction, err := s.Leavening.CorrectionFactor(p, c, p.TargetStageIndex)
	if err != nil {
		return models.Recipe{}, err
	}
	r.ID = requestID
	r.YeastFraction = root.X
	r.VolumeExpansionRatio = s.Leavening.SimulatedRatio(root.X, p, correction, len(p.Stages)-1)
	r.DoughDensity = ingredients.DoughDensity(r, c)
	r.DoughMoisture = ingredients.DoughMoisture(r, c)

	if req.DoughTemperature != nil {
		dt := *req.DoughTemperature
		r.DoughTemperature = &dt
	}
	if req.IngredientsTemperature != nil && req.DoughTemperature != nil {
		tw, err := ingredients.WaterTemperature(r, *req.IngredientsTemperature, *req.DoughTemperature)
		if err != nil {
			return models.Recipe{}, err
		}
		r.WaterTemperature = &tw
		if strain := s.Leavening.Strain(); tw > strain.TemperatureMax {
			w.add(models.WarningYeastThermalShock,
				fmt.Sprintf("water temperature %.1f °C exceeds the yeast maximum %.1f °C", tw, strain.TemperatureMax),
				"water_temperature", tw, "threshold", strain.TemperatureMax)
		}
	}

	if p.StretchAndFoldOverrun() {
		w.add(models.WarningStretchAndFoldOverrun,
			fmt.Sprintf("stretch and folds last %s, longer than leavening %s", p.StretchAndFoldDuration(), p.LeaveningDuration()),
			"stretch_and_fold", p.StretchAndFoldDuration().String(), "leavening", p.LeaveningDuration().String())
	}

	if !p.TimeToBake.IsZero() {
		sch, err := BuildSchedule(p)
		if err != nil {
			return models.Recipe{}, err
		}
		r.Schedule = &sch
	}

	r.Warnings = w.list
	if err := s.WarningLog.Record(ctx, requestID, r.Warnings); err != nil {
		return models.Recipe{}, err
	}
	log.Infow("recipe_created",
		"flour", r.Flour,
		"water", r.Water,
		"yeast", r.Yeast,
		"yeast_fraction", r.YeastFraction,
		"dough_weight", r.DoughWeight(),
		"warnings", len(r.Warnings))
	return r, nil
}

// BakeRecipe derives the oven temperature and baking duration of a recipe.
func (s *Service) BakeRecipe(ctx context.Context, r models.Recipe, targetHeight float64, instruments models.BakingInstruments) (models.BakingInstructions, error) {
	requestID := uuid.NewString()
	log := s.log.With("request_id", requestID, "recipe_id", r.ID)
	oven := &OvenService{opts: s.Oven.opts, log: log}

	b, err := oven.BakeRecipe(r, targetHeight, instruments)
	if err != nil {
		log.Errorw("bake_failed", "err", err)
		return models.BakingInstructions{}, err
	}
	b.ID = requestID
	if err := s.WarningLog.Record(ctx, requestID, b.Warnings); err != nil {
		return models.BakingInstructions{}, err
	}
	log.Infow("bake_solved",
		"baking_temperature", b.BakingTemperature,
		"baking_duration", b.BakingDuration,
		"warnings", len(b.Warnings))
	return b, nil
}

// Schedule anchors a procedure on the wall clock.
func (s *Service) Schedule(p models.Procedure) (models.Schedule, error) {
	return BuildSchedule(p)
}
