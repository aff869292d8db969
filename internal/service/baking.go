package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"pizza_dough/internal/logger"
	"pizza_dough/internal/models"
	"pizza_dough/internal/numeric"
	"pizza_dough/internal/thermal"
)

// OvenOptions fixes the doneness criterion and the layer model of a bake.
type OvenOptions struct {
	DonenessTemperature float64 // °C, coldest node at the end of the bake
	MaillardTemperature float64 // °C, below it the crust does not brown
	MaxBakingDuration   time.Duration
	DurationTolerance   time.Duration
	MaxEvaluations      int

	CheeseThickness     float64 // m
	TomatoThickness     float64 // m
	DoughLayers         int
	AmbientTemperature  float64 // °C, ingredients and stack at the start of the bake
	EquilibriumMoisture float64

	Integrator numeric.IntegratorOptions
}

func DefaultOvenOptions() OvenOptions {
	return OvenOptions{
		DonenessTemperature: 74,
		MaillardTemperature: 140,
		MaxBakingDuration:   30 * time.Minute,
		DurationTolerance:   500 * time.Millisecond,
		MaxEvaluations:      100,
		CheeseThickness:     0.002,
		TomatoThickness:     0.002,
		DoughLayers:         3,
		AmbientTemperature:  20,
		EquilibriumMoisture: 0.05,
		Integrator:          numeric.DefaultIntegratorOptions(),
	}
}

// OvenService derives the oven set-point and the baking duration of a recipe.
type OvenService struct {
	opts OvenOptions
	log  *logger.Logger
}

func NewOvenService(opts OvenOptions, log *logger.Logger) *OvenService {
	if log == nil {
		log = logger.Nop()
	}
	return &OvenService{opts: opts, log: log}
}

// RawHeight is the height [m] of the unleavened dough spread over the pan.
func RawHeight(r models.Recipe, pan models.Pan) float64 {
	return r.DoughWeight() / 1000 / (r.DoughDensity * pan.Area())
}

// BakingTemperature inverts the ideal-gas expansion of the leavening gas: the gas occupying
// VolumeExpansionRatio times the raw dough volume at the ingredients temperature must expand
// to fill targetHeight. The result is in °C.
func (o *OvenService) BakingTemperature(r models.Recipe, targetHeight float64, instruments models.BakingInstruments) (float64, []models.Warning, error) {
	if err := instruments.Validate(); err != nil {
		return 0, nil, err
	}
	if !(r.DoughWeight() > 0 && r.DoughDensity > 0) {
		return 0, nil, fmt.Errorf("%w: recipe needs a positive dough weight (%g g) and density (%g kg/m³)",
			models.ErrValidation, r.DoughWeight(), r.DoughDensity)
	}
	if !(r.VolumeExpansionRatio > 0) {
		return 0, nil, fmt.Errorf("%w: recipe volume expansion ratio %g must be > 0", models.ErrValidation, r.VolumeExpansionRatio)
	}
	raw := RawHeight(r, instruments.Pan)
	if !(targetHeight > raw) {
		return 0, nil, fmt.Errorf("%w: target height %.4f m must exceed the raw dough height %.4f m",
			models.ErrValidation, targetHeight, raw)
	}

	initial := o.opts.AmbientTemperature
	if r.DoughTemperature != nil {
		initial = *r.DoughTemperature
	}
	kelvin := (initial + thermal.AbsoluteZero) * (targetHeight/raw - 1) / r.VolumeExpansionRatio
	temperature := kelvin - thermal.AbsoluteZero

	switch {
	case temperature <= o.opts.DonenessTemperature:
		return 0, nil, fmt.Errorf("%w: %.1f °C <= doneness %.1f °C", ErrBakingTemperatureTooLow, temperature, o.opts.DonenessTemperature)
	case temperature > instruments.MaxBakingTemperature:
		return 0, nil, fmt.Errorf("%w: %.1f °C > %.1f °C", ErrBakingTemperatureTooHigh, temperature, instruments.MaxBakingTemperature)
	}

	w := &warnings{log: o.log}
	if temperature < o.opts.MaillardTemperature {
		w.add(models.WarningMaillardThreshold,
			fmt.Sprintf("baking temperature %.1f °C is below the Maillard reaction threshold %.1f °C", temperature, o.opts.MaillardTemperature),
			"baking_temperature", temperature, "threshold", o.opts.MaillardTemperature)
	}
	return temperature, w.list, nil
}

// Simulator builds the layer model of the recipe baked at temperature to targetHeight.
// The dough keeps its mass, so its density drops by the raw-to-baked height ratio.
func (o *OvenService) Simulator(r models.Recipe, targetHeight, temperature float64, instruments models.BakingInstruments) (*thermal.Simulator, error) {
	pan, err := thermal.Pan(instruments.Pan.Material)
	if err != nil {
		return nil, err
	}
	density := r.DoughDensity * RawHeight(r, instruments.Pan) / targetHeight
	layers := thermal.Stack(o.opts.CheeseThickness, o.opts.TomatoThickness,
		targetHeight, o.opts.DoughLayers, thermal.Dough(density, r.DoughMoisture),
		instruments.Pan.Thickness, pan)

	return thermal.NewSimulator(thermal.Config{
		Layers:              layers,
		OvenType:            instruments.OvenType,
		TopTemperature:      temperature,
		BottomTemperature:   temperature,
		TopHeating:          instruments.TopHeating,
		BottomHeating:       instruments.BottomHeating,
		InitialTemperature:  o.opts.AmbientTemperature,
		EquilibriumMoisture: o.opts.EquilibriumMoisture,
		Integrator:          o.opts.Integrator,
	})
}

// BakeRecipe returns the oven temperature and the shortest duration after which the coldest
// node of the stack reaches the doneness temperature.
func (o *OvenService) BakeRecipe(r models.Recipe, targetHeight float64, instruments models.BakingInstruments) (models.BakingInstructions, error) {
	temperature, warns, err := o.BakingTemperature(r, targetHeight, instruments)
	if err != nil {
		return models.BakingInstructions{}, err
	}
	sim, err := o.Simulator(r, targetHeight, temperature, instruments)
	if err != nil {
		return models.BakingInstructions{}, err
	}

	maxDuration := o.opts.MaxBakingDuration.Seconds()
	g := func(duration float64) (float64, error) {
		m, err := sim.MinimumTemperature(duration)
		if err != nil {
			return 0, err
		}
		return m - o.opts.DonenessTemperature, nil
	}
	root, err := numeric.FindRoot(g, 0, maxDuration, numeric.Options{
		AbsoluteTolerance: o.opts.DurationTolerance.Seconds(),
		MaxEvaluations:    o.opts.MaxEvaluations,
	})
	switch {
	case errors.Is(err, numeric.ErrNoBracket):
		return models.BakingInstructions{}, fmt.Errorf("%w: %.1f °C at %.1f °C within %s: %w",
			ErrDonenessUnreachable, o.opts.DonenessTemperature, temperature, o.opts.MaxBakingDuration, err)
	case errors.Is(err, numeric.ErrMaxEvaluations):
		return models.BakingInstructions{}, fmt.Errorf("%w: %w", ErrSolverIterations, err)
	case err != nil:
		return models.BakingInstructions{}, err
	}

	o.log.Debugw("baking_solved",
		"baking_temperature", temperature,
		"baking_duration", root.X,
		"evaluations", root.Evaluations)
	return models.BakingInstructions{
		BakingTemperature:  temperature,
		BakingDuration:     math.Max(root.X, 0),
		MinimumTemperature: root.F + o.opts.DonenessTemperature,
		Warnings:           warns,
	}, nil
}
