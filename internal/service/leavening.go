package service

import (
	"errors"
	"fmt"

	"pizza_dough/internal/ingredients"
	"pizza_dough/internal/logger"
	"pizza_dough/internal/models"
	"pizza_dough/internal/numeric"
	"pizza_dough/internal/yeast"
)

// LeaveningOptions bounds the yeast back-solve.
type LeaveningOptions struct {
	YeastMax          float64 // upper bracket, fresh-yeast fraction of flour
	Tolerance         float64 // on the yeast fraction
	ResidualTolerance float64 // on the volume expansion ratio at the solution
	MaxEvaluations    int
}

func DefaultLeaveningOptions() LeaveningOptions {
	return LeaveningOptions{YeastMax: 0.2, Tolerance: 1e-5, ResidualTolerance: 1e-5, MaxEvaluations: 100}
}

// LeaveningService finds the yeast quantity that makes a procedure reach its target.
type LeaveningService struct {
	strain yeast.Model
	opts   LeaveningOptions
	log    *logger.Logger
}

func NewLeaveningService(strain yeast.Model, opts LeaveningOptions, log *logger.Logger) *LeaveningService {
	if log == nil {
		log = logger.Nop()
	}
	return &LeaveningService{strain: strain, opts: opts, log: log}
}

// Strain is the yeast model in use.
func (s *LeaveningService) Strain() yeast.Model { return s.strain }

// CorrectionFactor checks every stage up to lastStage for conditions under which the yeast
// cannot grow and returns the combined ingredient correction.
func (s *LeaveningService) CorrectionFactor(p models.Procedure, c ingredients.Composition, lastStage int) (float64, error) {
	factors := ingredients.EnvironmentFactors(c, s.strain)
	for i := 0; i <= lastStage && i < len(p.Stages); i++ {
		st := p.Stages[i]
		if s.strain.SpecificGrowthRate(st.Temperature) <= 0 {
			return 0, &StageError{Stage: i, Temperature: st.Temperature, Factor: FactorTemperature, Err: ErrAdverseEnvironment}
		}
		if name, ok := factors.Inhibiting(); ok {
			return 0, &StageError{Stage: i, Temperature: st.Temperature, Factor: name, Err: ErrAdverseEnvironment}
		}
	}
	return factors.Product(), nil
}

// SimulatedRatio replays stages 0..lastStage with the same yeast fraction and sums the
// incremental expansion each stage contributes at its own temperature.
func (s *LeaveningService) SimulatedRatio(yeastFraction float64, p models.Procedure, correction float64, lastStage int) float64 {
	lag := yeast.EstimatedLag(yeastFraction)
	alpha := yeast.MaximumVolumeExpansionRatio(yeastFraction)

	var ratio, elapsed float64
	for i := 0; i <= lastStage && i < len(p.Stages); i++ {
		st := p.Stages[i]
		before := elapsed
		elapsed += st.Duration.Hours()
		ratio += s.strain.VolumeExpansionRatio(elapsed, lag, alpha, st.Temperature, correction) -
			s.strain.VolumeExpansionRatio(before, lag, alpha, st.Temperature, correction)
	}
	return ratio
}

// YeastFraction solves for the fresh-yeast fraction (relative to flour) at which the
// procedure reaches its target ratio at its target stage.
func (s *LeaveningService) YeastFraction(p models.Procedure, c ingredients.Composition) (numeric.Root, error) {
	if err := p.Validate(); err != nil {
		return numeric.Root{}, err
	}
	target := p.TargetStageIndex
	correction, err := s.CorrectionFactor(p, c, target)
	if err != nil {
		return numeric.Root{}, err
	}

	f := func(y float64) (float64, error) {
		return s.SimulatedRatio(y, p, correction, target) - p.TargetVolumeExpansionRatio, nil
	}
	root, err := numeric.FindRoot(f, 0, s.opts.YeastMax, numeric.Options{
		AbsoluteTolerance: s.opts.Tolerance,
		ResidualTolerance: s.opts.ResidualTolerance,
		MaxEvaluations:    s.opts.MaxEvaluations,
	})
	st := p.Stages[target]
	switch {
	case errors.Is(err, numeric.ErrNoBracket):
		return numeric.Root{}, &StageError{Stage: target, Temperature: st.Temperature,
			Err: fmt.Errorf("%w: target %.3f in yeast range [0, %g]: %w", ErrTargetUnreachable, p.TargetVolumeExpansionRatio, s.opts.YeastMax, err)}
	case errors.Is(err, numeric.ErrMaxEvaluations):
		return numeric.Root{}, &StageError{Stage: target, Temperature: st.Temperature,
			Err: fmt.Errorf("%w: %w", ErrSolverIterations, err)}
	case err != nil:
		return numeric.Root{}, err
	}

	s.log.Debugw("yeast_solved",
		"strain", s.strain.Name,
		"yeast_fraction", root.X,
		"residual", root.F,
		"evaluations", root.Evaluations,
		"correction", correction)
	return root, nil
}
