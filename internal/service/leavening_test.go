package service

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza_dough/internal/ingredients"
	"pizza_dough/internal/models"
	"pizza_dough/internal/numeric"
	"pizza_dough/internal/yeast"
)

// Reference yeast fractions for 60 % hydration: 35 °C for 5 h, then 25 °C for 1 h.
const (
	oneStageYeast = 0.02518
	twoStageYeast = 0.0069
)

func referenceStrain(t *testing.T) yeast.Model {
	t.Helper()
	m, err := yeast.Lookup(yeast.StrainCECT10131)
	require.NoError(t, err)
	return m
}

func hydrated(t *testing.T, water float64) ingredients.Composition {
	t.Helper()
	c, err := ingredients.NewBuilder().AddWater(water, 0, 7).Build()
	require.NoError(t, err)
	return c
}

func procedure(target float64, index int, stages ...models.LeaveningStage) models.Procedure {
	return models.Procedure{Stages: stages, TargetVolumeExpansionRatio: target, TargetStageIndex: index}
}

func stage(temperature float64, d time.Duration) models.LeaveningStage {
	return models.LeaveningStage{Temperature: temperature, Duration: d}
}

func newLeavening(t *testing.T) *LeaveningService {
	return NewLeaveningService(referenceStrain(t), DefaultLeaveningOptions(), nil)
}

func TestYeastFraction(t *testing.T) {
	tests := []struct {
		name string
		p    models.Procedure
		want float64
	}{
		{"one stage", procedure(2, 0, stage(35, 5*time.Hour)), oneStageYeast},
		{"two stages, target on first", procedure(2, 0, stage(35, 5*time.Hour), stage(25, time.Hour)), oneStageYeast},
		{"two stages, target on second", procedure(2, 1, stage(35, 5*time.Hour), stage(25, time.Hour)), twoStageYeast},
	}
	s := newLeavening(t)
	c := hydrated(t, 0.6)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := s.YeastFraction(tt.p, c)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, root.X, 1e-5)
			assert.LessOrEqual(t, math.Abs(root.F), DefaultLeaveningOptions().ResidualTolerance)
			assert.LessOrEqual(t, root.Evaluations, DefaultLeaveningOptions().MaxEvaluations)

			correction, err := s.CorrectionFactor(tt.p, c, tt.p.TargetStageIndex)
			require.NoError(t, err)
			ratio := s.SimulatedRatio(root.X, tt.p, correction, tt.p.TargetStageIndex)
			assert.InDelta(t, tt.p.TargetVolumeExpansionRatio, ratio, DefaultLeaveningOptions().ResidualTolerance)
		})
	}
}

func TestYeastFractionStageChaining(t *testing.T) {
	s := newLeavening(t)
	c := hydrated(t, 0.6)

	single, err := s.YeastFraction(procedure(2, 0, stage(35, 5*time.Hour)), c)
	require.NoError(t, err)
	chained, err := s.YeastFraction(procedure(2, 0, stage(35, 5*time.Hour), stage(25, time.Hour)), c)
	require.NoError(t, err)
	assert.Equal(t, single.X, chained.X)
}

func TestYeastFractionMonotoneInTarget(t *testing.T) {
	s := newLeavening(t)
	c := hydrated(t, 0.6)

	high, err := s.YeastFraction(procedure(2, 1, stage(35, 5*time.Hour), stage(25, time.Hour)), c)
	require.NoError(t, err)
	low, err := s.YeastFraction(procedure(1.95, 1, stage(35, 5*time.Hour), stage(25, time.Hour)), c)
	require.NoError(t, err)
	assert.Less(t, low.X, high.X)
	assert.InDelta(t, 0.006258, low.X, 1e-5)
}

func TestYeastFractionResidual(t *testing.T) {
	c := hydrated(t, 0.6)
	p := procedure(2, 1, stage(35, 5*time.Hour), stage(25, time.Hour))

	for _, residual := range []float64{1e-5, 1e-8} {
		opts := DefaultLeaveningOptions()
		opts.ResidualTolerance = residual
		root, err := NewLeaveningService(referenceStrain(t), opts, nil).YeastFraction(p, c)
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(root.F), residual)
		assert.InDelta(t, twoStageYeast, root.X, 1e-5)
	}
}

func TestSimulatedRatioIncremental(t *testing.T) {
	s := newLeavening(t)
	p := procedure(2, 1, stage(30, 2*time.Hour), stage(30, 3*time.Hour))
	whole := procedure(2, 0, stage(30, 5*time.Hour))

	assert.InDelta(t, s.SimulatedRatio(0.01, whole, 1, 0), s.SimulatedRatio(0.01, p, 1, 1), 1e-12)
	assert.Zero(t, s.SimulatedRatio(0, p, 1, 1))
	assert.Less(t, s.SimulatedRatio(0.01, p, 1, 0), s.SimulatedRatio(0.01, p, 1, 1))
}

func TestYeastFractionErrors(t *testing.T) {
	s := newLeavening(t)
	c := hydrated(t, 0.6)

	t.Run("unreachable target", func(t *testing.T) {
		_, err := s.YeastFraction(procedure(3.5, 0, stage(35, 5*time.Hour)), c)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTargetUnreachable)
		assert.ErrorIs(t, err, numeric.ErrNoBracket)
		var se *StageError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, 0, se.Stage)
	})

	t.Run("cold retard does not bracket", func(t *testing.T) {
		p := procedure(2, 2, stage(25, 3*time.Hour), stage(5, 12*time.Hour), stage(25, 2*time.Hour))
		_, err := s.YeastFraction(p, c)
		assert.ErrorIs(t, err, ErrTargetUnreachable)
	})

	t.Run("stage above maximum temperature", func(t *testing.T) {
		p := procedure(2, 1, stage(35, 5*time.Hour), stage(50, time.Hour))
		_, err := s.YeastFraction(p, c)
		require.ErrorIs(t, err, ErrAdverseEnvironment)
		var se *StageError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, 1, se.Stage)
		assert.Equal(t, FactorTemperature, se.Factor)
		assert.Contains(t, se.Error(), "stage 1")
	})

	t.Run("saturated salt", func(t *testing.T) {
		salty, err := ingredients.NewBuilder().AddWater(0.6, 0, 7).AddSalt(0.2).Build()
		require.NoError(t, err)
		_, err = s.YeastFraction(procedure(2, 0, stage(35, 5*time.Hour)), salty)
		var se *StageError
		require.True(t, errors.As(err, &se))
		assert.ErrorIs(t, err, ErrAdverseEnvironment)
		assert.Equal(t, ingredients.FactorSalt, se.Factor)
	})

	t.Run("evaluation budget", func(t *testing.T) {
		tight := NewLeaveningService(referenceStrain(t), LeaveningOptions{YeastMax: 0.2, Tolerance: 1e-12, MaxEvaluations: 3}, nil)
		_, err := tight.YeastFraction(procedure(2, 0, stage(35, 5*time.Hour)), c)
		assert.ErrorIs(t, err, ErrSolverIterations)
	})

	t.Run("invalid procedure", func(t *testing.T) {
		_, err := s.YeastFraction(procedure(2, 1, stage(35, 5*time.Hour)), c)
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}
