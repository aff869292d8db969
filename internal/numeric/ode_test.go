package numeric

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrateExponentialDecay(t *testing.T) {
	decay := func(_ float64, y, dydt []float64) error {
		dydt[0] = -y[0]
		return nil
	}
	y0 := []float64{1}
	y, stats, err := Integrate(decay, y0, 0, 5, DefaultIntegratorOptions())
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-5), y[0], 1e-4)
	assert.Greater(t, stats.Accepted, 0)
	assert.Equal(t, 1., y0[0])
}

func TestIntegrateHarmonicOscillator(t *testing.T) {
	oscillator := func(_ float64, y, dydt []float64) error {
		dydt[0] = y[1]
		dydt[1] = -y[0]
		return nil
	}
	opts := DefaultIntegratorOptions()
	opts.RelativeTolerance = 1e-8
	opts.AbsoluteTolerance = 1e-10
	opts.InitialStep = 0.01
	y, _, err := Integrate(oscillator, []float64{1, 0}, 0, 2*math.Pi, opts)
	require.NoError(t, err)
	assert.InDelta(t, 1, y[0], 1e-5)
	assert.InDelta(t, 0, y[1], 1e-5)
}

func TestIntegrateTimeDependent(t *testing.T) {
	ramp := func(t float64, _ []float64, dydt []float64) error {
		dydt[0] = 2 * t
		return nil
	}
	y, _, err := Integrate(ramp, []float64{0}, 1, 3, DefaultIntegratorOptions())
	require.NoError(t, err)
	assert.InDelta(t, 8, y[0], 1e-9)
}

func TestIntegrateEdgeCases(t *testing.T) {
	constant := func(_ float64, _ []float64, dydt []float64) error {
		dydt[0] = 0
		return nil
	}

	y, stats, err := Integrate(constant, []float64{3}, 2, 2, DefaultIntegratorOptions())
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, y)
	assert.Zero(t, stats.Accepted)

	_, _, err = Integrate(constant, []float64{3}, 2, 1, DefaultIntegratorOptions())
	assert.ErrorIs(t, err, ErrInvalidInterval)

	decay := func(_ float64, y, dydt []float64) error {
		dydt[0] = -y[0]
		return nil
	}
	_, _, err = Integrate(decay, []float64{1}, 0, 1000, IntegratorOptions{MaxSteps: 3})
	assert.ErrorIs(t, err, ErrMaxSteps)

	nan := func(_ float64, _ []float64, dydt []float64) error {
		dydt[0] = math.NaN()
		return nil
	}
	_, _, err = Integrate(nan, []float64{1}, 0, 1, DefaultIntegratorOptions())
	assert.ErrorIs(t, err, ErrNonFinite)

	boom := errors.New("boom")
	failing := func(_ float64, _ []float64, _ []float64) error { return boom }
	_, _, err = Integrate(failing, []float64{1}, 0, 1, DefaultIntegratorOptions())
	assert.Same(t, boom, err)
}
