package numeric

import (
	"fmt"
	"math"
)

// ODEFunc writes dy/dt at (t, y) into dydt. y must not be modified.
type ODEFunc func(t float64, y, dydt []float64) error

// IntegratorOptions configures Integrate.
type IntegratorOptions struct {
	RelativeTolerance float64
	AbsoluteTolerance float64
	// InitialStep is the first trial step; it is clipped to the integration span.
	InitialStep float64
	// MaxSteps caps attempted steps, rejected ones included.
	MaxSteps int
}

// DefaultIntegratorOptions returns tolerances of 1e-5, a 1 s initial step and 100000 steps.
func DefaultIntegratorOptions() IntegratorOptions {
	return IntegratorOptions{
		RelativeTolerance: 1e-5,
		AbsoluteTolerance: 1e-5,
		InitialStep:       1,
		MaxSteps:          100_000,
	}
}

// IntegrationStats reports the work done by Integrate.
type IntegrationStats struct {
	Accepted int
	Rejected int
}

// Dormand–Prince 5(4) tableau.
var (
	dpC = [7]float64{0, 1. / 5, 3. / 10, 4. / 5, 8. / 9, 1, 1}
	dpA = [7][6]float64{
		{},
		{1. / 5},
		{3. / 40, 9. / 40},
		{44. / 45, -56. / 15, 32. / 9},
		{19372. / 6561, -25360. / 2187, 64448. / 6561, -212. / 729},
		{9017. / 3168, -355. / 33, 46732. / 5247, 49. / 176, -5103. / 18656},
		{35. / 384, 0, 500. / 1113, 125. / 192, -2187. / 6784, 11. / 84},
	}
	dpB = [7]float64{35. / 384, 0, 500. / 1113, 125. / 192, -2187. / 6784, 11. / 84, 0}
	// fifth minus fourth order weights
	dpE = [7]float64{71. / 57600, 0, -71. / 16695, 71. / 1920, -17253. / 339200, 22. / 525, -1. / 40}
)

const (
	stepSafety    = 0.9
	stepMinFactor = 0.2
	stepMaxFactor = 5.
)

// Integrate advances y0 from t0 to t1 and returns the state at t1. y0 is not modified.
func Integrate(f ODEFunc, y0 []float64, t0, t1 float64, opts IntegratorOptions) ([]float64, IntegrationStats, error) {
	var stats IntegrationStats
	n := len(y0)
	y := append([]float64(nil), y0...)
	if !(t1 >= t0) {
		return nil, stats, fmt.Errorf("%w: integration span [%g, %g]", ErrInvalidInterval, t0, t1)
	}
	if t1 == t0 || n == 0 {
		return y, stats, nil
	}

	def := DefaultIntegratorOptions()
	if opts.RelativeTolerance <= 0 {
		opts.RelativeTolerance = def.RelativeTolerance
	}
	if opts.AbsoluteTolerance <= 0 {
		opts.AbsoluteTolerance = def.AbsoluteTolerance
	}
	if opts.InitialStep <= 0 {
		opts.InitialStep = def.InitialStep
	}
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = def.MaxSteps
	}

	var k [7][]float64
	for s := range k {
		k[s] = make([]float64, n)
	}
	stage := make([]float64, n)
	next := make([]float64, n)

	t, h := t0, opts.InitialStep
	for t < t1 {
		if stats.Accepted+stats.Rejected >= opts.MaxSteps {
			return nil, stats, fmt.Errorf("%w: %d steps, reached t = %g of %g", ErrMaxSteps, opts.MaxSteps, t, t1)
		}
		last := h >= t1-t
		if last {
			h = t1 - t
		}

		for s := 0; s < 7; s++ {
			for j := 0; j < n; j++ {
				acc := 0.
				for r := 0; r < s; r++ {
					acc += dpA[s][r] * k[r][j]
				}
				stage[j] = y[j] + h*acc
			}
			if err := f(t+dpC[s]*h, stage, k[s]); err != nil {
				return nil, stats, err
			}
		}

		errNorm := 0.
		for j := 0; j < n; j++ {
			var inc, est float64
			for s := 0; s < 7; s++ {
				inc += dpB[s] * k[s][j]
				est += dpE[s] * k[s][j]
			}
			next[j] = y[j] + h*inc
			scale := opts.AbsoluteTolerance + opts.RelativeTolerance*math.Max(math.Abs(y[j]), math.Abs(next[j]))
			errNorm = math.Max(errNorm, math.Abs(h*est)/scale)
		}
		if math.IsNaN(errNorm) || math.IsInf(errNorm, 0) {
			return nil, stats, fmt.Errorf("%w: error estimate at t = %g", ErrNonFinite, t)
		}

		if errNorm <= 1 {
			if last {
				t = t1
			} else {
				t += h
			}
			y, next = next, y
			stats.Accepted++
		} else {
			stats.Rejected++
		}

		factor := stepMaxFactor
		if errNorm > 0 {
			factor = stepSafety * math.Pow(errNorm, -0.2)
		}
		h *= math.Min(stepMaxFactor, math.Max(stepMinFactor, factor))
	}
	return y, stats, nil
}
