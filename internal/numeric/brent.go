package numeric

import (
	"fmt"
	"math"
)

// Options configures FindRoot.
type Options struct {
	// AbsoluteTolerance is the half-width of the final bracket.
	AbsoluteTolerance float64
	// ResidualTolerance, when positive, also requires |f(x)| <= ResidualTolerance at the root;
	// the bracket keeps shrinking past AbsoluteTolerance until it holds.
	ResidualTolerance float64
	// MaxEvaluations caps calls to f, the two bracket evaluations included.
	MaxEvaluations int
}

// DefaultOptions returns bracket and residual tolerances of 1e-5 and a budget of 100 evaluations.
func DefaultOptions() Options {
	return Options{AbsoluteTolerance: 1e-5, ResidualTolerance: 1e-5, MaxEvaluations: 100}
}

// Func is a scalar function whose root is sought. A non-nil error aborts the search.
type Func func(x float64) (float64, error)

// Root is the outcome of a successful search.
type Root struct {
	X           float64
	F           float64
	Evaluations int
}

// FindRoot locates a root of f in [lo, hi] with Brent's method.
// f(lo) and f(hi) must not share a sign.
func FindRoot(f Func, lo, hi float64, opts Options) (Root, error) {
	if !(lo <= hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return Root{}, fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, lo, hi)
	}
	if opts.AbsoluteTolerance <= 0 {
		opts.AbsoluteTolerance = DefaultOptions().AbsoluteTolerance
	}
	if opts.MaxEvaluations < 2 {
		opts.MaxEvaluations = DefaultOptions().MaxEvaluations
	}

	evaluations := 0
	eval := func(x float64) (float64, error) {
		v, err := f(x)
		evaluations++
		if err != nil {
			return 0, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: f(%g) = %g", ErrNonFinite, x, v)
		}
		return v, nil
	}

	a, b := lo, hi
	fa, err := eval(a)
	if err != nil {
		return Root{}, err
	}
	fb, err := eval(b)
	if err != nil {
		return Root{}, err
	}
	if (fa > 0 && fb > 0) || (fa < 0 && fb < 0) {
		return Root{}, fmt.Errorf("%w: f(%g) = %g, f(%g) = %g", ErrNoBracket, a, fa, b, fb)
	}

	c, fc := b, fb
	d := b - a
	e := d
	xtol := opts.AbsoluteTolerance
	for {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*epsilon*math.Abs(b) + 0.5*xtol
		xm := 0.5 * (c - b)
		if fb == 0 {
			return Root{X: b, F: fb, Evaluations: evaluations}, nil
		}
		if math.Abs(xm) <= tol1 {
			if opts.ResidualTolerance <= 0 || math.Abs(fb) <= opts.ResidualTolerance {
				return Root{X: b, F: fb, Evaluations: evaluations}, nil
			}
			xtol /= 10
			tol1 = 2*epsilon*math.Abs(b) + 0.5*xtol
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// inverse quadratic interpolation, or secant when only two points are distinct
			var p, q float64
			s := fb / fa
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		if evaluations >= opts.MaxEvaluations {
			return Root{}, fmt.Errorf("%w: %d evaluations, bracket [%g, %g]",
				ErrMaxEvaluations, evaluations, math.Min(b, c), math.Max(b, c))
		}
		if fb, err = eval(b); err != nil {
			return Root{}, err
		}
	}
}

const epsilon = 2.220446049250313e-16
