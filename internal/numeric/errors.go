package numeric

import "errors"

var (
	// ErrInvalidInterval is returned when lo > hi or a bound is not finite.
	ErrInvalidInterval = errors.New("numeric: invalid interval")
	// ErrNoBracket is returned when f has the same sign at both interval ends.
	ErrNoBracket = errors.New("numeric: root is not bracketed")
	// ErrMaxEvaluations is returned when the root finder exhausts its evaluation budget.
	ErrMaxEvaluations = errors.New("numeric: maximum number of evaluations exceeded")
	// ErrNonFinite is returned when a function value or the integration error is NaN or infinite.
	ErrNonFinite = errors.New("numeric: non-finite value")
	// ErrMaxSteps is returned when the integrator exhausts its step budget.
	ErrMaxSteps = errors.New("numeric: maximum number of steps exceeded")
)
