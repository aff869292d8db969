package service

import (
	"errors"
	"fmt"
)

var (
	ErrTargetUnreachable        = errors.New("no yeast quantity can reach the target volume expansion ratio")
	ErrAdverseEnvironment       = errors.New("adverse environment, yeast cannot grow")
	ErrSolverIterations         = errors.New("solver needs more iterations")
	ErrMassNotConverged         = errors.New("ingredient masses did not converge")
	ErrBakingTemperatureTooLow  = errors.New("baking temperature cannot reach the doneness temperature")
	ErrBakingTemperatureTooHigh = errors.New("baking temperature exceeds the oven maximum")
	ErrDonenessUnreachable      = errors.New("doneness temperature not reached within the maximum baking duration")
)

// FactorTemperature names the stage temperature as the inhibiting factor.
const FactorTemperature = "temperature"

// StageError locates a solver failure on a leavening stage.
type StageError struct {
	Stage       int
	Temperature float64
	Factor      string // inhibiting factor, empty if not applicable
	Err         error
}

func (e *StageError) Error() string {
	if e.Factor != "" {
		return fmt.Sprintf("stage %d (%.1f °C): %v: %s", e.Stage, e.Temperature, e.Err, e.Factor)
	}
	return fmt.Sprintf("stage %d (%.1f °C): %v", e.Stage, e.Temperature, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
