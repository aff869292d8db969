// Package numeric provides the two numerical kernels the solvers are built on:
//
//   - FindRoot, a bracketing Brent root finder (inverse quadratic interpolation,
//     secant and bisection steps) with an absolute tolerance and a hard cap on
//     function evaluations.
//
//   - Integrate, an adaptive Dormand–Prince 5(4) integrator for systems of
//     ordinary differential equations with a hard cap on attempted steps.
//
// Both are pure: every call owns its state, so concurrent calls are safe as long
// as the supplied functions are.
//
// # Errors
//
// Failures are reported with the sentinels below and classified with errors.Is.
// Errors returned by the supplied function are passed through unchanged.
package numeric
