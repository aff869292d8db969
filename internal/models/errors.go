package models

import "errors"

// ErrValidation classifies out-of-range arguments detected before any solve begins.
// Callers match it with errors.Is; messages carry the offending value and bound.
var ErrValidation = errors.New("validation error")
