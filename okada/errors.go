package okada

import "errors"

// Input validation errors. Every error returned by Evaluate, OkadaRect and
// the row converters wraps one of these, so callers can match with errors.Is.
var (
	ErrShape            = errors.New("okada: mismatched input shape")
	ErrNonFinite        = errors.New("okada: NaN or Inf in input")
	ErrPatchGeometry    = errors.New("okada: invalid fault patch geometry")
	ErrElasticConstants = errors.New("okada: invalid elastic constants")
)
