package seed

import "errors"

// Sentinel errors for seed loading.
var (
	ErrReadSeed    = errors.New("read seed failed")
	ErrInvalidSeed = errors.New("invalid seed document")
)
