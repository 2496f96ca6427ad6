package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrInvalidLimit   = errors.New("invalid limit")
	ErrInvalidPayload = errors.New("invalid dataset payload")
	ErrLoadSeed       = errors.New("load seed failed")
)
