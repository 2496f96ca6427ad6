package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrInvalidRecord  = errors.New("invalid record")
	ErrDuplicateID    = errors.New("duplicate record id")
	ErrInvalidYear    = errors.New("year must have four digits")
	ErrUnknownDataset = errors.New("unknown dataset")
)
