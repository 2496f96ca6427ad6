package report

import "errors"

// Sentinel kinds for report errors.
var (
	ErrInvalidConfig    = errors.New("invalid report configuration")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrDecodeResponse   = errors.New("decode response failed")
	ErrReadDataset      = errors.New("read dataset file failed")
)
