package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors.
var (
	ErrRegistryGather = errors.New("metrics registry gather failed")
)
