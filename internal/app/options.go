package service

import (
	"slices"

	"github.com/okian/campus/internal/adapters/repository"
	"github.com/okian/campus/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCacheSize bounds the number of memoized query results.
func WithCacheSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.cacheSize = size
		}
	}
}

// WithBranches sets the canonical branch order for branch-wise stats.
// Codes are stored the way student branches are, so "cse" matches CSE.
func WithBranches(branches []string) Option {
	return func(s *Service) {
		codes := make([]string, 0, len(branches))
		for _, b := range branches {
			if b = repository.BranchCode(b); b != "" && !slices.Contains(codes, b) {
				codes = append(codes, b)
			}
		}
		if len(codes) > 0 {
			s.branches = codes
		}
	}
}

// WithSeedPath loads datasets from a YAML/JSON file instead of the
// embedded seed.
func WithSeedPath(path string) Option {
	return func(s *Service) {
		s.seedPath = path
	}
}

// WithMaxTopLimit caps the n accepted by top-N queries.
func WithMaxTopLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxTopLimit = limit
		}
	}
}
