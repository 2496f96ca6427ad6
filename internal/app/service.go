// Package service provides the campus portal service that implements
// the dependencies required by the HTTP API.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/okian/campus/internal/adapters/repository"
	"github.com/okian/campus/internal/adapters/seed"
	"github.com/okian/campus/internal/domain/dashboard"
	"github.com/okian/campus/internal/domain/memo"
	"github.com/okian/campus/internal/domain/model"
	"github.com/okian/campus/pkg/logger"
	"github.com/okian/campus/pkg/metrics"
)

// DatasetInfo describes the current snapshot of one dataset.
type DatasetInfo struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Records   int       `json:"records"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Service answers dashboard queries over the current dataset snapshots.
// Results are memoized per dataset version and shared between callers, so
// they must be treated as read-only.
type Service struct {
	mu sync.RWMutex

	// Core components
	datasets *repository.Datasets
	cache    *memo.Cache

	// Configuration
	cacheSize   int
	branches    []string
	seedPath    string
	maxTopLimit int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration. Datasets start
// empty until Start loads the seed.
func New(opts ...Option) *Service {
	s := &Service{
		cacheSize:   1024,
		branches:    dashboard.CanonicalBranches,
		maxTopLimit: 100,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.datasets = repository.NewDatasets()
	s.cache = memo.New(memo.WithMaxSize(s.cacheSize))
	return s
}

// Start loads the seed datasets.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting campus service...")

	data, source, err := s.loadSeed()
	if err != nil {
		return err
	}
	if err := seed.Apply(ctx, s.datasets, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoadSeed, source, err)
	}

	s.started = true
	counts := s.datasets.Counts(ctx)
	s.logger.Info(ctx, "campus service started",
		logger.String("seed", source),
		logger.Int("companies", counts[repository.Companies]),
		logger.Int("students", counts[repository.Students]),
		logger.Int("rankings", counts[repository.Rankings]),
		logger.Int("cacheSize", s.cacheSize),
	)
	return nil
}

func (s *Service) loadSeed() (seed.Data, string, error) {
	if s.seedPath == "" {
		d, err := seed.Default()
		if err != nil {
			return seed.Data{}, "embedded", fmt.Errorf("%w: embedded: %w", ErrLoadSeed, err)
		}
		return d, "embedded", nil
	}
	d, err := seed.LoadFile(s.seedPath)
	if err != nil {
		return seed.Data{}, s.seedPath, fmt.Errorf("%w: %w", ErrLoadSeed, err)
	}
	return d, s.seedPath, nil
}

// Stop drops memoized results. Datasets stay readable.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.cache.Purge(context.Background())
	metrics.UpdateCacheSize(0)

	s.started = false
	s.logger.Info(context.Background(), "campus service stopped")
}

// memoize returns the cached result for key or computes and stores it.
func memoize[T any](ctx context.Context, s *Service, name, version string, params []string, compute func() T) T {
	start := time.Now()
	metrics.RecordQuery(name)
	defer func() {
		metrics.RecordQueryLatency(name, float64(time.Since(start).Microseconds())/1000)
	}()

	key := memo.Key(version, name, params...)
	if v, ok := s.cache.Get(ctx, key); ok {
		if out, ok := v.(T); ok {
			metrics.RecordCacheHit()
			return out
		}
	}
	metrics.RecordCacheMiss()

	out := compute()
	s.cache.Put(ctx, key, out)
	metrics.UpdateCacheSize(int(s.cache.Size()))
	return out
}

func (s *Service) checkLimit(name string, n int) error {
	if n < 1 || n > s.maxTopLimit {
		metrics.RecordQueryError(name)
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidLimit, n, s.maxTopLimit)
	}
	return nil
}

// Placement returns overall placement statistics.
func (s *Service) Placement(ctx context.Context) dashboard.PlacementStats {
	snap := s.datasets.Students.Snapshot(ctx)
	return memoize(ctx, s, "placement", snap.Version, nil, func() dashboard.PlacementStats {
		return dashboard.Placement(snap.Records)
	})
}

// YearWise returns placement statistics per placement year, newest first.
func (s *Service) YearWise(ctx context.Context) []dashboard.YearStat {
	snap := s.datasets.Students.Snapshot(ctx)
	return memoize(ctx, s, "year_wise", snap.Version, nil, func() []dashboard.YearStat {
		return dashboard.YearWise(snap.Records)
	})
}

// BranchWise returns placement statistics per branch in canonical order.
func (s *Service) BranchWise(ctx context.Context) []dashboard.BranchStat {
	snap := s.datasets.Students.Snapshot(ctx)
	return memoize(ctx, s, "branch_wise", snap.Version, s.branches, func() []dashboard.BranchStat {
		return dashboard.BranchWise(snap.Records, s.branches)
	})
}

// CompanyWise returns hires per company, most hires first.
func (s *Service) CompanyWise(ctx context.Context) []dashboard.CompanyStat {
	companies := s.datasets.Companies.Snapshot(ctx)
	students := s.datasets.Students.Snapshot(ctx)
	version := companies.Version + "+" + students.Version
	return memoize(ctx, s, "company_wise", version, nil, func() []dashboard.CompanyStat {
		return dashboard.CompanyWise(companies.Records, students.Records)
	})
}

// TopPerformers returns the n best-paid placed students.
func (s *Service) TopPerformers(ctx context.Context, n int) ([]model.PlacedStudent, error) {
	if err := s.checkLimit("top_performers", n); err != nil {
		return nil, err
	}
	snap := s.datasets.Students.Snapshot(ctx)
	return memoize(ctx, s, "top_performers", snap.Version, []string{strconv.Itoa(n)}, func() []model.PlacedStudent {
		return dashboard.TopPerformers(snap.Records, n)
	}), nil
}

// Improvement summarizes ranking improvements.
func (s *Service) Improvement(ctx context.Context) dashboard.ImprovementStats {
	snap := s.datasets.Rankings.Snapshot(ctx)
	return memoize(ctx, s, "improvement", snap.Version, nil, func() dashboard.ImprovementStats {
		return dashboard.Improvement(snap.Records)
	})
}

// Rankings summarizes rankings by type and year.
func (s *Service) Rankings(ctx context.Context) dashboard.RankingSummary {
	snap := s.datasets.Rankings.Snapshot(ctx)
	return memoize(ctx, s, "rankings", snap.Version, nil, func() dashboard.RankingSummary {
		return dashboard.Rankings(snap.Records)
	})
}

// Awards counts awards by type and category.
func (s *Service) Awards(ctx context.Context) dashboard.AwardBreakdown {
	snap := s.datasets.Awards.Snapshot(ctx)
	return memoize(ctx, s, "awards", snap.Version, nil, func() dashboard.AwardBreakdown {
		return dashboard.Awards(snap.Records)
	})
}

// TopAchievements returns the n highest-impact achievements.
func (s *Service) TopAchievements(ctx context.Context, n int) ([]model.Achievement, error) {
	if err := s.checkLimit("top_achievements", n); err != nil {
		return nil, err
	}
	snap := s.datasets.Achievements.Snapshot(ctx)
	return memoize(ctx, s, "top_achievements", snap.Version, []string{strconv.Itoa(n)}, func() []model.Achievement {
		return dashboard.TopAchievements(snap.Records, n)
	}), nil
}

// Clubs summarizes club membership and activity.
func (s *Service) Clubs(ctx context.Context) dashboard.ClubSummary {
	snap := s.datasets.Clubs.Snapshot(ctx)
	return memoize(ctx, s, "clubs", snap.Version, nil, func() dashboard.ClubSummary {
		return dashboard.Clubs(snap.Records)
	})
}

// SearchCompanies filters and orders the company directory.
func (s *Service) SearchCompanies(ctx context.Context, q dashboard.CompanyQuery) []model.Company {
	snap := s.datasets.Companies.Snapshot(ctx)
	params := []string{q.Search, q.Location, q.Branch, rangeKey(q.Package), q.Sort.Field, q.Sort.Order}
	return memoize(ctx, s, "search_companies", snap.Version, params, func() []model.Company {
		return dashboard.SearchCompanies(snap.Records, q)
	})
}

// SearchStudents filters and orders placed students.
func (s *Service) SearchStudents(ctx context.Context, q dashboard.StudentQuery) []model.PlacedStudent {
	snap := s.datasets.Students.Snapshot(ctx)
	params := []string{q.Search, q.Branch, q.Company, q.PlaceYear, rangeKey(q.Package), q.Sort.Field, q.Sort.Order}
	return memoize(ctx, s, "search_students", snap.Version, params, func() []model.PlacedStudent {
		return dashboard.SearchStudents(snap.Records, q)
	})
}

func rangeKey(r dashboard.Range) string {
	bound := func(p *float64) string {
		if p == nil {
			return "*"
		}
		return strconv.FormatFloat(*p, 'g', -1, 64)
	}
	return bound(r.Min) + ".." + bound(r.Max)
}

// ReplaceDataset decodes a JSON array of records and publishes it as the
// named dataset's new snapshot. Memoized results for the old snapshot are
// no longer reachable since the version changes.
func (s *Service) ReplaceDataset(ctx context.Context, name string, payload []byte) (DatasetInfo, error) {
	var (
		info DatasetInfo
		err  error
	)
	switch name {
	case repository.Companies:
		info, err = replace(ctx, s.datasets.Companies, payload)
	case repository.Students:
		info, err = replace(ctx, s.datasets.Students, payload)
	case repository.Rankings:
		info, err = replace(ctx, s.datasets.Rankings, payload)
	case repository.Awards:
		info, err = replace(ctx, s.datasets.Awards, payload)
	case repository.Achievements:
		info, err = replace(ctx, s.datasets.Achievements, payload)
	case repository.Clubs:
		info, err = replace(ctx, s.datasets.Clubs, payload)
	default:
		return DatasetInfo{}, fmt.Errorf("%w: %q", repository.ErrUnknownDataset, name)
	}
	if err != nil {
		s.log().Warn(ctx, "dataset replace rejected", logger.String("dataset", name), logger.Error(err))
		return DatasetInfo{}, err
	}
	s.log().Info(ctx, "dataset replaced",
		logger.String("dataset", name),
		logger.String("version", info.Version),
		logger.Int("records", info.Records),
	)
	return info, nil
}

func replace[T any](ctx context.Context, c *repository.Collection[T], payload []byte) (DatasetInfo, error) {
	var records []T
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return DatasetInfo{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if records == nil {
		return DatasetInfo{}, fmt.Errorf("%w: expected a JSON array", ErrInvalidPayload)
	}
	snap, err := c.Replace(ctx, records)
	if err != nil {
		return DatasetInfo{}, err
	}
	return infoOf(snap), nil
}

func infoOf[T any](snap repository.Snapshot[T]) DatasetInfo {
	return DatasetInfo{Name: snap.Name, Version: snap.Version, Records: snap.Len(), UpdatedAt: snap.UpdatedAt}
}

// Datasets describes every dataset's current snapshot in a stable order.
func (s *Service) Datasets(ctx context.Context) []DatasetInfo {
	return []DatasetInfo{
		infoOf(s.datasets.Companies.Snapshot(ctx)),
		infoOf(s.datasets.Students.Snapshot(ctx)),
		infoOf(s.datasets.Rankings.Snapshot(ctx)),
		infoOf(s.datasets.Awards.Snapshot(ctx)),
		infoOf(s.datasets.Achievements.Snapshot(ctx)),
		infoOf(s.datasets.Clubs.Snapshot(ctx)),
	}
}

// MaxTopLimit returns the largest n accepted by top-N queries.
func (s *Service) MaxTopLimit() int { return s.maxTopLimit }

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"cacheSize":   s.cacheSize,
		"maxTopLimit": s.maxTopLimit,
		"branches":    s.branches,
		"cache": map[string]int64{
			"entries": s.cache.Size(),
			"hits":    s.cache.Hits(),
			"misses":  s.cache.Misses(),
		},
	}

	if s.started {
		stats["datasets"] = s.Datasets(ctx)
		stats["version"] = s.datasets.Version(ctx)
	}

	return stats
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Get()
	}
	return s.logger
}
