package report

import (
	"context"
	"fmt"
	"io"
	"os"

	service "github.com/okian/campus/internal/app"
	"github.com/okian/campus/pkg/logger"
)

// Run prints the full report to w.
func Run(ctx context.Context, config *Config, w io.Writer) error {
	if err := config.Validate(); err != nil {
		return err
	}

	log := logger.Get()
	log.Debug(ctx, "starting campus report",
		logger.String("baseURL", config.BaseURL),
		logger.Bool("offline", config.Offline),
		logger.String("seed", config.SeedPath),
		logger.Int("topN", config.TopN),
		logger.String("timeout", config.Timeout.String()))

	src, closeFn, err := openSource(ctx, config, log)
	if err != nil {
		return err
	}
	defer closeFn()

	r := NewRenderer(w, config.NoColor)

	if config.Dataset != "" {
		payload, err := os.ReadFile(config.DatasetFile)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrReadDataset, config.DatasetFile, err)
		}
		info, err := src.ReplaceDataset(ctx, config.Dataset, payload)
		if err != nil {
			return fmt.Errorf("replace dataset %s: %w", config.Dataset, err)
		}
		r.Replaced(info.Name, info.Version, info.Records)
	}

	return render(ctx, src, r, config.TopN)
}

// openSource selects the local service or the HTTP client.
func openSource(ctx context.Context, config *Config, log logger.Logger) (Source, func(), error) {
	if !config.Offline {
		return NewClient(config.BaseURL, config.Timeout), func() {}, nil
	}

	svc := service.New(
		service.WithLogger(log.Named("report")),
		service.WithSeedPath(config.SeedPath),
		service.WithMaxTopLimit(config.TopN),
	)
	if err := svc.Start(ctx); err != nil {
		return nil, nil, err
	}
	return NewLocal(svc), svc.Stop, nil
}

func render(ctx context.Context, src Source, r *Renderer, topN int) error {
	placement, err := src.Placement(ctx)
	if err != nil {
		return err
	}
	r.Placement(placement)

	years, err := src.YearWise(ctx)
	if err != nil {
		return err
	}
	r.YearWise(years)

	branches, err := src.BranchWise(ctx)
	if err != nil {
		return err
	}
	r.BranchWise(branches)

	companies, err := src.CompanyWise(ctx)
	if err != nil {
		return err
	}
	r.CompanyWise(companies)

	top, err := src.TopPerformers(ctx, topN)
	if err != nil {
		return err
	}
	r.TopPerformers(top)

	improvement, err := src.Improvement(ctx)
	if err != nil {
		return err
	}
	r.Improvement(improvement)
	return nil
}
