package report

import (
	"context"

	service "github.com/okian/campus/internal/app"
	"github.com/okian/campus/internal/domain/dashboard"
	"github.com/okian/campus/internal/domain/model"
)

// Source supplies the dashboard sections a report prints.
type Source interface {
	Placement(ctx context.Context) (dashboard.PlacementStats, error)
	YearWise(ctx context.Context) ([]dashboard.YearStat, error)
	BranchWise(ctx context.Context) ([]dashboard.BranchStat, error)
	CompanyWise(ctx context.Context) ([]dashboard.CompanyStat, error)
	TopPerformers(ctx context.Context, n int) ([]model.PlacedStudent, error)
	Improvement(ctx context.Context) (dashboard.ImprovementStats, error)
	ReplaceDataset(ctx context.Context, name string, payload []byte) (service.DatasetInfo, error)
}

// Local answers report queries from an in-process service.
type Local struct {
	svc *service.Service
}

// NewLocal wraps a started service.
func NewLocal(svc *service.Service) *Local {
	return &Local{svc: svc}
}

// Placement returns the overall placement statistics.
func (l *Local) Placement(ctx context.Context) (dashboard.PlacementStats, error) {
	return l.svc.Placement(ctx), nil
}

// YearWise returns per-year placement counts.
func (l *Local) YearWise(ctx context.Context) ([]dashboard.YearStat, error) {
	return l.svc.YearWise(ctx), nil
}

// BranchWise returns per-branch placement counts.
func (l *Local) BranchWise(ctx context.Context) ([]dashboard.BranchStat, error) {
	return l.svc.BranchWise(ctx), nil
}

// CompanyWise returns per-company hiring counts.
func (l *Local) CompanyWise(ctx context.Context) ([]dashboard.CompanyStat, error) {
	return l.svc.CompanyWise(ctx), nil
}

// TopPerformers returns the n highest-paid placed students.
func (l *Local) TopPerformers(ctx context.Context, n int) ([]model.PlacedStudent, error) {
	return l.svc.TopPerformers(ctx, n)
}

// Improvement returns the ranking improvement summary.
func (l *Local) Improvement(ctx context.Context) (dashboard.ImprovementStats, error) {
	return l.svc.Improvement(ctx), nil
}

// ReplaceDataset replaces the named dataset with a JSON array payload.
func (l *Local) ReplaceDataset(ctx context.Context, name string, payload []byte) (service.DatasetInfo, error) {
	return l.svc.ReplaceDataset(ctx, name, payload)
}
