// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/okian/campus/internal/adapters/repository"
	service "github.com/okian/campus/internal/app"
	"github.com/okian/campus/internal/domain/dashboard"
	"github.com/okian/campus/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	PlacementDependencies
	DirectoryDependencies
	AnalyticsDependencies
	DatasetDependencies
}

// PlacementDependencies serve the placement dashboard.
type PlacementDependencies interface {
	Placement(ctx context.Context) dashboard.PlacementStats
	YearWise(ctx context.Context) []dashboard.YearStat
	BranchWise(ctx context.Context) []dashboard.BranchStat
	CompanyWise(ctx context.Context) []dashboard.CompanyStat
	TopPerformers(ctx context.Context, n int) ([]model.PlacedStudent, error)
}

// DirectoryDependencies serve company and student searches.
type DirectoryDependencies interface {
	SearchCompanies(ctx context.Context, q dashboard.CompanyQuery) []model.Company
	SearchStudents(ctx context.Context, q dashboard.StudentQuery) []model.PlacedStudent
}

// AnalyticsDependencies serve the rankings, awards and clubs pages.
type AnalyticsDependencies interface {
	Improvement(ctx context.Context) dashboard.ImprovementStats
	Rankings(ctx context.Context) dashboard.RankingSummary
	Awards(ctx context.Context) dashboard.AwardBreakdown
	TopAchievements(ctx context.Context, n int) ([]model.Achievement, error)
	Clubs(ctx context.Context) dashboard.ClubSummary
}

// DatasetDependencies replace dataset snapshots.
type DatasetDependencies interface {
	ReplaceDataset(ctx context.Context, name string, payload []byte) (service.DatasetInfo, error)
}

// Server wires HTTP routes for the portal API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	placementHandler *PlacementHandler
	directoryHandler *DirectoryHandler
	analyticsHandler *AnalyticsHandler
	datasetHandler   *DatasetHandler
}

// NewServer creates a new API server with all handlers. maxLimit caps the
// limit parameter of top-N endpoints.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		placementHandler: NewPlacementHandler(deps, maxLimit),
		directoryHandler: NewDirectoryHandler(deps),
		analyticsHandler: NewAnalyticsHandler(deps, maxLimit),
		datasetHandler:   NewDatasetHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/placements/stats", MetricsMiddleware(s.placementHandler.HandleStats, "placements_stats"))
	mux.HandleFunc("/placements/years", MetricsMiddleware(s.placementHandler.HandleYears, "placements_years"))
	mux.HandleFunc("/placements/branches", MetricsMiddleware(s.placementHandler.HandleBranches, "placements_branches"))
	mux.HandleFunc("/placements/companies", MetricsMiddleware(s.placementHandler.HandleCompanies, "placements_companies"))
	mux.HandleFunc("/placements/top", MetricsMiddleware(s.placementHandler.HandleTop, "placements_top"))

	mux.HandleFunc("/companies", MetricsMiddleware(s.directoryHandler.HandleCompanies, "companies"))
	mux.HandleFunc("/students", MetricsMiddleware(s.directoryHandler.HandleStudents, "students"))

	mux.HandleFunc("/rankings/improvement", MetricsMiddleware(s.analyticsHandler.HandleImprovement, "rankings_improvement"))
	mux.HandleFunc("/rankings/summary", MetricsMiddleware(s.analyticsHandler.HandleRankings, "rankings_summary"))
	mux.HandleFunc("/awards/breakdown", MetricsMiddleware(s.analyticsHandler.HandleAwards, "awards_breakdown"))
	mux.HandleFunc("/achievements/top", MetricsMiddleware(s.analyticsHandler.HandleTopAchievements, "achievements_top"))
	mux.HandleFunc("/clubs/summary", MetricsMiddleware(s.analyticsHandler.HandleClubs, "clubs_summary"))

	mux.HandleFunc("PUT /datasets/{name}", MetricsMiddleware(s.datasetHandler.HandleReplace, "datasets"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates service and store errors into HTTP statuses.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrUnknownDataset):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	case errors.Is(err, service.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, "limit_out_of_range", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, service.ErrInvalidPayload),
		errors.Is(err, repository.ErrInvalidRecord),
		errors.Is(err, repository.ErrDuplicateID),
		errors.Is(err, repository.ErrInvalidYear):
		writeError(w, http.StatusBadRequest, "invalid_dataset", WrapKind(op, ErrBadRequest, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", WrapKind(op, ErrInternal, err))
	}
}

// onlyGet rejects anything but GET the way the rest of the API does.
func onlyGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return false
	}
	return true
}

// parseLimit reads ?limit=N; absent means def.
func parseLimit(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
