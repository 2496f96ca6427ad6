package api

import (
	"net/http"
)

// AnalyticsHandler serves rankings, awards, achievements and clubs.
type AnalyticsHandler struct {
	deps     AnalyticsDependencies
	maxLimit int
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(deps AnalyticsDependencies, maxLimit int) *AnalyticsHandler {
	return &AnalyticsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleImprovement handles GET /rankings/improvement requests.
func (h *AnalyticsHandler) HandleImprovement(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Improvement(r.Context()))
}

// HandleRankings handles GET /rankings/summary requests.
func (h *AnalyticsHandler) HandleRankings(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Rankings(r.Context()))
}

// HandleAwards handles GET /awards/breakdown requests.
func (h *AnalyticsHandler) HandleAwards(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Awards(r.Context()))
}

// HandleTopAchievements handles GET /achievements/top?limit=N requests.
func (h *AnalyticsHandler) HandleTopAchievements(w http.ResponseWriter, r *http.Request) {
	const op = "api.achievements_top"
	if !onlyGet(w, r) {
		return
	}
	n, err := parseLimit(r, min(defaultTopLimit, h.maxLimit))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	// range checks live in the service
	top, err := h.deps.TopAchievements(r.Context(), n)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

// HandleClubs handles GET /clubs/summary requests.
func (h *AnalyticsHandler) HandleClubs(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Clubs(r.Context()))
}
