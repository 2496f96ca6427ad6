package api

import (
	"net/http"
)

const defaultTopLimit = 10

// PlacementHandler serves the placement dashboard.
type PlacementHandler struct {
	deps     PlacementDependencies
	maxLimit int
}

// NewPlacementHandler creates a new placement handler.
func NewPlacementHandler(deps PlacementDependencies, maxLimit int) *PlacementHandler {
	return &PlacementHandler{deps: deps, maxLimit: maxLimit}
}

// HandleStats handles GET /placements/stats requests.
func (h *PlacementHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Placement(r.Context()))
}

// HandleYears handles GET /placements/years requests.
func (h *PlacementHandler) HandleYears(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.YearWise(r.Context()))
}

// HandleBranches handles GET /placements/branches requests.
func (h *PlacementHandler) HandleBranches(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.BranchWise(r.Context()))
}

// HandleCompanies handles GET /placements/companies requests.
func (h *PlacementHandler) HandleCompanies(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.CompanyWise(r.Context()))
}

// HandleTop handles GET /placements/top?limit=N requests.
func (h *PlacementHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	const op = "api.placements_top"
	if !onlyGet(w, r) {
		return
	}
	n, err := parseLimit(r, min(defaultTopLimit, h.maxLimit))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	// range checks live in the service
	top, err := h.deps.TopPerformers(r.Context(), n)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}
