package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/okian/campus/internal/domain/dashboard"
)

// DirectoryHandler serves the company and student directories.
type DirectoryHandler struct {
	deps DirectoryDependencies
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(deps DirectoryDependencies) *DirectoryHandler {
	return &DirectoryHandler{deps: deps}
}

// HandleCompanies handles GET /companies requests.
// Query: search, location, branch, minPackage, maxPackage, sort, order.
func (h *DirectoryHandler) HandleCompanies(w http.ResponseWriter, r *http.Request) {
	const op = "api.companies"
	if !onlyGet(w, r) {
		return
	}
	v := r.URL.Query()
	pkg, err := parseRange(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	q := dashboard.CompanyQuery{
		Search:   v.Get("search"),
		Location: v.Get("location"),
		Branch:   v.Get("branch"),
		Package:  pkg,
		Sort:     dashboard.Sort{Field: v.Get("sort"), Order: v.Get("order")},
	}
	writeJSON(w, http.StatusOK, h.deps.SearchCompanies(r.Context(), q))
}

// HandleStudents handles GET /students requests.
// Query: search, branch, company, placeYear, minPackage, maxPackage, sort, order.
func (h *DirectoryHandler) HandleStudents(w http.ResponseWriter, r *http.Request) {
	const op = "api.students"
	if !onlyGet(w, r) {
		return
	}
	v := r.URL.Query()
	pkg, err := parseRange(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	q := dashboard.StudentQuery{
		Search:    v.Get("search"),
		Branch:    v.Get("branch"),
		Company:   v.Get("company"),
		PlaceYear: v.Get("placeYear"),
		Package:   pkg,
		Sort:      dashboard.Sort{Field: v.Get("sort"), Order: v.Get("order")},
	}
	writeJSON(w, http.StatusOK, h.deps.SearchStudents(r.Context(), q))
}

func parseRange(v url.Values) (dashboard.Range, error) {
	var rg dashboard.Range
	for _, b := range []struct {
		key string
		dst **float64
	}{{"minPackage", &rg.Min}, {"maxPackage", &rg.Max}} {
		raw := v.Get(b.key)
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return dashboard.Range{}, fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = &f
	}
	return rg, nil
}
