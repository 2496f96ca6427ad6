package dashboard

import (
	"math"
	"strings"

	"github.com/okian/campus/internal/domain/model"
	"github.com/okian/campus/internal/domain/query"
)

// CompanyFields names the searchable and sortable company fields.
var CompanyFields = query.Fields[model.Company]{
	"name":       func(c model.Company) string { return c.Name },
	"location":   func(c model.Company) string { return c.Location },
	"minPackage": func(c model.Company) string { return c.MinPackage },
	"maxPackage": func(c model.Company) string { return c.MaxPackage },
	"roles":      func(c model.Company) string { return strings.Join(c.Roles, ", ") },
}

// StudentFields names the searchable and sortable student fields.
var StudentFields = query.Fields[model.PlacedStudent]{
	"name":      func(s model.PlacedStudent) string { return s.Name },
	"rollNo":    func(s model.PlacedStudent) string { return s.RollNo },
	"branch":    studentBranch,
	"company":   studentCompany,
	"package":   studentPackage,
	"batch":     query.IntField(func(s model.PlacedStudent) model.Year { return s.Batch }),
	"placeYear": query.IntField(studentPlaceYear),
}

// sortKinds maps sortable field names to how they compare. Fields missing
// here cannot be sorted on.
var sortKinds = map[string]query.Kind{
	"name":       query.KindAlphabetical,
	"location":   query.KindAlphabetical,
	"rollNo":     query.KindAlphabetical,
	"branch":     query.KindAlphabetical,
	"company":    query.KindAlphabetical,
	"minPackage": query.KindNumeric,
	"maxPackage": query.KindNumeric,
	"package":    query.KindNumeric,
	"batch":      query.KindChronological,
	"placeYear":  query.KindChronological,
}

// Sort selects a sort field and direction ("asc" or "desc").
type Sort struct {
	Field string
	Order string
}

// Range is an optional inclusive numeric bound pair. Nil bounds are open.
type Range struct {
	Min *float64
	Max *float64
}

func (r Range) bounds() (lo, hi float64, set bool) {
	lo, hi = math.Inf(-1), math.Inf(1)
	if r.Min != nil {
		lo, set = *r.Min, true
	}
	if r.Max != nil {
		hi, set = *r.Max, true
	}
	return lo, hi, set
}

// CompanyQuery filters and orders companies.
type CompanyQuery struct {
	Search   string // name, location and roles
	Location string // substring of location
	Branch   string // eligible branch, "All" disables
	Package  Range  // applied to maxPackage
	Sort     Sort
}

// StudentQuery filters and orders placed students.
type StudentQuery struct {
	Search    string // name, roll number and company
	Branch    string
	Company   string
	PlaceYear string
	Package   Range
	Sort      Sort
}

// SearchCompanies runs a company query.
func SearchCompanies(companies []model.Company, q CompanyQuery) []model.Company {
	preds := []query.Predicate[model.Company]{
		CompanyFields.Text(q.Search, "name", "location", "roles"),
		CompanyFields.Text(q.Location, "location"),
		query.AnyOf(func(c model.Company) []string { return c.Eligibility.Branches }, q.Branch),
	}
	if lo, hi, ok := q.Package.bounds(); ok {
		preds = append(preds, CompanyFields.Range("maxPackage", lo, hi))
	}
	return sorted(query.Filter(companies, preds...), CompanyFields, q.Sort)
}

// SearchStudents runs a student query.
func SearchStudents(students []model.PlacedStudent, q StudentQuery) []model.PlacedStudent {
	preds := []query.Predicate[model.PlacedStudent]{
		StudentFields.Text(q.Search, "name", "rollNo", "company"),
		StudentFields.Equals("branch", q.Branch),
		StudentFields.Equals("company", q.Company),
		StudentFields.Equals("placeYear", q.PlaceYear),
	}
	if lo, hi, ok := q.Package.bounds(); ok {
		preds = append(preds, StudentFields.Range("package", lo, hi))
	}
	return sorted(query.Filter(students, preds...), StudentFields, q.Sort)
}

func sorted[T any](records []T, fields query.Fields[T], s Sort) []T {
	kind, ok := sortKinds[s.Field]
	if !ok {
		return records
	}
	return query.SortBy(records, fields.SortKey(kind, s.Field, query.ParseDirection(s.Order)))
}
