package dashboard

import (
	"slices"

	"github.com/okian/campus/internal/domain/model"
	"github.com/okian/campus/internal/domain/numeric"
	"github.com/okian/campus/internal/domain/query"
)

func studentPackage(s model.PlacedStudent) string       { return s.Package }
func studentBranch(s model.PlacedStudent) string        { return s.Branch }
func studentCompany(s model.PlacedStudent) string       { return s.Company }
func studentPlaceYear(s model.PlacedStudent) model.Year { return s.PlaceYear }

var packageValue = query.Numeric(studentPackage)

// Placement computes the headline placement numbers.
func Placement(students []model.PlacedStudent) PlacementStats {
	all := query.GroupBy(students, func(model.PlacedStudent) struct{} { return struct{}{} }, packageValue)
	st := all.Get(struct{}{})

	return PlacementStats{
		TotalPlaced:    len(students),
		TotalCompanies: query.CountDistinct(students, studentCompany),
		UniqueBranches: query.CountDistinct(students, studentBranch),
		AvgPackage:     st.Average,
		HighestPackage: st.Max,
	}
}

// YearWise groups students by placement year, latest year first.
func YearWise(students []model.PlacedStudent) []YearStat {
	g := query.GroupBy(students, studentPlaceYear, packageValue)

	out := make([]YearStat, 0, g.Len())
	for _, y := range g.Keys {
		st := g.Get(y)
		out = append(out, YearStat{Year: int(y), Count: st.Count, AvgPackage: st.Average})
	}
	slices.SortStableFunc(out, func(a, b YearStat) int { return b.Year - a.Year })
	return out
}

// BranchWise breaks placements down over branches. Every listed branch is
// reported, in order, even without students; branches outside the list
// follow in first-seen order. Percentage is relative to all placed students.
func BranchWise(students []model.PlacedStudent, branches []string) []BranchStat {
	g := query.GroupBy(students, studentBranch, packageValue, branches...)
	total := len(students)

	out := make([]BranchStat, 0, g.Len())
	for _, b := range g.Keys {
		st := g.Get(b)
		pct := 0.0
		if total > 0 {
			pct = numeric.Round2(float64(st.Count) / float64(total) * 100)
		}
		out = append(out, BranchStat{Branch: b, Count: st.Count, AvgPackage: st.Average, Percentage: pct})
	}
	return out
}

// CompanyWise reports, for each company, how many students it placed and
// their average package; most placements first, ties in company order.
func CompanyWise(companies []model.Company, students []model.PlacedStudent) []CompanyStat {
	names := make([]string, len(companies))
	for i, c := range companies {
		names[i] = c.Name
	}
	g := query.GroupBy(students, studentCompany, packageValue, names...)

	out := make([]CompanyStat, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		st := g.Get(name)
		out = append(out, CompanyStat{Company: name, Count: st.Count, AvgPackage: st.Average})
	}
	slices.SortStableFunc(out, func(a, b CompanyStat) int { return b.Count - a.Count })
	return out
}

// TopPerformers returns the n best-paid students; equal packages keep input order.
func TopPerformers(students []model.PlacedStudent, n int) []model.PlacedStudent {
	return query.TopN(students, n, packageValue)
}
