package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/okian/campus/internal/domain/dashboard"
	"github.com/okian/campus/internal/domain/model"
)

// Renderer writes report sections as tables.
type Renderer struct {
	w       io.Writer
	heading *color.Color
	note    *color.Color
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	r := &Renderer{
		w:       w,
		heading: color.New(color.FgYellow, color.Bold),
		note:    color.New(color.FgCyan),
	}
	if noColor {
		r.heading.DisableColor()
		r.note.DisableColor()
	}
	return r
}

func (r *Renderer) table(title string, header []string, rows [][]string) {
	_, _ = r.heading.Fprintf(r.w, "\n%s\n", title)
	if len(rows) == 0 {
		_, _ = r.note.Fprintln(r.w, "no data")
		return
	}
	t := tablewriter.NewWriter(r.w)
	t.SetAutoWrapText(false)
	t.SetHeader(header)
	t.AppendBulk(rows)
	t.Render()
}

func lpa(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + " LPA"
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

// Placement renders the overall placement statistics.
func (r *Renderer) Placement(s dashboard.PlacementStats) {
	r.table("Placement Statistics", []string{"Metric", "Value"}, [][]string{
		{"Students placed", strconv.Itoa(s.TotalPlaced)},
		{"Recruiting companies", strconv.Itoa(s.TotalCompanies)},
		{"Branches", strconv.Itoa(s.UniqueBranches)},
		{"Average package", lpa(s.AvgPackage)},
		{"Highest package", lpa(s.HighestPackage)},
	})
}

// YearWise renders the year-wise trend.
func (r *Renderer) YearWise(rows []dashboard.YearStat) {
	out := make([][]string, 0, len(rows))
	for _, y := range rows {
		out = append(out, []string{strconv.Itoa(y.Year), strconv.Itoa(y.Count), lpa(y.AvgPackage)})
	}
	r.table("Year-wise Placements", []string{"Year", "Placed", "Average Package"}, out)
}

// BranchWise renders the branch breakdown.
func (r *Renderer) BranchWise(rows []dashboard.BranchStat) {
	out := make([][]string, 0, len(rows))
	for _, b := range rows {
		out = append(out, []string{b.Branch, strconv.Itoa(b.Count), lpa(b.AvgPackage), pct(b.Percentage)})
	}
	r.table("Branch-wise Placements", []string{"Branch", "Placed", "Average Package", "Share"}, out)
}

// CompanyWise renders hires per company.
func (r *Renderer) CompanyWise(rows []dashboard.CompanyStat) {
	out := make([][]string, 0, len(rows))
	for _, c := range rows {
		out = append(out, []string{c.Company, strconv.Itoa(c.Count), lpa(c.AvgPackage)})
	}
	r.table("Company-wise Placements", []string{"Company", "Hires", "Average Package"}, out)
}

// TopPerformers renders the highest packages.
func (r *Renderer) TopPerformers(rows []model.PlacedStudent) {
	out := make([][]string, 0, len(rows))
	for i, s := range rows {
		out = append(out, []string{strconv.Itoa(i + 1), s.Name, s.Branch, s.Company, s.Package, strconv.Itoa(int(s.PlaceYear))})
	}
	r.table(fmt.Sprintf("Top %d Performers", len(rows)), []string{"Rank", "Name", "Branch", "Company", "Package", "Year"}, out)
}

// Improvement renders the ranking improvement summary.
func (r *Renderer) Improvement(s dashboard.ImprovementStats) {
	best := "-"
	if s.BestImprovement != nil {
		best = fmt.Sprintf("%s (+%d)", s.BestImprovement.Organization, s.BestImprovement.Improvement)
	}
	r.table("Ranking Improvements", []string{"Metric", "Value"}, [][]string{
		{"Rankings improved", strconv.Itoa(s.TotalImprovements)},
		{"Best improvement", best},
		{"Average improvement", strconv.Itoa(s.AverageImprovement)},
	})
}

// Replaced notes a dataset replacement.
func (r *Renderer) Replaced(name, version string, records int) {
	_, _ = r.note.Fprintf(r.w, "replaced %s: %d records (version %s)\n", name, records, version)
}
