package repository

import (
	"context"
	"slices"
	"strings"

	"github.com/okian/campus/internal/domain/model"
)

// Dataset names.
const (
	Companies    = "companies"
	Students     = "students"
	Rankings     = "rankings"
	Awards       = "awards"
	Achievements = "achievements"
	Clubs        = "clubs"
)

// Names lists every dataset in a stable order.
var Names = []string{Companies, Students, Rankings, Awards, Achievements, Clubs}

// Datasets bundles the portal's record collections.
type Datasets struct {
	Companies    *Collection[model.Company]
	Students     *Collection[model.PlacedStudent]
	Rankings     *Collection[model.Ranking]
	Awards       *Collection[model.Award]
	Achievements *Collection[model.Achievement]
	Clubs        *Collection[model.Club]
}

// NewDatasets creates empty collections for every dataset.
func NewDatasets(opts ...Option) *Datasets {
	return &Datasets{
		Companies:    NewCollection(Companies, func(c model.Company) int { return c.ID }, NormalizeCompany, opts...),
		Students:     NewCollection(Students, func(s model.PlacedStudent) int { return s.ID }, NormalizeStudent, opts...),
		Rankings:     NewCollection(Rankings, func(r model.Ranking) int { return r.ID }, NormalizeRanking, opts...),
		Awards:       NewCollection(Awards, func(a model.Award) int { return a.ID }, NormalizeAward, opts...),
		Achievements: NewCollection(Achievements, func(a model.Achievement) int { return a.ID }, NormalizeAchievement, opts...),
		Clubs:        NewCollection(Clubs, func(c model.Club) int { return c.ID }, NormalizeClub, opts...),
	}
}

// Versions returns the current snapshot version of every dataset.
func (d *Datasets) Versions(ctx context.Context) map[string]string {
	return map[string]string{
		Companies:    d.Companies.Snapshot(ctx).Version,
		Students:     d.Students.Snapshot(ctx).Version,
		Rankings:     d.Rankings.Snapshot(ctx).Version,
		Awards:       d.Awards.Snapshot(ctx).Version,
		Achievements: d.Achievements.Snapshot(ctx).Version,
		Clubs:        d.Clubs.Snapshot(ctx).Version,
	}
}

// Version is a composite of the named datasets' versions, or of all of
// them when none are named. It changes whenever one of them is replaced.
func (d *Datasets) Version(ctx context.Context, names ...string) string {
	if len(names) == 0 {
		names = Names
	}
	all := d.Versions(ctx)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + "@" + all[n]
	}
	return strings.Join(parts, ",")
}

// Counts returns the record count of every dataset.
func (d *Datasets) Counts(ctx context.Context) map[string]int {
	return map[string]int{
		Companies:    d.Companies.Snapshot(ctx).Len(),
		Students:     d.Students.Snapshot(ctx).Len(),
		Rankings:     d.Rankings.Snapshot(ctx).Len(),
		Awards:       d.Awards.Snapshot(ctx).Len(),
		Achievements: d.Achievements.Snapshot(ctx).Len(),
		Clubs:        d.Clubs.Snapshot(ctx).Len(),
	}
}

// Known reports whether name is a dataset.
func Known(name string) bool {
	return slices.Contains(Names, name)
}
