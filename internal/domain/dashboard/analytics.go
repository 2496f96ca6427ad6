package dashboard

import (
	"slices"
	"strings"

	"github.com/okian/campus/internal/domain/model"
	"github.com/okian/campus/internal/domain/numeric"
	"github.com/okian/campus/internal/domain/query"
)

type improved struct {
	organization string
	delta        int
}

// Improvement summarises rankings that carry a prior rank. The best entry is
// the first one in descending-improvement order, so ties go to the earlier
// ranking.
func Improvement(rankings []model.Ranking) ImprovementStats {
	items := make([]improved, 0, len(rankings))
	sum := 0
	for _, r := range rankings {
		if d, ok := r.Improvement(); ok {
			items = append(items, improved{organization: r.Organization, delta: d})
			sum += d
		}
	}

	stats := ImprovementStats{TotalImprovements: len(items)}
	if len(items) == 0 {
		return stats
	}

	best := query.TopN(items, 1, func(i improved) float64 { return float64(i.delta) })[0]
	stats.BestImprovement = &BestImprovement{Organization: best.organization, Improvement: best.delta}
	stats.AverageImprovement = numeric.RoundHalfUp(float64(sum) / float64(len(items)))
	return stats
}

// Rankings summarises rankings by type and year; BestRank is the lowest rank
// held, 0 when there are none.
func Rankings(rankings []model.Ranking) RankingSummary {
	byType := query.GroupBy(rankings, func(r model.Ranking) string { return strings.ToLower(r.Type) }, nil,
		model.RankingNational, model.RankingInternational)
	byYear := query.GroupBy(rankings, func(r model.Ranking) model.Year { return r.Year },
		func(r model.Ranking) float64 { return float64(r.Rank) })

	years := make([]YearStat, 0, byYear.Len())
	best := 0
	for _, y := range byYear.Keys {
		st := byYear.Get(y)
		years = append(years, YearStat{Year: int(y), Count: st.Count})
		if best == 0 || int(st.Min) < best {
			best = int(st.Min)
		}
	}
	slices.SortStableFunc(years, func(a, b YearStat) int { return b.Year - a.Year })

	return RankingSummary{
		Total:         len(rankings),
		National:      byType.Get(model.RankingNational).Count,
		International: byType.Get(model.RankingInternational).Count,
		BestRank:      best,
		ByYear:        years,
	}
}

// Awards counts awards by type (institutional, student, faculty first) and by
// category in first-seen order.
func Awards(awards []model.Award) AwardBreakdown {
	byType := query.GroupBy(awards, func(a model.Award) string { return a.Type }, nil,
		model.AwardInstitutional, model.AwardStudent, model.AwardFaculty)
	byCategory := query.GroupBy(awards, func(a model.Award) string { return a.Category }, nil)

	return AwardBreakdown{
		Total:      len(awards),
		ByType:     counts(byType),
		ByCategory: counts(byCategory),
	}
}

// TopAchievements returns the n highest-impact achievements; equal impact
// keeps input order.
func TopAchievements(achievements []model.Achievement, n int) []model.Achievement {
	return query.TopN(achievements, n, func(a model.Achievement) float64 {
		return float64(model.ImpactWeight(a.Impact))
	})
}

func counts(g query.Groups[string]) []CountStat {
	out := make([]CountStat, 0, g.Len())
	for _, k := range g.Keys {
		out = append(out, CountStat{Label: k, Count: g.Get(k).Count})
	}
	return out
}
