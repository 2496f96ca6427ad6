package dashboard

import (
	"github.com/okian/campus/internal/domain/model"
	"github.com/okian/campus/internal/domain/numeric"
	"github.com/okian/campus/internal/domain/query"
)

// Clubs aggregates portal-wide club totals and a per-category breakdown.
func Clubs(clubs []model.Club) ClubSummary {
	out := ClubSummary{TotalClubs: len(clubs)}
	for _, c := range clubs {
		out.TotalMembers += c.MemberCount
		out.TotalAchievements += len(c.Achievements)
		out.TotalEvents += len(c.Events)
	}
	out.AvgMembers = numeric.Average(float64(out.TotalMembers), out.TotalClubs)

	g := query.GroupBy(clubs, func(c model.Club) string { return c.Category },
		func(c model.Club) float64 { return float64(c.MemberCount) })
	out.ByCategory = make([]CategoryStat, 0, g.Len())
	for _, k := range g.Keys {
		st := g.Get(k)
		out.ByCategory = append(out.ByCategory, CategoryStat{
			Category: k,
			Clubs:    st.Count,
			Members:  int(st.Sum),
			AvgSize:  st.Average,
		})
	}
	return out
}
