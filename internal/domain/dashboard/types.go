// Package dashboard composes the query engine into the named queries the
// placement, analytics and clubs pages consume.
package dashboard

// CanonicalBranches is the fixed branch list reported by branch breakdowns.
var CanonicalBranches = []string{"CSE", "IT", "ECE", "EEE", "MECH", "CIVIL"}

// PlacementStats summarises all placed students.
type PlacementStats struct {
	TotalPlaced    int     `json:"totalPlaced"`
	TotalCompanies int     `json:"totalCompanies"`
	UniqueBranches int     `json:"uniqueBranches"`
	AvgPackage     float64 `json:"avgPackage"`
	HighestPackage float64 `json:"highestPackage"`
}

// YearStat is one row of the year-wise placement trend.
type YearStat struct {
	Year       int     `json:"year"`
	Count      int     `json:"count"`
	AvgPackage float64 `json:"avgPackage"`
}

// BranchStat is one row of the branch-wise breakdown.
type BranchStat struct {
	Branch     string  `json:"branch"`
	Count      int     `json:"count"`
	AvgPackage float64 `json:"avgPackage"`
	Percentage float64 `json:"percentage"`
}

// CompanyStat is one row of the company-wise breakdown.
type CompanyStat struct {
	Company    string  `json:"company"`
	Count      int     `json:"count"`
	AvgPackage float64 `json:"avgPackage"`
}

// BestImprovement names the ranking that climbed the most.
type BestImprovement struct {
	Organization string `json:"organization"`
	Improvement  int    `json:"improvement"`
}

// ImprovementStats summarises rankings that report a prior rank.
type ImprovementStats struct {
	TotalImprovements  int              `json:"totalImprovements"`
	BestImprovement    *BestImprovement `json:"bestImprovement"`
	AverageImprovement int              `json:"averageImprovement"`
}

// CountStat is a label with a record count.
type CountStat struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RankingSummary counts rankings by type and year.
type RankingSummary struct {
	Total         int        `json:"total"`
	National      int        `json:"national"`
	International int        `json:"international"`
	BestRank      int        `json:"bestRank"`
	ByYear        []YearStat `json:"byYear"`
}

// AwardBreakdown counts awards by type and by category.
type AwardBreakdown struct {
	Total      int         `json:"total"`
	ByType     []CountStat `json:"byType"`
	ByCategory []CountStat `json:"byCategory"`
}

// ClubSummary aggregates portal-wide club totals.
type ClubSummary struct {
	TotalClubs        int            `json:"totalClubs"`
	TotalMembers      int            `json:"totalMembers"`
	TotalAchievements int            `json:"totalAchievements"`
	TotalEvents       int            `json:"totalEvents"`
	AvgMembers        float64        `json:"avgMembers"`
	ByCategory        []CategoryStat `json:"byCategory"`
}

// CategoryStat is a club category row.
type CategoryStat struct {
	Category string  `json:"category"`
	Clubs    int     `json:"clubs"`
	Members  int     `json:"members"`
	AvgSize  float64 `json:"avgSize"`
}
