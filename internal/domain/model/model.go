// Package model contains the campus records consumed by the query engine.
//
// Records are plain values. Relations are by foreign key only, e.g. a
// PlacedStudent's Company matches a Company's Name.
package model

import "strings"

// Company is a recruiter visiting campus.
type Company struct {
	ID          int         `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Location    string      `json:"location" yaml:"location"`
	MinPackage  string      `json:"minPackage" yaml:"minPackage"` // e.g. "6 LPA"
	MaxPackage  string      `json:"maxPackage" yaml:"maxPackage"` // e.g. "16 LPA"
	Eligibility Eligibility `json:"eligibility" yaml:"eligibility"`
	Roles       []string    `json:"roles" yaml:"roles"`
}

// Eligibility lists who may apply to a Company.
type Eligibility struct {
	Branches []string `json:"branches" yaml:"branches"`
	MinCGPA  float64  `json:"minCGPA" yaml:"minCGPA"`
}

// PlacedStudent is a student who accepted an offer.
type PlacedStudent struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	RollNo    string `json:"rollNo" yaml:"rollNo"`
	Branch    string `json:"branch" yaml:"branch"`
	Batch     Year   `json:"batch" yaml:"batch"`
	Company   string `json:"company" yaml:"company"`
	Package   string `json:"package" yaml:"package"`
	PlaceYear Year   `json:"placeYear" yaml:"placeYear"`
}

// Ranking is a position in an external ranking framework such as NIRF.
// Lower Rank is better.
type Ranking struct {
	ID           int    `json:"id" yaml:"id"`
	Organization string `json:"organization" yaml:"organization"`
	Category     string `json:"category" yaml:"category"`
	Rank         int    `json:"rank" yaml:"rank"`
	Year         Year   `json:"year" yaml:"year"`
	Type         string `json:"type" yaml:"type"` // national or international
	ImprovedFrom *int   `json:"improvedFrom,omitempty" yaml:"improvedFrom,omitempty"`
}

// Improvement reports ImprovedFrom - Rank. ok is false when no prior rank is known.
func (r Ranking) Improvement() (delta int, ok bool) {
	if r.ImprovedFrom == nil {
		return 0, false
	}
	return *r.ImprovedFrom - r.Rank, true
}

// Ranking types.
const (
	RankingNational      = "national"
	RankingInternational = "international"
)

// Award is an institutional, student or faculty award.
type Award struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Type      string `json:"type" yaml:"type"`
	Category  string `json:"category" yaml:"category"`
	Year      Year   `json:"year" yaml:"year"`
	Recipient string `json:"recipient,omitempty" yaml:"recipient,omitempty"`
}

// Award types.
const (
	AwardInstitutional = "institutional"
	AwardStudent       = "student"
	AwardFaculty       = "faculty"
)

// Achievement is a notable institutional result.
type Achievement struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
	Impact   string `json:"impact" yaml:"impact"`
	Year     Year   `json:"year" yaml:"year"`
}

// Impact levels, highest first.
const (
	ImpactMajor  = "Major"
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
)

// ImpactWeight orders impact levels: Major > High > Medium > anything else.
// Levels match case-insensitively.
func ImpactWeight(impact string) int {
	switch CanonicalImpact(impact) {
	case ImpactMajor:
		return 3
	case ImpactHigh:
		return 2
	case ImpactMedium:
		return 1
	default:
		return 0
	}
}

// CanonicalImpact returns the canonical spelling of a known impact level,
// or the trimmed input when the level is unknown.
func CanonicalImpact(impact string) string {
	impact = strings.TrimSpace(impact)
	for _, level := range []string{ImpactMajor, ImpactHigh, ImpactMedium} {
		if strings.EqualFold(impact, level) {
			return level
		}
	}
	return impact
}

// Club is a student club.
type Club struct {
	ID           int      `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Category     string   `json:"category" yaml:"category"`
	MemberCount  int      `json:"memberCount" yaml:"memberCount"`
	Achievements []string `json:"achievements" yaml:"achievements"`
	Events       []string `json:"events" yaml:"events"`
}
