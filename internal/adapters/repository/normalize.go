package repository

import (
	"fmt"
	"strings"

	"github.com/okian/campus/internal/domain/model"
)

// Normalization happens once, here, so the query engine can assume
// trimmed strings, upper-case branch codes and 4-digit years.

func checkID(id int) error {
	if id <= 0 {
		return fmt.Errorf("id %d must be positive: %w", id, ErrInvalidRecord)
	}
	return nil
}

func checkYear(field string, y model.Year) error {
	if !y.Valid() {
		return fmt.Errorf("%s %d: %w", field, int(y), ErrInvalidYear)
	}
	return nil
}

func trimAll(xs []string) []string {
	if xs == nil {
		return nil
	}
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if x = strings.TrimSpace(x); x != "" {
			out = append(out, x)
		}
	}
	return out
}

// BranchCode is the stored form of a branch code: trimmed and upper-cased.
func BranchCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeCompany cleans a company record.
func NormalizeCompany(c model.Company) (model.Company, error) {
	if err := checkID(c.ID); err != nil {
		return c, err
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return c, fmt.Errorf("company %d has no name: %w", c.ID, ErrInvalidRecord)
	}
	c.Location = strings.TrimSpace(c.Location)
	c.MinPackage = strings.TrimSpace(c.MinPackage)
	c.MaxPackage = strings.TrimSpace(c.MaxPackage)
	c.Roles = trimAll(c.Roles)

	branches := make([]string, 0, len(c.Eligibility.Branches))
	for _, b := range c.Eligibility.Branches {
		if b = BranchCode(b); b != "" {
			branches = append(branches, b)
		}
	}
	c.Eligibility.Branches = branches
	return c, nil
}

// NormalizeStudent cleans a placed student record.
func NormalizeStudent(s model.PlacedStudent) (model.PlacedStudent, error) {
	if err := checkID(s.ID); err != nil {
		return s, err
	}
	if err := checkYear("batch", s.Batch); err != nil {
		return s, err
	}
	if err := checkYear("placeYear", s.PlaceYear); err != nil {
		return s, err
	}
	s.Name = strings.TrimSpace(s.Name)
	s.RollNo = strings.TrimSpace(s.RollNo)
	s.Branch = BranchCode(s.Branch)
	s.Company = strings.TrimSpace(s.Company)
	s.Package = strings.TrimSpace(s.Package)
	return s, nil
}

// NormalizeRanking cleans a ranking record.
func NormalizeRanking(r model.Ranking) (model.Ranking, error) {
	if err := checkID(r.ID); err != nil {
		return r, err
	}
	if err := checkYear("year", r.Year); err != nil {
		return r, err
	}
	if r.Rank < 1 {
		return r, fmt.Errorf("ranking %d: rank %d must be at least 1: %w", r.ID, r.Rank, ErrInvalidRecord)
	}
	if r.ImprovedFrom != nil {
		// never alias the caller's pointer
		prior := *r.ImprovedFrom
		r.ImprovedFrom = &prior
	}
	r.Organization = strings.TrimSpace(r.Organization)
	r.Category = strings.TrimSpace(r.Category)
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	return r, nil
}

// NormalizeAward cleans an award record.
func NormalizeAward(a model.Award) (model.Award, error) {
	if err := checkID(a.ID); err != nil {
		return a, err
	}
	if err := checkYear("year", a.Year); err != nil {
		return a, err
	}
	a.Title = strings.TrimSpace(a.Title)
	a.Type = strings.ToLower(strings.TrimSpace(a.Type))
	a.Category = strings.TrimSpace(a.Category)
	a.Recipient = strings.TrimSpace(a.Recipient)
	return a, nil
}

// NormalizeAchievement cleans an achievement record.
func NormalizeAchievement(a model.Achievement) (model.Achievement, error) {
	if err := checkID(a.ID); err != nil {
		return a, err
	}
	if err := checkYear("year", a.Year); err != nil {
		return a, err
	}
	a.Title = strings.TrimSpace(a.Title)
	a.Category = strings.TrimSpace(a.Category)
	a.Impact = model.CanonicalImpact(a.Impact)
	return a, nil
}

// NormalizeClub cleans a club record.
func NormalizeClub(c model.Club) (model.Club, error) {
	if err := checkID(c.ID); err != nil {
		return c, err
	}
	if c.MemberCount < 0 {
		return c, fmt.Errorf("club %d: negative member count: %w", c.ID, ErrInvalidRecord)
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Category = strings.TrimSpace(c.Category)
	c.Achievements = trimAll(c.Achievements)
	c.Events = trimAll(c.Events)
	return c, nil
}
