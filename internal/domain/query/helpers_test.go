package query_test

import "github.com/okian/campus/internal/domain/query"

type offer struct {
	ID       int
	Name     string
	Location string
	Package  string
	Year     string
	Branch   string
	Branches []string
}

func offerPackage(o offer) string  { return o.Package }
func offerName(o offer) string     { return o.Name }
func offerLocation(o offer) string { return o.Location }
func offerYear(o offer) string     { return o.Year }
func offerBranch(o offer) string   { return o.Branch }

var offerFields = query.Fields[offer]{
	"name":     offerName,
	"location": offerLocation,
	"package":  offerPackage,
	"year":     offerYear,
	"branch":   offerBranch,
}

func ids(xs []offer) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = x.ID
	}
	return out
}

func sampleOffers() []offer {
	return []offer{
		{ID: 1, Name: "Google", Location: "Bangalore, India", Package: "22 LPA", Year: "2024", Branch: "CSE", Branches: []string{"CSE", "IT"}},
		{ID: 2, Name: "Microsoft", Location: "Hyderabad, India", Package: "20 LPA", Year: "2023", Branch: "IT", Branches: []string{"CSE"}},
		{ID: 3, Name: "Infosys", Location: "Mysore, India", Package: "4.2-4.8 LPA", Year: "2024", Branch: "ECE", Branches: []string{"ECE", "EEE"}},
		{ID: 4, Name: "Amazon", Location: "Bangalore, India", Package: "20 LPA", Year: "2022", Branch: "CSE", Branches: []string{"CSE"}},
		{ID: 5, Name: "Startup", Location: "Remote", Package: "TBD", Year: "2024", Branch: "MECH"},
	}
}
