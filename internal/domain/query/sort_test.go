package query_test

import (
	"testing"

	"github.com/okian/campus/internal/domain/query"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSortBy(t *testing.T) {
	Convey("Given a collection of offers", t, func() {
		xs := sampleOffers()

		Convey("When sorting alphabetically by name", func() {
			out := query.SortBy(xs, query.AlphabeticalKey(offerName))

			Convey("Then names are in ordinal order", func() {
				So(ids(out), ShouldResemble, []int{4, 1, 3, 2, 5})
			})

			Convey("And the input is untouched", func() {
				So(ids(xs), ShouldResemble, []int{1, 2, 3, 4, 5})
			})
		})

		Convey("When sorting numerically by package descending", func() {
			out := query.SortBy(xs, query.NumericKey(offerPackage, query.Desc))

			Convey("Then equal packages keep their input order", func() {
				// 22, 20 (id 2), 20 (id 4), 4.2, TBD as 0
				So(ids(out), ShouldResemble, []int{1, 2, 4, 3, 5})
			})
		})

		Convey("When sorting numerically ascending", func() {
			out := query.SortBy(xs, query.NumericKey(offerPackage, query.Asc))

			Convey("Then ties are still stable", func() {
				So(ids(out), ShouldResemble, []int{5, 3, 2, 4, 1})
			})
		})

		Convey("When sorting chronologically", func() {
			out := query.SortBy(xs, query.ChronologicalKey(offerYear, query.Desc))

			Convey("Then later years come first and same-year records keep order", func() {
				So(ids(out), ShouldResemble, []int{1, 3, 5, 2, 4})
			})
		})

		Convey("When sorting dates of mixed shapes", func() {
			dated := []offer{
				{ID: 1, Year: "2024-03-01"},
				{ID: 2, Year: "2023"},
				{ID: 3, Year: "Jan-2024"},
				{ID: 4, Year: "2024-01-15"},
			}
			out := query.SortBy(dated, query.ChronologicalKey(offerYear, query.Asc))

			Convey("Then they compare as calendar positions", func() {
				So(ids(out), ShouldResemble, []int{2, 3, 4, 1})
			})
		})

		Convey("When several keys are given", func() {
			out := query.SortBy(xs,
				query.ChronologicalKey(offerYear, query.Desc),
				query.NumericKey(offerPackage, query.Desc),
			)

			Convey("Then later keys break ties of earlier ones", func() {
				So(ids(out), ShouldResemble, []int{1, 3, 5, 2, 4})
			})
		})

		Convey("When the sort key is unknown", func() {
			Convey("Then the input order is returned", func() {
				So(ids(query.SortBy(xs, query.SortKey[offer]{Kind: query.Kind(42), Value: offerName})), ShouldResemble, []int{1, 2, 3, 4, 5})
				So(ids(query.SortBy(xs, offerFields.SortKey(query.KindAlphabetical, "colour", query.Asc))), ShouldResemble, []int{1, 2, 3, 4, 5})
				So(ids(query.SortBy(xs, offerFields.SortKey(query.ParseKind("bogus"), "name", query.Asc))), ShouldResemble, []int{1, 2, 3, 4, 5})
			})
		})

		Convey("When sorting an empty or nil slice", func() {
			Convey("Then an empty slice is returned", func() {
				So(query.SortBy[offer](nil, query.AlphabeticalKey(offerName)), ShouldBeEmpty)
			})
		})
	})
}

func TestSortStability(t *testing.T) {
	Convey("Given many records sharing a sort key", t, func() {
		xs := make([]offer, 0, 60)
		for i := 0; i < 60; i++ {
			pkg := []string{"10 LPA", "12 LPA", "10.0 LPA"}[i%3]
			xs = append(xs, offer{ID: i, Package: pkg})
		}

		Convey("When sorting by package in both directions", func() {
			for _, dir := range []query.Direction{query.Asc, query.Desc} {
				out := query.SortBy(xs, query.NumericKey(offerPackage, dir))

				// equal-key records keep their relative input order
				last := map[float64]int{}
				for _, o := range out {
					v := map[string]float64{"10 LPA": 10, "10.0 LPA": 10, "12 LPA": 12}[o.Package]
					if prev, ok := last[v]; ok {
						So(o.ID, ShouldBeGreaterThan, prev)
					}
					last[v] = o.ID
				}
			}
		})
	})
}

func TestParseSortOptions(t *testing.T) {
	Convey("Given textual sort options", t, func() {
		So(query.ParseKind("alphabetical"), ShouldEqual, query.KindAlphabetical)
		So(query.ParseKind("Package"), ShouldEqual, query.KindNumeric)
		So(query.ParseKind("year"), ShouldEqual, query.KindChronological)
		So(query.ParseKind(""), ShouldEqual, query.KindNone)
		So(query.ParseDirection("DESC"), ShouldEqual, query.Desc)
		So(query.ParseDirection("up"), ShouldEqual, query.Asc)
	})
}
