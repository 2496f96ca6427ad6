package query_test

import (
	"testing"

	"github.com/okian/campus/internal/domain/query"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGroupBy(t *testing.T) {
	Convey("Given offers grouped by branch", t, func() {
		xs := sampleOffers()
		pkg := query.Numeric(offerPackage)

		Convey("When no universe is supplied", func() {
			g := query.GroupBy(xs, offerBranch, pkg)

			Convey("Then keys appear in first-seen order", func() {
				So(g.Keys, ShouldResemble, []string{"CSE", "IT", "ECE", "MECH"})
			})

			Convey("Then stats are computed per group", func() {
				cse := g.Get("CSE")
				So(cse.Count, ShouldEqual, 2)
				So(cse.Sum, ShouldEqual, 42.0)
				So(cse.Average, ShouldEqual, 21.0)
				So(cse.Min, ShouldEqual, 20.0)
				So(cse.Max, ShouldEqual, 22.0)
			})

			Convey("Then a malformed value contributes 0", func() {
				mech := g.Get("MECH")
				So(mech.Count, ShouldEqual, 1)
				So(mech.Sum, ShouldEqual, 0.0)
				So(mech.Average, ShouldEqual, 0.0)
			})
		})

		Convey("When the full universe of branches is supplied", func() {
			universe := []string{"CSE", "IT", "ECE", "EEE", "MECH", "CIVIL"}
			g := query.GroupBy(xs, offerBranch, pkg, universe...)

			Convey("Then every universe key has a group in universe order", func() {
				So(g.Keys, ShouldResemble, universe)
			})

			Convey("Then empty groups report zeros, not NaN", func() {
				for _, b := range []string{"EEE", "CIVIL"} {
					st := g.Get(b)
					So(st.Count, ShouldEqual, 0)
					So(st.Average, ShouldEqual, 0.0)
					So(st.Min, ShouldEqual, 0.0)
					So(st.Max, ShouldEqual, 0.0)
				}
			})

			Convey("Then counts are conserved", func() {
				So(g.Total(), ShouldEqual, len(xs))
			})
		})

		Convey("When records fall outside the universe", func() {
			g := query.GroupBy(xs, offerBranch, pkg, "CIVIL", "CSE", "CSE")

			Convey("Then they still get groups after the universe keys", func() {
				So(g.Keys, ShouldResemble, []string{"CIVIL", "CSE", "IT", "ECE", "MECH"})
				So(g.Len(), ShouldEqual, 5)
				So(g.Total(), ShouldEqual, len(xs))
			})
		})

		Convey("When averages need rounding", func() {
			ys := []offer{{Branch: "A", Package: "22 LPA"}, {Branch: "A", Package: "20 LPA"}, {Branch: "A", Package: "4.2 LPA"}}
			g := query.GroupBy(ys, offerBranch, pkg)

			Convey("Then the average is sum/count rounded to 2 decimals", func() {
				So(g.Get("A").Average, ShouldEqual, 15.4)
			})
		})

		Convey("When no value accessor is given", func() {
			g := query.GroupBy(xs, offerYear, nil)

			Convey("Then only counts are produced", func() {
				So(g.Get("2024").Count, ShouldEqual, 3)
				So(g.Get("2024").Sum, ShouldEqual, 0.0)
			})
		})

		Convey("When grouping an empty collection", func() {
			g := query.GroupBy([]offer{}, offerBranch, pkg)

			Convey("Then there are no groups", func() {
				So(g.Len(), ShouldEqual, 0)
				So(g.Total(), ShouldEqual, 0)
			})
		})
	})
}

func TestCountDistinct(t *testing.T) {
	Convey("Given offers", t, func() {
		xs := sampleOffers()
		So(query.CountDistinct(xs, offerBranch), ShouldEqual, 4)
		So(query.CountDistinct(xs, offerLocation), ShouldEqual, 4)
		So(query.CountDistinct([]offer{}, offerBranch), ShouldEqual, 0)
	})
}
