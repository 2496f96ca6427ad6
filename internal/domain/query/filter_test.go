package query_test

import (
	"testing"

	"github.com/okian/campus/internal/domain/query"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFilter(t *testing.T) {
	Convey("Given a collection of offers", t, func() {
		xs := sampleOffers()

		Convey("When filtering with no predicates", func() {
			out := query.Filter(xs)

			Convey("Then the result equals the input but is a new slice", func() {
				So(out, ShouldResemble, xs)
				out[0].Name = "changed"
				So(xs[0].Name, ShouldEqual, "Google")
			})
		})

		Convey("When filtering with only disabled predicates", func() {
			out := query.Filter(xs, nil, query.Equals(offerBranch, "All"))

			Convey("Then everything is kept", func() {
				So(ids(out), ShouldResemble, []int{1, 2, 3, 4, 5})
			})
		})

		Convey("When searching a location case-insensitively", func() {
			out := query.Filter(xs, query.Text("bangalore", offerLocation))

			Convey("Then 'Bangalore, India' matches", func() {
				So(ids(out), ShouldResemble, []int{1, 4})
			})
		})

		Convey("When a text predicate spans several fields", func() {
			out := query.Filter(xs, query.Text("MICRO", offerName, offerLocation))

			Convey("Then any field may match", func() {
				So(ids(out), ShouldResemble, []int{2})
			})
		})

		Convey("When a blank text query is given", func() {
			Convey("Then the predicate is disabled", func() {
				So(query.Text("   ", offerName), ShouldBeNil)
			})
		})

		Convey("When filtering by an inclusive package range", func() {
			edge := []offer{
				{ID: 10, Package: "22 LPA"},
				{ID: 11, Package: "22.1 LPA"},
				{ID: 12, Package: "10 LPA"},
				{ID: 13, Package: "9.99 LPA"},
				{ID: 14, Package: "not disclosed"},
			}
			out := query.Filter(edge, query.Range(offerPackage, 10, 22))

			Convey("Then both bounds are included and unparseable values excluded", func() {
				So(ids(out), ShouldResemble, []int{10, 12})
			})
		})

		Convey("When predicates are combined", func() {
			out := query.Filter(xs,
				query.Text("india", offerLocation),
				query.Equals(offerBranch, "CSE"),
				query.Range(offerPackage, 20, 30),
			)

			Convey("Then they are ANDed and input order is kept", func() {
				So(ids(out), ShouldResemble, []int{1, 4})
			})
		})

		Convey("When using And to compose predicates", func() {
			p := query.And(query.Equals(offerYear, "2024"), nil, query.Range(offerPackage, 0, 5))

			Convey("Then the composite behaves like Filter with both", func() {
				So(ids(query.Filter(xs, p)), ShouldResemble, []int{3})
				So(query.And[offer](nil, nil), ShouldBeNil)
			})
		})

		Convey("When matching a multi-valued field", func() {
			out := query.Filter(xs, query.AnyOf(func(o offer) []string { return o.Branches }, "IT"))

			Convey("Then records listing the value match", func() {
				So(ids(out), ShouldResemble, []int{1})
			})
		})

		Convey("When resolving fields by name", func() {
			Convey("Then unknown names are no-ops", func() {
				So(offerFields.Equals("colour", "red"), ShouldBeNil)
				So(offerFields.Range("colour", 0, 1), ShouldBeNil)
				So(offerFields.Text("x", "colour"), ShouldBeNil)
				So(ids(query.Filter(xs, offerFields.Equals("colour", "red"))), ShouldResemble, []int{1, 2, 3, 4, 5})
			})

			Convey("Then known names build working predicates", func() {
				out := query.Filter(xs, offerFields.Text("mysore", "name", "location"))
				So(ids(out), ShouldResemble, []int{3})
			})
		})

		Convey("When checking the match-all sentinel", func() {
			So(query.IsMatchAll("All"), ShouldBeTrue)
			So(query.IsMatchAll("all"), ShouldBeTrue)
			So(query.IsMatchAll(""), ShouldBeTrue)
			So(query.IsMatchAll("CSE"), ShouldBeFalse)
		})
	})
}

func TestFilterProperties(t *testing.T) {
	Convey("Given any predicate set", t, func() {
		xs := sampleOffers()
		sets := [][]query.Predicate[offer]{
			nil,
			{query.Text("india", offerLocation)},
			{query.Range(offerPackage, 4, 21), query.Equals(offerYear, "2024")},
			{query.Equals(offerBranch, "CIVIL")},
		}

		Convey("Then filtering is idempotent", func() {
			for _, p := range sets {
				once := query.Filter(xs, p...)
				So(query.Filter(once, p...), ShouldResemble, once)
			}
		})

		Convey("Then filtering is deterministic", func() {
			for _, p := range sets {
				So(query.Filter(xs, p...), ShouldResemble, query.Filter(xs, p...))
			}
		})

		Convey("Then the input is never modified", func() {
			before := sampleOffers()
			for _, p := range sets {
				_ = query.Filter(xs, p...)
			}
			So(xs, ShouldResemble, before)
		})
	})
}
