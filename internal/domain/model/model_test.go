package model_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/campus/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

func TestYearDecoding(t *testing.T) {
	Convey("Given a placed student payload", t, func() {
		Convey("When years are JSON numbers", func() {
			var s model.PlacedStudent
			err := json.Unmarshal([]byte(`{"id":1,"batch":2021,"placeYear":2024}`), &s)

			Convey("Then they decode as integers", func() {
				So(err, ShouldBeNil)
				So(s.Batch, ShouldEqual, model.Year(2021))
				So(s.PlaceYear, ShouldEqual, model.Year(2024))
			})
		})

		Convey("When years are JSON strings", func() {
			var s model.PlacedStudent
			err := json.Unmarshal([]byte(`{"id":1,"batch":"2021","placeYear":" 2024 "}`), &s)

			Convey("Then they decode the same way", func() {
				So(err, ShouldBeNil)
				So(s.Batch, ShouldEqual, model.Year(2021))
				So(s.PlaceYear, ShouldEqual, model.Year(2024))
			})
		})

		Convey("When a year is not numeric", func() {
			var s model.PlacedStudent
			err := json.Unmarshal([]byte(`{"placeYear":"soon"}`), &s)

			Convey("Then decoding fails", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When years come from YAML in both forms", func() {
			var s model.PlacedStudent
			err := yaml.Unmarshal([]byte("batch: 2020\nplaceYear: \"2023\"\n"), &s)

			Convey("Then both decode", func() {
				So(err, ShouldBeNil)
				So(s.Batch, ShouldEqual, model.Year(2020))
				So(s.PlaceYear, ShouldEqual, model.Year(2023))
			})
		})
	})

	Convey("Given year validity", t, func() {
		So(model.Year(2024).Valid(), ShouldBeTrue)
		So(model.Year(999).Valid(), ShouldBeFalse)
		So(model.Year(12345).Valid(), ShouldBeFalse)
		So(model.Year(2024).String(), ShouldEqual, "2024")
	})
}

func TestRankingImprovement(t *testing.T) {
	Convey("Given rankings with and without a prior rank", t, func() {
		prior := 12
		improved := model.Ranking{Rank: 5, ImprovedFrom: &prior}
		fresh := model.Ranking{Rank: 40}

		Convey("Then improvement is prior minus current", func() {
			d, ok := improved.Improvement()
			So(ok, ShouldBeTrue)
			So(d, ShouldEqual, 7)
		})

		Convey("Then a missing prior rank reports no improvement", func() {
			_, ok := fresh.Improvement()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestImpactWeight(t *testing.T) {
	Convey("Given the impact levels", t, func() {
		So(model.ImpactWeight(model.ImpactMajor), ShouldBeGreaterThan, model.ImpactWeight(model.ImpactHigh))
		So(model.ImpactWeight(model.ImpactHigh), ShouldBeGreaterThan, model.ImpactWeight(model.ImpactMedium))
		So(model.ImpactWeight(model.ImpactMedium), ShouldBeGreaterThan, model.ImpactWeight("Low"))
		So(model.ImpactWeight("major"), ShouldEqual, model.ImpactWeight(model.ImpactMajor))
		So(model.CanonicalImpact(" high "), ShouldEqual, model.ImpactHigh)
		So(model.CanonicalImpact("Low"), ShouldEqual, "Low")
	})
}
