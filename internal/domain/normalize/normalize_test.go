package normalize_test

import (
	"testing"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestKey(t *testing.T) {
	Convey("Given accented player names", t, func() {
		Convey("When normalizing combining-mark accents", func() {
			Convey("Then accents should fold to base letters", func() {
				So(normalize.Key("José"), ShouldEqual, "jose")
				So(normalize.Key("Müller"), ShouldEqual, "muller")
				So(normalize.Key("Kovačić"), ShouldEqual, "kovacic")
				So(normalize.Key("Szoboszlai Dominik"), ShouldEqual, "szoboszlai dominik")
			})
		})

		Convey("When normalizing letters without a decomposition", func() {
			Convey("Then they should fold to their base form too", func() {
				So(normalize.Key("Ødegaard"), ShouldEqual, "odegaard")
				So(normalize.Key("Ødegaard"), ShouldEqual, normalize.Key("odegaard"))
				So(normalize.Key("Bjørn"), ShouldEqual, "bjorn")
				So(normalize.Key("Đorđe"), ShouldEqual, "dorde")
				So(normalize.Key("Lewandowski Łukasz"), ShouldEqual, "lewandowski lukasz")
				So(normalize.Key("Großkreutz"), ShouldEqual, "grosskreutz")
			})
		})

		Convey("When the accented and unaccented spellings differ only in marks", func() {
			Convey("Then both should produce the same key", func() {
				So(normalize.Key("Martin Ødegaard"), ShouldEqual, normalize.Key("martin odegaard"))
				So(normalize.Key("N'Golo Kanté"), ShouldEqual, normalize.Key("N'Golo Kante"))
			})
		})
	})

	Convey("Given whitespace-heavy input", t, func() {
		Convey("When normalizing", func() {
			Convey("Then leading/trailing space is trimmed and runs collapse", func() {
				So(normalize.Key("  Martin   Ødegaard  "), ShouldEqual, "martin odegaard")
				So(normalize.Key("\tKevin\nDe  Bruyne"), ShouldEqual, "kevin de bruyne")
			})
		})
	})

	Convey("Given edge-case input", t, func() {
		Convey("When normalizing the empty string", func() {
			So(normalize.Key(""), ShouldEqual, "")
		})

		Convey("When normalizing whitespace only", func() {
			So(normalize.Key("   \t "), ShouldEqual, "")
		})

		Convey("When normalizing already-normalized text", func() {
			Convey("Then the result should be unchanged (idempotence)", func() {
				inputs := []string{"Martin Ødegaard", "José María", "  spaced   out ", "plain name", ""}
				for _, in := range inputs {
					once := normalize.Key(in)
					So(normalize.Key(once), ShouldEqual, once)
				}
			})
		})
	})
}
