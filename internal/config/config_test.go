package config_test

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/config"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.PlayersCSV, convey.ShouldEqual, "data/players.csv")
			convey.So(cfg.CentroidsCSV, convey.ShouldEqual, "data/centroids.csv")
			convey.So(cfg.DefaultSearchLimit, convey.ShouldEqual, 10)
			convey.So(cfg.MaxSearchLimit, convey.ShouldEqual, 50)
			convey.So(cfg.DefaultSimilarK, convey.ShouldEqual, 5)
			convey.So(cfg.MaxSimilarK, convey.ShouldEqual, 50)
			convey.So(cfg.SameClusterDefault, convey.ShouldBeTrue)
			convey.So(cfg.ProbabilityTolerance, convey.ShouldEqual, 1e-3)
		})
	})
}
