package probe

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVerifySearchOrdering(t *testing.T) {
	Convey("Given search results with properly banded matches", t, func() {
		results := []searchResult{
			{
				query: "silva",
				matches: []Match{
					{Summary: Summary{ID: "p0001", Name: "Silva"}, MatchKind: "exact"},
					{Summary: Summary{ID: "p0002", Name: "Silvano"}, MatchKind: "prefix"},
					{Summary: Summary{ID: "p0003", Name: "Da Silva"}, MatchKind: "substring"},
				},
			},
		}

		Convey("When the ordering is verified", func() {
			stats := &Stats{}
			verifySearchOrdering(results, stats)

			Convey("Then no violations are recorded", func() {
				So(stats.OrderingViolations, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a result where a stronger band follows a weaker one", t, func() {
		results := []searchResult{
			{
				query: "silva",
				matches: []Match{
					{Summary: Summary{ID: "p0002", Name: "Silvano"}, MatchKind: "prefix"},
					{Summary: Summary{ID: "p0001", Name: "Silva"}, MatchKind: "exact"},
				},
			},
		}

		Convey("When the ordering is verified", func() {
			stats := &Stats{}
			verifySearchOrdering(results, stats)

			Convey("Then one violation is recorded", func() {
				So(stats.OrderingViolations, ShouldEqual, 1)
			})
		})
	})
}

func TestVerifyNeighbors(t *testing.T) {
	config := &Config{TopK: 3, SameCluster: true}
	target := Summary{ID: "p0001", Name: "Target", ClusterID: 2}

	Convey("Given a well formed neighbor list", t, func() {
		results := []similarResult{
			{
				target: target,
				neighbors: []Neighbor{
					{Summary: Summary{ID: "p0002", ClusterID: 2}, Distance: 0.5},
					{Summary: Summary{ID: "p0003", ClusterID: 2}, Distance: 1.2},
				},
			},
		}

		Convey("When the neighbors are verified", func() {
			stats := &Stats{}
			verifyNeighbors(config, results, stats)

			Convey("Then no violations are recorded", func() {
				So(stats.OrderingViolations, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a neighbor list containing the target itself", t, func() {
		results := []similarResult{
			{
				target: target,
				neighbors: []Neighbor{
					{Summary: Summary{ID: "p0001", ClusterID: 2}, Distance: 0},
				},
			},
		}

		Convey("When the neighbors are verified", func() {
			stats := &Stats{}
			verifyNeighbors(config, results, stats)

			Convey("Then a violation is recorded", func() {
				So(stats.OrderingViolations, ShouldEqual, 1)
			})
		})
	})

	Convey("Given distances that are not ascending", t, func() {
		results := []similarResult{
			{
				target: target,
				neighbors: []Neighbor{
					{Summary: Summary{ID: "p0002", ClusterID: 2}, Distance: 2.0},
					{Summary: Summary{ID: "p0003", ClusterID: 2}, Distance: 0.4},
				},
			},
		}

		Convey("When the neighbors are verified", func() {
			stats := &Stats{}
			verifyNeighbors(config, results, stats)

			Convey("Then a violation is recorded", func() {
				So(stats.OrderingViolations, ShouldEqual, 1)
			})
		})
	})

	Convey("Given a neighbor outside the target's cluster with same-cluster requested", t, func() {
		results := []similarResult{
			{
				target: target,
				neighbors: []Neighbor{
					{Summary: Summary{ID: "p0002", ClusterID: 4}, Distance: 0.5},
				},
			},
		}

		Convey("When the neighbors are verified", func() {
			stats := &Stats{}
			verifyNeighbors(config, results, stats)

			Convey("Then a violation is recorded", func() {
				So(stats.OrderingViolations, ShouldEqual, 1)
			})
		})
	})

	Convey("Given more neighbors than requested", t, func() {
		results := []similarResult{
			{
				target: target,
				neighbors: []Neighbor{
					{Summary: Summary{ID: "p0002", ClusterID: 2}, Distance: 0.1},
					{Summary: Summary{ID: "p0003", ClusterID: 2}, Distance: 0.2},
					{Summary: Summary{ID: "p0004", ClusterID: 2}, Distance: 0.3},
					{Summary: Summary{ID: "p0005", ClusterID: 2}, Distance: 0.4},
				},
			},
		}

		Convey("When the neighbors are verified", func() {
			stats := &Stats{}
			verifyNeighbors(config, results, stats)

			Convey("Then a violation is recorded", func() {
				So(stats.OrderingViolations, ShouldEqual, 1)
			})
		})
	})
}

func TestBuildQuery(t *testing.T) {
	Convey("Given a harvested player name", t, func() {
		Convey("When a query is derived", func() {
			q := buildQuery("Martin Silva")

			Convey("Then the query is never empty", func() {
				So(q, ShouldNotBeBlank)
			})
		})
	})
}
