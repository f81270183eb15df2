package similarity_test

import (
	"context"
	"testing"

	repository "github.com/adityasharma624/Player-Role-Dashboard/internal/adapters/repository"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/model"
	similarity "github.com/adityasharma624/Player-Role-Dashboard/internal/domain/similarity"
	. "github.com/smartystreets/goconvey/convey"
)

func record(id, name string, cluster int, coords []float64) model.PlayerRecord {
	probs := make([]float64, 2)
	for i := range probs {
		probs[i] = 0.2
	}
	probs[cluster] = 0.8
	return model.PlayerRecord{
		ID:                   id,
		DisplayName:          name,
		ClusterID:            cluster,
		ClusterProbabilities: probs,
		Coordinates:          coords,
	}
}

func TestSimilar(t *testing.T) {
	ctx := context.Background()

	Convey("Given players A, B in cluster 0 and C in cluster 1", t, func() {
		players := []model.PlayerRecord{
			record("a", "Alice", 0, []float64{0, 0}),
			record("b", "Bob", 0, []float64{1, 0}),
			record("c", "Carol", 1, []float64{0, 1}),
		}
		cat, err := repository.Build(ctx, players, nil)
		So(err, ShouldBeNil)
		eng := similarity.New(cat)

		Convey("When asking for same-cluster neighbors of A", func() {
			got, err := eng.Similar(ctx, "a", 2, true)

			Convey("Then only B is returned, at distance 1", func() {
				So(err, ShouldBeNil)
				So(len(got), ShouldEqual, 1)
				So(got[0].Player.ID, ShouldEqual, "b")
				So(got[0].Distance, ShouldEqual, 1.0)
			})
		})

		Convey("When asking for cross-cluster neighbors of A", func() {
			got, err := eng.Similar(ctx, "a", 2, false)

			Convey("Then B and C are both returned at distance 1, tie broken by name", func() {
				So(err, ShouldBeNil)
				So(len(got), ShouldEqual, 2)
				So(got[0].Player.DisplayName, ShouldEqual, "Bob")
				So(got[1].Player.DisplayName, ShouldEqual, "Carol")
				So(got[0].Distance, ShouldEqual, 1.0)
				So(got[1].Distance, ShouldEqual, 1.0)
			})
		})

		Convey("When asking for neighbors of an unknown player", func() {
			_, err := eng.Similar(ctx, "zz", 2, true)

			Convey("Then it fails with ErrNotFound", func() {
				So(err, ShouldWrap, repository.ErrNotFound)
			})
		})
	})

	Convey("Given a richer cluster", t, func() {
		players := []model.PlayerRecord{
			record("t", "Target", 0, []float64{0, 0}),
			record("n1", "Near One", 0, []float64{0.5, 0}),
			record("n2", "Near Two", 0, []float64{0, 2}),
			record("n3", "Near Three", 0, []float64{3, 4}),
			record("twin", "Twin", 0, []float64{0, 0}),
			record("x", "Other Cluster", 1, []float64{0.1, 0}),
		}
		cat, err := repository.Build(ctx, players, nil)
		So(err, ShouldBeNil)
		eng := similarity.New(cat)

		Convey("When asking for the full same-cluster ranking", func() {
			got, err := eng.Similar(ctx, "t", 10, true)
			So(err, ShouldBeNil)

			Convey("Then the target itself never appears", func() {
				for _, n := range got {
					So(n.Player.ID, ShouldNotEqual, "t")
				}
			})

			Convey("And every result shares the target's cluster", func() {
				for _, n := range got {
					So(n.Player.ClusterID, ShouldEqual, 0)
				}
			})

			Convey("And distances are ascending, starting at exactly zero for the twin", func() {
				So(len(got), ShouldEqual, 4)
				So(got[0].Player.ID, ShouldEqual, "twin")
				So(got[0].Distance, ShouldEqual, 0.0)
				for i := 1; i < len(got); i++ {
					So(got[i].Distance, ShouldBeGreaterThanOrEqualTo, got[i-1].Distance)
				}
				So(got[3].Player.ID, ShouldEqual, "n3")
				So(got[3].Distance, ShouldEqual, 5.0)
			})
		})

		Convey("When k is smaller than the pool", func() {
			got, err := eng.Similar(ctx, "t", 2, true)

			Convey("Then only the k nearest are returned", func() {
				So(err, ShouldBeNil)
				So(len(got), ShouldEqual, 2)
				So(got[0].Player.ID, ShouldEqual, "twin")
				So(got[1].Player.ID, ShouldEqual, "n1")
			})
		})

		Convey("When k is zero or negative", func() {
			got, err := eng.Similar(ctx, "t", 0, true)

			Convey("Then no neighbors are returned without error", func() {
				So(err, ShouldBeNil)
				So(got, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a singleton cluster", t, func() {
		players := []model.PlayerRecord{
			record("solo", "Solo", 0, []float64{0, 0}),
			record("other", "Other", 1, []float64{5, 5}),
		}
		cat, err := repository.Build(ctx, players, nil)
		So(err, ShouldBeNil)
		eng := similarity.New(cat)

		Convey("When asking for same-cluster neighbors of the lone member", func() {
			got, err := eng.Similar(ctx, "solo", 3, true)

			Convey("Then the result is empty, not an error", func() {
				So(err, ShouldBeNil)
				So(got, ShouldBeEmpty)
			})
		})
	})
}
