package repository_test

import (
	"context"
	"fmt"
	"testing"

	repository "github.com/adityasharma624/Player-Role-Dashboard/internal/adapters/repository"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func player(id, name string, cluster int, coords []float64) model.PlayerRecord {
	probs := []float64{0.1, 0.1, 0.1}
	probs[cluster] = 0.8
	rest := (1.0 - 0.8) / 2
	for i := range probs {
		if i != cluster {
			probs[i] = rest
		}
	}
	return model.PlayerRecord{
		ID:                   id,
		DisplayName:          name,
		Club:                 "FC Test",
		CurrentAbility:       150,
		PotentialAbility:     170,
		Attributes:           map[string]float64{"Pas": 1.2, "Tck": -0.4},
		ClusterID:            cluster,
		ClusterProbabilities: probs,
		Coordinates:          coords,
	}
}

func TestBuildValidation(t *testing.T) {
	ctx := context.Background()

	Convey("Given well-formed player records", t, func() {
		players := []model.PlayerRecord{
			player("p1", "Martin Ødegaard", 0, []float64{0, 0}),
			player("p2", "Declan Rice", 1, []float64{1, 0}),
			player("p3", "Bukayo Saka", 2, []float64{0, 1}),
		}

		Convey("When building a catalog", func() {
			cat, err := repository.Build(ctx, players, nil)

			Convey("Then it should succeed", func() {
				So(err, ShouldBeNil)
				So(cat, ShouldNotBeNil)
				So(cat.Count(), ShouldEqual, 3)
				So(cat.ClusterCount(), ShouldEqual, 3)
				So(cat.Dimensions(), ShouldEqual, 2)
			})

			Convey("And search keys should be recomputed from display names", func() {
				p, err := cat.Get(ctx, "p1")
				So(err, ShouldBeNil)
				So(p.SearchKey, ShouldEqual, "martin odegaard")
			})

			Convey("And All should preserve construction order across calls", func() {
				first := cat.All(ctx)
				second := cat.All(ctx)
				So(len(first), ShouldEqual, 3)
				for i := range first {
					So(first[i].ID, ShouldEqual, second[i].ID)
				}
				So(first[0].ID, ShouldEqual, "p1")
				So(first[2].ID, ShouldEqual, "p3")
			})

			Convey("And cluster sizes should be tracked", func() {
				So(cat.ClusterSize(0), ShouldEqual, 1)
				So(cat.ClusterSize(1), ShouldEqual, 1)
				So(cat.ClusterSize(4), ShouldEqual, 0)
			})
		})

		Convey("When a loader-supplied search key is stale", func() {
			players[0].SearchKey = "something else entirely"
			cat, err := repository.Build(ctx, players, nil)

			Convey("Then Build should overwrite it deterministically", func() {
				So(err, ShouldBeNil)
				p, err := cat.Get(ctx, "p1")
				So(err, ShouldBeNil)
				So(p.SearchKey, ShouldEqual, "martin odegaard")
			})
		})
	})

	Convey("Given records violating catalog invariants", t, func() {
		base := func() []model.PlayerRecord {
			return []model.PlayerRecord{
				player("p1", "Player One", 0, []float64{0, 0}),
				player("p2", "Player Two", 1, []float64{1, 0}),
			}
		}

		Convey("When two records share an id", func() {
			players := base()
			players[1].ID = "p1"
			_, err := repository.Build(ctx, players, nil)

			Convey("Then Build should fail with ErrDataIntegrity", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, repository.ErrDataIntegrity)
			})
		})

		Convey("When a record has an empty id", func() {
			players := base()
			players[0].ID = ""
			_, err := repository.Build(ctx, players, nil)

			Convey("Then Build should fail with ErrDataIntegrity", func() {
				So(err, ShouldWrap, repository.ErrDataIntegrity)
			})
		})

		Convey("When attribute name sets diverge across records", func() {
			players := base()
			players[1].Attributes = map[string]float64{"Vis": 0.9}
			_, err := repository.Build(ctx, players, nil)

			Convey("Then Build should fail with ErrDataIntegrity", func() {
				So(err, ShouldWrap, repository.ErrDataIntegrity)
			})
		})

		Convey("When a record renames an attribute but keeps the count", func() {
			players := base()
			players[1].Attributes = map[string]float64{"Pas": 1.2, "Vis": 0.9}
			_, err := repository.Build(ctx, players, nil)

			Convey("Then Build should fail with ErrDataIntegrity", func() {
				So(err, ShouldWrap, repository.ErrDataIntegrity)
			})
		})

		Convey("When coordinate lengths are mixed", func() {
			players := base()
			players[1].Coordinates = []float64{1, 0, 3}
			_, err := repository.Build(ctx, players, nil)

			Convey("Then Build should fail with ErrDataIntegrity", func() {
				So(err, ShouldWrap, repository.ErrDataIntegrity)
			})
		})

		Convey("When a cluster id is out of range", func() {
			players := base()
			players[1].ClusterID = 7
			players[1].ClusterProbabilities = []float64{0.2, 0.2, 0.6}
			_, err := repository.Build(ctx, players, nil)

			Convey("Then Build should fail with ErrDataIntegrity", func() {
				So(err, ShouldWrap, repository.ErrDataIntegrity)
			})
		})

		Convey("When the probability vector length differs from K", func() {
			players := base()
			players[1].ClusterProbabilities = []float64{0.5, 0.5}
			_, err := repository.Build(ctx, players, nil)

			Convey("Then Build should fail with ErrDataIntegrity", func() {
				So(err, ShouldWrap, repository.ErrDataIntegrity)
			})
		})

		Convey("When probabilities do not sum to ~1", func() {
			players := base()
			players[1].ClusterProbabilities = []float64{0.1, 0.7, 0.1}
			_, err := repository.Build(ctx, players, nil)

			Convey("Then Build should fail with ErrDataIntegrity", func() {
				So(err, ShouldWrap, repository.ErrDataIntegrity)
			})

			Convey("But a widened tolerance should accept it", func() {
				_, err := repository.Build(ctx, players, nil, repository.WithProbabilityTolerance(0.2))
				So(err, ShouldBeNil)
			})
		})

		Convey("When the assigned cluster is not the arg-max probability", func() {
			players := base()
			players[1].ClusterID = 0
			players[1].ClusterProbabilities = []float64{0.2, 0.7, 0.1}
			_, err := repository.Build(ctx, players, nil)

			Convey("Then Build should fail with ErrDataIntegrity", func() {
				So(err, ShouldWrap, repository.ErrDataIntegrity)
			})
		})
	})
}

func TestCatalogLookups(t *testing.T) {
	ctx := context.Background()

	Convey("Given a built catalog with centroids", t, func() {
		players := []model.PlayerRecord{
			player("p1", "Player One", 0, []float64{0, 0}),
			player("p2", "Player Two", 1, []float64{1, 0}),
		}
		centroids := []model.ClusterCentroid{
			{ClusterID: 1, Attributes: map[string]float64{"Pas": 0.9}},
			{ClusterID: 0, Attributes: map[string]float64{"Tck": 1.4}},
		}
		cat, err := repository.Build(ctx, players, centroids)
		So(err, ShouldBeNil)

		Convey("When getting a known id", func() {
			p, err := cat.Get(ctx, "p2")

			Convey("Then the record should come back intact", func() {
				So(err, ShouldBeNil)
				So(p.DisplayName, ShouldEqual, "Player Two")
				So(p.ClusterID, ShouldEqual, 1)
			})
		})

		Convey("When getting an unknown id", func() {
			_, err := cat.Get(ctx, "nope")

			Convey("Then it should fail with ErrNotFound", func() {
				So(err, ShouldWrap, repository.ErrNotFound)
			})
		})

		Convey("When fetching centroids", func() {
			Convey("Then a known cluster should resolve", func() {
				cen, err := cat.Centroid(ctx, 0)
				So(err, ShouldBeNil)
				So(cen.Attributes["Tck"], ShouldEqual, 1.4)
			})

			Convey("And an unknown cluster should fail with ErrNotFound", func() {
				_, err := cat.Centroid(ctx, 2)
				So(err, ShouldWrap, repository.ErrNotFound)
			})

			Convey("And Centroids should be ordered by cluster id", func() {
				all := cat.Centroids(ctx)
				So(len(all), ShouldEqual, 2)
				So(all[0].ClusterID, ShouldEqual, 0)
				So(all[1].ClusterID, ShouldEqual, 1)
			})
		})

		Convey("When duplicate centroids are supplied", func() {
			dup := append(centroids, model.ClusterCentroid{ClusterID: 1})
			_, err := repository.Build(ctx, players, dup)

			Convey("Then Build should fail with ErrDataIntegrity", func() {
				So(err, ShouldWrap, repository.ErrDataIntegrity)
			})
		})
	})

	Convey("Given concurrent readers of a shared catalog", t, func() {
		players := make([]model.PlayerRecord, 0, 50)
		for i := 0; i < 50; i++ {
			players = append(players, player(fmt.Sprintf("p%02d", i), fmt.Sprintf("Player %02d", i), i%3, []float64{float64(i), 0}))
		}
		cat, err := repository.Build(context.Background(), players, nil)
		So(err, ShouldBeNil)

		Convey("When many goroutines read at once", func() {
			done := make(chan error, 10)
			for g := 0; g < 10; g++ {
				go func() {
					ctx := context.Background()
					for i := 0; i < 50; i++ {
						if _, err := cat.Get(ctx, fmt.Sprintf("p%02d", i)); err != nil {
							done <- err
							return
						}
					}
					_ = cat.All(ctx)
					done <- nil
				}()
			}

			Convey("Then no read should fail", func() {
				for g := 0; g < 10; g++ {
					So(<-done, ShouldBeNil)
				}
			})
		})
	})
}
