package roles_test

import (
	"testing"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/model"
	roles "github.com/adityasharma624/Player-Role-Dashboard/internal/domain/roles"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRoleNames(t *testing.T) {
	Convey("Given the reference cluster ids", t, func() {
		Convey("When resolving names", func() {
			Convey("Then each id maps to its documented role", func() {
				So(roles.Name(0), ShouldEqual, "Deep Controller")
				So(roles.Name(1), ShouldEqual, "Final-Third Creator")
				So(roles.Name(2), ShouldEqual, "Defensive Anchor")
				So(roles.Name(3), ShouldEqual, "Wide Attacker")
				So(roles.Name(4), ShouldEqual, "Box-to-Box Engine")
			})
		})

		Convey("When resolving descriptions", func() {
			Convey("Then known ids have text and unknown ids fall back", func() {
				So(roles.Description(2), ShouldContainSubstring, "Defensive specialists")
				So(roles.Description(42), ShouldEqual, "No description available.")
			})
		})

		Convey("When resolving an unknown cluster id", func() {
			Convey("Then a generic label is produced", func() {
				So(roles.Name(9), ShouldEqual, "Cluster 9")
			})
		})
	})
}

func TestTopAttributes(t *testing.T) {
	Convey("Given a centroid with mixed-sign z-scores", t, func() {
		centroid := model.ClusterCentroid{
			ClusterID: 2,
			Attributes: map[string]float64{
				"Tck": 1.8,
				"Pac": -2.1,
				"Pas": 0.3,
				"Mar": 1.8,
				"Fin": -0.1,
			},
		}

		Convey("When taking the top 3", func() {
			got := roles.TopAttributes(centroid, 3)

			Convey("Then magnitude decides the order, negative scores included", func() {
				So(len(got), ShouldEqual, 3)
				So(got[0].Name, ShouldEqual, "Pac")
				So(got[0].Z, ShouldEqual, -2.1)
			})

			Convey("And equal magnitudes are ordered by attribute name", func() {
				So(got[1].Name, ShouldEqual, "Mar")
				So(got[2].Name, ShouldEqual, "Tck")
			})
		})

		Convey("When asking for more attributes than exist", func() {
			got := roles.TopAttributes(centroid, 10)

			Convey("Then every attribute is returned", func() {
				So(len(got), ShouldEqual, 5)
			})
		})
	})
}

func TestTopMemberships(t *testing.T) {
	Convey("Given a player with a probability vector", t, func() {
		p := model.PlayerRecord{
			ID:                   "p1",
			DisplayName:          "Test Player",
			ClusterID:            3,
			ClusterProbabilities: []float64{0.05, 0.20, 0.10, 0.60, 0.05},
		}

		Convey("When taking the top 3 memberships", func() {
			got := roles.TopMemberships(p, 3)

			Convey("Then they are ordered by descending probability", func() {
				So(len(got), ShouldEqual, 3)
				So(got[0].ClusterID, ShouldEqual, 3)
				So(got[0].Probability, ShouldEqual, 0.60)
				So(got[1].ClusterID, ShouldEqual, 1)
				So(got[2].ClusterID, ShouldEqual, 2)
			})

			Convey("And each carries its role name", func() {
				So(got[0].Role, ShouldEqual, "Wide Attacker")
			})
		})

		Convey("When probabilities tie", func() {
			tied := model.PlayerRecord{
				ClusterProbabilities: []float64{0.25, 0.25, 0.5},
			}
			got := roles.TopMemberships(tied, 3)

			Convey("Then the lower cluster id wins the tie", func() {
				So(got[1].ClusterID, ShouldEqual, 0)
				So(got[2].ClusterID, ShouldEqual, 1)
			})
		})
	})
}
