// Package roles maps cluster ids to human-readable role documentation.
package roles

import (
	"fmt"
	"sort"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/model"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/types"
)

// Role names and descriptions for the reference deployment's five clusters.
// Unknown ids fall back to a generic label; the engine itself never needs
// these, they serve the documentation surface only.
var clusterNames = map[int]string{
	0: "Deep Controller",
	1: "Final-Third Creator",
	2: "Defensive Anchor",
	3: "Wide Attacker",
	4: "Box-to-Box Engine",
}

var clusterDescriptions = map[int]string{
	0: "Deep-lying playmakers who control the tempo from deeper positions. Strong passing, vision, and positioning.",
	1: "Creative players who operate in the final third. Excellent passing, vision, and technical ability.",
	2: "Defensive specialists who anchor the team. Strong physical attributes, tackling, marking, and positioning.",
	3: "Wide attacking players with pace, dribbling, and finishing ability. Operate in wide areas and attack spaces.",
	4: "Dynamic midfielders who cover ground. Balance of defensive and attacking attributes with good stamina.",
}

// Name returns the role name for a cluster id.
func Name(clusterID int) string {
	if name, ok := clusterNames[clusterID]; ok {
		return name
	}
	return fmt.Sprintf("Cluster %d", clusterID)
}

// Description returns the role description for a cluster id.
func Description(clusterID int) string {
	if desc, ok := clusterDescriptions[clusterID]; ok {
		return desc
	}
	return "No description available."
}

// TopAttributes returns the n centroid attributes with the largest |z|,
// strongest first. High negative scores matter as much as high positive ones.
// Equal magnitudes are ordered by attribute name for determinism.
func TopAttributes(centroid model.ClusterCentroid, n int) []types.AttributeScore {
	attrs := make([]types.AttributeScore, 0, len(centroid.Attributes))
	for name, z := range centroid.Attributes {
		attrs = append(attrs, types.AttributeScore{Name: name, Z: z})
	}
	sort.Slice(attrs, func(i, j int) bool {
		ai, aj := abs(attrs[i].Z), abs(attrs[j].Z)
		if ai != aj {
			return ai > aj
		}
		return attrs[i].Name < attrs[j].Name
	})
	if n >= 0 && len(attrs) > n {
		attrs = attrs[:n]
	}
	return attrs
}

// TopMemberships returns the player's n most probable clusters, descending.
// Equal probabilities are ordered by cluster id.
func TopMemberships(p model.PlayerRecord, n int) []types.Membership {
	ms := make([]types.Membership, 0, len(p.ClusterProbabilities))
	for id, prob := range p.ClusterProbabilities {
		ms = append(ms, types.Membership{ClusterID: id, Role: Name(id), Probability: prob})
	}
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Probability > ms[j].Probability
	})
	if n >= 0 && len(ms) > n {
		ms = ms[:n]
	}
	return ms
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
