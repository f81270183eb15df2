// Package model contains domain models passed between layers.
package model

// Documented ability domain. Values outside are accepted but flagged for display.
const (
	AbilityMin = 0
	AbilityMax = 200
)

// PlayerRecord holds one player as produced by the offline clustering run.
// Records are built once at catalog construction and never mutated; the maps
// and slices they carry are shared read-only.
type PlayerRecord struct {
	ID          string // unique within a catalog
	DisplayName string // original-script name, may carry diacritics
	SearchKey   string // normalized form of DisplayName, computed at construction
	Club        string // optional

	CurrentAbility   int
	PotentialAbility int

	// Attributes maps scouting attribute names to z-scores.
	Attributes map[string]float64

	// ClusterID is the assigned role cluster, always the arg-max of
	// ClusterProbabilities.
	ClusterID            int
	ClusterProbabilities []float64

	// Coordinates is the reduced-space position used for distance ranking.
	Coordinates []float64
}

// AbilityFlagged reports whether CA or PA falls outside the documented domain.
func (p PlayerRecord) AbilityFlagged() bool {
	return p.CurrentAbility < AbilityMin || p.CurrentAbility > AbilityMax ||
		p.PotentialAbility < AbilityMin || p.PotentialAbility > AbilityMax
}

// ClusterCentroid is the representative attribute profile of one role cluster.
type ClusterCentroid struct {
	ClusterID  int
	Attributes map[string]float64 // attribute name -> z-score
}
