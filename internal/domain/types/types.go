// Package types contains common result shapes shared between the service
// facade and the HTTP API.
package types

// PlayerSummary is the compact player shape used by list-like responses.
type PlayerSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Club             string `json:"club,omitempty"`
	CurrentAbility   int    `json:"ca"`
	PotentialAbility int    `json:"pa"`
	ClusterID        int    `json:"cluster_id"`
}

// Match is one ranked search result.
type Match struct {
	PlayerSummary
	// MatchKind is "exact", "prefix" or "substring".
	MatchKind string `json:"match"`
}

// Neighbor is one similar-player result.
type Neighbor struct {
	PlayerSummary
	Distance float64 `json:"distance"`
}

// Membership is one entry of a player's cluster probability vector.
type Membership struct {
	ClusterID   int     `json:"cluster_id"`
	Role        string  `json:"role"`
	Probability float64 `json:"probability"`
}

// AttributeScore pairs an attribute name with a z-score.
type AttributeScore struct {
	Name string  `json:"name"`
	Z    float64 `json:"z"`
}

// PlayerDetail is the full card for one player.
type PlayerDetail struct {
	PlayerSummary
	Role           string             `json:"role"`
	AbilityFlagged bool               `json:"ability_flagged,omitempty"`
	Coordinates    []float64          `json:"coordinates"`
	Attributes     map[string]float64 `json:"attributes"`
	Memberships    []Membership       `json:"memberships"`
}

// ClusterInfo documents one role cluster.
type ClusterInfo struct {
	ClusterID     int              `json:"cluster_id"`
	Role          string           `json:"role"`
	Description   string           `json:"description"`
	Members       int              `json:"members"`
	TopAttributes []AttributeScore `json:"top_attributes"`
}
