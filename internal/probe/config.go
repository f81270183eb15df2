package probe

import "time"

// Config holds configuration for the query probe
type Config struct {
	BaseURL     string        // Base URL of the service
	NumQueries  int           // Number of search queries to run
	TopK        int           // Neighbors to request per similarity query
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	SameCluster bool          // Restrict similarity queries to the target's cluster
	LogFile     string        // Log file for probe output
	Verbose     bool          // Enable verbose logging
}

// Summary mirrors the compact player shape returned by list endpoints
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Club      string `json:"club"`
	ClusterID int    `json:"cluster_id"`
}

// Match mirrors one search result
type Match struct {
	Summary
	MatchKind string `json:"match"`
}

// Neighbor mirrors one similar-player result
type Neighbor struct {
	Summary
	Distance float64 `json:"distance"`
}

// ClusterInfo mirrors one role cluster profile
type ClusterInfo struct {
	ClusterID int    `json:"cluster_id"`
	Role      string `json:"role"`
	Members   int    `json:"members"`
}

// Stats holds probe statistics
type Stats struct {
	PlayersHarvested   int
	SearchesRun        int
	SearchFailures     int
	SimilarRun         int
	SimilarFailures    int
	OrderingViolations int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
