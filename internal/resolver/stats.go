package resolver

import "time"

// Stats is the statistics surface for one resolution run.
type Stats struct {
	RunID          string
	TotalRecordsA  int
	TotalRecordsB  int
	Comparisons    int
	MatchesFound   int
	MultiMatches   int
	NearMisses     int
	UnmatchedA     int
	UnmatchedB     int
	ResolvedTotal  int
	MatchRate      float64
	MatchThreshold float64
	Duration       time.Duration
}
