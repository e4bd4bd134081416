// File: services/schedule/types.go
package schedule

import "time"

// NormalizedInterval is one availability record resolved to absolute start
// and end instants within a single calendar day. Derived, never persisted.
type NormalizedInterval struct {
	UserID   string
	Start    time.Time
	End      time.Time
	RecordID string
}

// MergedRange is a maximal run of overlapping or near-adjacent normalized
// intervals for one user. It carries every source record id it subsumed so
// the timeline grid can map a click back to the underlying rows.
type MergedRange struct {
	UserID    string
	Start     time.Time
	End       time.Time
	RecordIDs []string
}

// CoverageSample is the fraction of one bucket covered by one user's merged
// ranges. Bucket is an index into the generated bucket sequence.
type CoverageSample struct {
	UserID   string
	Bucket   int
	Fraction float64
}

// MergeTolerance is the maximum gap between consecutive intervals that is
// still treated as contiguous. Sub-minute gaps between rows, such as a
// 23:58 end against a midnight start, read as one continuous block.
const MergeTolerance = 60 * time.Second
