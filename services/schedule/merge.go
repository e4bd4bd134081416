// File: services/schedule/merge.go
package schedule

import "sort"

// Merge coalesces normalized intervals into per-user disjoint ranges. Each
// user is processed independently: intervals are stable-sorted by start
// instant and folded in a single scan, extending the open range whenever the
// next interval starts within MergeTolerance of its end. Output ranges are
// sorted ascending per user and carry every subsumed record id.
func Merge(intervals []NormalizedInterval) []MergedRange {
	if len(intervals) == 0 {
		return nil
	}

	byUser := make(map[string][]NormalizedInterval)
	var userOrder []string
	for _, iv := range intervals {
		if _, seen := byUser[iv.UserID]; !seen {
			userOrder = append(userOrder, iv.UserID)
		}
		byUser[iv.UserID] = append(byUser[iv.UserID], iv)
	}

	var ranges []MergedRange
	for _, userID := range userOrder {
		ranges = append(ranges, mergeUser(byUser[userID])...)
	}
	return ranges
}

// MergeByUser groups Merge output by user id.
func MergeByUser(intervals []NormalizedInterval) map[string][]MergedRange {
	byUser := make(map[string][]MergedRange)
	for _, r := range Merge(intervals) {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}
	return byUser
}

func mergeUser(intervals []NormalizedInterval) []MergedRange {
	// Stable sort keeps input order for identical start instants.
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})

	var ranges []MergedRange
	for _, iv := range intervals {
		if len(ranges) > 0 {
			cur := &ranges[len(ranges)-1]
			if !iv.Start.After(cur.End.Add(MergeTolerance)) {
				if iv.End.After(cur.End) {
					cur.End = iv.End
				}
				cur.RecordIDs = append(cur.RecordIDs, iv.RecordID)
				continue
			}
		}
		ranges = append(ranges, MergedRange{
			UserID:    iv.UserID,
			Start:     iv.Start,
			End:       iv.End,
			RecordIDs: []string{iv.RecordID},
		})
	}
	return ranges
}
