// File: services/schedule/bucket.go
package schedule

import (
	"sort"
	"time"

	"letslink/models"
)

// GenerateBuckets produces the contiguous, non-overlapping bucket sequence
// the chart aggregates over. Buckets start at local midnight of planStart
// minus bufferCount lead buckets and run through local midnight after
// planEnd; the final bucket is clamped, so widths that do not divide the
// span yield a partial tail bucket rather than an error.
func GenerateBuckets(planStart, planEnd time.Time, intervalHours, bufferCount int) []models.ChartBucket {
	if intervalHours <= 0 {
		return nil
	}
	if bufferCount < 0 {
		bufferCount = 0
	}

	width := time.Duration(intervalHours) * time.Hour
	start := midnight(planStart).Add(-time.Duration(bufferCount) * width)
	end := midnight(planEnd).Add(24 * time.Hour)
	if !end.After(start) {
		return nil
	}

	var buckets []models.ChartBucket
	for t := start; t.Before(end); t = t.Add(width) {
		bucketEnd := t.Add(width)
		if bucketEnd.After(end) {
			bucketEnd = end
		}
		buckets = append(buckets, models.ChartBucket{
			Start:     t,
			End:       bucketEnd,
			DayLabel:  t.Format(models.DateLayout),
			HourLabel: t.Format(models.TimeLayout),
		})
	}
	return buckets
}

// ComputeCoverage computes, for every (bucket, user) pair, the fraction of
// the bucket covered by that user's merged ranges. The fraction is the max
// over ranges, not the sum: merged ranges for one user never overlap each
// other, and max guards against double counting if they ever did. The
// displayed quantity is "how covered is this bucket", not total time.
func ComputeCoverage(buckets []models.ChartBucket, mergedByUser map[string][]MergedRange) []CoverageSample {
	userIDs := make([]string, 0, len(mergedByUser))
	for id := range mergedByUser {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)

	var samples []CoverageSample
	for _, userID := range userIDs {
		ranges := mergedByUser[userID]
		for i, b := range buckets {
			samples = append(samples, CoverageSample{
				UserID:   userID,
				Bucket:   i,
				Fraction: bucketCoverage(b, ranges),
			})
		}
	}
	return samples
}

func bucketCoverage(b models.ChartBucket, ranges []MergedRange) float64 {
	width := b.End.Sub(b.Start)
	if width <= 0 {
		return 0
	}

	var max float64
	for _, r := range ranges {
		overlap := minTime(b.End, r.End).Sub(maxTime(b.Start, r.Start))
		if overlap <= 0 {
			continue
		}
		fraction := float64(overlap) / float64(width)
		if fraction > max {
			max = fraction
		}
	}
	if max > 1 {
		max = 1
	}
	return max
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
