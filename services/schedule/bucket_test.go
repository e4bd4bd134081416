// File: services/schedule/bucket_test.go
package schedule

import (
	"math"
	"testing"
	"time"

	"letslink/models"
)

func TestGenerateBucketsContiguous(t *testing.T) {
	start := localTime("2026-03-10", 0, 0)
	end := localTime("2026-03-12", 0, 0)

	buckets := GenerateBuckets(start, end, 2, 2)
	if len(buckets) == 0 {
		t.Fatal("no buckets generated")
	}

	wantStart := start.Add(-4 * time.Hour) // two lead buckets of two hours
	if !buckets[0].Start.Equal(wantStart) {
		t.Errorf("first bucket starts %v, want %v", buckets[0].Start, wantStart)
	}

	wantEnd := end.Add(24 * time.Hour) // midnight after the last plan day
	if !buckets[len(buckets)-1].End.Equal(wantEnd) {
		t.Errorf("last bucket ends %v, want %v", buckets[len(buckets)-1].End, wantEnd)
	}

	for i := 1; i < len(buckets); i++ {
		if !buckets[i].Start.Equal(buckets[i-1].End) {
			t.Fatalf("gap between bucket %d and %d: %v vs %v", i-1, i, buckets[i-1].End, buckets[i].Start)
		}
	}
	for i, b := range buckets {
		if !b.End.After(b.Start) {
			t.Fatalf("bucket %d is empty or inverted: %v - %v", i, b.Start, b.End)
		}
	}
}

func TestGenerateBucketsClampsPartialTail(t *testing.T) {
	// A five-hour width does not divide a one-day span; the tail bucket is
	// clamped rather than overrunning or erroring.
	day := localTime("2026-03-10", 0, 0)
	buckets := GenerateBuckets(day, day, 5, 0)
	if len(buckets) == 0 {
		t.Fatal("no buckets generated")
	}

	last := buckets[len(buckets)-1]
	if !last.End.Equal(day.Add(24 * time.Hour)) {
		t.Errorf("tail bucket ends %v, want midnight", last.End)
	}
	if last.End.Sub(last.Start) >= 5*time.Hour {
		t.Errorf("tail bucket not clamped: %v wide", last.End.Sub(last.Start))
	}
}

func TestGenerateBucketsRejectsBadWidth(t *testing.T) {
	day := localTime("2026-03-10", 0, 0)
	if got := GenerateBuckets(day, day, 0, 0); got != nil {
		t.Errorf("zero width should yield no buckets, got %d", len(got))
	}
	if got := GenerateBuckets(day, day, -1, 0); got != nil {
		t.Errorf("negative width should yield no buckets, got %d", len(got))
	}
}

func TestBucketCoverageFractions(t *testing.T) {
	bucket := models.ChartBucket{
		Start: localTime("2026-03-10", 10, 0),
		End:   localTime("2026-03-10", 12, 0),
	}

	cases := []struct {
		name   string
		ranges []MergedRange
		want   float64
	}{
		{"full", []MergedRange{{Start: localTime("2026-03-10", 9, 0), End: localTime("2026-03-10", 13, 0)}}, 1},
		{"half", []MergedRange{{Start: localTime("2026-03-10", 10, 0), End: localTime("2026-03-10", 11, 0)}}, 0.5},
		{"none", []MergedRange{{Start: localTime("2026-03-10", 14, 0), End: localTime("2026-03-10", 15, 0)}}, 0},
		{"touching edge", []MergedRange{{Start: localTime("2026-03-10", 8, 0), End: localTime("2026-03-10", 10, 0)}}, 0},
		{"empty", nil, 0},
		{"max not sum", []MergedRange{
			{Start: localTime("2026-03-10", 10, 0), End: localTime("2026-03-10", 11, 0)},
			{Start: localTime("2026-03-10", 11, 0), End: localTime("2026-03-10", 11, 30)},
		}, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := bucketCoverage(bucket, tc.ranges)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("coverage = %v, want %v", got, tc.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("coverage %v outside [0,1]", got)
			}
		})
	}
}

func TestComputeCoverageOrderedByUser(t *testing.T) {
	day := localTime("2026-03-10", 0, 0)
	buckets := GenerateBuckets(day, day, 12, 0)

	mergedByUser := map[string][]MergedRange{
		"zoe": {{UserID: "zoe", Start: localTime("2026-03-10", 0, 0), End: localTime("2026-03-10", 12, 0)}},
		"amy": {{UserID: "amy", Start: localTime("2026-03-10", 12, 0), End: localTime("2026-03-10", 18, 0)}},
	}

	samples := ComputeCoverage(buckets, mergedByUser)
	if len(samples) != 2*len(buckets) {
		t.Fatalf("expected %d samples, got %d", 2*len(buckets), len(samples))
	}
	// Users iterate in sorted id order regardless of map iteration.
	if samples[0].UserID != "amy" || samples[len(samples)-1].UserID != "zoe" {
		t.Errorf("samples not ordered by user id: first=%s last=%s", samples[0].UserID, samples[len(samples)-1].UserID)
	}
	for _, s := range samples {
		if s.Fraction < 0 || s.Fraction > 1 {
			t.Errorf("sample fraction %v outside [0,1]", s.Fraction)
		}
	}
}

func TestComputeCoverageFullDaySubmission(t *testing.T) {
	day := localTime("2026-03-10", 0, 0)
	buckets := GenerateBuckets(day, day, 2, 0)

	mergedByUser := map[string][]MergedRange{
		"u1": {{UserID: "u1", Start: day, End: day.Add(24 * time.Hour)}},
	}

	for _, s := range ComputeCoverage(buckets, mergedByUser) {
		if s.Fraction != 1 {
			t.Errorf("bucket %d fraction = %v, want 1 for a full-day range", s.Bucket, s.Fraction)
		}
	}
}

func TestFullDayRecordCoversEveryBucket(t *testing.T) {
	// A stored 00:00-23:59 row run through the whole pipeline must read as
	// full coverage in every bucket of its day, including the last one.
	day := localTime("2026-03-10", 0, 0)
	records := []models.AvailabilityRecord{
		{ID: "r1", UserID: "u1", Day: "2026-03-10", StartTime: "00:00", EndTime: "23:59"},
	}

	mergedByUser := MergeByUser(Normalize(records))
	buckets := GenerateBuckets(day, day, 24, 0)

	samples := ComputeCoverage(buckets, mergedByUser)
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample for a 24h bucket, got %d", len(samples))
	}
	if samples[0].Fraction != 1 {
		t.Errorf("24h bucket fraction = %v, want 1", samples[0].Fraction)
	}

	for _, s := range ComputeCoverage(GenerateBuckets(day, day, 2, 0), mergedByUser) {
		if s.Fraction != 1 {
			t.Errorf("bucket %d fraction = %v, want 1", s.Bucket, s.Fraction)
		}
	}
}
