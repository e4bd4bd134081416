// File: services/schedule/normalize_test.go
package schedule

import (
	"testing"
	"time"

	"letslink/models"
)

func localTime(day string, hour, min int) time.Time {
	d, err := time.ParseInLocation(models.DateLayout, day, time.Local)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func TestNormalizeValidRecord(t *testing.T) {
	records := []models.AvailabilityRecord{
		{ID: "r1", UserID: "u1", Day: "2026-03-10", StartTime: "09:00", EndTime: "17:30"},
	}

	intervals := Normalize(records)
	if len(intervals) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(intervals))
	}

	iv := intervals[0]
	if iv.UserID != "u1" || iv.RecordID != "r1" {
		t.Errorf("identity not carried: %+v", iv)
	}
	if !iv.Start.Equal(localTime("2026-03-10", 9, 0)) {
		t.Errorf("start = %v, want 09:00 local", iv.Start)
	}
	if !iv.End.Equal(localTime("2026-03-10", 17, 30)) {
		t.Errorf("end = %v, want 17:30 local", iv.End)
	}
}

func TestNormalizeAcceptsSecondsLayout(t *testing.T) {
	records := []models.AvailabilityRecord{
		{ID: "r1", UserID: "u1", Day: "2026-03-10", StartTime: "09:00:00", EndTime: "17:30:00"},
	}

	iv := Normalize(records)[0]
	if !iv.Start.Equal(localTime("2026-03-10", 9, 0)) || !iv.End.Equal(localTime("2026-03-10", 17, 30)) {
		t.Errorf("seconds layout not parsed: %v - %v", iv.Start, iv.End)
	}
}

func TestNormalizeEndOfDaySnapsToMidnight(t *testing.T) {
	records := []models.AvailabilityRecord{
		{ID: "r1", UserID: "u1", Day: "2026-03-10", StartTime: "00:00", EndTime: "23:59"},
		{ID: "r2", UserID: "u1", Day: "2026-03-10", StartTime: "20:00", EndTime: "23:59:00"},
	}

	intervals := Normalize(records)
	nextMidnight := localTime("2026-03-11", 0, 0)
	for _, iv := range intervals {
		if !iv.End.Equal(nextMidnight) {
			t.Errorf("record %s end = %v, want next midnight", iv.RecordID, iv.End)
		}
	}
	if got := intervals[0].End.Sub(intervals[0].Start); got != 24*time.Hour {
		t.Errorf("full-day record spans %v, want 24h", got)
	}
}

func TestNormalizeDegradesMalformedRecords(t *testing.T) {
	cases := []struct {
		name string
		rec  models.AvailabilityRecord
	}{
		{"bad day", models.AvailabilityRecord{ID: "r1", UserID: "u1", Day: "not-a-day", StartTime: "09:00", EndTime: "10:00"}},
		{"bad start time", models.AvailabilityRecord{ID: "r2", UserID: "u1", Day: "2026-03-10", StartTime: "9am", EndTime: "10:00"}},
		{"bad end time", models.AvailabilityRecord{ID: "r3", UserID: "u1", Day: "2026-03-10", StartTime: "09:00", EndTime: "later"}},
		{"inverted", models.AvailabilityRecord{ID: "r4", UserID: "u1", Day: "2026-03-10", StartTime: "17:00", EndTime: "09:00"}},
		{"equal", models.AvailabilityRecord{ID: "r5", UserID: "u1", Day: "2026-03-10", StartTime: "09:00", EndTime: "09:00"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intervals := Normalize([]models.AvailabilityRecord{tc.rec})
			if len(intervals) != 1 {
				t.Fatalf("expected the record to survive as zero-length, got %d intervals", len(intervals))
			}
			iv := intervals[0]
			if !iv.Start.Equal(iv.End) {
				t.Errorf("expected zero-length interval, got %v - %v", iv.Start, iv.End)
			}
			if iv.RecordID != tc.rec.ID {
				t.Errorf("record id lost: %q", iv.RecordID)
			}
		})
	}
}

func TestNormalizeOneBadRowDoesNotDropOthers(t *testing.T) {
	records := []models.AvailabilityRecord{
		{ID: "good", UserID: "u1", Day: "2026-03-10", StartTime: "09:00", EndTime: "10:00"},
		{ID: "bad", UserID: "u2", Day: "garbage", StartTime: "09:00", EndTime: "10:00"},
	}

	intervals := Normalize(records)
	if len(intervals) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(intervals))
	}
	if intervals[0].End.Sub(intervals[0].Start) != time.Hour {
		t.Errorf("valid record distorted: %v - %v", intervals[0].Start, intervals[0].End)
	}
}
