// File: services/schedule/normalize.go
package schedule

import (
	"time"

	"letslink/models"
)

// Normalize converts raw availability rows into absolute intervals by
// combining each record's day with its time-of-day fields as naive local
// time. It is total: a malformed day or time, or an inverted ordering,
// degrades that record to a zero-length interval instead of failing the
// whole aggregation, so one bad row never blanks the chart for everyone.
func Normalize(records []models.AvailabilityRecord) []NormalizedInterval {
	intervals := make([]NormalizedInterval, 0, len(records))
	for _, rec := range records {
		intervals = append(intervals, normalizeOne(rec))
	}
	return intervals
}

func normalizeOne(rec models.AvailabilityRecord) NormalizedInterval {
	iv := NormalizedInterval{UserID: rec.UserID, RecordID: rec.ID}

	day, err := time.ParseInLocation(models.DateLayout, rec.Day, time.Local)
	if err != nil {
		return iv
	}

	start, ok := parseClock(rec.StartTime)
	if !ok {
		iv.Start = day
		iv.End = day
		return iv
	}
	end, ok := parseClock(rec.EndTime)
	if !ok || end <= start {
		iv.Start = day.Add(start)
		iv.End = iv.Start
		return iv
	}
	// "23:59" is the end-of-day sentinel written by the midnight split.
	// Snap it to the following midnight so a full-day record covers the
	// whole day and split overnight blocks read back exactly contiguous.
	if end == endOfDayClock {
		end = 24 * time.Hour
	}

	iv.Start = day.Add(start)
	iv.End = day.Add(end)
	return iv
}

const endOfDayClock = 23*time.Hour + 59*time.Minute

// parseClock parses a time-of-day as an offset from midnight. Accepts both
// "15:04" and "15:04:05" (the store returns seconds on some rows).
func parseClock(s string) (time.Duration, bool) {
	for _, layout := range []string{models.TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, true
		}
	}
	return 0, false
}
