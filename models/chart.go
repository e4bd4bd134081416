// models/chart.go
package models

import "time"

// ChartBucket is one x-axis slice of the availability chart.
type ChartBucket struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	DayLabel  string    `json:"dayLabel"`  // "2006-01-02"
	HourLabel string    `json:"hourLabel"` // "15:04"
}

// ChartSeries is one member's coverage fraction per bucket.
type ChartSeries struct {
	UserID   string    `json:"userId"`
	Name     string    `json:"name"`
	Color    string    `json:"color"` // deterministic per user
	Coverage []float64 `json:"coverage"`
}

// AvailabilityChart is the render-ready summary chart structure.
type AvailabilityChart struct {
	PlanID        string        `json:"planId"`
	IntervalHours int           `json:"intervalHours"`
	Buckets       []ChartBucket `json:"buckets"`
	Series        []ChartSeries `json:"series"`
}

// TimelineRange is one merged availability bar on the interactive grid. The
// record ids let the client map a click back to the rows to edit or delete.
type TimelineRange struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	RecordIDs []string  `json:"recordIds"`
}

// TimelineRow is one member's row of merged ranges.
type TimelineRow struct {
	UserID string          `json:"userId"`
	Name   string          `json:"name"`
	Color  string          `json:"color"`
	Ranges []TimelineRange `json:"ranges"`
}

// AvailabilityTimeline is the render-ready timeline grid structure.
type AvailabilityTimeline struct {
	PlanID string        `json:"planId"`
	Rows   []TimelineRow `json:"rows"`
}
