// models/availability.go
package models

import "time"

// AvailabilityRecord is one user's declared free window on one calendar day
// within a plan. Multi-day submissions are split into one record per day
// before insertion, so Day/StartTime/EndTime always describe a single day.
type AvailabilityRecord struct {
	ID        string    `bson:"id" json:"id"`
	PlanID    string    `bson:"planId" json:"planId"`
	UserID    string    `bson:"userId" json:"userId"`
	Day       string    `bson:"day" json:"day"`             // "2006-01-02"
	StartTime string    `bson:"startTime" json:"startTime"` // "15:04"
	EndTime   string    `bson:"endTime" json:"endTime"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SubmitAvailabilityRequest is the payload for submitting availability over
// a date range, either with one custom time window or with named presets.
type SubmitAvailabilityRequest struct {
	StartDate string   `json:"startDate" binding:"required"`
	EndDate   string   `json:"endDate" binding:"required"`
	Mode      string   `json:"mode" binding:"required"` // "custom" or "preset"
	StartTime string   `json:"startTime"`               // custom mode
	EndTime   string   `json:"endTime"`                 // custom mode
	PresetIDs []string `json:"presetIds"`               // preset mode
}

// UpdateAvailabilityRequest edits one record in place.
type UpdateAvailabilityRequest struct {
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}
