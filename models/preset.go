// models/preset.go
package models

import "time"

// Preset is a named, reusable start/end time-of-day pair a user can apply
// instead of entering custom times.
type Preset struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId,omitempty" json:"userId,omitempty"` // empty for built-in presets
	Label     string    `bson:"label" json:"label"`
	StartTime string    `bson:"startTime" json:"startTime"` // "15:04"
	EndTime   string    `bson:"endTime" json:"endTime"`
	BuiltIn   bool      `bson:"-" json:"builtIn,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// PresetRequest creates or updates a user preset.
type PresetRequest struct {
	Label     string `json:"label" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}
