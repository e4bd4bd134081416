// models/plan.go
package models

import "time"

// DateLayout is the calendar-day format used across plans and availability.
const DateLayout = "2006-01-02"

// TimeLayout is the time-of-day format used by availability records.
const TimeLayout = "15:04"

// Plan is a date-bounded scheduling activity within a group.
type Plan struct {
	ID          string    `bson:"id" json:"id"`
	GroupID     string    `bson:"groupId" json:"groupId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	StartDate   string    `bson:"startDate" json:"startDate"` // "2006-01-02"
	EndDate     string    `bson:"endDate" json:"endDate"`
	CreatedBy   string    `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Bounds parses the plan's date range as naive local midnights.
func (p *Plan) Bounds() (start, end time.Time, err error) {
	start, err = time.ParseInLocation(DateLayout, p.StartDate, time.Local)
	if err != nil {
		return
	}
	end, err = time.ParseInLocation(DateLayout, p.EndDate, time.Local)
	return
}

// ContainsDay reports whether the calendar day d (local midnight) falls
// within the plan's inclusive date range.
func (p *Plan) ContainsDay(d time.Time) bool {
	start, end, err := p.Bounds()
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// PlanCreateRequest is the payload for creating a plan.
type PlanCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
}
