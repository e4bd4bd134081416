// models/user.go
package models

import "time"

// User represents a platform account together with its profile fields.
type User struct {
	ID               string    `bson:"id" json:"id"`
	Email            string    `bson:"email" json:"email"`
	PasswordHash     string    `bson:"passwordHash" json:"-"`
	FirstName        string    `bson:"firstName" json:"firstName"`
	Surname          string    `bson:"surname" json:"surname"`
	AvatarURL        string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	TimeFormat       string    `bson:"timeFormat,omitempty" json:"timeFormat,omitempty"`           // "12h" or "24h"
	DefaultInterval  int       `bson:"defaultInterval,omitempty" json:"defaultInterval,omitempty"` // preferred chart bucket width in hours
	SessionTokenHash string    `bson:"sessionTokenHash,omitempty" json:"-"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProfileComplete reports whether the user has filled in the name fields
// required before joining a group.
func (u *User) ProfileComplete() bool {
	return u.FirstName != "" && u.Surname != ""
}

// UserUpdateRequest carries the editable profile fields.
type UserUpdateRequest struct {
	FirstName       string `json:"firstName"`
	Surname         string `json:"surname"`
	AvatarURL       string `json:"avatarUrl"`
	TimeFormat      string `json:"timeFormat"`
	DefaultInterval int    `json:"defaultInterval"`
}
