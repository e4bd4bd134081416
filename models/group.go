// models/group.go
package models

import "time"

// Group is a named collection of members that plans are created under.
type Group struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// GroupMember links a user to a group.
type GroupMember struct {
	GroupID  string    `bson:"groupId" json:"groupId"`
	UserID   string    `bson:"userId" json:"userId"`
	Role     string    `bson:"role" json:"role"` // "admin" or "member"
	JoinedAt time.Time `bson:"joinedAt" json:"joinedAt"`
}

// MemberProfile is a membership row joined with the member's profile fields,
// the shape group and plan pages render.
type MemberProfile struct {
	UserID    string `bson:"userId" json:"userId"`
	Role      string `bson:"role" json:"role"`
	FirstName string `bson:"firstName" json:"firstName"`
	Surname   string `bson:"surname" json:"surname"`
	AvatarURL string `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
}

// DisplayName returns the member's full name for chart axes and member lists.
func (m MemberProfile) DisplayName() string {
	if m.FirstName == "" && m.Surname == "" {
		return m.UserID
	}
	if m.Surname == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.Surname
}

// GroupInvite is a single-link invitation into a group.
type GroupInvite struct {
	ID        string    `bson:"id" json:"id"`
	GroupID   string    `bson:"groupId" json:"groupId"`
	Token     string    `bson:"token" json:"token"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Expired reports whether the invite can no longer be redeemed.
func (i *GroupInvite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
