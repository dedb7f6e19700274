package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:citizen" json:"role"`

	// Relations — preload only when needed
	ReportedIssues []Issue        `gorm:"foreignKey:ReporterID" json:"-"`
	Comments       []Comment      `json:"-"`
	Votes          []Vote         `json:"-"`
	Notifications  []Notification `json:"-"`
	Profile        *UserProfile   `json:"-"`
}

// UserSummary is the read-only user expansion nested in issue/comment/vote responses.
type UserSummary struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
