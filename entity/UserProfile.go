package entity

import (
	"gorm.io/gorm"
)

// UserProfile is the per-user gamification record. Points and Level are
// derived from the activity counters, never edited directly.
type UserProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"user"`

	Points int `gorm:"not null;default:0" json:"points"`
	Level  int `gorm:"not null;default:1" json:"level"`

	Bio         string `json:"bio"`
	Avatar      string `json:"avatar"`
	PhoneNumber string `json:"phoneNumber"`

	// activity counters
	IssuesReported  int `gorm:"not null;default:0" json:"issuesReported"`
	IssuesResolved  int `gorm:"not null;default:0" json:"issuesResolved"`
	CommentsWritten int `gorm:"not null;default:0" json:"commentsWritten"`
}
