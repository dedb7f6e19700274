package entity

import (
	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"not null" json:"message"`

	IssueID *uint  `json:"issueId"`
	Issue   *Issue `json:"-"`

	IsRead bool `gorm:"default:false" json:"isRead"`
}
