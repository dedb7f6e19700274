package entity

import (
	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model
	IssueID uint  `gorm:"not null" json:"issueId"`
	Issue   Issue `json:"-"`
	UserID  uint  `gorm:"not null" json:"userId"`
	User    User  `json:"user"`

	Text       string `gorm:"not null" json:"text"`
	IsSolution bool   `gorm:"default:false" json:"isSolution"`
}
