package entity

import (
	"gorm.io/gorm"
)

type IssueImage struct {
	gorm.Model
	IssueID uint  `gorm:"not null" json:"issueId"`
	Issue   Issue `json:"-"`

	// Image holds an opaque asset reference (storage object name or path),
	// never the bytes themselves.
	Image    string `gorm:"not null" json:"image"`
	Caption  string `json:"caption"`
	IsBefore bool   `gorm:"default:true" json:"isBefore"`
}
