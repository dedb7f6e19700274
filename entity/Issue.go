package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusReported   = "reported"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

type Issue struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"category"`
	ReporterID uint     `json:"reporterId"`
	Reporter   User     `json:"reporter"`

	// location
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Status   string `gorm:"not null;default:reported" json:"status"`
	Priority string `gorm:"not null;default:medium" json:"priority"`

	// Votes is a cached count of vote rows, recomputed after every vote mutation.
	Votes int `gorm:"not null;default:0" json:"votes"`
	Views int `gorm:"not null;default:0" json:"views"`

	ResolvedAt *time.Time `json:"resolvedAt"`

	Images        []IssueImage   `json:"images,omitempty"`
	Comments      []Comment      `json:"-"`
	VoteRows      []Vote         `gorm:"foreignKey:IssueID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:IssueID" json:"-"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusReported, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}
