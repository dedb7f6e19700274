package entity

import (
	"gorm.io/gorm"
)

// Vote is a user's single endorsement of an issue. One row per (user, issue);
// presence/absence is the toggle state.
type Vote struct {
	gorm.Model
	UserID  uint  `gorm:"not null;uniqueIndex:idx_vote_user_issue" json:"userId"`
	User    User  `json:"user"`
	IssueID uint  `gorm:"not null;uniqueIndex:idx_vote_user_issue" json:"issueId"`
	Issue   Issue `json:"-"`
}
