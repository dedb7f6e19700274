package services

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"gorm.io/gorm"
)

const (
	pointsPerIssueReported = 10
	pointsPerIssueResolved = 50
	pointsPerComment       = 5
)

// ScoringService recomputes the cached projections (issue vote counts,
// profile points/level) from their source rows. Both recomputes are
// idempotent and always run inside the unit of work of the triggering write,
// never lazily on read.
type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// ComputePoints applies the scoring formula to the activity counters.
func ComputePoints(reported, resolved, written int) int {
	return reported*pointsPerIssueReported +
		resolved*pointsPerIssueResolved +
		written*pointsPerComment
}

// ComputeLevel maps points to a level, clamped to 1..100.
func ComputeLevel(points int) int {
	level := points/100 + 1
	if level < 1 {
		level = 1
	}
	if level > 100 {
		level = 100
	}
	return level
}

// RecomputeIssueVotes sets issue.votes to the true vote-row count and
// persists it through tx.
func (s *ScoringService) RecomputeIssueVotes(tx *gorm.DB, issueID uint) (int, error) {
	var count int64
	if err := tx.Model(&entity.Vote{}).Where("issue_id = ?", issueID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	if err := tx.Model(&entity.Issue{}).Where("id = ?", issueID).
		Update("votes", count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// RecomputeProfileScore rederives points and level from the profile's own
// counters and persists them through tx.
func (s *ScoringService) RecomputeProfileScore(tx *gorm.DB, profile *entity.UserProfile) error {
	profile.Points = ComputePoints(profile.IssuesReported, profile.IssuesResolved, profile.CommentsWritten)
	profile.Level = ComputeLevel(profile.Points)

	return tx.Model(&entity.UserProfile{}).Where("id = ?", profile.ID).
		Updates(map[string]any{
			"points":           profile.Points,
			"level":            profile.Level,
			"issues_reported":  profile.IssuesReported,
			"issues_resolved":  profile.IssuesResolved,
			"comments_written": profile.CommentsWritten,
		}).Error
}
