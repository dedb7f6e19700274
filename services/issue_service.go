package services

import (
	"errors"
	"fmt"

	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/repository"
	"gorm.io/gorm"
)

const (
	popularLimit = 10
	recentLimit  = 20
)

type IssueService struct {
	db       *gorm.DB
	issues   *repository.IssueRepository
	votes    *repository.VoteRepository
	profiles *repository.ProfileRepository
	scoring  *ScoringService
}

func NewIssueService(db *gorm.DB, issues *repository.IssueRepository, votes *repository.VoteRepository,
	profiles *repository.ProfileRepository, scoring *ScoringService) *IssueService {
	return &IssueService{db: db, issues: issues, votes: votes, profiles: profiles, scoring: scoring}
}

// Create stores the issue for the reporter, bumps issues_reported on the
// reporter's profile and recomputes the score, all in one transaction.
func (s *IssueService) Create(reporterID uint, issue *entity.Issue) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category entity.Category
		if err := tx.First(&category, issue.CategoryID).Error; err != nil {
			return fmt.Errorf("category: %w", err)
		}

		issue.ReporterID = reporterID
		if err := s.issues.WithTx(tx).Create(issue); err != nil {
			return err
		}

		profile, err := s.profiles.WithTx(tx).FirstOrCreate(reporterID)
		if err != nil {
			return err
		}
		profile.IssuesReported++
		return s.scoring.RecomputeProfileScore(tx, profile)
	})
}

func (s *IssueService) List(out *[]entity.Issue) error {
	return s.issues.FindAll(out)
}

func (s *IssueService) Get(id uint) (*entity.Issue, error) {
	return s.issues.FindByID(id)
}

func (s *IssueService) Update(id uint, updates map[string]any) (*entity.Issue, error) {
	if _, err := s.issues.FindByID(id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.issues.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.issues.FindByID(id)
}

func (s *IssueService) Delete(id uint) error {
	if _, err := s.issues.FindByID(id); err != nil {
		return err
	}
	return s.issues.Delete(id)
}

// ToggleVote flips the caller's vote on the issue: no row means vote, an
// existing row means take the vote back. The cached count is recomputed from
// the rows inside the same transaction, so it is exact when this returns.
func (s *IssueService) ToggleVote(userID, issueID uint) (votes int, accepted bool, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		issueRepo := s.issues.WithTx(tx)
		voteRepo := s.votes.WithTx(tx)

		exists, err := issueRepo.Exists(issueID)
		if err != nil {
			return err
		}
		if !exists {
			return gorm.ErrRecordNotFound
		}

		existing, err := voteRepo.FindByUserAndIssue(userID, issueID)
		switch {
		case err == nil:
			if err := voteRepo.Delete(existing.ID); err != nil {
				return err
			}
			accepted = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := voteRepo.Create(&entity.Vote{UserID: userID, IssueID: issueID}); err != nil {
				return err
			}
			accepted = true
		default:
			return err
		}

		votes, err = s.scoring.RecomputeIssueVotes(tx, issueID)
		return err
	})
	return votes, accepted, err
}

func (s *IssueService) Popular(out *[]entity.Issue) error {
	return s.issues.Popular(popularLimit, out)
}

func (s *IssueService) Recent(out *[]entity.Issue) error {
	return s.issues.Recent(recentLimit, out)
}
