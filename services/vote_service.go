package services

import (
	"fmt"

	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/repository"
	"gorm.io/gorm"
)

// VoteService backs the plain vote CRUD surface. The toggle action lives on
// IssueService; both paths recompute the cached count the same way.
type VoteService struct {
	db      *gorm.DB
	votes   *repository.VoteRepository
	scoring *ScoringService
}

func NewVoteService(db *gorm.DB, votes *repository.VoteRepository, scoring *ScoringService) *VoteService {
	return &VoteService{db: db, votes: votes, scoring: scoring}
}

// Create inserts a vote for the caller. A second vote on the same issue
// trips the unique index and surfaces as gorm.ErrDuplicatedKey.
func (s *VoteService) Create(userID uint, vote *entity.Vote) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var issue entity.Issue
		if err := tx.First(&issue, vote.IssueID).Error; err != nil {
			return fmt.Errorf("issue: %w", err)
		}

		vote.UserID = userID
		if err := s.votes.WithTx(tx).Create(vote); err != nil {
			return err
		}
		_, err := s.scoring.RecomputeIssueVotes(tx, vote.IssueID)
		return err
	})
	if err != nil {
		return err
	}
	created, err := s.votes.FindByID(vote.ID)
	if err != nil {
		return err
	}
	*vote = *created
	return nil
}

func (s *VoteService) List(out *[]entity.Vote) error {
	return s.votes.FindAll(out)
}

func (s *VoteService) Get(id uint) (*entity.Vote, error) {
	return s.votes.FindByID(id)
}

// Update re-points a vote at another issue and recomputes both cached
// counts. The voter never changes.
func (s *VoteService) Update(id, newIssueID uint) (*entity.Vote, error) {
	vote, err := s.votes.FindByID(id)
	if err != nil {
		return nil, err
	}
	if newIssueID == 0 || newIssueID == vote.IssueID {
		return vote, nil
	}

	oldIssueID := vote.IssueID
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var issue entity.Issue
		if err := tx.First(&issue, newIssueID).Error; err != nil {
			return fmt.Errorf("issue: %w", err)
		}
		if err := tx.Model(&entity.Vote{}).Where("id = ?", id).
			Update("issue_id", newIssueID).Error; err != nil {
			return err
		}
		if _, err := s.scoring.RecomputeIssueVotes(tx, oldIssueID); err != nil {
			return err
		}
		_, err := s.scoring.RecomputeIssueVotes(tx, newIssueID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.votes.FindByID(id)
}

func (s *VoteService) Delete(id uint) error {
	vote, err := s.votes.FindByID(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.votes.WithTx(tx).Delete(vote.ID); err != nil {
			return err
		}
		_, err := s.scoring.RecomputeIssueVotes(tx, vote.IssueID)
		return err
	})
}
