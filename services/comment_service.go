package services

import (
	"fmt"

	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/repository"
	"gorm.io/gorm"
)

type CommentService struct {
	db       *gorm.DB
	comments *repository.CommentRepository
	profiles *repository.ProfileRepository
	scoring  *ScoringService
}

func NewCommentService(db *gorm.DB, comments *repository.CommentRepository,
	profiles *repository.ProfileRepository, scoring *ScoringService) *CommentService {
	return &CommentService{db: db, comments: comments, profiles: profiles, scoring: scoring}
}

// Create stores the comment for the author, bumps comments_written and
// recomputes the author's score in the same transaction.
func (s *CommentService) Create(userID uint, comment *entity.Comment) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var issue entity.Issue
		if err := tx.First(&issue, comment.IssueID).Error; err != nil {
			return fmt.Errorf("issue: %w", err)
		}

		comment.UserID = userID
		if err := s.comments.WithTx(tx).Create(comment); err != nil {
			return err
		}

		profile, err := s.profiles.WithTx(tx).FirstOrCreate(userID)
		if err != nil {
			return err
		}
		profile.CommentsWritten++
		return s.scoring.RecomputeProfileScore(tx, profile)
	})
	if err != nil {
		return err
	}
	created, err := s.comments.FindByID(comment.ID)
	if err != nil {
		return err
	}
	*comment = *created
	return nil
}

func (s *CommentService) List(issueID uint, out *[]entity.Comment) error {
	return s.comments.FindAll(issueID, out)
}

func (s *CommentService) Get(id uint) (*entity.Comment, error) {
	return s.comments.FindByID(id)
}

func (s *CommentService) Update(id uint, updates map[string]any) (*entity.Comment, error) {
	if _, err := s.comments.FindByID(id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.comments.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.comments.FindByID(id)
}

// Delete removes the comment. comments_written stays as is: points were
// earned when the comment was made.
func (s *CommentService) Delete(id uint) error {
	if _, err := s.comments.FindByID(id); err != nil {
		return err
	}
	return s.comments.Delete(id)
}
