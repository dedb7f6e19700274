package repository

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"gorm.io/gorm"
)

type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

func (r *VoteRepository) WithTx(tx *gorm.DB) *VoteRepository {
	return &VoteRepository{db: tx}
}

func (r *VoteRepository) Create(vote *entity.Vote) error {
	return r.db.Create(vote).Error
}

func (r *VoteRepository) FindAll(out *[]entity.Vote) error {
	return r.db.Preload("User").Find(out).Error
}

func (r *VoteRepository) FindByID(id uint) (*entity.Vote, error) {
	var vote entity.Vote
	if err := r.db.Preload("User").First(&vote, id).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *VoteRepository) FindByUserAndIssue(userID, issueID uint) (*entity.Vote, error) {
	var vote entity.Vote
	if err := r.db.Where("user_id = ? AND issue_id = ?", userID, issueID).
		First(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

// Delete removes the row for real: a soft-deleted vote would still occupy
// the (user_id, issue_id) unique index and block a later re-vote.
func (r *VoteRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&entity.Vote{}, id).Error
}

func (r *VoteRepository) CountForIssue(issueID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Vote{}).Where("issue_id = ?", issueID).Count(&count).Error
	return count, err
}
