package repository

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"gorm.io/gorm"
)

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// WithTx binds the repository to an open transaction.
func (r *IssueRepository) WithTx(tx *gorm.DB) *IssueRepository {
	return &IssueRepository{db: tx}
}

func (r *IssueRepository) Create(issue *entity.Issue) error {
	return r.db.Create(issue).Error
}

func (r *IssueRepository) FindAll(out *[]entity.Issue) error {
	return r.db.Preload("Reporter").Preload("Category").Preload("Images").
		Order("created_at DESC").Find(out).Error
}

func (r *IssueRepository) FindByID(id uint) (*entity.Issue, error) {
	var issue entity.Issue
	if err := r.db.Preload("Reporter").Preload("Category").Preload("Images").
		First(&issue, id).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

func (r *IssueRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Issue{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *IssueRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&entity.Issue{}).Where("id = ?", id).Updates(updates).Error
}

// Popular ranks by live vote-row count, newest first on ties.
func (r *IssueRepository) Popular(limit int, out *[]entity.Issue) error {
	return r.db.Preload("Reporter").Preload("Category").Preload("Images").
		Select("issues.*").
		Joins("LEFT JOIN votes ON votes.issue_id = issues.id AND votes.deleted_at IS NULL").
		Group("issues.id").
		Order("COUNT(votes.id) DESC, issues.created_at DESC").
		Limit(limit).
		Find(out).Error
}

func (r *IssueRepository) Recent(limit int, out *[]entity.Issue) error {
	return r.db.Preload("Reporter").Preload("Category").Preload("Images").
		Order("created_at DESC").Limit(limit).Find(out).Error
}

// Delete removes the issue and everything hanging off it in one transaction.
func (r *IssueRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteIssueChildren(tx, []uint{id}); err != nil {
			return err
		}
		return tx.Delete(&entity.Issue{}, id).Error
	})
}

func deleteIssueChildren(tx *gorm.DB, issueIDs []uint) error {
	if err := tx.Unscoped().Where("issue_id IN ?", issueIDs).Delete(&entity.Vote{}).Error; err != nil {
		return err
	}
	if err := tx.Where("issue_id IN ?", issueIDs).Delete(&entity.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("issue_id IN ?", issueIDs).Delete(&entity.IssueImage{}).Error; err != nil {
		return err
	}
	return tx.Where("issue_id IN ?", issueIDs).Delete(&entity.Notification{}).Error
}
