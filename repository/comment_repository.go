package repository

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) WithTx(tx *gorm.DB) *CommentRepository {
	return &CommentRepository{db: tx}
}

func (r *CommentRepository) Create(comment *entity.Comment) error {
	return r.db.Create(comment).Error
}

// FindAll lists oldest first, optionally narrowed to one issue.
func (r *CommentRepository) FindAll(issueID uint, out *[]entity.Comment) error {
	q := r.db.Preload("User").Order("created_at ASC")
	if issueID > 0 {
		q = q.Where("issue_id = ?", issueID)
	}
	return q.Find(out).Error
}

func (r *CommentRepository) FindByID(id uint) (*entity.Comment, error) {
	var comment entity.Comment
	if err := r.db.Preload("User").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&entity.Comment{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CommentRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Comment{}, id).Error
}
