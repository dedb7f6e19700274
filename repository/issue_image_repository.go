package repository

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"gorm.io/gorm"
)

type IssueImageRepository struct {
	db *gorm.DB
}

func NewIssueImageRepository(db *gorm.DB) *IssueImageRepository {
	return &IssueImageRepository{db: db}
}

func (r *IssueImageRepository) Create(img *entity.IssueImage) error {
	return r.db.Create(img).Error
}

func (r *IssueImageRepository) FindAll(issueID uint, out *[]entity.IssueImage) error {
	q := r.db.Order("created_at ASC")
	if issueID > 0 {
		q = q.Where("issue_id = ?", issueID)
	}
	return q.Find(out).Error
}

func (r *IssueImageRepository) FindByID(id uint) (*entity.IssueImage, error) {
	var img entity.IssueImage
	if err := r.db.First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *IssueImageRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&entity.IssueImage{}).Where("id = ?", id).Updates(updates).Error
}

func (r *IssueImageRepository) Delete(id uint) error {
	return r.db.Delete(&entity.IssueImage{}, id).Error
}
