package repository

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) FindAll(out *[]entity.Category) error {
	return r.db.Find(out).Error
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the category together with its rules and issues. SQLite does
// not enforce FK cascades here, so children go inside the same transaction.
func (r *CategoryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var issueIDs []uint
		if err := tx.Model(&entity.Issue{}).Where("category_id = ?", id).
			Pluck("id", &issueIDs).Error; err != nil {
			return err
		}
		if len(issueIDs) > 0 {
			if err := deleteIssueChildren(tx, issueIDs); err != nil {
				return err
			}
			if err := tx.Delete(&entity.Issue{}, issueIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("category_id = ?", id).Delete(&entity.Rule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Category{}, id).Error
	})
}
