package repository

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"gorm.io/gorm"
)

type RuleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

func (r *RuleRepository) Create(rule *entity.Rule) error {
	return r.db.Create(rule).Error
}

// FindAllActive lists only active rules, in display order.
func (r *RuleRepository) FindAllActive(out *[]entity.Rule) error {
	return r.db.Where("is_active = ?", true).
		Order("`order` ASC, id ASC").Find(out).Error
}

func (r *RuleRepository) FindByID(id uint) (*entity.Rule, error) {
	var rule entity.Rule
	if err := r.db.Where("is_active = ?", true).First(&rule, id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *RuleRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&entity.Rule{}).Where("id = ?", id).Updates(updates).Error
}

func (r *RuleRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Rule{}, id).Error
}
