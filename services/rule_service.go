package services

import (
	"fmt"

	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/repository"
)

type RuleService struct {
	rules      *repository.RuleRepository
	categories *repository.CategoryRepository
}

func NewRuleService(rules *repository.RuleRepository, categories *repository.CategoryRepository) *RuleService {
	return &RuleService{rules: rules, categories: categories}
}

func (s *RuleService) Create(rule *entity.Rule) error {
	if rule.CategoryID != nil {
		if _, err := s.categories.FindByID(*rule.CategoryID); err != nil {
			return fmt.Errorf("category: %w", err)
		}
	}
	return s.rules.Create(rule)
}

// List returns active rules only, regardless of caller.
func (s *RuleService) List(out *[]entity.Rule) error {
	return s.rules.FindAllActive(out)
}

func (s *RuleService) Get(id uint) (*entity.Rule, error) {
	return s.rules.FindByID(id)
}

func (s *RuleService) Update(id uint, updates map[string]any) (*entity.Rule, error) {
	if _, err := s.rules.FindByID(id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.rules.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.rules.FindByID(id)
}

func (s *RuleService) Delete(id uint) error {
	if _, err := s.rules.FindByID(id); err != nil {
		return err
	}
	return s.rules.Delete(id)
}
