package services

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/repository"
)

type CategoryService struct {
	categories *repository.CategoryRepository
}

func NewCategoryService(categories *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(category *entity.Category) error {
	return s.categories.Create(category)
}

func (s *CategoryService) List(out *[]entity.Category) error {
	return s.categories.FindAll(out)
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	return s.categories.FindByID(id)
}

func (s *CategoryService) Update(id uint, updates map[string]any) (*entity.Category, error) {
	if _, err := s.categories.FindByID(id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.categories.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.categories.FindByID(id)
}

func (s *CategoryService) Delete(id uint) error {
	if _, err := s.categories.FindByID(id); err != nil {
		return err
	}
	return s.categories.Delete(id)
}
