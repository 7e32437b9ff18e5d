package service

import (
	"errors"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"

	"gorm.io/gorm"
)

type CategoryService struct {
	CategoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{CategoryRepo: categoryRepo}
}

func (s *CategoryService) Create(category *model.Category) error {
	return s.CategoryRepo.Create(category)
}

func (s *CategoryService) List(workspaceID uint) ([]model.Category, error) {
	return s.CategoryRepo.FindByWorkspaceID(workspaceID)
}

func (s *CategoryService) Update(id, workspaceID uint, updated *model.Category) (*model.Category, error) {
	category, err := s.CategoryRepo.FindByIDAndWorkspaceID(id, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}
	category.Name = updated.Name
	category.Type = updated.Type
	category.Icon = updated.Icon
	if err := s.CategoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(id, workspaceID uint) error {
	if _, err := s.CategoryRepo.FindByIDAndWorkspaceID(id, workspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCategoryNotFound
		}
		return err
	}
	return s.CategoryRepo.Delete(id)
}
