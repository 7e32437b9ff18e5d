package repository

import (
	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) Update(category *model.Category) error {
	return r.DB.Save(category).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Category{}, id).Error
}

func (r *CategoryRepository) FindByIDAndWorkspaceID(id, workspaceID uint) (*model.Category, error) {
	var category model.Category
	err := r.DB.Where("id = ? AND workspace_id = ?", id, workspaceID).First(&category).Error
	return &category, err
}

func (r *CategoryRepository) FindByWorkspaceID(workspaceID uint) ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Where("workspace_id = ?", workspaceID).Order("type, name").Find(&categories).Error
	return categories, err
}
