package repository

import (
	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"gorm.io/gorm"
)

type WorkspaceRepository struct {
	DB *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{DB: db}
}

func (r *WorkspaceRepository) Create(workspace *model.Workspace) error {
	return r.DB.Create(workspace).Error
}

func (r *WorkspaceRepository) FindByID(id uint) (*model.Workspace, error) {
	var workspace model.Workspace
	err := r.DB.First(&workspace, id).Error
	return &workspace, err
}

// FindByUserID lists every workspace the user is a member of.
func (r *WorkspaceRepository) FindByUserID(userID uint) ([]model.Workspace, error) {
	var workspaces []model.Workspace
	err := r.DB.
		Joins("JOIN workspace_members ON workspace_members.workspace_id = workspaces.id").
		Where("workspace_members.user_id = ? AND workspace_members.deleted_at IS NULL", userID).
		Find(&workspaces).Error
	return workspaces, err
}

func (r *WorkspaceRepository) AddMember(member *model.WorkspaceMember) error {
	return r.DB.Create(member).Error
}

func (r *WorkspaceRepository) FindMembers(workspaceID uint) ([]model.WorkspaceMember, error) {
	var members []model.WorkspaceMember
	err := r.DB.Where("workspace_id = ?", workspaceID).Find(&members).Error
	return members, err
}

func (r *WorkspaceRepository) FindMember(workspaceID, userID uint) (*model.WorkspaceMember, error) {
	var member model.WorkspaceMember
	err := r.DB.Where("workspace_id = ? AND user_id = ?", workspaceID, userID).First(&member).Error
	return &member, err
}
