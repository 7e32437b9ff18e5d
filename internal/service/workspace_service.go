package service

import (
	"errors"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/database"

	"gorm.io/gorm"
)

type WorkspaceService struct {
	WorkspaceRepo *repository.WorkspaceRepository
	UserRepo      *repository.UserRepository
	DB            *gorm.DB
}

func NewWorkspaceService(workspaceRepo *repository.WorkspaceRepository, userRepo *repository.UserRepository, db *gorm.DB) *WorkspaceService {
	return &WorkspaceService{WorkspaceRepo: workspaceRepo, UserRepo: userRepo, DB: db}
}

// Create makes a shared workspace with the creator as owner and the default
// category set seeded.
func (s *WorkspaceService) Create(name string, ownerID uint) (*model.Workspace, error) {
	workspace := &model.Workspace{
		Name:    name,
		Type:    model.WorkspaceShared,
		OwnerID: ownerID,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workspace).Error; err != nil {
			return err
		}
		member := &model.WorkspaceMember{
			WorkspaceID: workspace.ID,
			UserID:      ownerID,
			Role:        model.RoleOwner,
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		return database.SeedDefaultCategories(tx, workspace.ID)
	})
	if err != nil {
		return nil, err
	}
	return workspace, nil
}

func (s *WorkspaceService) ListForUser(userID uint) ([]model.Workspace, error) {
	return s.WorkspaceRepo.FindByUserID(userID)
}

func (s *WorkspaceService) Get(workspaceID uint) (*model.Workspace, error) {
	workspace, err := s.WorkspaceRepo.FindByID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrWorkspaceNotFound
		}
		return nil, err
	}
	return workspace, nil
}

func (s *WorkspaceService) Members(workspaceID uint) ([]model.WorkspaceMember, error) {
	return s.WorkspaceRepo.FindMembers(workspaceID)
}

// Invite adds a registered user to the workspace by email. Only owners may
// invite; the caller enforces that via middleware.
func (s *WorkspaceService) Invite(workspaceID uint, email string, role model.MemberRole) (*model.WorkspaceMember, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	member := &model.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		Role:        role,
	}
	if err := s.WorkspaceRepo.AddMember(member); err != nil {
		return nil, err
	}
	return member, nil
}

// Membership returns the caller's membership record, or ErrNotWorkspaceMember.
func (s *WorkspaceService) Membership(workspaceID, userID uint) (*model.WorkspaceMember, error) {
	member, err := s.WorkspaceRepo.FindMember(workspaceID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotWorkspaceMember
		}
		return nil, err
	}
	return member, nil
}
