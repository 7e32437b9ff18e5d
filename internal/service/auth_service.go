package service

import (
	"errors"
	"time"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/util"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/database"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo      *repository.UserRepository
	WorkspaceRepo *repository.WorkspaceRepository
	DB        *gorm.DB
	JWTSecret string
	JWTExpire time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, workspaceRepo *repository.WorkspaceRepository, db *gorm.DB, jwtSecret string, jwtExpire time.Duration) *AuthService {
	return &AuthService{
		UserRepo:      userRepo,
		WorkspaceRepo: workspaceRepo,
		DB:            db,
		JWTSecret:     jwtSecret,
		JWTExpire:     jwtExpire,
	}
}

// Register creates the user plus their personal workspace with default
// categories, in one transaction.
func (s *AuthService) Register(name, email, password string) (*model.User, error) {
	if _, err := s.UserRepo.FindByEmail(email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     model.Member,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		workspace := &model.Workspace{
			Name:    name + "'s Workspace",
			Type:    model.WorkspacePersonal,
			OwnerID: user.ID,
		}
		if err := tx.Create(workspace).Error; err != nil {
			return err
		}
		member := &model.WorkspaceMember{
			WorkspaceID: workspace.ID,
			UserID:      user.ID,
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

	logger.Log.Info("user registered", zap.Uint("userId", user.ID), zap.String("email", email))
	return user, nil
}

// Login verifies credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, util.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.JWTSecret, s.JWTExpire)
	if err != nil {
		return "", nil, err
	}

	if err := s.UserRepo.UpdateLastSeen(user.ID); err != nil {
		logger.Log.Warn("last seen update failed", zap.Error(err), zap.Uint("userId", user.ID))
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
