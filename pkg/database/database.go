package database

import (
	"fmt"
	"log"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/config"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	// TranslateError lets the contribution ledger treat a unique-key violation
	// on (goal_id, transaction_id) as gorm.ErrDuplicatedKey.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Workspace{},
		&model.WorkspaceMember{},
		&model.Account{},
		&model.Category{},
		&model.Transaction{},
		&model.Debt{},
		&model.Budget{},
		&model.Goal{},
		&model.GoalContribution{},
		&model.GoalMilestone{},
		&model.GoalInsight{},
		&model.Notification{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// SeedDefaultCategories inserts the stock category set for a new workspace.
// The suggestion engine keys vacation-fund heuristics off the Entertainment
// category, so it must always exist.
func SeedDefaultCategories(db *gorm.DB, workspaceID uint) error {
	var count int64
	db.Model(&model.Category{}).Where("workspace_id = ?", workspaceID).Count(&count)
	if count > 0 {
		return nil
	}

	defaults := []model.Category{
		{WorkspaceID: workspaceID, Name: "Salary", Type: model.CategoryIncome, Icon: "briefcase"},
		{WorkspaceID: workspaceID, Name: "Bonus", Type: model.CategoryIncome, Icon: "gift"},
		{WorkspaceID: workspaceID, Name: "Groceries", Type: model.CategoryExpense, Icon: "cart"},
		{WorkspaceID: workspaceID, Name: "Transport", Type: model.CategoryExpense, Icon: "car"},
		{WorkspaceID: workspaceID, Name: "Entertainment", Type: model.CategoryExpense, Icon: "film"},
		{WorkspaceID: workspaceID, Name: "Utilities", Type: model.CategoryExpense, Icon: "bolt"},
		{WorkspaceID: workspaceID, Name: "Health", Type: model.CategoryExpense, Icon: "heart"},
		{WorkspaceID: workspaceID, Name: "Education", Type: model.CategoryExpense, Icon: "book"},
	}
	for _, c := range defaults {
		if err := db.Create(&c).Error; err != nil {
			return err
		}
	}
	return nil
}
