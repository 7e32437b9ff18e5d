// Replays historical transactions through the goal auto-tracking engine.
//
// Auto-tracking normally runs when a transaction is created, so goals enabled
// after the fact start at zero. This script classifies every existing
// transaction against the current goal set and recomputes progress. The
// ledger's uniqueness constraint makes reruns safe.
//
// Usage: go run scripts/backfill_goals.go

package main

import (
	"log"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/config"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/repository"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/service"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/database"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	goalRepo := repository.NewGoalRepository(db)
	contributionRepo := repository.NewContributionRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	debtRepo := repository.NewDebtRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notifier := service.NewNotificationService(notificationRepo)
	tracker := service.NewMilestoneTracker(milestoneRepo, notifier)
	ledger := service.NewContributionLedger(goalRepo, contributionRepo, debtRepo, tracker, notifier)
	classifier := service.NewTransactionClassifier()

	var workspaces []model.Workspace
	if err := db.Find(&workspaces).Error; err != nil {
		log.Fatalf("Failed to list workspaces: %v", err)
	}

	var processed, tracked int
	for _, workspace := range workspaces {
		goals, err := goalRepo.FindAutoTracking(workspace.ID)
		if err != nil {
			log.Printf("workspace %d: listing goals failed: %v", workspace.ID, err)
			continue
		}
		if len(goals) == 0 {
			continue
		}

		var transactions []model.Transaction
		if err := db.Where("workspace_id = ?", workspace.ID).Order("date").Find(&transactions).Error; err != nil {
			log.Printf("workspace %d: listing transactions failed: %v", workspace.ID, err)
			continue
		}

		touched := make(map[uint]bool)
		for i := range transactions {
			tx := &transactions[i]
			processed++
			for _, match := range classifier.Classify(tx, goals) {
				if err := ledger.Record(match.Goal, tx, match.ContributionType, match.Reason); err != nil {
					log.Printf("goal %d: recording transaction %d failed: %v", match.Goal.ID, tx.ID, err)
					continue
				}
				touched[match.Goal.ID] = true
				tracked++
			}
		}

		for goalID := range touched {
			if err := ledger.Recompute(goalID); err != nil {
				log.Printf("goal %d: recompute failed: %v", goalID, err)
			}
		}
	}

	log.Printf("Backfill complete: %d transactions scanned, %d contributions attributed", processed, tracked)
}
