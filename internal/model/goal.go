package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type GoalType string

const (
	GoalSavings       GoalType = "savings"
	GoalDebtPayment   GoalType = "debt_payment"
	GoalInvestment    GoalType = "investment"
	GoalEmergencyFund GoalType = "emergency_fund"
	GoalRetirement    GoalType = "retirement"
	GoalVacation      GoalType = "vacation"
	GoalHouse         GoalType = "house"
	GoalEducation     GoalType = "education"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
)

type GoalPriority string

const (
	PriorityLow      GoalPriority = "low"
	PriorityMedium   GoalPriority = "medium"
	PriorityHigh     GoalPriority = "high"
	PriorityCritical GoalPriority = "critical"
)

// Goal is a financial target within one workspace. CurrentAmount is a cache:
// it is always recomputable from the contribution ledger, or from the linked
// debt's paid amount for debt_payment goals.
type Goal struct {
	BaseModel
	WorkspaceID        uint            `gorm:"index;not null" json:"workspaceId"`
	Name               string          `gorm:"size:255;not null" json:"name"`
	Description        string          `gorm:"type:text" json:"description"`
	Type               GoalType        `gorm:"type:varchar(20);not null" json:"type"`
	TargetAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"targetAmount"`
	CurrentAmount      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"currentAmount"`
	TargetDate         time.Time       `json:"targetDate"`
	Priority           GoalPriority    `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	Status             GoalStatus      `gorm:"type:varchar(20);default:'active'" json:"status"`
	IsAutoTracking     bool            `gorm:"default:false" json:"isAutoTracking"`
	LinkedAccountID    *uint           `gorm:"index" json:"linkedAccountId,omitempty"`
	LinkedDebtID       *uint           `gorm:"index" json:"linkedDebtId,omitempty"`
	LastProgressUpdate *time.Time      `json:"lastProgressUpdate,omitempty"`
	CompletedAt        *time.Time      `json:"completedAt,omitempty"`
}

// Progress returns completion as a percentage. Zero target means progress is
// undefined and reported as 0 rather than Inf.
func (g *Goal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	p, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	return p
}

type ContributionType string

const (
	ContributionTransaction     ContributionType = "transaction"
	ContributionDebtPayment     ContributionType = "debt_payment"
	ContributionAutoCategorized ContributionType = "auto_categorized"
	ContributionManual          ContributionType = "manual"
)

// GoalContribution is one ledger entry attributing a transaction (or another
// source) to a goal's progress. The composite unique index is the duplicate
// prevention backstop: at most one entry per (goal, transaction) pair.
type GoalContribution struct {
	BaseModel
	GoalID        uint             `gorm:"uniqueIndex:idx_goal_transaction;not null" json:"goalId"`
	TransactionID *uint            `gorm:"uniqueIndex:idx_goal_transaction" json:"transactionId,omitempty"`
	WorkspaceID   uint             `gorm:"index;not null" json:"workspaceId"`
	Amount        decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type          ContributionType `gorm:"type:varchar(20);not null" json:"type"`
	Source        string           `gorm:"size:512" json:"source"`
	Date          time.Time        `json:"date"`
}

type GoalMilestone struct {
	BaseModel
	GoalID       uint            `gorm:"index;not null" json:"goalId"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"targetAmount"`
	TargetDate   time.Time       `json:"targetDate"`
	Order        int             `gorm:"column:sequence;not null" json:"order"`
	IsCompleted  bool            `gorm:"default:false" json:"isCompleted"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
	Reward       string          `gorm:"size:255" json:"reward"`
}

type InsightType string

const (
	InsightAlert          InsightType = "alert"
	InsightRecommendation InsightType = "recommendation"
	InsightAchievement    InsightType = "achievement"
)

type InsightSeverity string

const (
	SeverityInfo     InsightSeverity = "info"
	SeverityWarning  InsightSeverity = "warning"
	SeverityCritical InsightSeverity = "critical"
)

type GoalInsight struct {
	BaseModel
	GoalID         *uint           `gorm:"index" json:"goalId,omitempty"`
	WorkspaceID    uint            `gorm:"index;not null" json:"workspaceId"`
	Type           InsightType     `gorm:"type:varchar(20);not null" json:"type"`
	Title          string          `gorm:"size:255;not null" json:"title"`
	Message        string          `gorm:"type:text" json:"message"`
	Severity       InsightSeverity `gorm:"type:varchar(20);default:'info'" json:"severity"`
	ActionRequired bool            `gorm:"default:false" json:"actionRequired"`
	Data           string          `gorm:"type:json" json:"data,omitempty"`
}

func (Goal) TableName() string {
	return "goals"
}

func (GoalContribution) TableName() string {
	return "goal_contributions"
}

func (GoalMilestone) TableName() string {
	return "goal_milestones"
}

func (GoalInsight) TableName() string {
	return "goal_insights"
}
