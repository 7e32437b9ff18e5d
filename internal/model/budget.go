package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetYearly  BudgetPeriod = "yearly"
)

type Budget struct {
	BaseModel
	WorkspaceID uint            `gorm:"index;not null" json:"workspaceId"`
	CategoryID  uint            `gorm:"index;not null" json:"categoryId"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Period      BudgetPeriod    `gorm:"type:varchar(20);default:'monthly'" json:"period"`
	StartDate   time.Time       `json:"startDate"`
}

func (Budget) TableName() string {
	return "budgets"
}
