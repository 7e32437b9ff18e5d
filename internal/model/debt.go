package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DebtStatus string

const (
	DebtActive  DebtStatus = "active"
	DebtPaidOff DebtStatus = "paid_off"
)

type Debt struct {
	BaseModel
	WorkspaceID     uint            `gorm:"index;not null" json:"workspaceId"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Type            string          `gorm:"size:50" json:"type"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"totalAmount"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"remainingAmount"`
	InterestRate    decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"interestRate"`
	MonthlyPayment  decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"monthlyPayment"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	Status          DebtStatus      `gorm:"type:varchar(20);default:'active'" json:"status"`
}

// PaidAmount is the portion of the debt already repaid. Debt-linked goals
// derive their current amount from this, not from the contribution ledger.
func (d *Debt) PaidAmount() decimal.Decimal {
	return d.TotalAmount.Sub(d.RemainingAmount)
}

func (Debt) TableName() string {
	return "debts"
}
