package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome    TransactionType = "income"
	TransactionExpense   TransactionType = "expense"
	TransactionSaving    TransactionType = "saving"
	TransactionTransfer  TransactionType = "transfer"
	TransactionRepayment TransactionType = "repayment"
	TransactionDebt      TransactionType = "debt"
)

type Transaction struct {
	BaseModel
	WorkspaceID uint            `gorm:"index;not null" json:"workspaceId"`
	AccountID   uint            `gorm:"index;not null" json:"accountId"`
	CategoryID  *uint           `gorm:"index" json:"categoryId,omitempty"`
	DebtID      *uint           `gorm:"index" json:"debtId,omitempty"`
	Type        TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"size:512" json:"description"`
	Date        time.Time       `gorm:"index;not null" json:"date"`
	ReceiptURL  string          `gorm:"size:512" json:"receiptUrl,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}
