package model

import "github.com/shopspring/decimal"

type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCash       AccountType = "cash"
	AccountCredit     AccountType = "credit"
	AccountInvestment AccountType = "investment"
)

type Account struct {
	BaseModel
	WorkspaceID uint            `gorm:"index;not null" json:"workspaceId"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Type        AccountType     `gorm:"type:varchar(20);default:'checking'" json:"type"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"balance"`
	Currency    string          `gorm:"size:8;default:'IDR'" json:"currency"`
}

func (Account) TableName() string {
	return "accounts"
}
