package model

type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

type Category struct {
	BaseModel
	WorkspaceID uint         `gorm:"index;not null" json:"workspaceId"`
	Name        string       `gorm:"size:100;not null" json:"name"`
	Type        CategoryType `gorm:"type:varchar(20);not null" json:"type"`
	Icon        string       `gorm:"size:64" json:"icon"`
}

func (Category) TableName() string {
	return "categories"
}
