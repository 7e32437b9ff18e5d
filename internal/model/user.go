package model

import "time"

type UserRole string

const (
	Admin  UserRole = "admin"
	Member UserRole = "member"
)

type User struct {
	BaseModel
	Name     string     `gorm:"size:255;not null" json:"name"`
	Email    string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string     `gorm:"size:255;not null" json:"-"`
	Role     UserRole   `gorm:"type:varchar(20);default:'member'" json:"role"`
	LastSeen *time.Time `json:"lastSeen,omitempty"`
}

func (User) TableName() string {
	return "users"
}
