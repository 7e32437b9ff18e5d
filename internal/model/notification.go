package model

// Notification is the sink record for engine events. Delivery and read-state
// handling live in the client application.
type Notification struct {
	BaseModel
	WorkspaceID uint   `gorm:"index;not null" json:"workspaceId"`
	UserID      *uint  `gorm:"index" json:"userId,omitempty"`
	Type        string `gorm:"size:50;not null" json:"type"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Message     string `gorm:"type:text" json:"message"`
	IsRead      bool   `gorm:"default:false" json:"isRead"`
}

func (Notification) TableName() string {
	return "notifications"
}
