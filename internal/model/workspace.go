package model

type WorkspaceType string

const (
	WorkspacePersonal WorkspaceType = "personal"
	WorkspaceShared   WorkspaceType = "shared"
)

type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleEditor MemberRole = "editor"
	RoleViewer MemberRole = "viewer"
)

// Workspace is the tenant boundary: accounts, transactions, goals and debts
// all hang off one workspace.
type Workspace struct {
	BaseModel
	Name    string        `gorm:"size:255;not null" json:"name"`
	Type    WorkspaceType `gorm:"type:varchar(20);default:'personal'" json:"type"`
	OwnerID uint          `gorm:"index;not null" json:"ownerId"`
}

type WorkspaceMember struct {
	BaseModel
	WorkspaceID uint       `gorm:"uniqueIndex:idx_workspace_user;not null" json:"workspaceId"`
	UserID      uint       `gorm:"uniqueIndex:idx_workspace_user;not null" json:"userId"`
	Role        MemberRole `gorm:"type:varchar(20);default:'viewer'" json:"role"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

func (WorkspaceMember) TableName() string {
	return "workspace_members"
}
