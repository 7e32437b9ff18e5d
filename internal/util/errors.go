package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrWorkspaceNotFound   = errors.New("workspace not found")
	ErrNotWorkspaceMember  = errors.New("not a member of this workspace")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDebtNotFound        = errors.New("debt not found")
	ErrGoalNotActive       = errors.New("goal is not active")
	ErrInvalidAmount       = errors.New("amount must be positive")
)
