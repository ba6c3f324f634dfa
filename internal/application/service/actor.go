package service

import "github.com/google/uuid"

// Actor is the authenticated staff identity a mutation runs as, built from
// JWT claims by the HTTP layer.
type Actor struct {
	UserID      uuid.UUID
	TenantID    uuid.UUID
	BranchID    uuid.UUID
	Name        string
	Roles       []string
	Permissions []string
}
