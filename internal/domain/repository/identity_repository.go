package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
)

// UserRepository defines data access for staff users.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByMobile(ctx context.Context, mobile string) (*entity.User, error)
	// GetWithAccess loads the user with roles and their permissions.
	GetWithAccess(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// RoleRepository defines data access for roles.
type RoleRepository interface {
	GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*entity.Role, error)
	Create(ctx context.Context, role *entity.Role) error
}

// TenantRepository defines data access for tenants.
type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)
}

// BranchRepository defines data access for branches.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]entity.Branch, error)
}

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]entity.Customer, error)
}

// DiningTableRepository defines data access for dining tables.
type DiningTableRepository interface {
	Create(ctx context.Context, table *entity.DiningTable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error)
	List(ctx context.Context, branchID uuid.UUID) ([]entity.DiningTable, error)
}
