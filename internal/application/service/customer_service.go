package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
	"github.com/rasoipos/rasoi-api/pkg/apperror"
)

// CustomerService manages order counterparties and dining tables.
type CustomerService struct {
	customerRepo repository.CustomerRepository
	tableRepo    repository.DiningTableRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	tableRepo repository.DiningTableRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		tableRepo:    tableRepo,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name      string
	Phone     string
	StateCode string
}

// CreateCustomer registers a customer. StateCode feeds the GST split on
// later orders.
func (s *CustomerService) CreateCustomer(ctx context.Context, actor *Actor, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewInvalidArgumentError("Customer name is required")
	}
	customer := &entity.Customer{
		TenantID:  actor.TenantID,
		Name:      input.Name,
		Phone:     input.Phone,
		StateCode: input.StateCode,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer returns a customer by id.
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists the tenant's customers.
func (s *CustomerService) ListCustomers(ctx context.Context, actor *Actor) ([]entity.Customer, error) {
	return s.customerRepo.List(ctx, actor.TenantID)
}

// CreateTableInput represents the create dining table input
type CreateTableInput struct {
	Code  string
	Zone  string
	Seats int
}

// CreateTable registers a dining table within the actor's branch.
func (s *CustomerService) CreateTable(ctx context.Context, actor *Actor, input *CreateTableInput) (*entity.DiningTable, error) {
	if input.Code == "" {
		return nil, apperror.NewInvalidArgumentError("Table code is required")
	}
	table := &entity.DiningTable{
		BranchID: actor.BranchID,
		Code:     input.Code,
		Zone:     input.Zone,
		Seats:    input.Seats,
	}
	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// ListTables lists the branch's dining tables.
func (s *CustomerService) ListTables(ctx context.Context, actor *Actor) ([]entity.DiningTable, error) {
	return s.tableRepo.List(ctx, actor.BranchID)
}
