package services

import (
	"context"
	"strings"

	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

// CustomerListParams mirrors the customer list query surface: exact-match
// filters plus a caller-chosen sort column.
type CustomerListParams struct {
	Name       *string
	Email      *string
	Phone      *string
	OrderBy    string
	Descending bool
	Offset     int
	Limit      int
}

type CustomerService interface {
	Create(ctx context.Context, create domain.CustomerCreate) (*domain.Customer, error)
	Get(ctx context.Context, id uint) (*domain.Customer, error)
	List(ctx context.Context, params CustomerListParams) ([]*domain.Customer, int64, error)
	Update(ctx context.Context, id uint, patch domain.CustomerPatch) (*domain.Customer, error)
}

type customerService struct {
	log  *logger.Logger
	repo repos.CustomerRepo
}

func NewCustomerService(baseLog *logger.Logger, repo repos.CustomerRepo) CustomerService {
	return &customerService{
		log:  baseLog.With("service", "CustomerService"),
		repo: repo,
	}
}

func (s *customerService) Create(ctx context.Context, create domain.CustomerCreate) (*domain.Customer, error) {
	customer := &domain.Customer{
		Name:  strings.ToLower(create.Name),
		Email: create.Email,
		Phone: create.Phone,
		Notes: create.Notes,
	}
	if err := s.repo.Create(ctx, nil, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Get(ctx context.Context, id uint) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFoundError("customer.get", "Customer not found")
	}
	return customer, nil
}

func (s *customerService) List(ctx context.Context, params CustomerListParams) ([]*domain.Customer, int64, error) {
	switch params.OrderBy {
	case "", "name", "email", "phone":
	default:
		return nil, 0, domain.ValidationError("customer.list", "orderby must be one of name, email, phone")
	}
	// Stored names are lowercased, so the filter must be too.
	if params.Name != nil {
		lowered := strings.ToLower(*params.Name)
		params.Name = &lowered
	}
	return s.repo.List(ctx, nil, repos.CustomerFilter{
		Name:       params.Name,
		Email:      params.Email,
		Phone:      params.Phone,
		OrderBy:    params.OrderBy,
		Descending: params.Descending,
		Offset:     params.Offset,
		Limit:      params.Limit,
	})
}

func (s *customerService) Update(ctx context.Context, id uint, patch domain.CustomerPatch) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFoundError("customer.update", "Customer not found")
	}
	if patch.Name != nil {
		lowered := strings.ToLower(*patch.Name)
		patch.Name = &lowered
	}
	patch.ApplyTo(customer)
	if err := s.repo.Update(ctx, nil, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
