package services

import (
	"context"

	"github.com/ovenly/bakeshop-backend/internal/data/aggregates"
	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

// PaymentListParams filters payments by a half-open [start, end) date range.
type PaymentListParams struct {
	InclusiveStartDate *domain.Date
	ExclusiveEndDate   *domain.Date
	Descending         bool
	Offset             int
	Limit              int
}

// PaymentService reads payments directly; mutations go through the order
// aggregate and return the reloaded parent order.
type PaymentService interface {
	List(ctx context.Context, params PaymentListParams) ([]*domain.Payment, int64, error)

	Add(ctx context.Context, create domain.PaymentCreate) (*domain.Order, error)
	Update(ctx context.Context, paymentID uint, patch domain.PaymentPatch) (*domain.Order, error)
	Remove(ctx context.Context, paymentID uint) (*domain.Order, error)
}

type paymentService struct {
	log         *logger.Logger
	aggregate   aggregates.OrderAggregate
	paymentRepo repos.PaymentRepo
}

func NewPaymentService(baseLog *logger.Logger, aggregate aggregates.OrderAggregate, paymentRepo repos.PaymentRepo) PaymentService {
	return &paymentService{
		log:         baseLog.With("service", "PaymentService"),
		aggregate:   aggregate,
		paymentRepo: paymentRepo,
	}
}

func (s *paymentService) List(ctx context.Context, params PaymentListParams) ([]*domain.Payment, int64, error) {
	return s.paymentRepo.List(ctx, nil, repos.PaymentFilter{
		InclusiveStartDate: params.InclusiveStartDate,
		ExclusiveEndDate:   params.ExclusiveEndDate,
		Descending:         params.Descending,
		Offset:             params.Offset,
		Limit:              params.Limit,
	})
}

func (s *paymentService) Add(ctx context.Context, create domain.PaymentCreate) (*domain.Order, error) {
	return s.aggregate.AddPayment(ctx, create)
}

func (s *paymentService) Update(ctx context.Context, paymentID uint, patch domain.PaymentPatch) (*domain.Order, error) {
	return s.aggregate.UpdatePayment(ctx, paymentID, patch)
}

func (s *paymentService) Remove(ctx context.Context, paymentID uint) (*domain.Order, error) {
	return s.aggregate.RemovePayment(ctx, paymentID)
}
