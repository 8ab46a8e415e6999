package services

import (
	"context"

	"github.com/ovenly/bakeshop-backend/internal/data/aggregates"
	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

type OrderListParams struct {
	Completed  *bool
	Descending bool
	Offset     int
	Limit      int
}

// OrderService fronts the order aggregate: reads go straight to the repo,
// writes go through the aggregate so its invariants hold. Item and payment
// mutations return the reloaded parent order, not the child row.
type OrderService interface {
	Create(ctx context.Context, create domain.OrderCreate) (*domain.Order, error)
	Get(ctx context.Context, id uint) (*domain.Order, error)
	List(ctx context.Context, params OrderListParams) ([]*domain.Order, int64, error)
	Update(ctx context.Context, id uint, patch domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id uint) error

	AddItem(ctx context.Context, create domain.OrderItemCreate) (*domain.Order, error)
	UpdateItem(ctx context.Context, itemID uint, patch domain.OrderItemPatch) (*domain.Order, error)
	RemoveItem(ctx context.Context, itemID uint) (*domain.Order, error)
}

type orderService struct {
	log       *logger.Logger
	aggregate aggregates.OrderAggregate
	orderRepo repos.OrderRepo
}

func NewOrderService(baseLog *logger.Logger, aggregate aggregates.OrderAggregate, orderRepo repos.OrderRepo) OrderService {
	return &orderService{
		log:       baseLog.With("service", "OrderService"),
		aggregate: aggregate,
		orderRepo: orderRepo,
	}
}

func (s *orderService) Create(ctx context.Context, create domain.OrderCreate) (*domain.Order, error) {
	return s.aggregate.CreateOrder(ctx, create)
}

func (s *orderService) Get(ctx context.Context, id uint) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFoundError("order.get", "Order not found")
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context, params OrderListParams) ([]*domain.Order, int64, error) {
	return s.orderRepo.List(ctx, nil, repos.OrderFilter{
		Completed:  params.Completed,
		Descending: params.Descending,
		Offset:     params.Offset,
		Limit:      params.Limit,
	})
}

func (s *orderService) Update(ctx context.Context, id uint, patch domain.OrderPatch) (*domain.Order, error) {
	return s.aggregate.UpdateOrder(ctx, id, patch)
}

func (s *orderService) Delete(ctx context.Context, id uint) error {
	return s.aggregate.DeleteOrder(ctx, id)
}

func (s *orderService) AddItem(ctx context.Context, create domain.OrderItemCreate) (*domain.Order, error) {
	return s.aggregate.AddItem(ctx, create)
}

func (s *orderService) UpdateItem(ctx context.Context, itemID uint, patch domain.OrderItemPatch) (*domain.Order, error) {
	return s.aggregate.UpdateItem(ctx, itemID, patch)
}

func (s *orderService) RemoveItem(ctx context.Context, itemID uint) (*domain.Order, error) {
	return s.aggregate.RemoveItem(ctx, itemID)
}
