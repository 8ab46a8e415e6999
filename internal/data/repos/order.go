package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

type OrderFilter struct {
	Completed  *bool
	Descending bool
	Offset     int
	Limit      int
}

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, order *domain.Order) error
	// GetByID loads the full aggregate: customer, campaign, items (with
	// their menu items) and payments.
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Order, error)
	// GetRowByID loads only the orders row, for patch merges.
	GetRowByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Order, error)
	List(ctx context.Context, tx *gorm.DB, filter OrderFilter) ([]*domain.Order, int64, error)
	Update(ctx context.Context, tx *gorm.DB, order *domain.Order) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return &orderRepo{db: db, log: baseLog.With("repo", "OrderRepo")}
}

func aggregatePreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Customer").
		Preload("Campaign").
		Preload("OrderItems", func(q *gorm.DB) *gorm.DB { return q.Order("order_items.id") }).
		Preload("OrderItems.MenuItem").
		Preload("OrderItems.MenuItem.Category").
		Preload("Payments", func(q *gorm.DB) *gorm.DB { return q.Order("payments.id") })
}

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, order *domain.Order) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Create(order).Error; err != nil {
		return Translate("order.create", err)
	}
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Order, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Order
	if err := aggregatePreloads(t.WithContext(ctx)).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, Translate("order.get", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *orderRepo) GetRowByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Order, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Order
	if err := t.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, Translate("order.get", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *orderRepo) List(ctx context.Context, tx *gorm.DB, filter OrderFilter) ([]*domain.Order, int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Model(&domain.Order{})
	if filter.Completed != nil {
		q = q.Where("completed = ?", *filter.Completed)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, Translate("order.list", err)
	}

	q = aggregatePreloads(q).Order(clause.OrderByColumn{
		Column: clause.Column{Name: "id"},
		Desc:   filter.Descending,
	})
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var out []*domain.Order
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, Translate("order.list", err)
	}
	return out, total, nil
}

func (r *orderRepo) Update(ctx context.Context, tx *gorm.DB, order *domain.Order) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Save(order).Error; err != nil {
		return Translate("order.update", err)
	}
	return nil
}

func (r *orderRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Delete(&domain.Order{}, id).Error; err != nil {
		return Translate("order.delete", err)
	}
	return nil
}
