package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

type OrderItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, item *domain.OrderItem) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.OrderItem, error)
	Update(ctx context.Context, tx *gorm.DB, item *domain.OrderItem) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	DeleteByOrderID(ctx context.Context, tx *gorm.DB, orderID uint) error
}

type orderItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderItemRepo(db *gorm.DB, baseLog *logger.Logger) OrderItemRepo {
	return &orderItemRepo{db: db, log: baseLog.With("repo", "OrderItemRepo")}
}

func (r *orderItemRepo) Create(ctx context.Context, tx *gorm.DB, item *domain.OrderItem) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return Translate("order_item.create", err)
	}
	return nil
}

func (r *orderItemRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.OrderItem, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.OrderItem
	if err := t.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, Translate("order_item.get", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *orderItemRepo) Update(ctx context.Context, tx *gorm.DB, item *domain.OrderItem) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Save(item).Error; err != nil {
		return Translate("order_item.update", err)
	}
	return nil
}

func (r *orderItemRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Delete(&domain.OrderItem{}, id).Error; err != nil {
		return Translate("order_item.delete", err)
	}
	return nil
}

func (r *orderItemRepo) DeleteByOrderID(ctx context.Context, tx *gorm.DB, orderID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&domain.OrderItem{}).Error; err != nil {
		return Translate("order_item.delete_by_order", err)
	}
	return nil
}
