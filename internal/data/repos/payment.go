package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

// PaymentFilter selects payments in the half-open date range
// [InclusiveStartDate, ExclusiveEndDate).
type PaymentFilter struct {
	InclusiveStartDate *domain.Date
	ExclusiveEndDate   *domain.Date
	Descending         bool
	Offset             int
	Limit              int
}

type PaymentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, payment *domain.Payment) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Payment, error)
	List(ctx context.Context, tx *gorm.DB, filter PaymentFilter) ([]*domain.Payment, int64, error)
	Update(ctx context.Context, tx *gorm.DB, payment *domain.Payment) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	DeleteByOrderID(ctx context.Context, tx *gorm.DB, orderID uint) error
}

type paymentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPaymentRepo(db *gorm.DB, baseLog *logger.Logger) PaymentRepo {
	return &paymentRepo{db: db, log: baseLog.With("repo", "PaymentRepo")}
}

func (r *paymentRepo) Create(ctx context.Context, tx *gorm.DB, payment *domain.Payment) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Create(payment).Error; err != nil {
		return Translate("payment.create", err)
	}
	return nil
}

func (r *paymentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Payment, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Payment
	if err := t.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, Translate("payment.get", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *paymentRepo) List(ctx context.Context, tx *gorm.DB, filter PaymentFilter) ([]*domain.Payment, int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Model(&domain.Payment{})
	if filter.InclusiveStartDate != nil {
		q = q.Where("date >= ?", *filter.InclusiveStartDate)
	}
	if filter.ExclusiveEndDate != nil {
		q = q.Where("date < ?", *filter.ExclusiveEndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, Translate("payment.list", err)
	}

	q = q.Order(clause.OrderByColumn{
		Column: clause.Column{Name: "date"},
		Desc:   filter.Descending,
	})
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var out []*domain.Payment
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, Translate("payment.list", err)
	}
	return out, total, nil
}

func (r *paymentRepo) Update(ctx context.Context, tx *gorm.DB, payment *domain.Payment) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Save(payment).Error; err != nil {
		return Translate("payment.update", err)
	}
	return nil
}

func (r *paymentRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Delete(&domain.Payment{}, id).Error; err != nil {
		return Translate("payment.delete", err)
	}
	return nil
}

func (r *paymentRepo) DeleteByOrderID(ctx context.Context, tx *gorm.DB, orderID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&domain.Payment{}).Error; err != nil {
		return Translate("payment.delete_by_order", err)
	}
	return nil
}
