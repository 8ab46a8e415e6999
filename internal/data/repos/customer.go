package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

// CustomerFilter narrows and orders a customer listing. Nil filter fields
// are ignored; matches are exact against the stored (lowercased) values.
type CustomerFilter struct {
	Name       *string
	Email      *string
	Phone      *string
	OrderBy    string // name | email | phone
	Descending bool
	Offset     int
	Limit      int
}

type CustomerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, customer *domain.Customer) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Customer, error)
	List(ctx context.Context, tx *gorm.DB, filter CustomerFilter) ([]*domain.Customer, int64, error)
	Update(ctx context.Context, tx *gorm.DB, customer *domain.Customer) error
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return &customerRepo{db: db, log: baseLog.With("repo", "CustomerRepo")}
}

func (r *customerRepo) Create(ctx context.Context, tx *gorm.DB, customer *domain.Customer) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Create(customer).Error; err != nil {
		return Translate("customer.create", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Customer, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Customer
	if err := t.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, Translate("customer.get", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *customerRepo) List(ctx context.Context, tx *gorm.DB, filter CustomerFilter) ([]*domain.Customer, int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Model(&domain.Customer{})
	if filter.Name != nil {
		q = q.Where("name = ?", *filter.Name)
	}
	if filter.Email != nil {
		q = q.Where("email = ?", *filter.Email)
	}
	if filter.Phone != nil {
		q = q.Where("phone = ?", *filter.Phone)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, Translate("customer.list", err)
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "name"
	}
	q = q.Order(clause.OrderByColumn{
		Column: clause.Column{Name: orderBy},
		Desc:   filter.Descending,
	})
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var out []*domain.Customer
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, Translate("customer.list", err)
	}
	return out, total, nil
}

func (r *customerRepo) Update(ctx context.Context, tx *gorm.DB, customer *domain.Customer) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Save(customer).Error; err != nil {
		return Translate("customer.update", err)
	}
	return nil
}
