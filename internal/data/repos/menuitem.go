package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

// MenuItemFilter narrows a menu listing. NamePrefix matches from the start
// of the item name; CategoryID is exact.
type MenuItemFilter struct {
	CategoryID *uint
	NamePrefix *string
	Descending bool
	Offset     int
	Limit      int
}

type MenuItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, item *domain.MenuItem) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.MenuItem, error)
	List(ctx context.Context, tx *gorm.DB, filter MenuItemFilter) ([]*domain.MenuItem, int64, error)
	Update(ctx context.Context, tx *gorm.DB, item *domain.MenuItem) error
}

type menuItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMenuItemRepo(db *gorm.DB, baseLog *logger.Logger) MenuItemRepo {
	return &menuItemRepo{db: db, log: baseLog.With("repo", "MenuItemRepo")}
}

func (r *menuItemRepo) Create(ctx context.Context, tx *gorm.DB, item *domain.MenuItem) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return Translate("menu_item.create", err)
	}
	return nil
}

func (r *menuItemRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.MenuItem, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.MenuItem
	if err := t.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, Translate("menu_item.get", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *menuItemRepo) List(ctx context.Context, tx *gorm.DB, filter MenuItemFilter) ([]*domain.MenuItem, int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Model(&domain.MenuItem{})
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.NamePrefix != nil {
		q = q.Where("name LIKE ?", *filter.NamePrefix+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, Translate("menu_item.list", err)
	}

	q = q.Preload("Category").Order(clause.OrderByColumn{
		Column: clause.Column{Name: "name"},
		Desc:   filter.Descending,
	})
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var out []*domain.MenuItem
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, Translate("menu_item.list", err)
	}
	return out, total, nil
}

func (r *menuItemRepo) Update(ctx context.Context, tx *gorm.DB, item *domain.MenuItem) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Save(item).Error; err != nil {
		return Translate("menu_item.update", err)
	}
	return nil
}
