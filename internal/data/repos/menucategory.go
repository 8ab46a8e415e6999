package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

type MenuCategoryFilter struct {
	Descending bool
	Offset     int
	Limit      int
}

type MenuCategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, category *domain.MenuCategory) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.MenuCategory, error)
	List(ctx context.Context, tx *gorm.DB, filter MenuCategoryFilter) ([]*domain.MenuCategory, int64, error)
	Update(ctx context.Context, tx *gorm.DB, category *domain.MenuCategory) error
}

type menuCategoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMenuCategoryRepo(db *gorm.DB, baseLog *logger.Logger) MenuCategoryRepo {
	return &menuCategoryRepo{db: db, log: baseLog.With("repo", "MenuCategoryRepo")}
}

func (r *menuCategoryRepo) Create(ctx context.Context, tx *gorm.DB, category *domain.MenuCategory) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Create(category).Error; err != nil {
		return Translate("menu_category.create", err)
	}
	return nil
}

func (r *menuCategoryRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.MenuCategory, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.MenuCategory
	if err := t.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, Translate("menu_category.get", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *menuCategoryRepo) List(ctx context.Context, tx *gorm.DB, filter MenuCategoryFilter) ([]*domain.MenuCategory, int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Model(&domain.MenuCategory{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, Translate("menu_category.list", err)
	}

	q = q.Order(clause.OrderByColumn{
		Column: clause.Column{Name: "name"},
		Desc:   filter.Descending,
	})
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var out []*domain.MenuCategory
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, Translate("menu_category.list", err)
	}
	return out, total, nil
}

func (r *menuCategoryRepo) Update(ctx context.Context, tx *gorm.DB, category *domain.MenuCategory) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Save(category).Error; err != nil {
		return Translate("menu_category.update", err)
	}
	return nil
}
