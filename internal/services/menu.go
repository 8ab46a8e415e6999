package services

import (
	"context"

	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

type MenuCategoryListParams struct {
	Descending bool
	Offset     int
	Limit      int
}

type MenuItemListParams struct {
	CategoryID *uint
	NamePrefix *string
	Descending bool
	Offset     int
	Limit      int
}

// MenuService covers both halves of the menu: categories and the items
// under them.
type MenuService interface {
	CreateCategory(ctx context.Context, create domain.MenuCategoryCreate) (*domain.MenuCategory, error)
	GetCategory(ctx context.Context, id uint) (*domain.MenuCategory, error)
	ListCategories(ctx context.Context, params MenuCategoryListParams) ([]*domain.MenuCategory, int64, error)
	UpdateCategory(ctx context.Context, id uint, patch domain.MenuCategoryPatch) (*domain.MenuCategory, error)

	CreateItem(ctx context.Context, create domain.MenuItemCreate) (*domain.MenuItem, error)
	GetItem(ctx context.Context, id uint) (*domain.MenuItem, error)
	ListItems(ctx context.Context, params MenuItemListParams) ([]*domain.MenuItem, int64, error)
	UpdateItem(ctx context.Context, id uint, patch domain.MenuItemPatch) (*domain.MenuItem, error)
}

type menuService struct {
	log          *logger.Logger
	categoryRepo repos.MenuCategoryRepo
	itemRepo     repos.MenuItemRepo
}

func NewMenuService(baseLog *logger.Logger, categoryRepo repos.MenuCategoryRepo, itemRepo repos.MenuItemRepo) MenuService {
	return &menuService{
		log:          baseLog.With("service", "MenuService"),
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

func (s *menuService) CreateCategory(ctx context.Context, create domain.MenuCategoryCreate) (*domain.MenuCategory, error) {
	category := &domain.MenuCategory{
		Name:        create.Name,
		Description: create.Description,
	}
	if err := s.categoryRepo.Create(ctx, nil, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *menuService) GetCategory(ctx context.Context, id uint) (*domain.MenuCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFoundError("menu_category.get", "Menu category not found")
	}
	return category, nil
}

func (s *menuService) ListCategories(ctx context.Context, params MenuCategoryListParams) ([]*domain.MenuCategory, int64, error) {
	return s.categoryRepo.List(ctx, nil, repos.MenuCategoryFilter{
		Descending: params.Descending,
		Offset:     params.Offset,
		Limit:      params.Limit,
	})
}

func (s *menuService) UpdateCategory(ctx context.Context, id uint, patch domain.MenuCategoryPatch) (*domain.MenuCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFoundError("menu_category.update", "Menu category not found")
	}
	patch.ApplyTo(category)
	if err := s.categoryRepo.Update(ctx, nil, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *menuService) CreateItem(ctx context.Context, create domain.MenuItemCreate) (*domain.MenuItem, error) {
	// A clear 404 beats a raw foreign-key failure from the store.
	category, err := s.categoryRepo.GetByID(ctx, nil, create.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFoundError("menu_item.create", "Menu category not found")
	}

	item := &domain.MenuItem{
		Name:        create.Name,
		CategoryID:  create.CategoryID,
		Description: create.Description,
		Price:       create.Price,
		PriceUnits:  create.PriceUnits,
	}
	if err := s.itemRepo.Create(ctx, nil, item); err != nil {
		return nil, err
	}
	return s.GetItem(ctx, item.ID)
}

func (s *menuService) GetItem(ctx context.Context, id uint) (*domain.MenuItem, error) {
	item, err := s.itemRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFoundError("menu_item.get", "Menu item not found")
	}
	return item, nil
}

func (s *menuService) ListItems(ctx context.Context, params MenuItemListParams) ([]*domain.MenuItem, int64, error) {
	return s.itemRepo.List(ctx, nil, repos.MenuItemFilter{
		CategoryID: params.CategoryID,
		NamePrefix: params.NamePrefix,
		Descending: params.Descending,
		Offset:     params.Offset,
		Limit:      params.Limit,
	})
}

func (s *menuService) UpdateItem(ctx context.Context, id uint, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	item, err := s.itemRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFoundError("menu_item.update", "Menu item not found")
	}
	if patch.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, nil, *patch.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.NotFoundError("menu_item.update", "Menu category not found")
		}
	}
	patch.ApplyTo(item)
	if err := s.itemRepo.Update(ctx, nil, item); err != nil {
		return nil, err
	}
	return s.GetItem(ctx, id)
}
