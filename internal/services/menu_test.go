package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/data/repos/testutil"
	"github.com/ovenly/bakeshop-backend/internal/domain"
)

func newMenuService(t *testing.T) (MenuService, *gorm.DB) {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	return NewMenuService(log, repos.NewMenuCategoryRepo(gdb, log), repos.NewMenuItemRepo(gdb, log)), gdb
}

func TestMenuItemCreateRequiresCategory(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, domain.MenuItemCreate{
		Name:       "Vanilla cupcake",
		CategoryID: 42,
		Price:      18,
		PriceUnits: domain.PriceUnitDozen,
	})
	if !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("expected not found for missing category, got %v", err)
	}
}

func TestMenuItemCreateJoinsCategory(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, domain.MenuCategoryCreate{Name: "Cupcakes"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	item, err := svc.CreateItem(ctx, domain.MenuItemCreate{
		Name:       "Vanilla cupcake",
		CategoryID: category.ID,
		Price:      18,
		PriceUnits: domain.PriceUnitDozen,
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Category.ID != category.ID || item.Category.Name != "Cupcakes" {
		t.Fatalf("category not joined: %+v", item.Category)
	}
}

func TestMenuCategoryDuplicateName(t *testing.T) {
	svc, _ := newMenuService(t)
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, domain.MenuCategoryCreate{Name: "Breads"}); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	_, err := svc.CreateCategory(ctx, domain.MenuCategoryCreate{Name: "Breads"})
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if got := domain.MessageOf(err); got != "A menu category already exists with that name" {
		t.Fatalf("message = %q", got)
	}
}

func TestMenuItemUpdateValidatesNewCategory(t *testing.T) {
	svc, gdb := newMenuService(t)
	ctx := context.Background()

	category := testutil.SeedMenuCategory(t, ctx, gdb, "Cookies")
	item := testutil.SeedMenuItem(t, ctx, gdb, category.ID, "Snickerdoodle", 12)

	if _, err := svc.UpdateItem(ctx, item.ID, domain.MenuItemPatch{CategoryID: testutil.Ptr(uint(99))}); !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("expected not found for missing category, got %v", err)
	}

	updated, err := svc.UpdateItem(ctx, item.ID, domain.MenuItemPatch{Price: testutil.Ptr(14.0)})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Price != 14.0 || updated.Name != "Snickerdoodle" {
		t.Fatalf("sparse update wrong: %+v", updated)
	}
}
