package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ovenly/bakeshop-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, gdb *gorm.DB, name, hashedPassword string) *domain.User {
	tb.Helper()
	u := &domain.User{Name: name, HashedPassword: hashedPassword}
	if err := gdb.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCustomer(tb testing.TB, ctx context.Context, gdb *gorm.DB, name string) *domain.Customer {
	tb.Helper()
	c := &domain.Customer{Name: name}
	if err := gdb.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedMenuCategory(tb testing.TB, ctx context.Context, gdb *gorm.DB, name string) *domain.MenuCategory {
	tb.Helper()
	mc := &domain.MenuCategory{Name: name}
	if err := gdb.WithContext(ctx).Create(mc).Error; err != nil {
		tb.Fatalf("seed menu category: %v", err)
	}
	return mc
}

func SeedMenuItem(tb testing.TB, ctx context.Context, gdb *gorm.DB, categoryID uint, name string, price float64) *domain.MenuItem {
	tb.Helper()
	mi := &domain.MenuItem{
		Name:       name,
		CategoryID: categoryID,
		Price:      price,
		PriceUnits: domain.PriceUnitEach,
	}
	if err := gdb.WithContext(ctx).Omit(clause.Associations).Create(mi).Error; err != nil {
		tb.Fatalf("seed menu item: %v", err)
	}
	return mi
}

func SeedCampaign(tb testing.TB, ctx context.Context, gdb *gorm.DB, name string) *domain.Campaign {
	tb.Helper()
	cp := &domain.Campaign{Name: name, Description: "seeded campaign"}
	if err := gdb.WithContext(ctx).Create(cp).Error; err != nil {
		tb.Fatalf("seed campaign: %v", err)
	}
	return cp
}

func SeedOrder(tb testing.TB, ctx context.Context, gdb *gorm.DB, customerID uint) *domain.Order {
	tb.Helper()
	o := &domain.Order{CustomerID: customerID}
	if err := gdb.WithContext(ctx).Omit(clause.Associations).Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	return o
}
