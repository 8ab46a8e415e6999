package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ovenly/bakeshop-backend/internal/domain"
)

func AutoMigrateAll(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		// Identity
		&domain.User{},

		// Catalog
		&domain.MenuCategory{},
		&domain.MenuItem{},
		&domain.Campaign{},

		// Customers + order aggregate
		&domain.Customer{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Payment{},
	); err != nil {
		return err
	}
	return addForeignKeys(gdb)
}

// addForeignKeys wires referential integrity by hand; automigration runs
// with FK creation disabled so table ordering never matters. SQLite cannot
// ALTER TABLE ADD CONSTRAINT, so this is postgres-only.
func addForeignKeys(gdb *gorm.DB) error {
	if gdb.Dialector.Name() != "postgres" {
		return nil
	}
	constraints := []struct {
		name, ddl string
	}{
		{"fk_menu_items_category_id", `
			ALTER TABLE "menu_items"
			ADD CONSTRAINT "fk_menu_items_category_id"
			FOREIGN KEY ("category_id") REFERENCES "menu_categories"("id")`},
		{"fk_orders_customer_id", `
			ALTER TABLE "orders"
			ADD CONSTRAINT "fk_orders_customer_id"
			FOREIGN KEY ("customer_id") REFERENCES "customers"("id")`},
		{"fk_orders_campaign_id", `
			ALTER TABLE "orders"
			ADD CONSTRAINT "fk_orders_campaign_id"
			FOREIGN KEY ("campaign_id") REFERENCES "campaigns"("id")`},
		{"fk_order_items_order_id", `
			ALTER TABLE "order_items"
			ADD CONSTRAINT "fk_order_items_order_id"
			FOREIGN KEY ("order_id") REFERENCES "orders"("id")`},
		{"fk_order_items_menu_item_id", `
			ALTER TABLE "order_items"
			ADD CONSTRAINT "fk_order_items_menu_item_id"
			FOREIGN KEY ("menu_item_id") REFERENCES "menu_items"("id")`},
		{"fk_payments_order_id", `
			ALTER TABLE "payments"
			ADD CONSTRAINT "fk_payments_order_id"
			FOREIGN KEY ("order_id") REFERENCES "orders"("id")`},
	}
	for _, c := range constraints {
		var count int64
		if err := gdb.Raw(
			`SELECT COUNT(*) FROM information_schema.table_constraints WHERE constraint_name = ?`,
			c.name,
		).Scan(&count).Error; err != nil {
			return fmt.Errorf("check constraint %s: %w", c.name, err)
		}
		if count > 0 {
			continue
		}
		if err := gdb.Exec(c.ddl).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", c.name, err)
		}
	}
	return nil
}
