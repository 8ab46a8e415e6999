package aggregates

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/data/repos/testutil"
	"github.com/ovenly/bakeshop-backend/internal/domain"
)

type orderFixture struct {
	gdb      *gorm.DB
	agg      OrderAggregate
	customer *domain.Customer
	menuItem *domain.MenuItem
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	customer := testutil.SeedCustomer(t, ctx, gdb, "cj")
	category := testutil.SeedMenuCategory(t, ctx, gdb, "Cocoa Bombs")
	menuItem := testutil.SeedMenuItem(t, ctx, gdb, category.ID, "Chocolate cocoa bomb", 5.0)

	agg := NewOrderAggregate(
		NewGormTxRunner(gdb),
		log,
		repos.NewOrderRepo(gdb, log),
		repos.NewOrderItemRepo(gdb, log),
		repos.NewPaymentRepo(gdb, log),
	)
	return orderFixture{gdb: gdb, agg: agg, customer: customer, menuItem: menuItem}
}

func (f orderFixture) createOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := f.agg.CreateOrder(context.Background(), domain.OrderCreate{
		CustomerID: f.customer.ID,
		OrderItems: []domain.OrderItemNewOrder{{
			MenuItemID:   f.menuItem.ID,
			Quantity:     4,
			MenuPrice:    20.0,
			ChargedPrice: 20.0,
		}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	return order
}

func TestCreateOrderRequiresItems(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.agg.CreateOrder(context.Background(), domain.OrderCreate{
		CustomerID: f.customer.ID,
	})
	if err == nil {
		t.Fatal("expected error for order with no items")
	}
	if !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("expected validation code, got %v", err)
	}
	if got := domain.MessageOf(err); got != "An order requires at least 1 item" {
		t.Fatalf("message = %q", got)
	}

	var count int64
	if err := f.gdb.Model(&domain.Order{}).Count(&count).Error; err != nil || count != 0 {
		t.Fatalf("no order row should exist: count=%d err=%v", count, err)
	}
}

func TestCreateOrderWithItemsAndPayments(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.agg.CreateOrder(context.Background(), domain.OrderCreate{
		CustomerID: f.customer.ID,
		OrderItems: []domain.OrderItemNewOrder{
			{MenuItemID: f.menuItem.ID, Quantity: 4, MenuPrice: 20, ChargedPrice: 20},
			{MenuItemID: f.menuItem.ID, Quantity: 1, MenuPrice: 5, ChargedPrice: 4.5},
		},
		Payments: []domain.PaymentNewOrder{
			{Amount: 10, Method: domain.PaymentZelle, Date: domain.NewDate(2022, time.March, 5)},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.ID == 0 {
		t.Fatal("expected generated order id")
	}
	if len(order.OrderItems) != 2 || len(order.Payments) != 1 {
		t.Fatalf("aggregate snapshot: items=%d payments=%d", len(order.OrderItems), len(order.Payments))
	}
	// Input order preserved.
	if order.OrderItems[0].Quantity != 4 || order.OrderItems[1].Quantity != 1 {
		t.Fatalf("item order not preserved: %+v", order.OrderItems)
	}
	for _, item := range order.OrderItems {
		if item.OrderID != order.ID {
			t.Fatalf("item %d not linked to order %d", item.ID, order.ID)
		}
	}
	if order.Customer.Name != "cj" {
		t.Fatalf("customer not joined: %+v", order.Customer)
	}
	if order.OrderItems[0].MenuItem.Name != "Chocolate cocoa bomb" {
		t.Fatalf("menu item not joined: %+v", order.OrderItems[0].MenuItem)
	}
}

func TestAddAndRemoveItem(t *testing.T) {
	f := newOrderFixture(t)
	order := f.createOrder(t)
	ctx := context.Background()

	reloaded, err := f.agg.AddItem(ctx, domain.OrderItemCreate{
		OrderID: order.ID,
		OrderItemNewOrder: domain.OrderItemNewOrder{
			MenuItemID:   f.menuItem.ID,
			Quantity:     10,
			MenuPrice:    50,
			ChargedPrice: 50,
			Notes:        testutil.Ptr("Addon"),
		},
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(reloaded.OrderItems) != 2 || len(reloaded.Payments) != 0 {
		t.Fatalf("after add: items=%d payments=%d", len(reloaded.OrderItems), len(reloaded.Payments))
	}

	_, err = f.agg.AddItem(ctx, domain.OrderItemCreate{
		OrderID:           9999,
		OrderItemNewOrder: domain.OrderItemNewOrder{MenuItemID: f.menuItem.ID, Quantity: 1, MenuPrice: 5, ChargedPrice: 5},
	})
	if !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("AddItem to missing order: %v", err)
	}

	newItem := reloaded.OrderItems[1]
	reloaded, err = f.agg.RemoveItem(ctx, newItem.ID)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(reloaded.OrderItems) != 1 {
		t.Fatalf("after remove: items=%d", len(reloaded.OrderItems))
	}

	if _, err = f.agg.RemoveItem(ctx, newItem.ID); !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("RemoveItem twice: %v", err)
	}
}

func TestUpdateItemKeepsOrderAssociation(t *testing.T) {
	f := newOrderFixture(t)
	order := f.createOrder(t)
	ctx := context.Background()
	item := order.OrderItems[0]

	reloaded, err := f.agg.UpdateItem(ctx, item.ID, domain.OrderItemPatch{
		OrderID:      order.ID,
		ChargedPrice: testutil.Ptr(55.0),
	})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	got := reloaded.OrderItems[0]
	if got.ChargedPrice != 55.0 {
		t.Fatalf("charged price not updated: %v", got.ChargedPrice)
	}
	// Sparse patch leaves other fields alone.
	if got.Quantity != item.Quantity || got.MenuPrice != item.MenuPrice {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	// Pointing the patch at a different order is rejected.
	other := testutil.SeedOrder(t, ctx, f.gdb, f.customer.ID)
	_, err = f.agg.UpdateItem(ctx, item.ID, domain.OrderItemPatch{OrderID: other.ID})
	if !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("expected validation error for mismatched order id, got %v", err)
	}

	_, err = f.agg.UpdateItem(ctx, 9999, domain.OrderItemPatch{OrderID: order.ID})
	if !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("expected not found for missing item, got %v", err)
	}
}

func TestPaymentLifecycle(t *testing.T) {
	f := newOrderFixture(t)
	order := f.createOrder(t)
	ctx := context.Background()

	reloaded, err := f.agg.AddPayment(ctx, domain.PaymentCreate{
		OrderID: order.ID,
		PaymentNewOrder: domain.PaymentNewOrder{
			Amount: 20,
			Method: domain.PaymentCash,
			Date:   domain.NewDate(2022, time.March, 10),
		},
	})
	if err != nil {
		t.Fatalf("AddPayment: %v", err)
	}
	if len(reloaded.Payments) != 1 || len(reloaded.OrderItems) != 1 {
		t.Fatalf("after add payment: payments=%d items=%d", len(reloaded.Payments), len(reloaded.OrderItems))
	}

	_, err = f.agg.AddPayment(ctx, domain.PaymentCreate{
		OrderID:         9999,
		PaymentNewOrder: domain.PaymentNewOrder{Amount: 20, Method: domain.PaymentCash, Date: domain.NewDate(2022, time.March, 10)},
	})
	if !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("AddPayment to missing order: %v", err)
	}

	payment := reloaded.Payments[0]
	reloaded, err = f.agg.UpdatePayment(ctx, payment.ID, domain.PaymentPatch{
		OrderID: order.ID,
		Amount:  testutil.Ptr(25.0),
	})
	if err != nil {
		t.Fatalf("UpdatePayment: %v", err)
	}
	if reloaded.Payments[0].Amount != 25.0 {
		t.Fatalf("amount not updated: %v", reloaded.Payments[0].Amount)
	}
	if reloaded.Payments[0].Method != domain.PaymentCash {
		t.Fatalf("untouched method changed: %v", reloaded.Payments[0].Method)
	}

	other := testutil.SeedOrder(t, ctx, f.gdb, f.customer.ID)
	_, err = f.agg.UpdatePayment(ctx, payment.ID, domain.PaymentPatch{OrderID: other.ID})
	if !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("expected validation error for mismatched order id, got %v", err)
	}

	reloaded, err = f.agg.RemovePayment(ctx, payment.ID)
	if err != nil {
		t.Fatalf("RemovePayment: %v", err)
	}
	if len(reloaded.Payments) != 0 {
		t.Fatalf("after remove: payments=%d", len(reloaded.Payments))
	}
}

func TestDeleteOrderCascades(t *testing.T) {
	f := newOrderFixture(t)
	order := f.createOrder(t)
	ctx := context.Background()

	if _, err := f.agg.AddPayment(ctx, domain.PaymentCreate{
		OrderID:         order.ID,
		PaymentNewOrder: domain.PaymentNewOrder{Amount: 5, Method: domain.PaymentPaypal, Date: domain.NewDate(2022, time.April, 1)},
	}); err != nil {
		t.Fatalf("AddPayment: %v", err)
	}

	if err := f.agg.DeleteOrder(ctx, order.ID); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}

	var orders, items, payments int64
	f.gdb.Model(&domain.Order{}).Count(&orders)
	f.gdb.Model(&domain.OrderItem{}).Count(&items)
	f.gdb.Model(&domain.Payment{}).Count(&payments)
	if orders != 0 || items != 0 || payments != 0 {
		t.Fatalf("cascade incomplete: orders=%d items=%d payments=%d", orders, items, payments)
	}

	if err := f.agg.DeleteOrder(ctx, order.ID); !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("DeleteOrder missing: %v", err)
	}
}

func TestUpdateOrderSparsePatch(t *testing.T) {
	f := newOrderFixture(t)
	order := f.createOrder(t)
	ctx := context.Background()

	reloaded, err := f.agg.UpdateOrder(ctx, order.ID, domain.OrderPatch{
		Completed: testutil.Ptr(true),
	})
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if !reloaded.Completed {
		t.Fatal("completed not set")
	}
	if reloaded.CustomerID != order.CustomerID || reloaded.PriceAdjustment != order.PriceAdjustment {
		t.Fatalf("untouched fields changed: %+v", reloaded)
	}
	if len(reloaded.OrderItems) != 1 {
		t.Fatalf("children lost on patch: items=%d", len(reloaded.OrderItems))
	}

	// Applying the same patch twice is a no-op for everything but
	// date_modified.
	again, err := f.agg.UpdateOrder(ctx, order.ID, domain.OrderPatch{Completed: testutil.Ptr(true)})
	if err != nil {
		t.Fatalf("UpdateOrder again: %v", err)
	}
	if again.Completed != reloaded.Completed || again.CustomerID != reloaded.CustomerID {
		t.Fatalf("patch not idempotent: %+v vs %+v", again, reloaded)
	}

	if _, err := f.agg.UpdateOrder(ctx, 9999, domain.OrderPatch{}); !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("UpdateOrder missing: %v", err)
	}
}
