package aggregates

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

// OrderAggregate orchestrates multi-row writes over an order and its owned
// items and payments. Every mutation runs in a single transaction and child
// mutations return the reloaded parent aggregate, never just the child row.
type OrderAggregate interface {
	CreateOrder(ctx context.Context, create domain.OrderCreate) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID uint, patch domain.OrderPatch) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uint) error

	AddItem(ctx context.Context, create domain.OrderItemCreate) (*domain.Order, error)
	UpdateItem(ctx context.Context, itemID uint, patch domain.OrderItemPatch) (*domain.Order, error)
	RemoveItem(ctx context.Context, itemID uint) (*domain.Order, error)

	AddPayment(ctx context.Context, create domain.PaymentCreate) (*domain.Order, error)
	UpdatePayment(ctx context.Context, paymentID uint, patch domain.PaymentPatch) (*domain.Order, error)
	RemovePayment(ctx context.Context, paymentID uint) (*domain.Order, error)
}

type orderAggregate struct {
	txRunner    TxRunner
	log         *logger.Logger
	orderRepo   repos.OrderRepo
	itemRepo    repos.OrderItemRepo
	paymentRepo repos.PaymentRepo
}

func NewOrderAggregate(
	txRunner TxRunner,
	baseLog *logger.Logger,
	orderRepo repos.OrderRepo,
	itemRepo repos.OrderItemRepo,
	paymentRepo repos.PaymentRepo,
) OrderAggregate {
	return &orderAggregate{
		txRunner:    txRunner,
		log:         baseLog.With("aggregate", "OrderAggregate"),
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		paymentRepo: paymentRepo,
	}
}

func (a *orderAggregate) CreateOrder(ctx context.Context, create domain.OrderCreate) (*domain.Order, error) {
	if len(create.OrderItems) == 0 {
		return nil, domain.ValidationError("order.create", "An order requires at least 1 item")
	}

	var out *domain.Order
	err := a.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		order := &domain.Order{
			CustomerID:      create.CustomerID,
			CampaignID:      create.CampaignID,
			DateOrdered:     create.DateOrdered,
			DateDelivered:   create.DateDelivered,
			PriceAdjustment: create.PriceAdjustment,
			Completed:       create.Completed,
			Notes:           create.Notes,
		}
		// The order row goes first so children can reference its id.
		if err := a.orderRepo.Create(ctx, tx, order); err != nil {
			return err
		}
		for i := range create.OrderItems {
			in := create.OrderItems[i]
			item := &domain.OrderItem{
				OrderID:      order.ID,
				MenuItemID:   in.MenuItemID,
				Quantity:     in.Quantity,
				MenuPrice:    in.MenuPrice,
				ChargedPrice: in.ChargedPrice,
				Notes:        in.Notes,
			}
			if err := a.itemRepo.Create(ctx, tx, item); err != nil {
				return err
			}
		}
		for i := range create.Payments {
			in := create.Payments[i]
			payment := &domain.Payment{
				OrderID: order.ID,
				Amount:  in.Amount,
				Method:  in.Method,
				Date:    in.Date,
			}
			if err := a.paymentRepo.Create(ctx, tx, payment); err != nil {
				return err
			}
		}
		return a.reload(ctx, tx, order.ID, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *orderAggregate) UpdateOrder(ctx context.Context, orderID uint, patch domain.OrderPatch) (*domain.Order, error) {
	var out *domain.Order
	err := a.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		order, err := a.orderRepo.GetRowByID(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.NotFoundError("order.update", "Order not found")
		}
		patch.ApplyTo(order)
		if err := a.orderRepo.Update(ctx, tx, order); err != nil {
			return err
		}
		return a.reload(ctx, tx, orderID, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteOrder removes the order and all of its items and payments as one
// unit so no orphaned children survive.
func (a *orderAggregate) DeleteOrder(ctx context.Context, orderID uint) error {
	return a.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		order, err := a.orderRepo.GetRowByID(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.NotFoundError("order.delete", "Order not found")
		}
		if err := a.itemRepo.DeleteByOrderID(ctx, tx, orderID); err != nil {
			return err
		}
		if err := a.paymentRepo.DeleteByOrderID(ctx, tx, orderID); err != nil {
			return err
		}
		return a.orderRepo.Delete(ctx, tx, orderID)
	})
}

func (a *orderAggregate) AddItem(ctx context.Context, create domain.OrderItemCreate) (*domain.Order, error) {
	var out *domain.Order
	err := a.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		if err := a.requireOrder(ctx, tx, create.OrderID, "order_item.create"); err != nil {
			return err
		}
		item := &domain.OrderItem{
			OrderID:      create.OrderID,
			MenuItemID:   create.MenuItemID,
			Quantity:     create.Quantity,
			MenuPrice:    create.MenuPrice,
			ChargedPrice: create.ChargedPrice,
			Notes:        create.Notes,
		}
		if err := a.itemRepo.Create(ctx, tx, item); err != nil {
			return err
		}
		return a.reload(ctx, tx, create.OrderID, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *orderAggregate) UpdateItem(ctx context.Context, itemID uint, patch domain.OrderItemPatch) (*domain.Order, error) {
	var out *domain.Order
	err := a.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		item, err := a.itemRepo.GetByID(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NotFoundError("order_item.update", "Order item not found")
		}
		// order_id is immutable once the item exists.
		if item.OrderID != patch.OrderID {
			return domain.ValidationError("order_item.update", "Invalid order id")
		}
		patch.ApplyTo(item)
		if err := a.itemRepo.Update(ctx, tx, item); err != nil {
			return err
		}
		return a.reload(ctx, tx, item.OrderID, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *orderAggregate) RemoveItem(ctx context.Context, itemID uint) (*domain.Order, error) {
	var out *domain.Order
	err := a.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		item, err := a.itemRepo.GetByID(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NotFoundError("order_item.delete", "Order item not found")
		}
		if err := a.itemRepo.Delete(ctx, tx, itemID); err != nil {
			return err
		}
		return a.reload(ctx, tx, item.OrderID, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *orderAggregate) AddPayment(ctx context.Context, create domain.PaymentCreate) (*domain.Order, error) {
	var out *domain.Order
	err := a.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		if err := a.requireOrder(ctx, tx, create.OrderID, "payment.create"); err != nil {
			return err
		}
		payment := &domain.Payment{
			OrderID: create.OrderID,
			Amount:  create.Amount,
			Method:  create.Method,
			Date:    create.Date,
		}
		if err := a.paymentRepo.Create(ctx, tx, payment); err != nil {
			return err
		}
		return a.reload(ctx, tx, create.OrderID, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *orderAggregate) UpdatePayment(ctx context.Context, paymentID uint, patch domain.PaymentPatch) (*domain.Order, error) {
	var out *domain.Order
	err := a.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		if err := a.requireOrder(ctx, tx, patch.OrderID, "payment.update"); err != nil {
			return err
		}
		payment, err := a.paymentRepo.GetByID(ctx, tx, paymentID)
		if err != nil {
			return err
		}
		if payment == nil {
			return domain.NotFoundError("payment.update", "Payment not found")
		}
		// order_id is immutable once the payment exists.
		if payment.OrderID != patch.OrderID {
			return domain.ValidationError("payment.update", "Invalid payment id")
		}
		patch.ApplyTo(payment)
		if err := a.paymentRepo.Update(ctx, tx, payment); err != nil {
			return err
		}
		return a.reload(ctx, tx, payment.OrderID, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *orderAggregate) RemovePayment(ctx context.Context, paymentID uint) (*domain.Order, error) {
	var out *domain.Order
	err := a.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		payment, err := a.paymentRepo.GetByID(ctx, tx, paymentID)
		if err != nil {
			return err
		}
		if payment == nil {
			return domain.NotFoundError("payment.delete", "Payment not found")
		}
		if err := a.paymentRepo.Delete(ctx, tx, paymentID); err != nil {
			return err
		}
		return a.reload(ctx, tx, payment.OrderID, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *orderAggregate) requireOrder(ctx context.Context, tx *gorm.DB, orderID uint, op string) error {
	order, err := a.orderRepo.GetRowByID(ctx, tx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.NotFoundError(op, fmt.Sprintf("Order %d does not exist", orderID))
	}
	return nil
}

// reload fetches the full aggregate inside the same transaction so callers
// always observe a consistent snapshot of the mutation they just made.
func (a *orderAggregate) reload(ctx context.Context, tx *gorm.DB, orderID uint, out **domain.Order) error {
	order, err := a.orderRepo.GetByID(ctx, tx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.NotFoundError("order.reload", "Order not found")
	}
	*out = order
	return nil
}
