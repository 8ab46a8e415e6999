package app

import (
	"gorm.io/gorm"

	"github.com/ovenly/bakeshop-backend/internal/data/aggregates"
	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

type Repos struct {
	User         repos.UserRepo
	Customer     repos.CustomerRepo
	MenuCategory repos.MenuCategoryRepo
	MenuItem     repos.MenuItemRepo
	Campaign     repos.CampaignRepo
	Order        repos.OrderRepo
	OrderItem    repos.OrderItemRepo
	Payment      repos.PaymentRepo

	OrderAggregate aggregates.OrderAggregate
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	r := Repos{
		User:         repos.NewUserRepo(db, log),
		Customer:     repos.NewCustomerRepo(db, log),
		MenuCategory: repos.NewMenuCategoryRepo(db, log),
		MenuItem:     repos.NewMenuItemRepo(db, log),
		Campaign:     repos.NewCampaignRepo(db, log),
		Order:        repos.NewOrderRepo(db, log),
		OrderItem:    repos.NewOrderItemRepo(db, log),
		Payment:      repos.NewPaymentRepo(db, log),
	}
	r.OrderAggregate = aggregates.NewOrderAggregate(
		aggregates.NewGormTxRunner(db),
		log,
		r.Order,
		r.OrderItem,
		r.Payment,
	)
	return r
}
