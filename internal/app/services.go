package app

import (
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
	"github.com/ovenly/bakeshop-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	User     services.UserService
	Customer services.CustomerService
	Menu     services.MenuService
	Campaign services.CampaignService
	Order    services.OrderService
	Payment  services.PaymentService
}

func wireServices(log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:     services.NewAuthService(log, r.User, cfg.SessionSecret, cfg.SessionMaxAge),
		User:     services.NewUserService(log, r.User),
		Customer: services.NewCustomerService(log, r.Customer),
		Menu:     services.NewMenuService(log, r.MenuCategory, r.MenuItem),
		Campaign: services.NewCampaignService(log, r.Campaign),
		Order:    services.NewOrderService(log, r.OrderAggregate, r.Order),
		Payment:  services.NewPaymentService(log, r.OrderAggregate, r.Payment),
	}
}
