package app

import (
	httpH "github.com/ovenly/bakeshop-backend/internal/http/handlers"
	httpMW "github.com/ovenly/bakeshop-backend/internal/http/middleware"
	"github.com/ovenly/bakeshop-backend/internal/http/response"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

type Handlers struct {
	Auth     *httpH.AuthHandler
	User     *httpH.UserHandler
	Customer *httpH.CustomerHandler
	Menu     *httpH.MenuHandler
	Campaign *httpH.CampaignHandler
	Order    *httpH.OrderHandler
	Payment  *httpH.PaymentHandler
	Health   *httpH.HealthHandler

	AuthMiddleware *httpMW.AuthMiddleware
}

func wireHandlers(log *logger.Logger, cfg Config, s Services) Handlers {
	log.Info("Wiring handlers...")
	responder := response.NewResponder(log, cfg.Debug)
	return Handlers{
		Auth:     httpH.NewAuthHandler(s.Auth, responder),
		User:     httpH.NewUserHandler(s.User, responder),
		Customer: httpH.NewCustomerHandler(s.Customer, responder),
		Menu:     httpH.NewMenuHandler(s.Menu, responder),
		Campaign: httpH.NewCampaignHandler(s.Campaign, responder),
		Order:    httpH.NewOrderHandler(s.Order, responder),
		Payment:  httpH.NewPaymentHandler(s.Payment, responder),
		Health:   httpH.NewHealthHandler(),

		AuthMiddleware: httpMW.NewAuthMiddleware(log, s.Auth),
	}
}
