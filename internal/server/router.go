package server

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	httpH "github.com/ovenly/bakeshop-backend/internal/http/handlers"
	httpMW "github.com/ovenly/bakeshop-backend/internal/http/middleware"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Debug          bool
	AllowedOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware

	AuthHandler     *httpH.AuthHandler
	UserHandler     *httpH.UserHandler
	CustomerHandler *httpH.CustomerHandler
	MenuHandler     *httpH.MenuHandler
	CampaignHandler *httpH.CampaignHandler
	OrderHandler    *httpH.OrderHandler
	PaymentHandler  *httpH.PaymentHandler
	HealthHandler   *httpH.HealthHandler
}

var phoneRe = regexp.MustCompile(domain.PhonePattern)

var registerValidatorsOnce sync.Once

// registerValidators hooks the phone_number rule into gin's binding engine
// so request structs can declare it in their tags.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterValidation("phone_number", func(fl validator.FieldLevel) bool {
				return phoneRe.MatchString(fl.Field().String())
			})
		}
	})
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	registerValidators()

	r := gin.New()
	r.Use(httpMW.Recovery(cfg.Log, cfg.Debug))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	if cfg.AuthHandler != nil {
		r.POST("/auth/login", cfg.AuthHandler.Login)
		r.GET("/auth/logout", cfg.AuthHandler.Logout)
	}

	v1 := r.Group("/v1")
	if cfg.AuthMiddleware != nil {
		v1.Use(cfg.AuthMiddleware.RequireAuth())
	}
	{
		if cfg.UserHandler != nil {
			v1.GET("/users/me", cfg.UserHandler.Me)
		}

		if cfg.CustomerHandler != nil {
			v1.POST("/customers", cfg.CustomerHandler.Create)
			v1.GET("/customers", cfg.CustomerHandler.List)
			v1.GET("/customers/:id", cfg.CustomerHandler.Get)
			v1.PATCH("/customers/:id", cfg.CustomerHandler.Update)
		}

		if cfg.MenuHandler != nil {
			v1.POST("/menu/categories", cfg.MenuHandler.CreateCategory)
			v1.GET("/menu/categories", cfg.MenuHandler.ListCategories)
			v1.GET("/menu/categories/:id", cfg.MenuHandler.GetCategory)
			v1.PATCH("/menu/categories/:id", cfg.MenuHandler.UpdateCategory)

			v1.POST("/menu", cfg.MenuHandler.CreateItem)
			v1.GET("/menu", cfg.MenuHandler.ListItems)
			v1.GET("/menu/:id", cfg.MenuHandler.GetItem)
			v1.PATCH("/menu/:id", cfg.MenuHandler.UpdateItem)
		}

		if cfg.CampaignHandler != nil {
			v1.POST("/campaigns", cfg.CampaignHandler.Create)
			v1.GET("/campaigns", cfg.CampaignHandler.List)
			v1.GET("/campaigns/:id", cfg.CampaignHandler.Get)
			v1.PATCH("/campaigns/:id", cfg.CampaignHandler.Update)
		}

		if cfg.OrderHandler != nil {
			// Item subroutes go first; mutations return the parent order.
			v1.POST("/orders/items", cfg.OrderHandler.CreateItem)
			v1.PATCH("/orders/items/:id", cfg.OrderHandler.UpdateItem)
			v1.DELETE("/orders/items/:id", cfg.OrderHandler.DeleteItem)

			v1.POST("/orders", cfg.OrderHandler.Create)
			v1.GET("/orders", cfg.OrderHandler.List)
			v1.GET("/orders/:id", cfg.OrderHandler.Get)
			v1.PATCH("/orders/:id", cfg.OrderHandler.Update)
			v1.DELETE("/orders/:id", cfg.OrderHandler.Delete)
		}

		if cfg.PaymentHandler != nil {
			v1.POST("/payments", cfg.PaymentHandler.Create)
			v1.GET("/payments", cfg.PaymentHandler.List)
			v1.PATCH("/payments/:id", cfg.PaymentHandler.Update)
			v1.DELETE("/payments/:id", cfg.PaymentHandler.Delete)
		}
	}

	return r
}
