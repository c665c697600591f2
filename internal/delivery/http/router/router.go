// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	ProductHandler  *handler.ProductHandler
	ClientHandler   *handler.ClientHandler
	PurchaseHandler *handler.PurchaseHandler
	PasswordHandler *handler.PasswordHandler
	SalesHandler    *handler.SalesHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	productHandler  *handler.ProductHandler
	clientHandler   *handler.ClientHandler
	purchaseHandler *handler.PurchaseHandler
	passwordHandler *handler.PasswordHandler
	salesHandler    *handler.SalesHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		productHandler:  params.ProductHandler,
		clientHandler:   params.ClientHandler,
		purchaseHandler: params.PurchaseHandler,
		passwordHandler: params.PasswordHandler,
		salesHandler:    params.SalesHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/register", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)
	e.POST("/auth/refresh", r.accountHandler.RefreshToken)
	e.POST("/logout", r.accountHandler.Logout, r.authMiddleware.Authenticate)

	profileGroup := e.Group("/user/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.accountHandler.GetProfile)
		profileGroup.PUT("", r.accountHandler.UpdateProfile)
	}

	// Password reset routes
	passwordGroup := e.Group("/password")
	{
		passwordGroup.POST("/email", r.passwordHandler.RequestReset)
		passwordGroup.POST("/code/verify", r.passwordHandler.VerifyCode)
		passwordGroup.POST("/reset", r.passwordHandler.ResetPassword)
	}

	// Product catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}
	e.GET("/tipos", r.productHandler.ListTipos)

	// Admin client CRUD routes
	clientGroup := e.Group("/clients")
	{
		clientGroup.GET("", r.clientHandler.ListClients)
		clientGroup.POST("", r.clientHandler.CreateClient)
		clientGroup.GET("/:id", r.clientHandler.GetClient)
		clientGroup.PUT("/:id", r.clientHandler.UpdateClient)
		clientGroup.DELETE("/:id", r.clientHandler.DeleteClient)
	}

	// Checkout routes; a bearer token is optional and binds the quote to the
	// caller when present.
	compraGroup := e.Group("/compras")
	compraGroup.Use(r.authMiddleware.AuthenticateOptional)
	{
		compraGroup.POST("/preview", r.purchaseHandler.Preview)
		compraGroup.POST("/confirm", r.purchaseHandler.Confirm)
		compraGroup.POST("/enviar-correo-factura", r.purchaseHandler.ResendInvoice)
	}

	// Sales listing and reports require authentication
	ventasGroup := e.Group("/ventas")
	ventasGroup.Use(r.authMiddleware.Authenticate)
	{
		ventasGroup.GET("", r.salesHandler.ListSales)
		ventasGroup.GET("/reportes", r.salesHandler.Report)
		ventasGroup.GET("/:id", r.salesHandler.GetSale)
	}
}
