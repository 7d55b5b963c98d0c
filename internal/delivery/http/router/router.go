// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medvantage/internal/delivery/http/middleware"
	"medvantage/internal/delivery/http/router/handler"
	"medvantage/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	UserHandler          *handler.UserHandler
	CatalogHandler       *handler.CatalogHandler
	CartHandler          *handler.CartHandler
	PaymentHandler       *handler.PaymentHandler
	SellerRequestHandler *handler.SellerRequestHandler
	AdvertisementHandler *handler.AdvertisementHandler
	StatsHandler         *handler.StatsHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	authed := auth.Authenticate
	admin := auth.RequireRole(entity.RoleAdmin)
	seller := auth.RequireRole(entity.RoleSeller)
	selfEmail := auth.RequireSelf("email")

	e.GET("/health", handler.HealthCheck)
	e.POST("/jwt", r.params.AuthHandler.IssueToken)

	// Accounts. Registration is open; everything else sits behind the gate.
	users := e.Group("/users")
	{
		users.PUT("", r.params.UserHandler.Register)
		users.GET("", r.params.UserHandler.List, authed, admin)
		users.GET("/:email", r.params.UserHandler.GetByEmail, authed, selfEmail)
		users.GET("/admin/:email", r.params.UserHandler.CheckAdmin, authed, selfEmail)
		users.GET("/seller/:email", r.params.UserHandler.CheckSeller, authed, selfEmail)
		users.PATCH("/:id/role", r.params.UserHandler.UpdateRoleByID, authed, admin)
		users.PATCH("/role/:email", r.params.UserHandler.UpdateRoleByEmail, authed, admin)
		users.DELETE("/:id", r.params.UserHandler.Delete, authed, admin)
	}

	// Catalog. Reads are public, category writes are admin-only and medicine
	// writes belong to sellers.
	categories := e.Group("/categories")
	{
		categories.GET("", r.params.CatalogHandler.ListCategories)
		categories.GET("/:slug", r.params.CatalogHandler.GetCategory)
		categories.POST("", r.params.CatalogHandler.CreateCategory, authed, admin)
		categories.PATCH("/:id", r.params.CatalogHandler.UpdateCategory, authed, admin)
		categories.DELETE("/:id", r.params.CatalogHandler.DeleteCategory, authed, admin)
	}

	medicines := e.Group("/medicines")
	{
		medicines.GET("", r.params.CatalogHandler.ListMedicines)
		medicines.GET("/:id", r.params.CatalogHandler.GetMedicine)
		medicines.GET("/seller/:email", r.params.CatalogHandler.ListMedicinesBySeller, authed, selfEmail)
		medicines.POST("", r.params.CatalogHandler.CreateMedicine, authed, seller)
		medicines.PATCH("/:id", r.params.CatalogHandler.UpdateMedicine, authed, seller)
		medicines.DELETE("/:id", r.params.CatalogHandler.DeleteMedicine, authed, seller)
	}

	carts := e.Group("/carts", authed)
	{
		carts.GET("/:email", r.params.CartHandler.ListByUser, selfEmail)
		carts.POST("", r.params.CartHandler.Add)
		carts.PATCH("/:id/quantity", r.params.CartHandler.UpdateQuantity)
		carts.DELETE("/clear/:email", r.params.CartHandler.Clear, selfEmail)
		carts.DELETE("/:id", r.params.CartHandler.Remove)
	}

	e.POST("/create-payment-intent", r.params.PaymentHandler.CreateIntent, authed)

	payments := e.Group("/payments")
	{
		payments.POST("", r.params.PaymentHandler.Settle, authed)
		payments.GET("/:email", r.params.PaymentHandler.ListByUser, authed, selfEmail)
		payments.GET("", r.params.PaymentHandler.List, authed, admin)
	}

	advertisements := e.Group("/advertisements")
	{
		advertisements.GET("", r.params.AdvertisementHandler.List)
		advertisements.GET("/seller/:email", r.params.AdvertisementHandler.ListBySeller, authed, selfEmail)
		advertisements.POST("", r.params.AdvertisementHandler.Submit, authed, seller)
		advertisements.PATCH("/:id/active", r.params.AdvertisementHandler.SetActive, authed, admin)
	}

	sellerRequests := e.Group("/seller-requests", authed)
	{
		sellerRequests.GET("", r.params.SellerRequestHandler.List, admin)
		sellerRequests.POST("", r.params.SellerRequestHandler.Submit)
		sellerRequests.PATCH("/:id/status", r.params.SellerRequestHandler.Decide, admin)
	}

	e.GET("/admin/stats", r.params.StatsHandler.AdminStats, authed, admin)
}
