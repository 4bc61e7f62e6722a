package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cjstore-api/internal/application/auth"
	"github.com/jhoicas/cjstore-api/internal/application/usecase"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/featureflag"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	StoreUC      *usecase.StoreUseCase
	ProductUC    *usecase.ProductUseCase
	StorefrontUC *usecase.StorefrontUseCase
	DashboardUC  *usecase.DashboardUseCase
	PaymentUC    *usecase.PaymentUseCase
	ExportUC     *usecase.CatalogExportUseCase
	Features     *usecase.FeatureService
	Metrics      *Metrics
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}
	exportHandler := NewExportHandler(deps.ExportUC)
	app.Get("/sitemap.xml", exportHandler.Sitemap)

	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)
	merchant := RequireRole(entity.RoleMerchant, entity.RoleAdmin)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)
	authGroup.Post("/link-store", requireAuth, merchant, authHandler.LinkStore)

	// Stores: rutas estáticas antes de /:slug
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores := api.Group("/stores")
	stores.Get("/", storeHandler.List)
	stores.Get("/slug-suggestion", storeHandler.SlugSuggestion)
	stores.Get("/slug-available", storeHandler.SlugAvailable)
	stores.Get("/id/:id", storeHandler.GetByID)
	stores.Post("/", requireAuth, merchant, storeHandler.Create)
	stores.Get("/:id/catalog.pdf", requireAuth, merchant, exportHandler.CatalogPDF)
	stores.Put("/:id", requireAuth, merchant, storeHandler.Update)
	stores.Get("/:slug", storeHandler.GetBySlug)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/store/:storeId", OptionalAuth(deps.JWTSecret), productHandler.ListByStore)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", requireAuth, merchant, productHandler.Create)
	products.Put("/:id", requireAuth, merchant, productHandler.Update)
	products.Delete("/:id", requireAuth, merchant, productHandler.Delete)
	products.Post("/:id/image", requireAuth, merchant, productHandler.UploadImage)

	// Storefront público
	storefrontHandler := NewStorefrontHandler(deps.StorefrontUC, deps.Features, deps.Metrics)
	api.Get("/features", storefrontHandler.Features)
	storefront := api.Group("/storefront")
	storefront.Get("/:slug", storefrontHandler.Home)
	storefront.Get("/:slug/products/:id", storefrontHandler.ProductDetail)
	storefront.Get("/:slug/contact", storefrontHandler.Contact)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", requireAuth, merchant, dashboardHandler.Summary)

	// Payments: apagados salvo onlineShopping
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments := api.Group("/payments", RequireFeature(featureflag.OnlineShopping, deps.Features))
	payments.Post("/create-order", paymentHandler.CreateOrder)
	payments.Post("/verify-payment", paymentHandler.VerifyPayment)
}
