package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/application/usecase"
)

// StorefrontHandler vitrina pública de cada tienda.
type StorefrontHandler struct {
	uc       *usecase.StorefrontUseCase
	features *usecase.FeatureService
	metrics  *Metrics
}

func NewStorefrontHandler(uc *usecase.StorefrontUseCase, features *usecase.FeatureService, metrics *Metrics) *StorefrontHandler {
	return &StorefrontHandler{uc: uc, features: features, metrics: metrics}
}

// Home godoc
// @Summary      Vitrina de la tienda (cuenta una visita)
// @Tags         storefront
// @Produce      json
// @Param        slug      path   string  true   "slug"
// @Param        q         query  string  false  "búsqueda en nombre, descripción o categoría"
// @Param        category  query  string  false  "categoría exacta; All = todas"
// @Param        sort      query  string  false  "price-asc, price-desc o name"
// @Success      200       {object}  dto.StorefrontResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/storefront/{slug} [get]
func (h *StorefrontHandler) Home(c *fiber.Ctx) error {
	slug := c.Params("slug")
	out, err := h.uc.Home(c.UserContext(), slug, c.Query("q"), c.Query("category"), c.Query("sort"))
	if err != nil {
		return writeError(c, err)
	}
	h.metrics.storefrontView(slug)
	return c.JSON(out)
}

// ProductDetail godoc
// @Summary      Detalle público de un producto
// @Tags         storefront
// @Produce      json
// @Param        slug  path  string  true  "slug"
// @Param        id    path  string  true  "ID del producto"
// @Success      200   {object}  dto.ProductDetailResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/storefront/{slug}/products/{id} [get]
func (h *StorefrontHandler) ProductDetail(c *fiber.Ctx) error {
	out, err := h.uc.ProductDetail(c.UserContext(), c.Params("slug"), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out.OrderLink != "" {
		h.metrics.orderLink()
	}
	return c.JSON(out)
}

// Contact godoc
// @Summary      Enlace de contacto por WhatsApp
// @Tags         storefront
// @Produce      json
// @Param        slug  path  string  true  "slug"
// @Success      200   {object}  dto.ContactLinkResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/storefront/{slug}/contact [get]
func (h *StorefrontHandler) Contact(c *fiber.Ctx) error {
	out, err := h.uc.ContactLink(c.UserContext(), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Features godoc
// @Summary      Funcionalidades opcionales activas
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  dto.FeaturesResponse
// @Router       /api/features [get]
func (h *StorefrontHandler) Features(c *fiber.Ctx) error {
	return c.JSON(dto.FeaturesResponse{Features: h.features.All()})
}
