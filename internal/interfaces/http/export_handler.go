package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cjstore-api/internal/application/usecase"
)

// ExportHandler lista de precios en PDF y sitemap público.
type ExportHandler struct {
	uc *usecase.CatalogExportUseCase
}

func NewExportHandler(uc *usecase.CatalogExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// CatalogPDF godoc
// @Summary      Lista de precios de la tienda en PDF
// @Tags         stores
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/catalog.pdf [get]
func (h *ExportHandler) CatalogPDF(c *fiber.Ctx) error {
	pdf, store, err := h.uc.PriceListPDF(c.UserContext(), ActorFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s-catalogo.pdf"`, store.Slug))
	return c.Send(pdf)
}

// Sitemap godoc
// @Summary      Sitemap XML de tiendas y productos visibles
// @Tags         storefront
// @Produce      xml
// @Success      200  {string}  string
// @Router       /sitemap.xml [get]
func (h *ExportHandler) Sitemap(c *fiber.Ctx) error {
	xml, err := h.uc.Sitemap(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(xml)
}
