package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cjstore-api/internal/application/usecase"
)

// DashboardHandler panel del comerciante.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de la tienda: productos, stock bajo y visitas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        storeId  query  string  false  "Tienda (por defecto, la de la sesión)"
// @Success      200      {object}  dto.DashboardResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), ActorFrom(c), c.Query("storeId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
