package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/application/usecase"
)

// PaymentHandler pagos en línea. Con onlineShopping apagado responde 501.
type PaymentHandler struct {
	uc *usecase.PaymentUseCase
}

func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreateOrder godoc
// @Summary      Crear orden de pago para un carrito
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Carrito"
// @Success      201   {object}  dto.CreateOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      501   {object}  dto.ErrorResponse
// @Router       /api/payments/create-order [post]
func (h *PaymentHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateOrder(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// VerifyPayment godoc
// @Summary      Verificar un pago
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyPaymentRequest  true  "orderId, paymentId"
// @Success      200   {object}  dto.VerifyPaymentResponse
// @Failure      501   {object}  dto.ErrorResponse
// @Router       /api/payments/verify-payment [post]
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	var in dto.VerifyPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.VerifyPayment(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
