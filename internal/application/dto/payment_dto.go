package dto

import "github.com/shopspring/decimal"

// CartItemRequest línea del carrito enviada al crear la orden.
type CartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// CreateOrderRequest entrada para iniciar el pago de un carrito.
type CreateOrderRequest struct {
	StoreID string            `json:"storeId" validate:"required"`
	Items   []CartItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderResponse orden creada, pendiente de verificación de pago.
type CreateOrderResponse struct {
	OrderID string          `json:"orderId"`
	Amount  decimal.Decimal `json:"amount"`
	Status  string          `json:"status"`
}

// VerifyPaymentRequest entrada para verificar un pago.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
}

// VerifyPaymentResponse resultado de la verificación.
type VerifyPaymentResponse struct {
	Verified bool `json:"verified"`
}
