package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/application/validation"
	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/catalog"
	"github.com/jhoicas/cjstore-api/internal/domain/featureflag"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

// OrderStatusPending estado de una orden creada sin pasarela de pago.
const OrderStatusPending = "pending"

// PaymentUseCase compra en línea. Todo pasa por el flag onlineShopping; no hay
// pasarela integrada, así que la verificación nunca confirma un pago.
type PaymentUseCase struct {
	products repository.ProductRepository
	features *FeatureService
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(products repository.ProductRepository, features *FeatureService) *PaymentUseCase {
	return &PaymentUseCase{products: products, features: features}
}

// CreateOrder arma el carrito con los precios vigentes y devuelve la orden pendiente.
func (uc *PaymentUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if err := uc.features.Require(featureflag.OnlineShopping); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var cart catalog.Cart
	for _, item := range in.Items {
		p, err := uc.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.StoreID != in.StoreID {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, item.ProductID)
		}
		if err := cart.Add(p, item.Quantity); err != nil {
			return nil, err
		}
	}
	// líneas repetidas de un mismo producto se suman antes de comparar con el stock
	for _, line := range cart.Items() {
		if line.Quantity > line.Product.Stock {
			return nil, domain.Invalid("items", fmt.Sprintf("stock insuficiente para %s", line.Product.Name))
		}
	}
	return &dto.CreateOrderResponse{
		OrderID: uuid.New().String(),
		Amount:  cart.Total(),
		Status:  OrderStatusPending,
	}, nil
}

// VerifyPayment sin pasarela configurada ningún pago queda verificado.
func (uc *PaymentUseCase) VerifyPayment(_ context.Context, in dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	if err := uc.features.Require(featureflag.OnlineShopping); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return &dto.VerifyPaymentResponse{Verified: false}, nil
}
