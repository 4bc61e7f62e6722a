package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. StoreID vacío = tienda de la sesión.
type CreateProductRequest struct {
	StoreID     string          `json:"storeId,omitempty"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"required,max=2000"`
	Category    string          `json:"category" validate:"required,max=100"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"min=0,max=2147483647"`
	Image       string          `json:"image,omitempty"`
	Active      *bool           `json:"active,omitempty"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitnil,min=1,max=200"`
	Description *string          `json:"description,omitempty" validate:"omitnil,min=1,max=2000"`
	Category    *string          `json:"category,omitempty" validate:"omitnil,min=1,max=100"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty" validate:"omitnil,min=0,max=2147483647"`
	Image       *string          `json:"image,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"storeId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ImageUploadResponse URL pública de la imagen subida.
type ImageUploadResponse struct {
	Image string `json:"image"`
}
