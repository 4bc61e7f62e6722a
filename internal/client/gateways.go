package client

import (
	"context"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/infrastructure/remote"
)

// AuthGateway operaciones de sesión de la API.
type AuthGateway interface {
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	Me(ctx context.Context) (*dto.UserResponse, error)
	LinkStore(ctx context.Context, storeID string) (*dto.LoginResponse, error)
}

// StoreGateway operaciones de tiendas de la API.
type StoreGateway interface {
	ListStores(ctx context.Context) ([]dto.StoreResponse, error)
	GetStore(ctx context.Context, slug string) (*dto.StoreResponse, error)
	CreateStore(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error)
	UpdateStore(ctx context.Context, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error)
}

// ProductGateway operaciones de productos de la API.
type ProductGateway interface {
	ListProducts(ctx context.Context, storeID string) ([]dto.ProductResponse, error)
	CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
}

var (
	_ AuthGateway    = (*remote.Client)(nil)
	_ StoreGateway   = (*remote.Client)(nil)
	_ ProductGateway = (*remote.Client)(nil)
)
