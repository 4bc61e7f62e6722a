package usecase

import (
	"context"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

// lowStockPreview cantidad de productos con stock bajo listados en el panel.
const lowStockPreview = 5

// DashboardUseCase resumen del panel del comerciante.
type DashboardUseCase struct {
	products repository.ProductRepository
	access   storeAccess
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, stores repository.StoreRepository, users repository.UserRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products, access: storeAccess{stores: stores, users: users}}
}

// Summary totales de la tienda del actor (o storeID si es admin). El stock bajo cuenta
// también los productos inactivos.
func (uc *DashboardUseCase) Summary(ctx context.Context, actor Actor, storeID string) (*dto.DashboardResponse, error) {
	store, err := uc.access.owned(ctx, actor, storeID)
	if err != nil {
		return nil, err
	}
	list, err := uc.products.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardResponse{
		Store:            *ToStoreResponse(store),
		TotalProducts:    len(list),
		LowStockProducts: []dto.ProductResponse{},
		Visits:           store.Visits,
	}
	for _, p := range list {
		if p.Active {
			out.ActiveProducts++
		}
		if p.LowStock() {
			out.LowStockCount++
			if len(out.LowStockProducts) < lowStockPreview {
				out.LowStockProducts = append(out.LowStockProducts, *toProductResponse(p))
			}
		}
	}
	return out, nil
}
