package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/application/ports"
	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/catalog"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/featureflag"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

// StorefrontUseCase vitrina pública: portada con búsqueda, detalle y contacto.
type StorefrontUseCase struct {
	stores   repository.StoreRepository
	reader   catalogReader
	features *FeatureService
}

// NewStorefrontUseCase construye el caso de uso.
func NewStorefrontUseCase(stores repository.StoreRepository, products repository.ProductRepository, cache ports.ProductCache, features *FeatureService) *StorefrontUseCase {
	return &StorefrontUseCase{
		stores:   stores,
		reader:   catalogReader{products: products, cache: cache},
		features: features,
	}
}

// Home carga la portada de la tienda: cuenta la visita y aplica búsqueda, categoría y orden.
func (uc *StorefrontUseCase) Home(ctx context.Context, slug, query, category, sortKey string) (*dto.StorefrontResponse, error) {
	store, err := uc.store(ctx, slug)
	if err != nil {
		return nil, err
	}
	ok, err := uc.stores.IncrementVisits(ctx, slug)
	if err != nil {
		return nil, err
	}
	if ok {
		store.Visits++
	}
	all, err := uc.reader.storeProducts(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = catalog.AllCategories
	}
	return &dto.StorefrontResponse{
		Store:      *ToStoreResponse(store),
		Products:   toProductList(catalog.Search(all, query, category, sortKey)),
		Categories: catalog.Categories(all),
		Query:      strings.TrimSpace(query),
		Category:   category,
		Sort:       sortKey,
	}, nil
}

// ProductDetail devuelve un producto activo de la tienda. El enlace de pedido por WhatsApp
// solo se incluye con el flag activo, número de tienda y stock disponible.
func (uc *StorefrontUseCase) ProductDetail(ctx context.Context, slug, productID string) (*dto.ProductDetailResponse, error) {
	store, err := uc.store(ctx, slug)
	if err != nil {
		return nil, err
	}
	all, err := uc.reader.storeProducts(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	var product *entity.Product
	for _, p := range all {
		if p.ID == productID && p.Active {
			product = p
			break
		}
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	out := &dto.ProductDetailResponse{
		Store:       *ToStoreResponse(store),
		Product:     *toProductResponse(product),
		Purchasable: product.Purchasable(),
	}
	if out.Purchasable && uc.features.IsEnabled(featureflag.WhatsAppOrder) && store.WhatsApp != "" {
		out.OrderLink = catalog.WhatsAppLink(store.WhatsApp, catalog.OrderMessage(store, product))
	}
	return out, nil
}

// ContactLink enlace de WhatsApp con el saludo genérico de la tienda.
func (uc *StorefrontUseCase) ContactLink(ctx context.Context, slug string) (*dto.ContactLinkResponse, error) {
	store, err := uc.store(ctx, slug)
	if err != nil {
		return nil, err
	}
	if store.WhatsApp == "" {
		return nil, domain.Invalid("whatsapp", "la tienda no tiene número de contacto")
	}
	return &dto.ContactLinkResponse{Link: catalog.WhatsAppLink(store.WhatsApp, catalog.ContactMessage(store))}, nil
}

func (uc *StorefrontUseCase) store(ctx context.Context, slug string) (*entity.Store, error) {
	store, err := uc.stores.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return store, nil
}
