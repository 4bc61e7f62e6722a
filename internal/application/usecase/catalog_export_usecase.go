package usecase

import (
	"context"

	"github.com/jhoicas/cjstore-api/internal/application/ports"
	"github.com/jhoicas/cjstore-api/internal/domain/catalog"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

// CatalogExportUseCase exportaciones del catálogo: lista de precios PDF y sitemap público.
type CatalogExportUseCase struct {
	stores  repository.StoreRepository
	reader  catalogReader
	access  storeAccess
	pdf     ports.CatalogPDFRenderer
	sitemap ports.SitemapRenderer
	baseURL string
}

// NewCatalogExportUseCase construye el caso de uso. baseURL es la URL pública del storefront.
func NewCatalogExportUseCase(
	stores repository.StoreRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	cache ports.ProductCache,
	pdf ports.CatalogPDFRenderer,
	sitemap ports.SitemapRenderer,
	baseURL string,
) *CatalogExportUseCase {
	return &CatalogExportUseCase{
		stores:  stores,
		reader:  catalogReader{products: products, cache: cache},
		access:  storeAccess{stores: stores, users: users},
		pdf:     pdf,
		sitemap: sitemap,
		baseURL: baseURL,
	}
}

// PriceListPDF lista de precios de los productos activos, ordenados por nombre.
func (uc *CatalogExportUseCase) PriceListPDF(ctx context.Context, actor Actor, storeID string) ([]byte, *entity.Store, error) {
	store, err := uc.access.owned(ctx, actor, storeID)
	if err != nil {
		return nil, nil, err
	}
	all, err := uc.reader.storeProducts(ctx, store.ID)
	if err != nil {
		return nil, nil, err
	}
	doc, err := uc.pdf.Render(store, catalog.Search(all, "", catalog.AllCategories, catalog.SortName))
	if err != nil {
		return nil, nil, err
	}
	return doc, store, nil
}

// Sitemap XML con la portada de cada tienda y el detalle de sus productos activos.
func (uc *CatalogExportUseCase) Sitemap(ctx context.Context) ([]byte, error) {
	stores, err := uc.stores.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]ports.SitemapEntry, 0, len(stores))
	for _, s := range stores {
		products, err := uc.reader.storeProducts(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ports.SitemapEntry{Store: s, Products: catalog.ActiveOnly(products)})
	}
	return uc.sitemap.Render(uc.baseURL, entries)
}
