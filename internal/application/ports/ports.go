// Package ports define los puertos de salida de la capa de aplicación. Los adaptadores
// concretos (Redis, S3, disco, maroto, etree) viven en infrastructure.
package ports

import (
	"context"
	"io"

	"github.com/jhoicas/cjstore-api/internal/domain/entity"
)

// ProductCache caché del catálogo completo de una tienda (incluye inactivos).
// Un miss se informa con ok=false junto con la generación vigente; Set solo guarda si
// esa generación no cambió, así una lectura lenta no pisa una invalidación posterior.
// Los errores de la caché nunca deben romper la lectura.
type ProductCache interface {
	Get(ctx context.Context, storeID string) (products []*entity.Product, gen int64, ok bool, err error)
	Set(ctx context.Context, storeID string, gen int64, products []*entity.Product) error
	Invalidate(ctx context.Context, storeID string) error
}

// ImageStorage guarda los bytes de una imagen de producto y devuelve su URL pública.
type ImageStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (url string, err error)
}

// CatalogPDFRenderer genera la lista de precios de una tienda.
type CatalogPDFRenderer interface {
	Render(store *entity.Store, products []*entity.Product) ([]byte, error)
}

// SitemapEntry tienda con sus productos visibles, para el sitemap público.
type SitemapEntry struct {
	Store    *entity.Store
	Products []*entity.Product
}

// SitemapRenderer genera el sitemap XML de las tiendas públicas.
type SitemapRenderer interface {
	Render(baseURL string, entries []SitemapEntry) ([]byte, error)
}
