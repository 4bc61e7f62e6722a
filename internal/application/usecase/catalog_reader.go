package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/cjstore-api/internal/application/ports"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

// catalogReader lee el catálogo de una tienda pasando por la caché. Un fallo de la
// caché se registra y se sirve desde el repositorio.
type catalogReader struct {
	products repository.ProductRepository
	cache    ports.ProductCache
}

func (r catalogReader) storeProducts(ctx context.Context, storeID string) ([]*entity.Product, error) {
	cached, gen, ok, err := r.cache.Get(ctx, storeID)
	if err != nil {
		log.Warn().Err(err).Str("store_id", storeID).Msg("cache: lectura fallida")
	} else if ok {
		return cached, nil
	}
	list, err := r.products.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, storeID, gen, list); err != nil {
		log.Warn().Err(err).Str("store_id", storeID).Msg("cache: escritura fallida")
	}
	return list, nil
}

func (r catalogReader) invalidate(ctx context.Context, storeID string) {
	if err := r.cache.Invalidate(ctx, storeID); err != nil {
		log.Warn().Err(err).Str("store_id", storeID).Msg("cache: invalidación fallida")
	}
}
