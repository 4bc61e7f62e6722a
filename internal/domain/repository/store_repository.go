package repository

import (
	"context"

	"github.com/jhoicas/cjstore-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
// La implementación vive en infrastructure. Las tiendas no se eliminan.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	List(ctx context.Context) ([]*entity.Store, error)
	// IncrementVisits suma una visita a la tienda del slug; false si no existe.
	IncrementVisits(ctx context.Context, slug string) (bool, error)
	// SlugExists informa si otra tienda (distinta de excludeID) ya usa el slug.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}
