package localstore

import (
	"context"
	"slices"

	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre el blob de tiendas.
type StoreRepo struct {
	b *Blobs
}

// NewStoreRepository construye el adaptador.
func NewStoreRepository(b *Blobs) *StoreRepo {
	return &StoreRepo{b: b}
}

// Create agrega la tienda. Devuelve ErrSlugTaken si otra tienda usa el slug.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	list := r.b.stores(ctx)
	for _, s := range list {
		if s.ID == store.ID {
			return domain.ErrDuplicate
		}
		if s.Slug == store.Slug {
			return domain.ErrSlugTaken
		}
	}
	return r.b.saveStores(ctx, append(list, storeToRecord(store)))
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	return r.find(ctx, func(s storeRecord) bool { return s.ID == id })
}

// GetBySlug obtiene una tienda por slug.
func (r *StoreRepo) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	return r.find(ctx, func(s storeRecord) bool { return s.Slug == slug })
}

func (r *StoreRepo) find(ctx context.Context, match func(storeRecord) bool) (*entity.Store, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	list := r.b.stores(ctx)
	if idx := slices.IndexFunc(list, match); idx != -1 {
		return list[idx].entity(), nil
	}
	return nil, nil
}

// Update reemplaza la tienda con el mismo ID. Sin coincidencia no hace nada.
func (r *StoreRepo) Update(ctx context.Context, store *entity.Store) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	list := r.b.stores(ctx)
	idx := -1
	for i, s := range list {
		if s.ID == store.ID {
			idx = i
		} else if s.Slug == store.Slug {
			return domain.ErrSlugTaken
		}
	}
	if idx == -1 {
		return nil
	}
	list[idx] = storeToRecord(store)
	return r.b.saveStores(ctx, list)
}

// List devuelve todas las tiendas en orden de creación.
func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	list := r.b.stores(ctx)
	out := make([]*entity.Store, 0, len(list))
	for _, s := range list {
		out = append(out, s.entity())
	}
	return out, nil
}

// IncrementVisits suma una visita a la tienda del slug.
func (r *StoreRepo) IncrementVisits(ctx context.Context, slug string) (bool, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	list := r.b.stores(ctx)
	idx := slices.IndexFunc(list, func(s storeRecord) bool { return s.Slug == slug })
	if idx == -1 {
		return false, nil
	}
	list[idx].Visits++
	if err := r.b.saveStores(ctx, list); err != nil {
		return false, err
	}
	return true, nil
}

// SlugExists informa si otra tienda distinta de excludeID usa el slug.
func (r *StoreRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return slices.ContainsFunc(r.b.stores(ctx), func(s storeRecord) bool {
		return s.Slug == slug && s.ID != excludeID
	}), nil
}
