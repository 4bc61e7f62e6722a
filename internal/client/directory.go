package client

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
)

// StoreDirectory tiendas conocidas por el cliente.
type StoreDirectory struct {
	observable[[]dto.StoreResponse]

	mu     sync.RWMutex
	stores []dto.StoreResponse
	api    StoreGateway
}

func NewStoreDirectory(api StoreGateway) *StoreDirectory {
	return &StoreDirectory{api: api}
}

func (d *StoreDirectory) Load(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := d.api.ListStores(ctx)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	d.stores = slices.Clone(list)
	d.mu.Unlock()
	return d.publish(), nil
}

func (d *StoreDirectory) Snapshot() []dto.StoreResponse {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.stores)
}

// BySlug consulta la API si la tienda no está en el snapshot y la agrega.
func (d *StoreDirectory) BySlug(ctx context.Context, slug string) (*dto.StoreResponse, error) {
	if s, ok := d.find(func(s dto.StoreResponse) bool { return s.Slug == slug }); ok {
		return &s, nil
	}
	s, err := d.api.GetStore(ctx, slug)
	if err != nil {
		return nil, err
	}
	d.upsert(*s)
	return s, nil
}

// ByID busca solo en el snapshot.
func (d *StoreDirectory) ByID(id string) (dto.StoreResponse, bool) {
	return d.find(func(s dto.StoreResponse) bool { return s.ID == id })
}

// SlugExists indica si otra tienda del snapshot ya usa slug.
func (d *StoreDirectory) SlugExists(slug, excludeID string) bool {
	_, ok := d.find(func(s dto.StoreResponse) bool { return s.Slug == slug && s.ID != excludeID })
	return ok
}

func (d *StoreDirectory) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	s, err := d.api.CreateStore(ctx, in)
	if err != nil {
		return nil, err
	}
	d.upsert(*s)
	return s, nil
}

func (d *StoreDirectory) Update(ctx context.Context, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	s, err := d.api.UpdateStore(ctx, id, in)
	if err != nil {
		return nil, err
	}
	d.upsert(*s)
	return s, nil
}

func (d *StoreDirectory) find(match func(dto.StoreResponse) bool) (dto.StoreResponse, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i := slices.IndexFunc(d.stores, match)
	if i < 0 {
		return dto.StoreResponse{}, false
	}
	return d.stores[i], true
}

func (d *StoreDirectory) upsert(s dto.StoreResponse) {
	d.mu.Lock()
	if i := slices.IndexFunc(d.stores, func(x dto.StoreResponse) bool { return x.ID == s.ID }); i >= 0 {
		d.stores[i] = s
	} else {
		d.stores = append(d.stores, s)
	}
	d.mu.Unlock()
	d.publish()
}

func (d *StoreDirectory) publish() []dto.StoreResponse {
	snap := d.Snapshot()
	d.notify(snap)
	return snap
}
