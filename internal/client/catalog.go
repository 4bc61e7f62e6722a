package client

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/domain/catalog"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
)

// CatalogStore productos de una tienda en el orden de alta.
type CatalogStore struct {
	observable[[]dto.ProductResponse]

	mu       sync.RWMutex
	storeID  string
	products []dto.ProductResponse
	api      ProductGateway
}

func NewCatalogStore(api ProductGateway) *CatalogStore {
	return &CatalogStore{api: api}
}

// Load reemplaza el snapshot por los productos de storeID.
func (c *CatalogStore) Load(ctx context.Context, storeID string) ([]dto.ProductResponse, error) {
	list, err := c.api.ListProducts(ctx, storeID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.storeID = storeID
	c.products = slices.Clone(list)
	c.mu.Unlock()
	return c.publish(), nil
}

// Snapshot copia de los productos cargados.
func (c *CatalogStore) Snapshot() []dto.ProductResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.products)
}

func (c *CatalogStore) StoreID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.storeID
}

// Get busca por id en el snapshot.
func (c *CatalogStore) Get(id string) (dto.ProductResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := slices.IndexFunc(c.products, func(p dto.ProductResponse) bool { return p.ID == id })
	if i < 0 {
		return dto.ProductResponse{}, false
	}
	return c.products[i], true
}

func (c *CatalogStore) Add(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.StoreID == "" {
		in.StoreID = c.StoreID()
	}
	p, err := c.api.CreateProduct(ctx, in)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.storeID == p.StoreID {
		c.products = append(c.products, *p)
	}
	c.mu.Unlock()
	c.publish()
	return p, nil
}

func (c *CatalogStore) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := c.api.UpdateProduct(ctx, id, in)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if i := slices.IndexFunc(c.products, func(x dto.ProductResponse) bool { return x.ID == id }); i >= 0 {
		c.products[i] = *p
	}
	c.mu.Unlock()
	c.publish()
	return p, nil
}

func (c *CatalogStore) Remove(ctx context.Context, id string) error {
	if err := c.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	c.products = slices.DeleteFunc(c.products, func(p dto.ProductResponse) bool { return p.ID == id })
	c.mu.Unlock()
	c.publish()
	return nil
}

// Search filtra y ordena el snapshot con las mismas reglas que la vitrina pública.
func (c *CatalogStore) Search(query, category, sortKey string) []dto.ProductResponse {
	snap := c.Snapshot()
	byID := make(map[string]dto.ProductResponse, len(snap))
	list := make([]*entity.Product, 0, len(snap))
	for _, p := range snap {
		byID[p.ID] = p
		list = append(list, &entity.Product{
			ID: p.ID, StoreID: p.StoreID, Name: p.Name, Description: p.Description,
			Category: p.Category, Price: p.Price, Stock: p.Stock, Active: p.Active,
		})
	}
	found := catalog.Search(list, query, category, sortKey)
	out := make([]dto.ProductResponse, 0, len(found))
	for _, p := range found {
		out = append(out, byID[p.ID])
	}
	return out
}

func (c *CatalogStore) publish() []dto.ProductResponse {
	snap := c.Snapshot()
	c.notify(snap)
	return snap
}
