package localstore

import (
	"context"
	"slices"

	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el blob de productos.
type ProductRepo struct {
	b *Blobs
}

// NewProductRepository construye el adaptador.
func NewProductRepository(b *Blobs) *ProductRepo {
	return &ProductRepo{b: b}
}

// Create agrega el producto al final de la colección.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	list := r.b.products(ctx)
	if slices.ContainsFunc(list, func(p productRecord) bool { return p.ID == product.ID }) {
		return domain.ErrDuplicate
	}
	return r.b.saveProducts(ctx, append(list, productToRecord(product)))
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	for _, p := range r.b.products(ctx) {
		if p.ID == id {
			return p.entity(), nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto con el mismo ID. Sin coincidencia no hace nada.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	list := r.b.products(ctx)
	idx := slices.IndexFunc(list, func(p productRecord) bool { return p.ID == product.ID })
	if idx == -1 {
		return nil
	}
	list[idx] = productToRecord(product)
	return r.b.saveProducts(ctx, list)
}

// ListByStore lista los productos de una tienda en orden de inserción (incluye inactivos).
func (r *ProductRepo) ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.b.products(ctx) {
		if p.StoreID == storeID {
			out = append(out, p.entity())
		}
	}
	return out, nil
}

// ListAll lista todos los productos (sitemap).
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	list := r.b.products(ctx)
	out := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		out = append(out, p.entity())
	}
	return out, nil
}

// Delete elimina el producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	list := r.b.products(ctx)
	out := slices.DeleteFunc(list, func(p productRecord) bool { return p.ID == id })
	return r.b.saveProducts(ctx, out)
}
