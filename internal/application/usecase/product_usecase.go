package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/application/ports"
	"github.com/jhoicas/cjstore-api/internal/application/validation"
	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/catalog"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

// MaxImageBytes tamaño máximo aceptado para imágenes de producto.
const MaxImageBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ProductUseCase casos de uso del catálogo del comerciante.
type ProductUseCase struct {
	repo   repository.ProductRepository
	reader catalogReader
	access storeAccess
	images ports.ImageStorage
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	stores repository.StoreRepository,
	users repository.UserRepository,
	cache ports.ProductCache,
	images ports.ImageStorage,
) *ProductUseCase {
	return &ProductUseCase{
		repo:   repo,
		reader: catalogReader{products: repo, cache: cache},
		access: storeAccess{stores: stores, users: users},
		images: images,
	}
}

// Create agrega un producto a la tienda del actor (o a in.StoreID si la gestiona).
func (uc *ProductUseCase) Create(ctx context.Context, actor Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := checkPrice(in.Price); err != nil {
		return nil, err
	}
	store, err := uc.access.owned(ctx, actor, in.StoreID)
	if err != nil {
		return nil, err
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		StoreID:     store.ID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       in.Image,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.reader.invalidate(ctx, store.ID)
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Update aplica los campos presentes. Solo el dueño de la tienda o un admin.
func (uc *ProductUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if in.Price != nil {
		if err := checkPrice(*in.Price); err != nil {
			return nil, err
		}
	}
	product, err := uc.manageable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.reader.invalidate(ctx, product.StoreID)
	return toProductResponse(product), nil
}

// Delete elimina el producto de forma definitiva.
func (uc *ProductUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	product, err := uc.manageable(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.reader.invalidate(ctx, product.StoreID)
	return nil
}

// ListByStore lista el catálogo de una tienda. Quien la gestiona ve también los
// inactivos; el resto solo los activos. actor nil = anónimo.
func (uc *ProductUseCase) ListByStore(ctx context.Context, actor *Actor, storeID string) ([]dto.ProductResponse, error) {
	store, err := uc.access.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	list, err := uc.reader.storeProducts(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if actor == nil || !actor.CanManage(store) {
		list = catalog.ActiveOnly(list)
	}
	return toProductList(list), nil
}

// UploadImage guarda la imagen en el ImageStorage y asigna su URL al producto.
func (uc *ProductUseCase) UploadImage(ctx context.Context, actor Actor, id, contentType string, body io.Reader, size int64) (*dto.ImageUploadResponse, error) {
	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		return nil, domain.Invalid("image", "formato no soportado (jpeg, png, webp, gif)")
	}
	if size <= 0 || size > MaxImageBytes {
		return nil, domain.Invalid("image", fmt.Sprintf("tamaño fuera de rango (máximo %d bytes)", MaxImageBytes))
	}
	product, err := uc.manageable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	key := path.Join("products", product.StoreID, product.ID+"-"+uuid.New().String()[:8]+ext)
	url, err := uc.images.Put(ctx, key, contentType, body, size)
	if err != nil {
		return nil, err
	}
	product.Image = url
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.reader.invalidate(ctx, product.StoreID)
	return &dto.ImageUploadResponse{Image: url}, nil
}

func (uc *ProductUseCase) manageable(ctx context.Context, actor Actor, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if _, err := uc.access.owned(ctx, actor, product.StoreID); err != nil {
		return nil, err
	}
	return product, nil
}

// maxPrice límite exclusivo de NUMERIC(12, 2).
var maxPrice = decimal.New(1, 10)

func checkPrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return domain.Invalid("price", "no puede ser negativo")
	}
	if !p.Equal(p.Round(2)) {
		return domain.Invalid("price", "admite como máximo 2 decimales")
	}
	if p.GreaterThanOrEqual(maxPrice) {
		return domain.Invalid("price", "debe ser menor a 10000000000")
	}
	return nil
}
