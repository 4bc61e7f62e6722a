package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/application/validation"
	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/catalog"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

// maxSlugSuffix límite de sufijos numéricos probados al sugerir un slug libre.
const maxSlugSuffix = 50

// StoreUseCase casos de uso del directorio de tiendas.
type StoreUseCase struct {
	stores repository.StoreRepository
	tx     repository.TxRunner
	access storeAccess
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(stores repository.StoreRepository, users repository.UserRepository, tx repository.TxRunner) *StoreUseCase {
	return &StoreUseCase{stores: stores, tx: tx, access: storeAccess{stores: stores, users: users}}
}

// Create crea la tienda del actor y la vincula a su usuario. Un comerciante tiene una sola tienda.
func (uc *StoreUseCase) Create(ctx context.Context, actor Actor, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var created *entity.Store
	err := uc.tx.Run(ctx, func(users repository.UserRepository, stores repository.StoreRepository) error {
		owner, err := users.GetByID(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if owner == nil {
			return domain.ErrUserNotFound
		}
		if owner.StoreID != "" {
			return fmt.Errorf("%w: el usuario ya tiene una tienda", domain.ErrDuplicate)
		}
		created, err = CreateOwnedStore(ctx, users, stores, owner, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToStoreResponse(created), nil
}

// CreateOwnedStore crea la tienda de owner y actualiza owner.StoreID. Lo comparten el
// alta de tienda y el registro con tienda; debe correr dentro de un TxRunner.
func CreateOwnedStore(ctx context.Context, users repository.UserRepository, stores repository.StoreRepository, owner *entity.User, in dto.CreateStoreRequest) (*entity.Store, error) {
	slug := in.Slug
	if slug == "" {
		slug = catalog.GenerateSlug(in.Name)
	}
	if !catalog.ValidSlug(slug) {
		return nil, domain.Invalid("slug", "no se pudo derivar un slug válido del nombre")
	}
	taken, err := stores.SlugExists(ctx, slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrSlugTaken
	}

	now := time.Now()
	store := &entity.Store{
		ID:          uuid.New().String(),
		OwnerID:     owner.ID,
		Name:        strings.TrimSpace(in.Name),
		Slug:        slug,
		OwnerName:   firstNonEmpty(in.OwnerName, owner.OwnerName),
		Email:       firstNonEmpty(in.Email, owner.Email),
		WhatsApp:    in.WhatsApp,
		Logo:        in.Logo,
		Description: in.Description,
		Theme:       firstNonEmpty(in.Theme, entity.ThemeLight),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := stores.Create(ctx, store); err != nil {
		return nil, err
	}
	owner.StoreID = store.ID
	owner.UpdatedAt = now
	if err := users.Update(ctx, owner); err != nil {
		return nil, err
	}
	return store, nil
}

// GetByID obtiene una tienda por ID.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*dto.StoreResponse, error) {
	store, err := uc.stores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return ToStoreResponse(store), nil
}

// GetBySlug obtiene una tienda por slug.
func (uc *StoreUseCase) GetBySlug(ctx context.Context, slug string) (*dto.StoreResponse, error) {
	store, err := uc.stores.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return ToStoreResponse(store), nil
}

// List devuelve el directorio completo de tiendas.
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.stores.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *ToStoreResponse(s))
	}
	return out, nil
}

// Update actualiza el perfil de la tienda. Solo el dueño o un admin.
// Cambiar el nombre no regenera el slug.
func (uc *StoreUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	store, err := uc.access.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.Slug != nil && *in.Slug != store.Slug {
		taken, err := uc.stores.SlugExists(ctx, *in.Slug, store.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrSlugTaken
		}
		store.Slug = *in.Slug
	}
	if in.Name != nil {
		store.Name = strings.TrimSpace(*in.Name)
	}
	if in.OwnerName != nil {
		store.OwnerName = *in.OwnerName
	}
	if in.Email != nil {
		store.Email = *in.Email
	}
	if in.WhatsApp != nil {
		store.WhatsApp = *in.WhatsApp
	}
	if in.Logo != nil {
		store.Logo = *in.Logo
	}
	if in.Description != nil {
		store.Description = *in.Description
	}
	if in.Theme != nil {
		store.Theme = *in.Theme
	}
	store.UpdatedAt = time.Now()
	if err := uc.stores.Update(ctx, store); err != nil {
		return nil, err
	}
	return ToStoreResponse(store), nil
}

// IncrementVisits suma una visita a la tienda del slug.
func (uc *StoreUseCase) IncrementVisits(ctx context.Context, slug string) error {
	ok, err := uc.stores.IncrementVisits(ctx, slug)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrStoreNotFound
	}
	return nil
}

// SlugAvailable informa si slug es válido y no lo usa otra tienda distinta de excludeID.
func (uc *StoreUseCase) SlugAvailable(ctx context.Context, slug, excludeID string) (bool, error) {
	if !catalog.ValidSlug(slug) {
		return false, domain.Invalid("slug", "solo letras minúsculas, números y guiones")
	}
	taken, err := uc.stores.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// SuggestSlug deriva un slug del nombre. Si está ocupado prueba base-2, base-3, ...
func (uc *StoreUseCase) SuggestSlug(ctx context.Context, name string) (*dto.SlugSuggestionResponse, error) {
	base := catalog.GenerateSlug(name)
	if base == "" {
		return nil, domain.Invalid("name", "no contiene caracteres válidos para un slug")
	}
	candidate := base
	for i := 2; i <= maxSlugSuffix+1; i++ {
		taken, err := uc.stores.SlugExists(ctx, candidate, "")
		if err != nil {
			return nil, err
		}
		if !taken {
			return &dto.SlugSuggestionResponse{Slug: candidate, Available: true}, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return &dto.SlugSuggestionResponse{Slug: base, Available: false}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
