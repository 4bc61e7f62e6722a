package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/application/usecase"
	"github.com/jhoicas/cjstore-api/internal/application/validation"
	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/catalog"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
	"github.com/jhoicas/cjstore-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y sesión.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	storeRepo repository.StoreRepository
	tx        repository.TxRunner
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, storeRepo repository.StoreRepository, tx repository.TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, storeRepo: storeRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register crea el comerciante (password con bcrypt) y abre su sesión. Si trae datos de
// tienda, la crea y la vincula en la misma unidad de trabajo.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	email := normalizeEmail(in.Email)
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if in.Store != nil {
		// El driver local no revierte el alta del usuario: se descarta antes un slug ocupado.
		if err := uc.checkSlug(ctx, *in.Store); err != nil {
			return nil, err
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		// max=72 cuenta caracteres; bcrypt limita bytes
		return nil, domain.Invalid("password", "debe tener como máximo 72 bytes")
	}
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		OwnerName:    strings.TrimSpace(in.OwnerName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleMerchant,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var store *entity.Store
	err = uc.tx.Run(ctx, func(users repository.UserRepository, stores repository.StoreRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		if in.Store == nil {
			return nil
		}
		store, err = usecase.CreateOwnedStore(ctx, users, stores, user, *in.Store)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.session(user, store)
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	store, err := uc.userStore(ctx, user)
	if err != nil {
		return nil, err
	}
	return uc.session(user, store)
}

// Me devuelve el usuario de la sesión con el slug de su tienda.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	store, err := uc.userStore(ctx, user)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user, store), nil
}

// LinkStore asocia la sesión del usuario a una tienda que ya le pertenece y emite un
// token nuevo con el storeId actualizado.
func (uc *AuthUseCase) LinkStore(ctx context.Context, userID, storeID string) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	if store.OwnerID != user.ID && user.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if user.StoreID != store.ID {
		user.StoreID = store.ID
		user.UpdatedAt = time.Now()
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	return uc.session(user, store)
}

func (uc *AuthUseCase) checkSlug(ctx context.Context, in dto.CreateStoreRequest) error {
	slug := in.Slug
	if slug == "" {
		slug = catalog.GenerateSlug(in.Name)
	}
	if !catalog.ValidSlug(slug) {
		return domain.Invalid("store.slug", "no se pudo derivar un slug válido del nombre")
	}
	taken, err := uc.storeRepo.SlugExists(ctx, slug, "")
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrSlugTaken
	}
	return nil
}

func (uc *AuthUseCase) userStore(ctx context.Context, user *entity.User) (*entity.Store, error) {
	if user.StoreID == "" {
		return nil, nil
	}
	return uc.storeRepo.GetByID(ctx, user.StoreID)
}

func (uc *AuthUseCase) session(user *entity.User, store *entity.Store) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.StoreID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user, store),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *entity.User, store *entity.Store) *dto.UserResponse {
	if u == nil {
		return nil
	}
	out := &dto.UserResponse{
		ID:        u.ID,
		OwnerName: u.OwnerName,
		Email:     u.Email,
		Role:      u.Role,
		StoreID:   u.StoreID,
		CreatedAt: u.CreatedAt,
	}
	if store != nil {
		out.Slug = store.Slug
	}
	return out
}
