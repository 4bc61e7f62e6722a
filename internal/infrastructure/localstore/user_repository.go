package localstore

import (
	"context"
	"slices"
	"strings"

	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el blob de usuarios.
type UserRepo struct {
	b *Blobs
}

// NewUserRepository construye el adaptador.
func NewUserRepository(b *Blobs) *UserRepo {
	return &UserRepo{b: b}
}

// Create persiste un nuevo usuario. El email es único (sin distinguir mayúsculas).
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	list := r.b.users(ctx)
	if slices.ContainsFunc(list, func(u userRecord) bool { return strings.EqualFold(u.Email, user.Email) }) {
		return domain.ErrEmailAlreadyExists
	}
	return r.b.saveUsers(ctx, append(list, userToRecord(user)))
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	for _, u := range r.b.users(ctx) {
		if u.ID == id {
			return u.entity(), nil
		}
	}
	return nil, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	for _, u := range r.b.users(ctx) {
		if strings.EqualFold(u.Email, email) {
			return u.entity(), nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario con el mismo ID.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	list := r.b.users(ctx)
	idx := slices.IndexFunc(list, func(u userRecord) bool { return u.ID == user.ID })
	if idx == -1 {
		return nil
	}
	list[idx] = userToRecord(user)
	return r.b.saveUsers(ctx, list)
}
