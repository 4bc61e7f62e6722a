package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/application/usecase"
	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestStoreCreate_GeneraSlugYVinculaUsuario(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	require.NoError(t, e.users.Create(ctx, &entity.User{ID: "u1", OwnerName: "Ana", Email: "ana@shop.com", Role: entity.RoleMerchant, CreatedAt: time.Now()}))
	actor := usecase.Actor{UserID: "u1", Role: entity.RoleMerchant}

	out, err := e.store.Create(ctx, actor, dto.CreateStoreRequest{Name: "Fashion Hub!", WhatsApp: "919876543210"})
	require.NoError(t, err)
	assert.Equal(t, "fashion-hub", out.Slug)
	assert.Equal(t, "Ana", out.OwnerName)
	assert.Equal(t, entity.ThemeLight, out.Theme)

	user, err := e.users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, out.ID, user.StoreID)

	_, err = e.store.Create(ctx, actor, dto.CreateStoreRequest{Name: "Otra tienda", WhatsApp: "919876543210"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "un comerciante tiene una sola tienda")
}

func TestStoreCreate_SlugOcupado(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	e.merchant(t, "u1", "s1", "fashion-hub")
	require.NoError(t, e.users.Create(ctx, &entity.User{ID: "u2", Email: "b@shop.com", Role: entity.RoleMerchant}))

	_, err := e.store.Create(ctx, usecase.Actor{UserID: "u2"}, dto.CreateStoreRequest{Name: "Fashion Hub", WhatsApp: "919876543210"})
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestStoreCreate_ValidaCampos(t *testing.T) {
	e := newEnv(t, nil)
	_, err := e.store.Create(context.Background(), usecase.Actor{UserID: "u1"}, dto.CreateStoreRequest{Name: "ab", WhatsApp: "919876543210"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStoreUpdate_SoloDuenoYSlugUnico(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	owner := e.merchant(t, "u1", "s1", "mi-tienda")
	other := e.merchant(t, "u2", "s2", "otra")

	_, err := e.store.Update(ctx, other, "s1", dto.UpdateStoreRequest{Name: strPtr("Robada")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.store.Update(ctx, owner, "s1", dto.UpdateStoreRequest{Slug: strPtr("otra")})
	assert.ErrorIs(t, err, domain.ErrSlugTaken)

	out, err := e.store.Update(ctx, owner, "s1", dto.UpdateStoreRequest{Name: strPtr("Nuevo Nombre"), Theme: strPtr(entity.ThemeDark)})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo Nombre", out.Name)
	assert.Equal(t, "mi-tienda", out.Slug, "renombrar no regenera el slug")
	assert.Equal(t, entity.ThemeDark, out.Theme)

	admin := usecase.Actor{UserID: "root", Role: entity.RoleAdmin}
	_, err = e.store.Update(ctx, admin, "s1", dto.UpdateStoreRequest{Description: strPtr("editada por admin")})
	assert.NoError(t, err)
}

func TestStoreGetBySlug_NoEncontrada(t *testing.T) {
	e := newEnv(t, nil)
	_, err := e.store.GetBySlug(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestStoreIncrementVisits(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	e.merchant(t, "u1", "s1", "mi-tienda")

	require.NoError(t, e.store.IncrementVisits(ctx, "mi-tienda"))
	require.NoError(t, e.store.IncrementVisits(ctx, "mi-tienda"))
	assert.ErrorIs(t, e.store.IncrementVisits(ctx, "nada"), domain.ErrStoreNotFound)

	s, err := e.store.GetBySlug(ctx, "mi-tienda")
	require.NoError(t, err)
	assert.EqualValues(t, 2, s.Visits)
}

func TestStoreSlugAvailableYSuggest(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	e.merchant(t, "u1", "s1", "fashion-hub")

	ok, err := e.store.SlugAvailable(ctx, "fashion-hub", "")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = e.store.SlugAvailable(ctx, "fashion-hub", "s1")
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = e.store.SlugAvailable(ctx, "Fashion Hub", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sug, err := e.store.SuggestSlug(ctx, "Fashion Hub!")
	require.NoError(t, err)
	assert.Equal(t, "fashion-hub-2", sug.Slug)
	assert.True(t, sug.Available)

	sug, err = e.store.SuggestSlug(ctx, "  Green   Groceries ")
	require.NoError(t, err)
	assert.Equal(t, "green-groceries", sug.Slug)

	_, err = e.store.SuggestSlug(ctx, "!!!")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
