package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/infrastructure/cache"
)

func newCache(t *testing.T, ttl time.Duration) (*cache.RedisProductCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedisProductCache(client, ttl), srv
}

func TestRedisProductCache_SetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newCache(t, time.Minute)

	_, gen, ok, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	products := []*entity.Product{{ID: "p1", StoreID: "s1", Name: "Tee", Price: decimal.RequireFromString("599.50"), Stock: 3, Active: true}}
	require.NoError(t, c.Set(ctx, "s1", gen, products))

	got, _, ok, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "Tee", got[0].Name)
	assert.True(t, got[0].Price.Equal(decimal.RequireFromString("599.5")))

	require.NoError(t, c.Invalidate(ctx, "s1"))
	_, _, ok, err = c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisProductCache_SetTardioNoPisaInvalidacion(t *testing.T) {
	ctx := context.Background()
	c, _ := newCache(t, time.Minute)

	// lector: miss y carga desde el repositorio
	_, gen, ok, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	require.False(t, ok)
	stale := []*entity.Product{{ID: "p1", StoreID: "s1", Name: "Viejo"}}

	// escritor concurrente: modifica e invalida antes de que el lector guarde
	require.NoError(t, c.Invalidate(ctx, "s1"))
	require.NoError(t, c.Set(ctx, "s1", gen, stale))

	_, next, ok, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok, "el catálogo viejo no debe quedar en caché")
	assert.Greater(t, next, gen)

	fresh := []*entity.Product{{ID: "p1", StoreID: "s1", Name: "Nuevo"}}
	require.NoError(t, c.Set(ctx, "s1", next, fresh))
	got, _, ok, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Nuevo", got[0].Name)
}

func TestRedisProductCache_ExpiraConTTL(t *testing.T) {
	ctx := context.Background()
	c, srv := newCache(t, 30*time.Second)

	require.NoError(t, c.Set(ctx, "s1", 0, nil))
	_, _, ok, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok, "catálogo vacío también se cachea")

	srv.FastForward(31 * time.Second)
	_, _, ok, err = c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisProductCache_ValorCorruptoEsMiss(t *testing.T) {
	ctx := context.Background()
	c, srv := newCache(t, time.Minute)
	require.NoError(t, srv.Set("cjstore:products:s1", "{no-json"))

	_, _, ok, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNop(t *testing.T) {
	var c cache.Nop
	require.NoError(t, c.Set(context.Background(), "s1", 0, nil))
	_, _, ok, err := c.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}
