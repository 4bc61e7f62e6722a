// Package cache implementa ports.ProductCache sobre Redis, más una variante nula para
// despliegues sin Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/cjstore-api/internal/application/ports"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
)

const (
	keyPrefix = "cjstore:products:"
	genPrefix = "cjstore:products-gen:"
)

var (
	_ ports.ProductCache = (*RedisProductCache)(nil)
	_ ports.ProductCache = Nop{}
)

// setIfCurrent guarda el catálogo solo si la generación de la tienda sigue siendo ARGV[1].
// KEYS[1] generación, KEYS[2] catálogo; ARGV[2] JSON, ARGV[3] TTL en ms (0 = sin expiración).
var setIfCurrent = redis.NewScript(`
local cur = redis.call('GET', KEYS[1]) or '0'
if cur ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// RedisProductCache guarda el catálogo de cada tienda como un JSON con TTL. Cada
// invalidación incrementa un contador de generación por tienda.
type RedisProductCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisProductCache construye la caché. ttl <= 0 = sin expiración.
func NewRedisProductCache(client redis.Cmdable, ttl time.Duration) *RedisProductCache {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisProductCache{client: client, ttl: ttl}
}

func key(storeID string) string    { return keyPrefix + storeID }
func genKey(storeID string) string { return genPrefix + storeID }

// Get devuelve ok=false ante un miss o un valor ilegible, con la generación vigente.
func (c *RedisProductCache) Get(ctx context.Context, storeID string) ([]*entity.Product, int64, bool, error) {
	vals, err := c.client.MGet(ctx, key(storeID), genKey(storeID)).Result()
	if err != nil {
		return nil, 0, false, fmt.Errorf("redis mget: %w", err)
	}
	var gen int64
	if s, ok := vals[1].(string); ok {
		gen, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, 0, false, fmt.Errorf("redis generación %q: %w", s, err)
		}
	}
	raw, ok := vals[0].(string)
	if !ok {
		return nil, gen, false, nil
	}
	var list []*entity.Product
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, gen, false, nil
	}
	return list, gen, true, nil
}

// Set guarda products si gen sigue vigente; si hubo una invalidación entre medio no hace nada.
func (c *RedisProductCache) Set(ctx context.Context, storeID string, gen int64, products []*entity.Product) error {
	if products == nil {
		products = []*entity.Product{}
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("redis encode: %w", err)
	}
	keys := []string{genKey(storeID), key(storeID)}
	err = setIfCurrent.Run(ctx, c.client, keys, strconv.FormatInt(gen, 10), raw, c.ttl.Milliseconds()).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate avanza la generación y borra el catálogo en una sola transacción.
func (c *RedisProductCache) Invalidate(ctx context.Context, storeID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey(storeID))
		pipe.Del(ctx, key(storeID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}

// Nop caché deshabilitada: siempre miss.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]*entity.Product, int64, bool, error) {
	return nil, 0, false, nil
}

func (Nop) Set(context.Context, string, int64, []*entity.Product) error {
	return nil
}

func (Nop) Invalidate(context.Context, string) error {
	return nil
}
