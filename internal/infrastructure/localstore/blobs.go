// Package localstore implementa los puertos de persistencia sobre tres blobs JSON
// durables (usuarios, tiendas, productos) guardados en un kv.Store.
//
// Cada mutación lee la colección completa, la transforma en memoria y la escribe
// completa de vuelta. No hay versionado: gana la última escritura. Un blob ilegible
// se trata como colección vacía.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/cjstore-api/internal/infrastructure/kv"
)

// Claves de los blobs persistidos.
const (
	UsersKey    = "cjstore_users"
	StoresKey   = "cjstore_stores"
	ProductsKey = "cjstore_products"
)

// Blobs acceso serializado a los tres blobs. Los repositorios de este paquete
// comparten una instancia para que cada ciclo leer-modificar-escribir sea atómico.
type Blobs struct {
	mu     sync.Mutex
	kv     kv.Store
	seed   bool
	seeded bool // protegido por mu
}

// NewBlobs construye el acceso a blobs. Con seed=true las tiendas y productos de
// demostración se siembran (o reparan) una sola vez, en la primera lectura. Lo que
// el usuario borre después no vuelve a aparecer.
func NewBlobs(store kv.Store, seed bool) *Blobs {
	return &Blobs{kv: store, seed: seed}
}

// ensureSeeded aplica siembra y reparación de tiendas y productos demo la primera
// vez que se llama. Debe invocarse con mu tomado.
func (b *Blobs) ensureSeeded(ctx context.Context) {
	if !b.seed || b.seeded {
		return
	}
	b.seeded = true

	if stores, changed := repairStores(read[storeRecord](ctx, b, StoresKey)); changed {
		if err := b.saveStores(ctx, stores); err != nil {
			log.Warn().Err(err).Msg("localstore: no se pudo persistir la siembra de tiendas")
		}
	}
	if products, changed := repairProducts(read[productRecord](ctx, b, ProductsKey)); changed {
		if err := b.saveProducts(ctx, products); err != nil {
			log.Warn().Err(err).Msg("localstore: no se pudo persistir la siembra de productos")
		}
	}
}

// read decodifica el blob de key en dst. Errores de lectura o JSON inválido = colección vacía.
func read[T any](ctx context.Context, b *Blobs, key string) []T {
	raw, err := b.kv.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("localstore: lectura fallida, se usa colección vacía")
		return nil
	}
	if len(raw) == 0 {
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("localstore: blob inválido, se usa colección vacía")
		return nil
	}
	return out
}

func write[T any](ctx context.Context, b *Blobs, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("localstore: encode %s: %w", key, err)
	}
	if err := b.kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	return nil
}

func (b *Blobs) users(ctx context.Context) []userRecord {
	return read[userRecord](ctx, b, UsersKey)
}

func (b *Blobs) saveUsers(ctx context.Context, list []userRecord) error {
	return write(ctx, b, UsersKey, list)
}

func (b *Blobs) stores(ctx context.Context) []storeRecord {
	b.ensureSeeded(ctx)
	return read[storeRecord](ctx, b, StoresKey)
}

func (b *Blobs) saveStores(ctx context.Context, list []storeRecord) error {
	return write(ctx, b, StoresKey, list)
}

func (b *Blobs) products(ctx context.Context) []productRecord {
	b.ensureSeeded(ctx)
	return read[productRecord](ctx, b, ProductsKey)
}

func (b *Blobs) saveProducts(ctx context.Context, list []productRecord) error {
	return write(ctx, b, ProductsKey, list)
}
