package usecase_test

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cjstore-api/internal/application/ports"
	"github.com/jhoicas/cjstore-api/internal/application/usecase"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/featureflag"
	"github.com/jhoicas/cjstore-api/internal/infrastructure/kv"
	"github.com/jhoicas/cjstore-api/internal/infrastructure/localstore"
)

// memCache caché en memoria que cuenta lecturas e invalidaciones.
type memCache struct {
	mu          sync.Mutex
	data        map[string][]*entity.Product
	hits        int
	invalidated []string
}

func newMemCache() *memCache { return &memCache{data: map[string][]*entity.Product{}} }

func (c *memCache) Get(_ context.Context, storeID string) ([]*entity.Product, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list, ok := c.data[storeID]
	if ok {
		c.hits++
	}
	return list, ok, nil
}

func (c *memCache) Set(_ context.Context, storeID string, products []*entity.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[storeID] = products
	return nil
}

func (c *memCache) Invalidate(_ context.Context, storeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, storeID)
	c.invalidated = append(c.invalidated, storeID)
	return nil
}

type memImages struct {
	keys []string
	data [][]byte
}

func (m *memImages) Put(_ context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.keys = append(m.keys, key)
	m.data = append(m.data, b)
	return "/images/" + key, nil
}

type fakePDF struct{ names []string }

func (f *fakePDF) Render(store *entity.Store, products []*entity.Product) ([]byte, error) {
	f.names = f.names[:0]
	for _, p := range products {
		f.names = append(f.names, p.Name)
	}
	return []byte("%PDF-" + store.Name), nil
}

type fakeSitemap struct{ entries []ports.SitemapEntry }

func (f *fakeSitemap) Render(baseURL string, entries []ports.SitemapEntry) ([]byte, error) {
	f.entries = entries
	var buf bytes.Buffer
	buf.WriteString(baseURL)
	return buf.Bytes(), nil
}

type env struct {
	users    *localstore.UserRepo
	stores   *localstore.StoreRepo
	products *localstore.ProductRepo
	cache    *memCache
	images   *memImages
	pdf      *fakePDF
	sitemap  *fakeSitemap
	features *usecase.FeatureService

	store      *usecase.StoreUseCase
	product    *usecase.ProductUseCase
	storefront *usecase.StorefrontUseCase
	dashboard  *usecase.DashboardUseCase
	payment    *usecase.PaymentUseCase
	export     *usecase.CatalogExportUseCase
}

func newEnv(t *testing.T, flags map[featureflag.Flag]bool) *env {
	t.Helper()
	blobs := localstore.NewBlobs(kv.NewMemory(), false)
	e := &env{
		users:    localstore.NewUserRepository(blobs),
		stores:   localstore.NewStoreRepository(blobs),
		products: localstore.NewProductRepository(blobs),
		cache:    newMemCache(),
		images:   &memImages{},
		pdf:      &fakePDF{},
		sitemap:  &fakeSitemap{},
		features: usecase.NewFeatureService(featureflag.New(flags)),
	}
	tx := localstore.NewTxRunner(blobs)
	e.store = usecase.NewStoreUseCase(e.stores, e.users, tx)
	e.product = usecase.NewProductUseCase(e.products, e.stores, e.users, e.cache, e.images)
	e.storefront = usecase.NewStorefrontUseCase(e.stores, e.products, e.cache, e.features)
	e.dashboard = usecase.NewDashboardUseCase(e.products, e.stores, e.users)
	e.payment = usecase.NewPaymentUseCase(e.products, e.features)
	e.export = usecase.NewCatalogExportUseCase(e.stores, e.products, e.users, e.cache, e.pdf, e.sitemap, "https://cjstore.app")
	return e
}

// merchant crea un usuario y su tienda directamente en los repos.
func (e *env) merchant(t *testing.T, userID, storeID, slug string) usecase.Actor {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, e.users.Create(ctx, &entity.User{
		ID: userID, OwnerName: "Dueño " + userID, Email: userID + "@shop.com", Role: entity.RoleMerchant,
		StoreID: storeID, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, e.stores.Create(ctx, &entity.Store{
		ID: storeID, OwnerID: userID, Name: "Tienda " + slug, Slug: slug, WhatsApp: "919876543210",
		Theme: entity.ThemeLight, CreatedAt: now, UpdatedAt: now,
	}))
	return usecase.Actor{UserID: userID, StoreID: storeID, Role: entity.RoleMerchant}
}

func (e *env) addProduct(t *testing.T, id, storeID, name, category string, price int64, stock int, active bool) {
	t.Helper()
	now := time.Now()
	require.NoError(t, e.products.Create(context.Background(), &entity.Product{
		ID: id, StoreID: storeID, Name: name, Description: name + " desc", Category: category,
		Price: decimal.NewFromInt(price), Stock: stock, Active: active, CreatedAt: now, UpdatedAt: now,
	}))
}
