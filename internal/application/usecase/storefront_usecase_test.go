package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/featureflag"
)

func productIDs(list []dto.ProductResponse) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func storefrontFixture(t *testing.T, flags map[featureflag.Flag]bool) *env {
	e := newEnv(t, flags)
	e.merchant(t, "u1", "s1", "fashion-hub")
	e.addProduct(t, "p1", "s1", "Classic White Tee", "T-Shirts", 599, 50, true)
	e.addProduct(t, "p2", "s1", "Slim Fit Jeans", "Jeans", 1499, 30, true)
	e.addProduct(t, "p3", "s1", "Hidden Dress", "Dresses", 1299, 20, false)
	e.addProduct(t, "p4", "s1", "Leather Sneakers", "Footwear", 2499, 0, true)
	return e
}

func TestStorefrontHome_BuscaFiltraOrdenaYCuentaVisita(t *testing.T) {
	ctx := context.Background()
	e := storefrontFixture(t, nil)

	out, err := e.storefront.Home(ctx, "fashion-hub", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p4"}, productIDs(out.Products))
	assert.Equal(t, []string{"Footwear", "Jeans", "T-Shirts"}, out.Categories)
	assert.Equal(t, "All", out.Category)
	assert.EqualValues(t, 1, out.Store.Visits)

	out, err = e.storefront.Home(ctx, "fashion-hub", "", "", "price-desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"p4", "p2", "p1"}, productIDs(out.Products))
	assert.EqualValues(t, 2, out.Store.Visits)

	out, err = e.storefront.Home(ctx, "fashion-hub", " JEANS ", "All", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, productIDs(out.Products))
	assert.Equal(t, "JEANS", out.Query)

	out, err = e.storefront.Home(ctx, "fashion-hub", "", "Dresses", "")
	require.NoError(t, err)
	assert.Empty(t, out.Products, "los inactivos nunca aparecen")
}

func TestStorefrontHome_UsaCache(t *testing.T) {
	ctx := context.Background()
	e := storefrontFixture(t, nil)

	_, err := e.storefront.Home(ctx, "fashion-hub", "", "", "")
	require.NoError(t, err)
	_, err = e.storefront.Home(ctx, "fashion-hub", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, e.cache.hits)
}

func TestStorefrontHome_TiendaInexistente(t *testing.T) {
	e := newEnv(t, nil)
	_, err := e.storefront.Home(context.Background(), "nada", "", "", "")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestStorefrontProductDetail(t *testing.T) {
	ctx := context.Background()
	e := storefrontFixture(t, nil)

	out, err := e.storefront.ProductDetail(ctx, "fashion-hub", "p1")
	require.NoError(t, err)
	assert.True(t, out.Purchasable)
	assert.Equal(t,
		"https://wa.me/919876543210?text=Hello%20%F0%9F%91%8B%0AI%20want%20to%20order%3A%0A%0AStore%3A%20Tienda%20fashion-hub%0AProduct%3A%20Classic%20White%20Tee%0APrice%3A%20%E2%82%B9599%0A%0APlease%20confirm%20availability.",
		out.OrderLink)

	out, err = e.storefront.ProductDetail(ctx, "fashion-hub", "p4")
	require.NoError(t, err)
	assert.False(t, out.Purchasable)
	assert.Empty(t, out.OrderLink, "sin stock no hay enlace de pedido")

	_, err = e.storefront.ProductDetail(ctx, "fashion-hub", "p3")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestStorefrontProductDetail_FlagApagado(t *testing.T) {
	e := storefrontFixture(t, map[featureflag.Flag]bool{featureflag.WhatsAppOrder: false})
	out, err := e.storefront.ProductDetail(context.Background(), "fashion-hub", "p1")
	require.NoError(t, err)
	assert.Empty(t, out.OrderLink)
}

func TestStorefrontContactLink(t *testing.T) {
	e := storefrontFixture(t, nil)
	out, err := e.storefront.ContactLink(context.Background(), "fashion-hub")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/919876543210?text=Hello!%20I'm%20browsing%20your%20store%20%22Tienda%20fashion-hub%22%20on%20CJStore.", out.Link)
}
