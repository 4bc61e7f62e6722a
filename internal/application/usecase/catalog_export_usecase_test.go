package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cjstore-api/internal/application/usecase"
	"github.com/jhoicas/cjstore-api/internal/domain"
)

func TestPriceListPDF_ActivosOrdenadosPorNombre(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	actor := e.merchant(t, "u1", "s1", "mi-tienda")
	e.addProduct(t, "p1", "s1", "zapatos", "c", 1, 1, true)
	e.addProduct(t, "p2", "s1", "Abrigo", "c", 1, 1, true)
	e.addProduct(t, "p3", "s1", "Bolso", "c", 1, 1, false)

	doc, store, err := e.export.PriceListPDF(ctx, actor, "")
	require.NoError(t, err)
	assert.Equal(t, "s1", store.ID)
	assert.Equal(t, "%PDF-Tienda mi-tienda", string(doc))
	assert.Equal(t, []string{"Abrigo", "zapatos"}, e.pdf.names)

	_, _, err = e.export.PriceListPDF(ctx, usecase.Actor{UserID: "otro"}, "s1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSitemap_IncluyeTiendasYActivos(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	e.merchant(t, "u1", "s1", "a")
	e.merchant(t, "u2", "s2", "b")
	e.addProduct(t, "p1", "s1", "X", "c", 1, 1, true)
	e.addProduct(t, "p2", "s1", "Y", "c", 1, 1, false)

	out, err := e.export.Sitemap(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://cjstore.app", string(out))
	require.Len(t, e.sitemap.entries, 2)
	assert.Len(t, e.sitemap.entries[0].Products, 1)
	assert.Empty(t, e.sitemap.entries[1].Products)
}
