package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cjstore-api/internal/application/usecase"
	"github.com/jhoicas/cjstore-api/internal/domain"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)
	actor := e.merchant(t, "u1", "s1", "mi-tienda")
	for i := 0; i < 7; i++ {
		e.addProduct(t, fmt.Sprintf("low%d", i), "s1", "Low", "c", 1, i, i%2 == 0)
	}
	e.addProduct(t, "big", "s1", "Big", "c", 1, 100, true)
	_, err := e.stores.IncrementVisits(ctx, "mi-tienda")
	require.NoError(t, err)

	out, err := e.dashboard.Summary(ctx, actor, "")
	require.NoError(t, err)
	assert.Equal(t, 8, out.TotalProducts)
	assert.Equal(t, 5, out.ActiveProducts)
	assert.Equal(t, 6, out.LowStockCount, "stock <= 5")
	assert.Len(t, out.LowStockProducts, 5)
	assert.Equal(t, "low0", out.LowStockProducts[0].ID)
	assert.EqualValues(t, 1, out.Visits)
}

func TestDashboardSummary_SinTienda(t *testing.T) {
	e := newEnv(t, nil)
	_, err := e.dashboard.Summary(context.Background(), usecase.Actor{UserID: "x"}, "")
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}
