package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/catalog"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
)

func TestWhatsAppLink_CodificaComoNavegador(t *testing.T) {
	link := catalog.WhatsAppLink("+91 98765-43210", "Hola mundo! (1+1)")
	assert.Equal(t, "https://wa.me/919876543210?text=Hola%20mundo!%20(1%2B1)", link)
}

func TestOrderMessage(t *testing.T) {
	s := &entity.Store{Name: "Fashion Hub", WhatsApp: "919876543210"}
	p := &entity.Product{Name: "Classic White Tee", Price: decimal.NewFromInt(599)}
	msg := catalog.OrderMessage(s, p)
	assert.Equal(t, "Hello 👋\nI want to order:\n\nStore: Fashion Hub\nProduct: Classic White Tee\nPrice: ₹599\n\nPlease confirm availability.", msg)

	link := catalog.WhatsAppLink(s.WhatsApp, msg)
	assert.Contains(t, link, "https://wa.me/919876543210?text=Hello%20%F0%9F%91%8B%0AI%20want")
}

func TestContactMessage(t *testing.T) {
	s := &entity.Store{Name: "Tech Haven"}
	assert.Equal(t, `Hello! I'm browsing your store "Tech Haven" on CJStore.`, catalog.ContactMessage(s))
}

func TestCart_Total(t *testing.T) {
	tee := &entity.Product{ID: "p1", Price: decimal.NewFromInt(599), Stock: 3, Active: true}
	jeans := &entity.Product{ID: "p2", Price: decimal.RequireFromString("1499.50"), Stock: 1, Active: true}
	agotado := &entity.Product{ID: "p3", Price: decimal.NewFromInt(10), Stock: 0, Active: true}

	var c catalog.Cart
	require.NoError(t, c.Add(tee, 1))
	require.NoError(t, c.Add(tee, 1))
	require.NoError(t, c.Add(jeans, 1))
	assert.ErrorIs(t, c.Add(agotado, 1), domain.ErrInvalidInput)
	assert.Len(t, c.Items(), 2)
	assert.True(t, decimal.RequireFromString("2697.50").Equal(c.Total()))

	c.Remove("p1")
	assert.True(t, decimal.RequireFromString("1499.50").Equal(c.Total()))
	c.Clear()
	assert.True(t, c.Total().IsZero())
}

func TestValidWhatsApp(t *testing.T) {
	assert.True(t, catalog.ValidWhatsApp("919876543210"))
	assert.False(t, catalog.ValidWhatsApp("+919876543210"))
	assert.False(t, catalog.ValidWhatsApp("12345"))
	assert.False(t, catalog.ValidWhatsApp("1234567890123456"))
}
