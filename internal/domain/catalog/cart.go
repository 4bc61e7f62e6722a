package catalog

import (
	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CartItem línea del carrito: producto y cantidad.
type CartItem struct {
	Product  *entity.Product
	Quantity int
}

// Cart carrito de compra en línea. Solo se usa con el flag onlineShopping activo.
type Cart struct {
	items []CartItem
}

// Add agrega una unidad del producto (o suma a la línea existente).
func (c *Cart) Add(p *entity.Product, qty int) error {
	if p == nil || qty <= 0 {
		return domain.ErrInvalidInput
	}
	if !p.Purchasable() {
		return domain.Invalid("product", "producto sin stock o inactivo")
	}
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += qty
			return nil
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: qty})
	return nil
}

// Remove elimina la línea del producto; no falla si no existe.
func (c *Cart) Remove(productID string) {
	out := c.items[:0]
	for _, it := range c.items {
		if it.Product.ID != productID {
			out = append(out, it)
		}
	}
	c.items = out
}

// Clear vacía el carrito.
func (c *Cart) Clear() { c.items = nil }

// Items devuelve una copia de las líneas.
func (c *Cart) Items() []CartItem {
	return append([]CartItem(nil), c.items...)
}

// Total suma precio * cantidad de todas las líneas.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
