package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold unidades a partir de las cuales el panel marca un producto como stock bajo.
const LowStockThreshold = 5

// Product representa un producto del catálogo de una tienda.
// Price y Stock nunca son negativos; Stock == 0 deja el producto visible pero sin compra.
type Product struct {
	ID          string
	StoreID     string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
	Image       string // URL opcional
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Purchasable indica si el producto admite pedidos (activo y con stock).
func (p *Product) Purchasable() bool {
	return p.Active && p.Stock > 0
}

// LowStock indica si el stock está en o bajo el umbral del panel.
func (p *Product) LowStock() bool {
	return p.Stock <= LowStockThreshold
}
