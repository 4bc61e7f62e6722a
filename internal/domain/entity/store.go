package entity

import "time"

// Temas visuales de la tienda pública.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store representa una tienda (vitrina) de un comerciante.
// Slug es único entre todas las tiendas; Visits solo crece.
type Store struct {
	ID          string
	OwnerID     string
	Name        string
	Slug        string
	OwnerName   string
	Email       string
	WhatsApp    string // solo dígitos, con código de país
	Logo        string // URL opcional
	Description string
	Theme       string // light, dark
	Visits      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
