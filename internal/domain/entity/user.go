package entity

import "time"

// Roles válidos para User.
const (
	RoleMerchant = "merchant"
	RoleAdmin    = "admin"
)

// User representa un comerciante registrado. StoreID queda vacío hasta crear su tienda.
type User struct {
	ID           string
	OwnerName    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	StoreID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
