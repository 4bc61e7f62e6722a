package dto

import "time"

// RegisterRequest entrada para registro del comerciante. Store es opcional: si viene,
// la tienda se crea y se vincula en la misma operación.
type RegisterRequest struct {
	OwnerName string              `json:"ownerName" validate:"required,max=100"`
	Email     string              `json:"email" validate:"required,email"`
	Password  string              `json:"password" validate:"required,min=6,max=72"`
	Store     *CreateStoreRequest `json:"store,omitempty"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	OwnerName string    `json:"ownerName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	StoreID   string    `json:"storeId,omitempty"`
	Slug      string    `json:"slug,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
