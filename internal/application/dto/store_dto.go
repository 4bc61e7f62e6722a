package dto

import "time"

// CreateStoreRequest entrada para crear una tienda. Slug vacío = se genera desde Name.
type CreateStoreRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,slug,max=100"`
	OwnerName   string `json:"ownerName,omitempty" validate:"max=100"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	WhatsApp    string `json:"whatsapp" validate:"required,whatsapp"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty" validate:"max=1000"`
	Theme       string `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
}

// UpdateStoreRequest actualización parcial del perfil de la tienda.
type UpdateStoreRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,min=3,max=100"`
	Slug        *string `json:"slug,omitempty" validate:"omitnil,slug,max=100"`
	OwnerName   *string `json:"ownerName,omitempty" validate:"omitnil,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitnil,email"`
	WhatsApp    *string `json:"whatsapp,omitempty" validate:"omitnil,whatsapp"`
	Logo        *string `json:"logo,omitempty"`
	Description *string `json:"description,omitempty" validate:"omitnil,max=1000"`
	Theme       *string `json:"theme,omitempty" validate:"omitnil,oneof=light dark"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	OwnerName   string    `json:"ownerName"`
	Email       string    `json:"email"`
	WhatsApp    string    `json:"whatsapp"`
	Logo        string    `json:"logo"`
	Description string    `json:"description"`
	Theme       string    `json:"theme"`
	Visits      int64     `json:"visits"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SlugSuggestionResponse slug sugerido para un nombre y si está libre.
type SlugSuggestionResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}
