package localstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cjstore-api/internal/domain/entity"
)

// Formato JSON de los blobs (camelCase, compatible con los datos del prototipo web).

type userRecord struct {
	ID           string    `json:"id"`
	OwnerName    string    `json:"ownerName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role,omitempty"`
	StoreID      string    `json:"storeId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type storeRecord struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId,omitempty"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	OwnerName   string    `json:"ownerName"`
	Email       string    `json:"email"`
	WhatsApp    string    `json:"whatsapp"`
	Logo        string    `json:"logo"`
	Description string    `json:"description"`
	Theme       string    `json:"theme"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Visits      int64     `json:"visits"`
}

type productRecord struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"storeId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func userToRecord(u *entity.User) userRecord {
	return userRecord{
		ID: u.ID, OwnerName: u.OwnerName, Email: u.Email, PasswordHash: u.PasswordHash,
		Role: u.Role, StoreID: u.StoreID, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
	}
}

func (r userRecord) entity() *entity.User {
	role := r.Role
	if role == "" {
		role = entity.RoleMerchant
	}
	return &entity.User{
		ID: r.ID, OwnerName: r.OwnerName, Email: r.Email, PasswordHash: r.PasswordHash,
		Role: role, StoreID: r.StoreID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

func storeToRecord(s *entity.Store) storeRecord {
	return storeRecord{
		ID: s.ID, OwnerID: s.OwnerID, Name: s.Name, Slug: s.Slug, OwnerName: s.OwnerName,
		Email: s.Email, WhatsApp: s.WhatsApp, Logo: s.Logo, Description: s.Description,
		Theme: s.Theme, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt, Visits: s.Visits,
	}
}

func (r storeRecord) entity() *entity.Store {
	theme := r.Theme
	if theme == "" {
		theme = entity.ThemeLight
	}
	return &entity.Store{
		ID: r.ID, OwnerID: r.OwnerID, Name: r.Name, Slug: r.Slug, OwnerName: r.OwnerName,
		Email: r.Email, WhatsApp: r.WhatsApp, Logo: r.Logo, Description: r.Description,
		Theme: theme, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt, Visits: r.Visits,
	}
}

func productToRecord(p *entity.Product) productRecord {
	return productRecord{
		ID: p.ID, StoreID: p.StoreID, Name: p.Name, Description: p.Description,
		Price: p.Price, Category: p.Category, Stock: p.Stock, Image: p.Image,
		Active: p.Active, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

func (r productRecord) entity() *entity.Product {
	return &entity.Product{
		ID: r.ID, StoreID: r.StoreID, Name: r.Name, Description: r.Description,
		Price: r.Price, Category: r.Category, Stock: r.Stock, Image: r.Image,
		Active: r.Active, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}
