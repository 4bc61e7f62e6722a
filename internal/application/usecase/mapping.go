package usecase

import (
	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
)

// ToStoreResponse convierte la entidad a su DTO público.
func ToStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		OwnerName:   s.OwnerName,
		Email:       s.Email,
		WhatsApp:    s.WhatsApp,
		Logo:        s.Logo,
		Description: s.Description,
		Theme:       s.Theme,
		Visits:      s.Visits,
		CreatedAt:   s.CreatedAt,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		StoreID:     p.StoreID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}

func toProductList(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}
