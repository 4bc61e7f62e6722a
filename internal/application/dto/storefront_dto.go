package dto

// StorefrontResponse página pública de una tienda con el catálogo ya filtrado y ordenado.
type StorefrontResponse struct {
	Store      StoreResponse     `json:"store"`
	Products   []ProductResponse `json:"products"`
	Categories []string          `json:"categories"`
	Query      string            `json:"query,omitempty"`
	Category   string            `json:"category"`
	Sort       string            `json:"sort,omitempty"`
}

// ProductDetailResponse detalle público de un producto. OrderLink vacío si el pedido por WhatsApp está apagado.
type ProductDetailResponse struct {
	Store       StoreResponse   `json:"store"`
	Product     ProductResponse `json:"product"`
	Purchasable bool            `json:"purchasable"`
	OrderLink   string          `json:"orderLink,omitempty"`
}

// ContactLinkResponse enlace de contacto por WhatsApp.
type ContactLinkResponse struct {
	Link string `json:"link"`
}
