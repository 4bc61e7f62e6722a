package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// FeaturesResponse tabla de funcionalidades opcionales activas.
type FeaturesResponse struct {
	Features map[string]bool `json:"features"`
}
