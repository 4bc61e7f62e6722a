package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/cjstore-api/internal/domain/entity"
)

const whatsAppBaseURL = "https://wa.me/"

var whatsAppPattern = regexp.MustCompile(`^\d{10,15}$`)

// ValidWhatsApp verifica el número guardado en la tienda: solo dígitos, con código de país.
func ValidWhatsApp(phone string) bool {
	return whatsAppPattern.MatchString(phone)
}

// OrderMessage arma el texto del pedido por WhatsApp para un producto.
func OrderMessage(store *entity.Store, product *entity.Product) string {
	return fmt.Sprintf("Hello 👋\nI want to order:\n\nStore: %s\nProduct: %s\nPrice: ₹%s\n\nPlease confirm availability.",
		store.Name, product.Name, product.Price.String())
}

// ContactMessage arma el saludo genérico enviado desde la portada de la tienda.
func ContactMessage(store *entity.Store) string {
	return fmt.Sprintf("Hello! I'm browsing your store \"%s\" on CJStore.", store.Name)
}

// WhatsAppLink construye https://wa.me/{digitos}?text={mensaje codificado}.
// Descarta cualquier carácter no numérico del teléfono.
func WhatsAppLink(phone, message string) string {
	return whatsAppBaseURL + DigitsOnly(phone) + "?text=" + encodeURIComponent(message)
}

// DigitsOnly conserva solo los dígitos ASCII de s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeURIComponent replica la codificación de los navegadores: todo byte fuera de
// A-Z a-z 0-9 - _ . ! ~ * ' ( ) se escribe como %XX (espacio = %20).
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedURIComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func unreservedURIComponent(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
