// Package featureflag expone la tabla estática de funcionalidades opcionales.
package featureflag

// Flag nombre de una funcionalidad opcional.
type Flag string

const (
	WhatsAppOrder  Flag = "whatsappOrder"
	OnlineShopping Flag = "onlineShopping"
	MultiVendor    Flag = "multiVendor"
)

// Set tabla inmutable de flags. Un flag desconocido se considera deshabilitado.
type Set struct {
	flags map[Flag]bool
}

// Defaults valores de producción: pedidos por WhatsApp y multi-vendedor activos, carrito en línea apagado.
func Defaults() map[Flag]bool {
	return map[Flag]bool{
		WhatsAppOrder:  true,
		OnlineShopping: false,
		MultiVendor:    true,
	}
}

// New construye el Set a partir de Defaults con los overrides indicados.
func New(overrides map[Flag]bool) Set {
	flags := Defaults()
	for k, v := range overrides {
		flags[k] = v
	}
	return Set{flags: flags}
}

// IsEnabled informa si el flag está activo.
func (s Set) IsEnabled(f Flag) bool {
	return s.flags[f]
}

// All copia de la tabla para exponerla por API.
func (s Set) All() map[Flag]bool {
	out := make(map[Flag]bool, len(s.flags))
	for k, v := range s.flags {
		out[k] = v
	}
	return out
}
