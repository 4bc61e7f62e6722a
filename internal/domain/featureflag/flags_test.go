package featureflag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cjstore-api/internal/domain/featureflag"
)

func TestSet_Defaults(t *testing.T) {
	var zero featureflag.Set
	assert.False(t, zero.IsEnabled(featureflag.WhatsAppOrder), "Set vacío: todo deshabilitado")

	s := featureflag.New(nil)
	assert.True(t, s.IsEnabled(featureflag.WhatsAppOrder))
	assert.True(t, s.IsEnabled(featureflag.MultiVendor))
	assert.False(t, s.IsEnabled(featureflag.OnlineShopping))
	assert.False(t, s.IsEnabled("desconocido"))
}

func TestSet_Overrides(t *testing.T) {
	s := featureflag.New(map[featureflag.Flag]bool{featureflag.OnlineShopping: true})
	assert.True(t, s.IsEnabled(featureflag.OnlineShopping))

	all := s.All()
	all[featureflag.WhatsAppOrder] = false
	assert.True(t, s.IsEnabled(featureflag.WhatsAppOrder), "All devuelve copia")
}
