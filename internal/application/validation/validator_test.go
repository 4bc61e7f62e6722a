package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/application/validation"
	"github.com/jhoicas/cjstore-api/internal/domain"
)

func TestStruct_RegistroValido(t *testing.T) {
	in := dto.RegisterRequest{
		OwnerName: "Ana", Email: "ana@shop.com", Password: "secreto",
		Store: &dto.CreateStoreRequest{Name: "Mi Tienda", Slug: "mi-tienda", WhatsApp: "919876543210"},
	}
	assert.NoError(t, validation.Struct(in))
}

func TestStruct_PasswordCorto(t *testing.T) {
	err := validation.Struct(dto.RegisterRequest{OwnerName: "Ana", Email: "ana@shop.com", Password: "123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "password", verr.Field)
}

func TestStruct_CamposAnidadosDeTienda(t *testing.T) {
	in := dto.RegisterRequest{
		OwnerName: "Ana", Email: "ana@shop.com", Password: "secreto",
		Store: &dto.CreateStoreRequest{Name: "Mi Tienda", Slug: "Mi Tienda", WhatsApp: "919876543210"},
	}
	var verr *domain.ValidationError
	require.True(t, errors.As(validation.Struct(in), &verr))
	assert.Equal(t, "store.slug", verr.Field)

	in.Store.Slug = ""
	in.Store.WhatsApp = "+91 98765"
	require.True(t, errors.As(validation.Struct(in), &verr))
	assert.Equal(t, "store.whatsapp", verr.Field)
}

func TestStruct_ActualizacionParcialIgnoraNil(t *testing.T) {
	assert.NoError(t, validation.Struct(dto.UpdateStoreRequest{}))

	empty := ""
	assert.Error(t, validation.Struct(dto.UpdateStoreRequest{Name: &empty}))
}
