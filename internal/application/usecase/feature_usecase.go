package usecase

import (
	"fmt"

	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/featureflag"
)

// FeatureService es el único punto de la aplicación que conoce qué funcionalidades
// opcionales están activas en este despliegue.
type FeatureService struct {
	flags featureflag.Set
}

// NewFeatureService construye el servicio sobre la tabla de flags.
func NewFeatureService(flags featureflag.Set) *FeatureService {
	return &FeatureService{flags: flags}
}

// IsEnabled informa si el flag está activo. Un flag desconocido está apagado.
func (s *FeatureService) IsEnabled(f featureflag.Flag) bool {
	return s.flags.IsEnabled(f)
}

// Require devuelve ErrFeatureDisabled si el flag está apagado.
func (s *FeatureService) Require(f featureflag.Flag) error {
	if !s.flags.IsEnabled(f) {
		return fmt.Errorf("%w: %s", domain.ErrFeatureDisabled, f)
	}
	return nil
}

// All tabla completa para exponer por API.
func (s *FeatureService) All() map[string]bool {
	out := make(map[string]bool)
	for k, v := range s.flags.All() {
		out[string(k)] = v
	}
	return out
}
