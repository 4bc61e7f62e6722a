package usecase

import "github.com/jhoicas/cjstore-api/internal/domain/entity"

// Actor usuario autenticado que ejecuta una operación (tomado de los claims del JWT).
type Actor struct {
	UserID  string
	StoreID string
	Role    string
}

// IsAdmin informa si el actor es administrador de la plataforma.
func (a Actor) IsAdmin() bool { return a.Role == entity.RoleAdmin }

// CanManage informa si el actor puede modificar la tienda: su dueño o un admin.
func (a Actor) CanManage(s *entity.Store) bool {
	if s == nil {
		return false
	}
	return a.IsAdmin() || (a.UserID != "" && s.OwnerID == a.UserID)
}
