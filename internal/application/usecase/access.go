package usecase

import (
	"context"

	"github.com/jhoicas/cjstore-api/internal/domain"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

// storeAccess resuelve la tienda sobre la que opera un actor y verifica que pueda gestionarla.
type storeAccess struct {
	stores repository.StoreRepository
	users  repository.UserRepository
}

// owned devuelve la tienda storeID; vacío = la tienda del actor (claims o usuario persistido).
func (a storeAccess) owned(ctx context.Context, actor Actor, storeID string) (*entity.Store, error) {
	if storeID == "" {
		storeID = actor.StoreID
	}
	if storeID == "" && actor.UserID != "" {
		user, err := a.users.GetByID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			storeID = user.StoreID
		}
	}
	if storeID == "" {
		return nil, domain.ErrStoreNotFound
	}
	store, err := a.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	if !actor.CanManage(store) {
		return nil, domain.ErrForbidden
	}
	return store, nil
}
