package localstore

import (
	"context"

	"github.com/jhoicas/cjstore-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner entrega los repositorios de blobs tal cual. Cada escritura es atómica por
// separado; no hay rollback de las escrituras previas si fn falla a mitad.
type TxRunner struct {
	users  *UserRepo
	stores *StoreRepo
}

// NewTxRunner construye el runner sobre los blobs compartidos.
func NewTxRunner(b *Blobs) *TxRunner {
	return &TxRunner{users: NewUserRepository(b), stores: NewStoreRepository(b)}
}

func (r *TxRunner) Run(_ context.Context, fn func(users repository.UserRepository, stores repository.StoreRepository) error) error {
	return fn(r.users, r.stores)
}
