package repository

import "context"

// TxRunner ejecuta fn con repositorios atados a una misma unidad de trabajo.
// Lo usan las operaciones que crean una tienda y la vinculan a su dueño.
type TxRunner interface {
	Run(ctx context.Context, fn func(users UserRepository, stores StoreRepository) error) error
}
