// Package client contiene los contenedores de estado del cliente del comerciante: sesión,
// catálogo de la tienda y directorio de tiendas. Cada uno guarda un snapshot, muta a
// través de la API remota y avisa a sus suscriptores después de cada mutación exitosa.
package client

import "sync"

type observable[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(T)
}

// Subscribe registra fn; la función devuelta cancela la suscripción.
func (o *observable[T]) Subscribe(fn func(T)) (cancel func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.subs == nil {
		o.subs = make(map[int]func(T))
	}
	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	return func() {
		o.mu.Lock()
		delete(o.subs, id)
		o.mu.Unlock()
	}
}

// notify se llama sin tener tomado el lock del snapshot.
func (o *observable[T]) notify(v T) {
	o.mu.Lock()
	fns := make([]func(T), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}
	o.mu.Unlock()
	for _, fn := range fns {
		fn(v)
	}
}
