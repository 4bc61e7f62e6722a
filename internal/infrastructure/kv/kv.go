// Package kv provee almacenes clave/valor de cadenas a blobs, usados como
// "almacenamiento local" durable del catálogo y de la sesión del cliente.
package kv

import (
	"context"
	"sync"
)

// Store almacén clave → blob. Get devuelve (nil, nil) si la clave no existe.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

var _ Store = (*Memory)(nil)

// Memory implementación en memoria (tests y modo efímero).
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory construye un almacén vacío.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error { return nil }
