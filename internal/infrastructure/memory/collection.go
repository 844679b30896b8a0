// Package memory implementa los repositorios en memoria de proceso. Sirve para
// ejecución local (STORE_DRIVER=memory) y como doble del almacén en tests.
// No ofrece transacciones: el alta de cuentas usa compensación.
package memory

import (
	"context"
	"sync"

	"github.com/trictux/trictux-api/internal/domain"
)

// collection mapa id → documento protegido por RWMutex. Guarda y devuelve copias
// para que los llamadores no compartan punteros con el almacén.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	order []string
	id    func(*T) string
	clone func(*T) *T
}

func newCollection[T any](id func(*T) string, clone func(*T) *T) *collection[T] {
	return &collection[T]{items: make(map[string]*T), id: id, clone: clone}
}

func (c *collection[T]) insert(_ context.Context, v *T, unique func(existing *T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.id(v)
	if _, ok := c.items[key]; ok {
		return domain.ErrConflict
	}
	if unique != nil {
		for _, existing := range c.items {
			if unique(existing) {
				return domain.ErrConflict
			}
		}
	}
	c.items[key] = c.clone(v)
	c.order = append(c.order, key)
	return nil
}

func (c *collection[T]) get(_ context.Context, key string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	if !ok {
		return nil, nil
	}
	return c.clone(v), nil
}

func (c *collection[T]) find(_ context.Context, match func(*T) bool) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, key := range c.order {
		if v := c.items[key]; match(v) {
			return c.clone(v), nil
		}
	}
	return nil, nil
}

func (c *collection[T]) list(_ context.Context) ([]*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.clone(c.items[key]))
	}
	return out, nil
}

// update reemplaza el documento; no falla si no existe (mismo contrato que UPDATE sin filas).
func (c *collection[T]) update(_ context.Context, v *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.id(v)
	if _, ok := c.items[key]; !ok {
		return nil
	}
	c.items[key] = c.clone(v)
	return nil
}

func (c *collection[T]) delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; !ok {
		return nil
	}
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// deleteWhere borra los elementos que cumplen match y devuelve cuántos fueron.
func (c *collection[T]) deleteWhere(_ context.Context, match func(*T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.order[:0]
	removed := 0
	for _, key := range c.order {
		if match(c.items[key]) {
			delete(c.items, key)
			removed++
			continue
		}
		kept = append(kept, key)
	}
	c.order = kept
	return removed
}

func shallow[T any](v *T) *T {
	cp := *v
	return &cp
}
