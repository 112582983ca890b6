package inventoryclient

import (
	"sync"

	"github.com/jhoicas/medstock/internal/domain/entity"
)

// Item artículo tal como lo devuelve /api/inventory.
type Item = entity.InventoryItem

// Store lista de artículos en memoria. Solo se reemplaza completa, nunca se edita en sitio.
type Store struct {
	mu    sync.RWMutex
	items []Item
}

// Current copia de la lista actual (vacía, nunca nil).
func (s *Store) Current() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Replace sustituye la lista completa.
func (s *Store) Replace(items []Item) {
	cp := make([]Item, len(items))
	copy(cp, items)
	s.mu.Lock()
	s.items = cp
	s.mu.Unlock()
}
