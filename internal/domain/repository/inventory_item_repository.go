package repository

import (
	"context"

	"github.com/jhoicas/medstock/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia para InventoryItem (DIP).
// No hay paginación: la pantalla siempre trabaja con la lista completa.
type InventoryItemRepository interface {
	// List devuelve todos los artículos en orden de creación.
	List(ctx context.Context) ([]entity.InventoryItem, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Create(ctx context.Context, item *entity.InventoryItem) error
	Update(ctx context.Context, item *entity.InventoryItem) error
	// Delete no falla si el artículo ya no existe (idempotente).
	Delete(ctx context.Context, id string) error
}
