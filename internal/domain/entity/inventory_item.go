package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo del inventario tal como lo expone /api/inventory.
// Quantity y Reorder son decimales: el JSON puede traerlos como número o como string
// ("9") y decimal.Decimal los acepta en ambas formas, así la comparación siempre es numérica.
type InventoryItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Location  string          `json:"location"`
	Quantity  decimal.Decimal `json:"qty"`
	Reorder   decimal.Decimal `json:"reorder"` // umbral mínimo antes de marcar LOW
	Expiry    Date            `json:"expiry"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}
