package inventory

import (
	"time"

	"github.com/jhoicas/medstock/internal/domain/entity"
)

// Summary valores de las tarjetas superiores de la pantalla.
// Expired se reporta aparte: los vencidos nunca se cuentan dentro de ExpiringSoon.
type Summary struct {
	Total        int `json:"total"`
	LowStock     int `json:"low_stock"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
	Categories   int `json:"categories"`
}

// Summarize reduce la lista completa a contadores.
// Las categorías se comparan tal cual (sensible a mayúsculas, sin recortar espacios).
func Summarize(items []entity.InventoryItem, today time.Time) Summary {
	s := Summary{Total: len(items)}
	categories := make(map[string]struct{}, len(items))
	for _, item := range items {
		c := Classify(item, today)
		if c.Stock == StockLow {
			s.LowStock++
		}
		switch c.Expiry {
		case ExpiryExpiring:
			s.ExpiringSoon++
		case ExpiryExpired:
			s.Expired++
		}
		categories[item.Category] = struct{}{}
	}
	s.Categories = len(categories)
	return s
}
