// Package inventory contiene la lógica pura de la pantalla de inventario:
// clasificación de stock y vencimiento, resumen de tarjetas y filtro de búsqueda.
// Nada aquí hace I/O ni lee el reloj; la fecha de hoy siempre llega como parámetro.
package inventory

import (
	"time"

	"github.com/jhoicas/medstock/internal/domain/entity"
)

// ExpiringWindowDays ventana de "vence pronto": 0 <= días restantes <= 90.
const ExpiringWindowDays = 90

// StockStatus suficiencia de stock de un artículo.
type StockStatus string

const (
	StockLow  StockStatus = "LOW"
	StockGood StockStatus = "GOOD"
)

// ExpiryStatus urgencia de vencimiento de un artículo.
type ExpiryStatus string

const (
	ExpiryExpired  ExpiryStatus = "EXPIRED"
	ExpiryExpiring ExpiryStatus = "EXPIRING"
	ExpiryValid    ExpiryStatus = "VALID"
)

// Classification resultado combinado para una fila.
type Classification struct {
	Stock    StockStatus
	Expiry   ExpiryStatus
	DaysLeft int
	HasDate  bool
}

// StockStatusOf LOW si y solo si qty < reorder (comparación numérica).
func StockStatusOf(item entity.InventoryItem) StockStatus {
	if item.Quantity.LessThan(item.Reorder) {
		return StockLow
	}
	return StockGood
}

// DaysLeft días de calendario entre hoy y el vencimiento, ambos truncados a medianoche.
// ok es false cuando el artículo no tiene fecha de vencimiento.
func DaysLeft(expiry entity.Date, today time.Time) (days int, ok bool) {
	if expiry.IsZero() {
		return 0, false
	}
	diff := expiry.Midnight().Sub(entity.DateOf(today).Midnight())
	return int(diff / (24 * time.Hour)), true
}

// ExpiryStatusOf EXPIRED si quedan < 0 días, EXPIRING si 0..90, VALID en otro caso.
// Un artículo sin fecha es VALID.
func ExpiryStatusOf(item entity.InventoryItem, today time.Time) ExpiryStatus {
	days, ok := DaysLeft(item.Expiry, today)
	return expiryStatusFor(days, ok)
}

// Classify calcula ambas clasificaciones en una sola pasada.
func Classify(item entity.InventoryItem, today time.Time) Classification {
	days, ok := DaysLeft(item.Expiry, today)
	return Classification{
		Stock:    StockStatusOf(item),
		Expiry:   expiryStatusFor(days, ok),
		DaysLeft: days,
		HasDate:  ok,
	}
}

func expiryStatusFor(days int, ok bool) ExpiryStatus {
	switch {
	case !ok:
		return ExpiryValid
	case days < 0:
		return ExpiryExpired
	case days <= ExpiringWindowDays:
		return ExpiryExpiring
	default:
		return ExpiryValid
	}
}
