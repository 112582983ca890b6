// Package view proyecta la lista de artículos en filas de tabla y las dibuja en HTML.
// La proyección es pura: no lee estado global ni modifica la lista de entrada, y la
// capacidad del usuario (Admin/Viewer) llega siempre como parámetro.
package view

import (
	"time"

	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/internal/domain/inventory"
)

// TableColumns número de columnas de la tabla; la fila vacía ocupa todas.
const TableColumns = 9

// EmptyMessage texto de la fila única cuando no hay artículos.
const EmptyMessage = "No items found."

// Action control de la última celda de la fila.
type Action uint8

const (
	ActionViewOnly Action = iota
	ActionDelete
)

// Pill etiqueta de estado con su clase CSS.
type Pill struct {
	Label string
	Class string
}

// Row una fila proyectada, lista para HTML o terminal.
type Row struct {
	ID         string
	Name       string
	Category   string
	Location   string
	QtyDisplay string // "qty / reorder min"
	Stock      Pill
	Expiry     Pill
	ExpiryDate string
	Reorder    string
	Action     Action
	DaysLeft   int
	HasDate    bool
}

// CanDelete atajo para las plantillas.
func (r Row) CanDelete() bool { return r.Action == ActionDelete }

// TableModel tabla completa: Empty indica que debe dibujarse la fila de "sin resultados".
type TableModel struct {
	Rows    []Row
	Empty   bool
	Columns int
	Message string
}

// Rows proyecta cada artículo a una fila. La acción es ActionDelete solo para AccessAdmin.
func Rows(items []entity.InventoryItem, access entity.Access, today time.Time) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, projectRow(item, access, today))
	}
	return rows
}

// Table arma el modelo completo, incluyendo el marcador de lista vacía.
func Table(items []entity.InventoryItem, access entity.Access, today time.Time) TableModel {
	return TableModel{
		Rows:    Rows(items, access, today),
		Empty:   len(items) == 0,
		Columns: TableColumns,
		Message: EmptyMessage,
	}
}

func projectRow(item entity.InventoryItem, access entity.Access, today time.Time) Row {
	c := inventory.Classify(item, today)
	action := ActionViewOnly
	if access.CanWrite() {
		action = ActionDelete
	}
	return Row{
		ID:         item.ID,
		Name:       item.Name,
		Category:   item.Category,
		Location:   item.Location,
		QtyDisplay: item.Quantity.String() + " / " + item.Reorder.String() + " min",
		Stock:      stockPill(c.Stock),
		Expiry:     expiryPill(c.Expiry),
		ExpiryDate: item.Expiry.String(),
		Reorder:    item.Reorder.String(),
		Action:     action,
		DaysLeft:   c.DaysLeft,
		HasDate:    c.HasDate,
	}
}

func stockPill(s inventory.StockStatus) Pill {
	if s == inventory.StockLow {
		return Pill{Label: string(s), Class: "pill pill-low"}
	}
	return Pill{Label: string(s), Class: "pill pill-good"}
}

func expiryPill(s inventory.ExpiryStatus) Pill {
	switch s {
	case inventory.ExpiryExpired:
		return Pill{Label: string(s), Class: "pill pill-expired"}
	case inventory.ExpiryExpiring:
		return Pill{Label: string(s), Class: "pill pill-low"}
	default:
		return Pill{Label: string(s), Class: "pill pill-valid"}
	}
}
