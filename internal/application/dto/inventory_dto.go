package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/medstock/internal/domain/inventory"
)

// Quantity número que puede llegar como 5, "5", "", o null.
// Set es false cuando el campo falta o viene vacío (control de presencia).
type Quantity struct {
	Value decimal.Decimal
	Set   bool
}

// QuantityOf construye un Quantity informado.
func QuantityOf(d decimal.Decimal) Quantity { return Quantity{Value: d, Set: true} }

// UnmarshalJSON acepta número o string; "" y null dejan el campo sin informar.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if string(trimmed) == "null" {
		*q = Quantity{}
		return nil
	}
	var s string
	if len(trimmed) > 0 && trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*q = Quantity{}
			return nil
		}
		trimmed = []byte(strings.TrimSpace(s))
	}
	d, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		return err
	}
	*q = Quantity{Value: d, Set: true}
	return nil
}

// MarshalJSON serializa como número; null si no está informado.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.Set {
		return []byte("null"), nil
	}
	return []byte(q.Value.String()), nil
}

// CreateItemRequest body para POST /api/inventory.
// Solo name y qty son obligatorios; el resto se valida del lado del servidor de forma laxa.
type CreateItemRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Location string   `json:"location"`
	Qty      Quantity `json:"qty"`
	Reorder  Quantity `json:"reorder"`
	Expiry   string   `json:"expiry"`
}

// UpdateItemRequest body para PUT /api/inventory/{id}; los campos ausentes no se tocan.
type UpdateItemRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Location *string  `json:"location"`
	Qty      Quantity `json:"qty"`
	Reorder  Quantity `json:"reorder"`
	Expiry   *string  `json:"expiry"`
}

// SummaryResponse respuesta de GET /api/inventory/summary.
type SummaryResponse struct {
	inventory.Summary
	Date string `json:"date"` // día usado como "hoy" para el cálculo
}
