package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/internal/domain/inventory"
)

func TestSummarize_Contadores(t *testing.T) {
	a := item(5, 10, 45) // LOW + EXPIRING
	a.Category = "Analgésicos"
	b := item(20, 10, 200) // GOOD + VALID
	b.Category = "Antibióticos"
	c := item(1, 1, -1) // GOOD + EXPIRED
	c.Category = "Analgésicos"
	d := item(0, 3, 0) // LOW + EXPIRING (hoy)
	d.Category = "analgésicos"

	s := inventory.Summarize([]entity.InventoryItem{a, b, c, d}, today)
	assert.Equal(t, inventory.Summary{
		Total:        4,
		LowStock:     2,
		ExpiringSoon: 2,
		Expired:      1,
		Categories:   3, // sensible a mayúsculas
	}, s)
}

func TestSummarize_CategoriasIndependientesDelOrden(t *testing.T) {
	names := []string{"B", "A", "B", "C", "A"}
	var items []entity.InventoryItem
	for _, n := range names {
		it := item(1, 1, 10)
		it.Category = n
		items = append(items, it)
	}
	forward := inventory.Summarize(items, today)

	reversed := make([]entity.InventoryItem, len(items))
	for i := range items {
		reversed[len(items)-1-i] = items[i]
	}
	backward := inventory.Summarize(reversed, today)

	assert.Equal(t, 3, forward.Categories)
	assert.Equal(t, forward, backward)
}

func TestSummarize_ListaVacia(t *testing.T) {
	assert.Equal(t, inventory.Summary{}, inventory.Summarize(nil, today))
}
