package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/internal/domain/inventory"
)

func searchFixture() []entity.InventoryItem {
	mk := func(id, name, category, location string) entity.InventoryItem {
		it := item(1, 1, 10)
		it.ID, it.Name, it.Category, it.Location = id, name, category, location
		return it
	}
	return []entity.InventoryItem{
		mk("1", "Paracetamol 500mg", "Analgésicos", "Estante A"),
		mk("2", "Amoxicilina", "Antibióticos", "Nevera 2"),
		mk("3", "Gasas", "Curación", "Estante B"),
		mk("4", "Ibuprofeno", "ANALGÉSICOS", "Bodega"),
	}
}

func ids(items []entity.InventoryItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilter_CoincideEnCualquierCampo(t *testing.T) {
	items := searchFixture()
	assert.Equal(t, []string{"1"}, ids(inventory.Filter(items, "PARACET")))
	assert.Equal(t, []string{"2"}, ids(inventory.Filter(items, "nevera")))
	assert.Equal(t, []string{"1", "4"}, ids(inventory.Filter(items, "analgésicos")))
	assert.Equal(t, []string{"1", "3"}, ids(inventory.Filter(items, "  estante ")))
	assert.Empty(t, inventory.Filter(items, "insulina"))
}

func TestFilter_ConsultaVaciaDevuelveLaMismaLista(t *testing.T) {
	items := searchFixture()
	for _, q := range []string{"", "   ", "\t"} {
		got := inventory.Filter(items, q)
		require.Len(t, got, len(items))
		assert.Equal(t, ids(items), ids(got))
		assert.Same(t, &items[0], &got[0], "no debe copiar la lista")
	}
}

func TestFilter_Idempotente(t *testing.T) {
	items := searchFixture()
	for _, q := range []string{"a", "estante", "ANAL", "zzz"} {
		once := inventory.Filter(items, q)
		twice := inventory.Filter(once, q)
		assert.Equal(t, ids(once), ids(twice), "query=%q", q)
	}
}

func TestFilter_NoModificaLaEntrada(t *testing.T) {
	items := searchFixture()
	before := ids(items)
	_ = inventory.Filter(items, "gasas")
	assert.Equal(t, before, ids(items))
}
