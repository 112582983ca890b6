package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/medstock/internal/domain/entity"
)

// Filter devuelve los artículos cuyo nombre, categoría o ubicación contienen la consulta,
// sin distinguir mayúsculas. El orden de entrada se conserva.
// Una consulta vacía o solo con espacios devuelve la misma lista recibida, sin copiarla.
func Filter(items []entity.InventoryItem, query string) []entity.InventoryItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	// cases.Caser tiene estado interno: uno por llamada.
	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]entity.InventoryItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold.String(item.Name), needle) ||
			strings.Contains(fold.String(item.Category), needle) ||
			strings.Contains(fold.String(item.Location), needle) {
			out = append(out, item)
		}
	}
	return out
}
