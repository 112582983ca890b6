// inventoryctl cliente de terminal de la pantalla de inventario: inicia sesión,
// lista con búsqueda y resumen, y permite altas y bajas confirmadas a los administradores.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
