// Command cjstore es el cliente de línea de comandos del comerciante: sesión, perfil de la
// tienda, catálogo y enlaces de pedido, contra la API de CJStore.
package main

import (
	"fmt"
	"os"
)

func main() {
	root, cleanup := newRootCmd()
	err := root.Execute()
	cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
