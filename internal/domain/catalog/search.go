// Package catalog contiene la lógica pura de la vitrina pública: búsqueda,
// filtrado y orden de productos, generación de slugs y mensajes de pedido.
package catalog

import (
	"slices"
	"strings"

	"github.com/jhoicas/cjstore-api/internal/domain/entity"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllCategories es el valor centinela del selector de categorías que desactiva el filtro.
const AllCategories = "All"

// Claves de orden aceptadas por Search. Cualquier otro valor conserva el orden filtrado.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
)

// Search devuelve el subconjunto de productos visible para el comprador:
//
//  1. solo productos activos;
//  2. query (sin espacios) no vacío: coincidencia parcial sin mayúsculas en nombre, descripción o categoría;
//  3. category no vacío y distinto de "All": igualdad exacta;
//  4. orden por sortKey (estable); clave desconocida = sin reordenar.
//
// Nunca modifica el slice de entrada.
func Search(products []*entity.Product, query, category, sortKey string) []*entity.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	filterCategory := category != "" && category != AllCategories

	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p == nil || !p.Active {
			continue
		}
		if q != "" && !matches(p, q) {
			continue
		}
		if filterCategory && p.Category != category {
			continue
		}
		out = append(out, p)
	}

	switch sortKey {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b *entity.Product) int { return a.Price.Cmp(b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b *entity.Product) int { return b.Price.Cmp(a.Price) })
	case SortName:
		// collate.Collator no es seguro para uso concurrente: uno por llamada.
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b *entity.Product) int { return col.CompareString(a.Name, b.Name) })
	}
	return out
}

func matches(p *entity.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// Categories devuelve las categorías distintas de los productos activos, ordenadas ascendentemente.
func Categories(products []*entity.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if p == nil || !p.Active {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	slices.Sort(out)
	return out
}

// ActiveOnly filtra los productos activos conservando el orden.
func ActiveOnly(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p != nil && p.Active {
			out = append(out, p)
		}
	}
	return out
}
