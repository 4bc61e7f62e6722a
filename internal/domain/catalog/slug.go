package catalog

import (
	"regexp"
	"strings"
	"unicode"
)

// Espacios: ASCII más separadores Unicode (NBSP, U+2000..U+200A, U+3000, BOM...).
var (
	slugStrip      = regexp.MustCompile(`[^a-z0-9\s\v\p{Z}\x{FEFF}-]`)
	slugWhitespace = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
	slugPattern    = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// GenerateSlug sugiere la URL de una tienda a partir de su nombre visible:
// minúsculas, elimina lo que no sea letra a-z, dígito, espacio o guion, recorta y une espacios con un guion.
// No se usa para re-generar el slug al renombrar una tienda.
func GenerateSlug(name string) string {
	s := strings.ToLower(name)
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.TrimFunc(s, isSlugSpace)
	return slugWhitespace.ReplaceAllString(s, "-")
}

// ValidSlug verifica el formato aceptado para slugs explícitos.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

func isSlugSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r) || r == '\uFEFF'
}
