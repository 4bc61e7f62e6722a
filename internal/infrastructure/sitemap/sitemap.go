// Package sitemap genera el sitemap.xml (protocolo sitemaps.org 0.9) de las tiendas públicas.
package sitemap

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/cjstore-api/internal/application/ports"
)

const namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

var _ ports.SitemapRenderer = (*Generator)(nil)

// Generator implementa ports.SitemapRenderer con etree.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

// Render una <url> por portada de tienda (/store/{slug}) y otra por producto
// (/store/{slug}/product/{id}). lastmod es la última actualización conocida.
func (g *Generator) Render(baseURL string, entries []ports.SitemapEntry) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", namespace)

	for _, e := range entries {
		if e.Store == nil {
			continue
		}
		storeURL := base + "/store/" + e.Store.Slug
		addURL(urlset, storeURL, latest(e.Store.UpdatedAt, e.Store.CreatedAt), "daily", "0.8")
		for _, p := range e.Products {
			addURL(urlset, storeURL+"/product/"+p.ID, latest(p.UpdatedAt, p.CreatedAt), "weekly", "0.6")
		}
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("sitemap: serializar: %w", err)
	}
	return out.Bytes(), nil
}

func addURL(parent *etree.Element, loc string, lastmod time.Time, changefreq, priority string) {
	u := parent.CreateElement("url")
	u.CreateElement("loc").SetText(loc)
	if !lastmod.IsZero() {
		u.CreateElement("lastmod").SetText(lastmod.UTC().Format("2006-01-02"))
	}
	u.CreateElement("changefreq").SetText(changefreq)
	u.CreateElement("priority").SetText(priority)
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
