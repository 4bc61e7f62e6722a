package localstore

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Identificadores de las tiendas de demostración.
const (
	DemoStoreFashion   = "demo-store-001"
	DemoStoreGroceries = "demo-store-002"
	DemoStoreTech      = "demo-store-003"
)

func demoStores(now time.Time) []storeRecord {
	return []storeRecord{
		{
			ID: DemoStoreFashion, Name: "Fashion Hub", Slug: "fashion-hub", OwnerName: "Demo Owner",
			Email: "demo@cjstore.com", WhatsApp: "919876543210",
			Description: "Your one-stop fashion destination. Trendy styles at great prices.",
			Theme:       "light", CreatedAt: now, UpdatedAt: now, Visits: 42,
		},
		{
			ID: DemoStoreGroceries, Name: "Green Groceries", Slug: "green-groceries", OwnerName: "Sara Green",
			Email: "sara@example.com", WhatsApp: "918888888888",
			Description: "Fresh organic vegetables and fruits delivered to your doorstep.",
			Theme:       "light", CreatedAt: now, UpdatedAt: now, Visits: 128,
		},
		{
			ID: DemoStoreTech, Name: "Tech Haven", Slug: "tech-haven", OwnerName: "Alex Rivera",
			Email: "alex@techhaven.com", WhatsApp: "917777777777",
			Description: "Latest gadgets, accessories, and computing gear for the modern pro.",
			Theme:       "dark", CreatedAt: now, UpdatedAt: now, Visits: 256,
		},
	}
}

func demoProducts(now time.Time) []productRecord {
	p := func(id, store, name, desc, category string, price int64, stock int) productRecord {
		return productRecord{
			ID: id, StoreID: store, Name: name, Description: desc, Category: category,
			Price: decimal.NewFromInt(price), Stock: stock, Active: true, CreatedAt: now, UpdatedAt: now,
		}
	}
	return []productRecord{
		p("p1", DemoStoreFashion, "Classic White Tee", "Premium cotton classic white t-shirt, perfect for any occasion.", "T-Shirts", 599, 50),
		p("p2", DemoStoreFashion, "Slim Fit Jeans", "Modern slim fit jeans in dark blue denim. Comfortable and stylish.", "Jeans", 1499, 30),
		p("p3", DemoStoreFashion, "Floral Summer Dress", "Light and breezy floral dress perfect for summer outings.", "Dresses", 1299, 20),
		p("p101", DemoStoreGroceries, "Organic Cherry Tomatoes", "Sweet and juicy organic cherry tomatoes from local farms.", "Groceries", 120, 100),
		p("p102", DemoStoreGroceries, "Fresh Hass Avocado", "Perfectly ripe Hass avocados, sold individually.", "Groceries", 180, 40),
		p("p103", DemoStoreGroceries, "Crunchy Fuji Apples", "Sweet and crispy Fuji apples. Price per kg.", "Groceries", 250, 60),
		p("p201", DemoStoreTech, "Wireless Earbuds", "Noise cancelling wireless earbuds with 20h battery life.", "Accessories", 2999, 15),
		p("p202", DemoStoreTech, "Mechanical Keyboard", "RGB backlit mechanical keyboard with blue switches.", "Computing", 1899, 8),
		p("p4", DemoStoreFashion, "Leather Sneakers", "Genuine leather sneakers with cushioned sole. Available in all sizes.", "Footwear", 2499, 15),
		p("p5", DemoStoreFashion, "Casual Hoodie", "Warm and cozy hoodie for casual wear. Available in multiple colors.", "Hoodies", 999, 3),
	}
}

// repairStores siembra las tres tiendas demo si no hay ninguna y, si ya hay datos,
// agrega las tiendas demo 002 y 003 que falten. La 001 no se repara.
func repairStores(list []storeRecord) ([]storeRecord, bool) {
	now := time.Now()
	demos := demoStores(now)
	if len(list) == 0 {
		return demos, true
	}
	changed := false
	for _, d := range demos[1:] {
		if !slices.ContainsFunc(list, func(s storeRecord) bool { return s.ID == d.ID }) {
			list = append(list, d)
			changed = true
		}
	}
	return list, changed
}

// repairProducts siembra los productos demo si no hay ninguno y agrega el bloque de
// cada tienda demo cuyo producto centinela (p101, p201) falte, sin repetir IDs.
func repairProducts(list []productRecord) ([]productRecord, bool) {
	now := time.Now()
	demos := demoProducts(now)
	if len(list) == 0 {
		return demos, true
	}
	changed := false
	for _, sentinel := range []struct{ id, store string }{
		{"p101", DemoStoreGroceries},
		{"p201", DemoStoreTech},
	} {
		if slices.ContainsFunc(list, func(p productRecord) bool { return p.ID == sentinel.id }) {
			continue
		}
		for _, d := range demos {
			if d.StoreID != sentinel.store {
				continue
			}
			if slices.ContainsFunc(list, func(p productRecord) bool { return p.ID == d.ID }) {
				continue
			}
			list = append(list, d)
			changed = true
		}
	}
	return list, changed
}
