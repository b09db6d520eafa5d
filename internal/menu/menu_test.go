package menu

import "testing"

func TestCategories_Order(t *testing.T) {
	cats := Categories()
	want := []string{"starters", "mains", "desserts", "drinks"}

	if len(cats) != len(want) {
		t.Fatalf("len(Categories()) = %d, want %d", len(cats), len(want))
	}
	for i, name := range want {
		if cats[i].Name != name {
			t.Fatalf("category %d = %q, want %q", i, cats[i].Name, name)
		}
		if len(cats[i].Items) == 0 {
			t.Fatalf("category %q has no items", name)
		}
	}
}

func TestCategories_PositivePrices(t *testing.T) {
	for _, cat := range Categories() {
		for _, item := range cat.Items {
			if item.Price <= 0 {
				t.Fatalf("item %q has non-positive price %v", item.Name, item.Price)
			}
			if item.Name == "" || item.Description == "" {
				t.Fatalf("item %+v has empty name or description", item)
			}
		}
	}
}

func TestCatalog_RestaurantName(t *testing.T) {
	m := Catalog("The Common House")

	if m.RestaurantName != "The Common House" {
		t.Fatalf("RestaurantName = %q, want The Common House", m.RestaurantName)
	}
	if len(m.Starters) == 0 || len(m.Mains) == 0 || len(m.Desserts) == 0 || len(m.Drinks) == 0 {
		t.Fatalf("catalog has an empty category: %+v", m)
	}
	if m.Mains[5].Name != "House Smash Burger" {
		t.Fatalf("Mains[5] = %q, want House Smash Burger", m.Mains[5].Name)
	}
}
