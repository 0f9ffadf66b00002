package services

import (
	"testing"

	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

func item(id, category, price string) models.Item {
	return models.Item{
		ID:       models.ItemID(id),
		Name:     "product" + id,
		Category: category,
		Price:    models.RawPrice(price),
	}
}

func ids(items []models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID.String()
	}
	return out
}

func equalIDs(t *testing.T, got []models.Item, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got ids %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got ids %v, want %v", g, want)
		}
	}
}

func TestFilterByCategory(t *testing.T) {
	catalog := []models.Item{
		item("1", "category1", "20"),
		item("2", "category2", "50"),
		item("3", "Category1", "5"),
		item("4", "category10", "7"),
	}

	t.Run("empty text returns full catalog in order", func(t *testing.T) {
		equalIDs(t, FilterByCategory(catalog, ""), "1", "2", "3", "4")
	})

	t.Run("matches any casing", func(t *testing.T) {
		for _, q := range []string{"category1", "CATEGORY1", "CaTeGoRy1"} {
			equalIDs(t, FilterByCategory(catalog, q), "1", "3")
		}
	})

	t.Run("exact match not substring", func(t *testing.T) {
		equalIDs(t, FilterByCategory(catalog, "category"))
		equalIDs(t, FilterByCategory(catalog, "category10"), "4")
	})

	t.Run("does not mutate input", func(t *testing.T) {
		out := FilterByCategory(catalog, "")
		out[0].Name = "changed"
		if catalog[0].Name != "product1" {
			t.Fatal("filter result aliases the input slice")
		}
	})
}

func TestSortByPrice(t *testing.T) {
	t.Run("ascending and descending are reverses for distinct prices", func(t *testing.T) {
		in := []models.Item{
			item("a", "x", "30"),
			item("b", "x", "10"),
			item("c", "x", "20.5"),
			item("d", "x", "-1"),
		}
		asc := SortByPriceAscending(in)
		desc := SortByPriceDescending(in)
		equalIDs(t, asc, "d", "b", "c", "a")
		equalIDs(t, desc, "a", "c", "b", "d")
		for i := range asc {
			if asc[i].ID != desc[len(desc)-1-i].ID {
				t.Fatalf("descending is not the reverse of ascending: %v vs %v", ids(asc), ids(desc))
			}
		}
	})

	t.Run("stable for equal prices", func(t *testing.T) {
		in := []models.Item{
			item("a", "x", "10"),
			item("b", "x", "5"),
			item("c", "x", "10.00"),
			item("d", "x", "5"),
		}
		equalIDs(t, SortByPriceAscending(in), "b", "d", "a", "c")
		equalIDs(t, SortByPriceDescending(in), "a", "c", "b", "d")
	})

	t.Run("numeric not lexical", func(t *testing.T) {
		in := []models.Item{item("a", "x", "9"), item("b", "x", "10"), item("c", "x", "100")}
		equalIDs(t, SortByPriceAscending(in), "a", "b", "c")
	})

	t.Run("non-numeric prices go last in both directions", func(t *testing.T) {
		in := []models.Item{
			item("a", "x", "n/a"),
			item("b", "x", "10"),
			item("c", "x", ""),
			item("d", "x", "20"),
		}
		equalIDs(t, SortByPriceAscending(in), "b", "d", "a", "c")
		equalIDs(t, SortByPriceDescending(in), "d", "b", "a", "c")
	})

	t.Run("none returns copy in input order", func(t *testing.T) {
		in := []models.Item{item("a", "x", "30"), item("b", "x", "10")}
		out := SortByPrice(in, models.SortNone)
		equalIDs(t, out, "a", "b")
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := []models.Item{item("a", "x", "30"), item("b", "x", "10")}
		_ = SortByPriceAscending(in)
		equalIDs(t, in, "a", "b")
	})
}

func TestScenario_SeedCatalog(t *testing.T) {
	seed := models.SeedItems()

	filtered := FilterByCategory(seed, "CATEGORY1")
	equalIDs(t, filtered, "1")

	sorted := SortByPriceDescending(seed)
	equalIDs(t, sorted, "2", "1")
	if sorted[0].Price.String() != "50" || sorted[1].Price.String() != "20" {
		t.Fatalf("unexpected prices: %q, %q", sorted[0].Price, sorted[1].Price)
	}
}
