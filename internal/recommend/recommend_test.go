package recommend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pveller/adventureworks-moltin/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	mountain := &catalog.Subcategory{ID: "10", Name: "Mountain Bikes"}
	v1 := &catalog.Variant{SKU: "BK-M82S-38", Name: "Mountain-100 Silver, 38", Category: mountain}
	v2 := &catalog.Variant{SKU: "BK-M82S-42", Name: "Mountain-100 Silver, 42", Category: mountain}

	return &catalog.Catalog{
		Inventory: []*catalog.Product{
			{
				ID:          "19",
				Name:        "Mountain-100",
				Description: "Top of the line, with fenders",
				Variants:    []*catalog.Variant{v1, v2},
			},
			// Products without variants contribute no catalog lines.
			{ID: "20", Name: "Unsellable", Description: "n/a"},
		},
		Transactions: []*catalog.OrderHeader{
			{
				OrderID:   "SO001",
				Customer:  "29825",
				OrderDate: "2011-05-31 00:00:00",
				Details: []*catalog.OrderDetail{
					{OrderID: "SO001", ProductID: "771", SKU: "BK-M82S-38"},
					{OrderID: "SO001", ProductID: "772", SKU: "BK-M82S-42"},
				},
			},
		},
	}
}

func TestWriteCatalog(t *testing.T) {
	dir := t.TempDir()
	if err := WriteCatalog(dir, testCatalog()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, CatalogFile))
	if err != nil {
		t.Fatal(err)
	}

	// Commas inside fields become spaces and whitespace runs collapse;
	// rows are CRLF-terminated.
	want := "BK-M82S-38,Mountain-100 Silver 38,Mountain Bikes,Top of the line with fenders\r\n" +
		"BK-M82S-42,Mountain-100 Silver 42,Mountain Bikes,Top of the line with fenders\r\n"
	if string(got) != want {
		t.Errorf("catalog file:\n got %q\nwant %q", got, want)
	}
}

func TestWriteUsage(t *testing.T) {
	dir := t.TempDir()
	if err := WriteUsage(dir, testCatalog()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, UsageFile))
	if err != nil {
		t.Fatal(err)
	}

	want := "29825,BK-M82S-38,2011-05-31T00:00:00,Purchase\r\n" +
		"29825,BK-M82S-42,2011-05-31T00:00:00,Purchase\r\n"
	if string(got) != want {
		t.Errorf("usage file:\n got %q\nwant %q", got, want)
	}
}
