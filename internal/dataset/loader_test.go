package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pveller/adventureworks-moltin/internal/flatfile"
)

// writeSource writes rows for a source into dir under its dialect. Fields
// are given per declared column; the strip dialects get the trailing noise
// byte and the extra ignore column appended automatically.
func writeSource(t *testing.T, dir string, src Source, rows ...[]string) {
	t.Helper()

	var b strings.Builder
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, f := range row {
			if src.Dialect.StripTrailingByte && f != "" {
				f += "x"
			}
			fields[i] = f
		}
		if src.Dialect.StripTrailingByte {
			fields = append(fields, "x")
		}
		b.WriteString(strings.Join(fields, string(src.Dialect.FieldDelimiter)))
		b.WriteString(src.Dialect.RowDelimiter)
	}

	encoded, err := src.Dialect.Encoding.NewEncoder().String(b.String())
	if err != nil {
		t.Fatalf("encoding %s: %v", src.File, err)
	}
	if err := os.WriteFile(filepath.Join(dir, src.File), []byte(encoded), 0o644); err != nil {
		t.Fatalf("writing %s: %v", src.File, err)
	}
}

// writeFixtureDir lays down a minimal but complete catalog directory.
func writeFixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeSource(t, dir, CategorySource,
		[]string{"1", "Bikes", "guid-c1", "2014-02-08"})
	writeSource(t, dir, SubcategorySource,
		[]string{"1", "1", "Mountain Bikes", "guid-s1", "2014-02-08"})
	writeSource(t, dir, ModelSource,
		[]string{"19", "Mountain-100", "", "", "guid-m1", "2014-02-08"})
	writeSource(t, dir, DescriptionSource,
		[]string{"1199", "Top of the line competition bike.", "guid-d1", "2014-02-08"})
	writeSource(t, dir, DescriptionLinkSource,
		[]string{"19", "1199", "en", "2014-02-08"})
	writeSource(t, dir, PhotoSource,
		[]string{"70", "0a0b", "no_image_small.gif", "0c0d", "no_image_large.gif", "2014-02-08"})
	writeSource(t, dir, PhotoLinkSource,
		[]string{"771", "70", "1", "2014-02-08"})
	writeSource(t, dir, VariantSource,
		[]string{"771", "Mountain-100 Silver, 38", "BK-M82S-38", "1", "1", "Silver",
			"100", "75", "1912.15", "3399.99", "38", "CM", "LB", "20.35",
			"4", "M", "H", "U", "1", "19",
			"2011-05-31", "", "", "guid-v1", "2014-02-08"})
	writeSource(t, dir, OrderHeaderSource,
		[]string{"43659", "8", "2011-05-31 00:00:00", "2011-06-12 00:00:00", "2011-06-07 00:00:00",
			"5", "0", "SO43659", "PO522145787", "10-4020-000676",
			"29825", "279", "5", "985", "985",
			"5", "16281", "105041Vi84182", "100",
			"20565.6206", "1971.5149", "616.0984", "23153.2339",
			"", "guid-o1", "2011-06-07 00:00:00"})
	writeSource(t, dir, OrderDetailSource,
		[]string{"43659", "1", "4911-403C-98", "1", "771", "1",
			"3399.99", "0", "3399.99", "guid-od1", "2011-05-31 00:00:00"})

	return dir
}

func TestLoadFullDataset(t *testing.T) {
	dir := writeFixtureDir(t)

	data, err := Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts := []struct {
		name string
		rows []flatfile.Record
		want int
	}{
		{"categories", data.Categories, 1},
		{"subcategories", data.Subcategories, 1},
		{"models", data.Models, 1},
		{"descriptions", data.Descriptions, 1},
		{"description links", data.DescriptionLinks, 1},
		{"photos", data.Photos, 1},
		{"photo links", data.PhotoLinks, 1},
		{"variants", data.Variants, 1},
		{"order headers", data.OrderHeaders, 1},
		{"order details", data.OrderDetails, 1},
	}
	for _, c := range counts {
		if len(c.rows) != c.want {
			t.Errorf("%s: got %d rows, want %d", c.name, len(c.rows), c.want)
		}
	}

	if got := data.Variants[0].Get("sku"); got != "BK-M82S-38" {
		t.Errorf("variant sku = %q, want %q", got, "BK-M82S-38")
	}
	if got := data.Models[0].Get("name"); got != "Mountain-100" {
		t.Errorf("model name = %q, want %q", got, "Mountain-100")
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := writeFixtureDir(t)
	if err := os.Remove(filepath.Join(dir, OrderDetailSource.File)); err != nil {
		t.Fatal(err)
	}

	data, err := Load(context.Background(), dir)
	if err == nil {
		t.Fatal("expected an error when a source file is missing")
	}
	if data != nil {
		t.Error("no partial dataset should be returned on failure")
	}

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("error type = %T, want *LoadError", err)
	}
	if le.File != OrderDetailSource.File {
		t.Errorf("LoadError.File = %q, want %q", le.File, OrderDetailSource.File)
	}

	var pe *flatfile.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("LoadError should wrap the underlying ParseError")
	}
}

func TestLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, t.TempDir()); err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}
