package catalog

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToGUID(t *testing.T) {
	valid := rec("guid", "43dd68d6-14a4-461f-9069-55309d90ea7e")
	if got := toGUID(valid); got.String() != "43dd68d6-14a4-461f-9069-55309d90ea7e" {
		t.Errorf("guid = %s, want parsed value", got)
	}

	// The guid column is informational; junk degrades to the zero UUID.
	for _, r := range []string{"", "not-a-guid"} {
		if got := toGUID(rec("guid", r)); got.String() != "00000000-0000-0000-0000-000000000000" {
			t.Errorf("guid for %q = %s, want zero", r, got)
		}
	}
}

func TestToDecimal(t *testing.T) {
	d, err := toDecimal(rec("price", "3399.99"), "price")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := decimal.RequireFromString("3399.99"); !d.Equal(want) {
		t.Errorf("price = %s, want %s", d, want)
	}

	d, err = toDecimal(rec(), "price")
	if err != nil {
		t.Fatalf("unexpected error for unset column: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("unset price = %s, want zero", d)
	}

	if _, err := toDecimal(rec("price", "3,399"), "price"); err == nil {
		t.Error("malformed price should be a FieldError")
	}
}

func TestToBytes(t *testing.T) {
	b, err := toBytes(rec("thumbnail", "47494638"), "thumbnail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(b, []byte("GIF8")) {
		t.Errorf("decoded bytes = %q, want %q", b, "GIF8")
	}

	if _, err := toBytes(rec("thumbnail", "0xzz"), "thumbnail"); err == nil {
		t.Error("malformed hex should be a FieldError")
	}
}
