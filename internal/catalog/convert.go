package catalog

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pveller/adventureworks-moltin/internal/flatfile"
)

// toGUID parses the guid column carried by every export row. The column is
// informational, so an unparsable value degrades to the zero UUID instead
// of failing the load.
func toGUID(r flatfile.Record) uuid.UUID {
	id, err := uuid.Parse(r.Get("guid"))
	if err != nil {
		return uuid.UUID{}
	}
	return id
}

// toDecimal converts a money column. Unset means zero; a malformed
// non-empty value is a fatal FieldError.
func toDecimal(r flatfile.Record, column string) (decimal.Decimal, error) {
	raw := r.Get(column)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &FieldError{Column: column, Value: raw, Err: err}
	}
	return d, nil
}

// toInt converts a count column with the same posture as toDecimal.
func toInt(r flatfile.Record, column string) (int, error) {
	raw := r.Get(column)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Column: column, Value: raw, Err: err}
	}
	return n, nil
}

// toBytes decodes a hex-encoded image column.
func toBytes(r flatfile.Record, column string) ([]byte, error) {
	raw := r.Get(column)
	if raw == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return nil, &FieldError{Column: column, Value: column + " (hex)", Err: err}
	}
	return b, nil
}

func newSubcategory(r flatfile.Record) *Subcategory {
	return &Subcategory{
		ID:       r.Get("id"),
		ParentID: r.Get("parent"),
		Name:     r.Get("name"),
		GUID:     toGUID(r),
	}
}

func newCategory(r flatfile.Record) *Category {
	return &Category{
		ID:   r.Get("id"),
		Name: r.Get("name"),
		GUID: toGUID(r),
	}
}

func newImage(r flatfile.Record) (*Image, error) {
	thumbnail, err := toBytes(r, "thumbnail")
	if err != nil {
		return nil, err
	}
	large, err := toBytes(r, "large")
	if err != nil {
		return nil, err
	}
	return &Image{
		ID:                r.Get("id"),
		Thumbnail:         thumbnail,
		ThumbnailFilename: r.Get("thumbnail_filename"),
		Large:             large,
		LargeFilename:     r.Get("large_filename"),
	}, nil
}

func newVariant(r flatfile.Record) (*Variant, error) {
	price, err := toDecimal(r, "price")
	if err != nil {
		return nil, err
	}
	return &Variant{
		ID:            r.Get("id"),
		Name:          r.Get("name"),
		SKU:           r.Get("sku"),
		Price:         price,
		Color:         r.Get("color"),
		Size:          r.Get("size"),
		SubcategoryID: r.Get("subcategory"),
		ModelID:       r.Get("model"),
		GUID:          toGUID(r),
	}, nil
}

func newProduct(r flatfile.Record) *Product {
	return &Product{
		ID:   r.Get("id"),
		Name: r.Get("name"),
		GUID: toGUID(r),
	}
}

func newOrderHeader(r flatfile.Record) *OrderHeader {
	return &OrderHeader{
		OrderID:   r.Get("orderId"),
		Customer:  r.Get("customer"),
		OrderDate: r.Get("orderDate"),
	}
}

func newOrderDetail(r flatfile.Record) (*OrderDetail, error) {
	quantity, err := toInt(r, "quantity")
	if err != nil {
		return nil, err
	}
	price, err := toDecimal(r, "price")
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		OrderID:   r.Get("orderId"),
		ProductID: r.Get("productId"),
		Quantity:  quantity,
		Price:     price,
	}, nil
}
