// Package catalog reconstructs the relational catalog graph that the flat
// Adventure Works exports lost: categories with their subcategory children,
// products grouped over variants with derived modifiers, and sales orders
// with their line items. The whole graph is built in one pass over the raw
// dataset and never mutated afterwards.
package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is a root-level product category with its attached
// subcategory children.
type Category struct {
	ID       string
	Name     string
	GUID     uuid.UUID
	Children []*Subcategory
}

// Subcategory belongs to exactly one Category. A subcategory whose parent
// id resolves to no category stays out of every Children list but remains
// in the raw list used to gate variant inclusion.
type Subcategory struct {
	ID       string
	ParentID string
	Name     string
	GUID     uuid.UUID
}

// Image is a product photo with its thumbnail and large renditions. The
// large filename is normalized to the .png the image-conversion step
// produces, regardless of the extension the export carries.
type Image struct {
	ID                string
	Thumbnail         []byte
	ThumbnailFilename string
	Large             []byte
	LargeFilename     string
}

// Variant is one concrete purchasable item: a specific color/size of a
// model. Variants are the "Product" rows of the raw export.
type Variant struct {
	ID            string
	Name          string
	SKU           string
	Price         decimal.Decimal
	Color         string
	Size          string
	SubcategoryID string
	ModelID       string
	GUID          uuid.UUID

	// Image is nil when no photo link resolves.
	Image *Image

	// Category is the resolved subcategory, nil when unresolved. Variants
	// with a nil Category are excluded from their product's variant list
	// by the product aggregation step, never dropped earlier.
	Category *Subcategory
}

// Categorized reports whether the variant resolved to a subcategory.
func (v *Variant) Categorized() bool { return v.Category != nil }

// Facet returns the variant's value for a modifier axis, "" when unset.
func (v *Variant) Facet(name string) string {
	switch name {
	case FacetColor:
		return v.Color
	case FacetSize:
		return v.Size
	}
	return ""
}

// Modifier axes derived for every product.
const (
	FacetColor = "color"
	FacetSize  = "size"
)

// Modifier is one axis of variation with its distinct values across a
// product's variants, in first-seen order.
type Modifier struct {
	Title  string
	Values []string
}

// NoDescription is substituted when no English description resolves
// for a model.
const NoDescription = "Description not available"

// Product is the published grouping entity ("model" in the raw export).
type Product struct {
	ID          string
	Name        string
	Description string
	GUID        uuid.UUID
	Variants    []*Variant
	Modifiers   []Modifier
}

// OrderDetail is one sales-order line item. SKU is resolved against the
// variant table during assembly; a line item whose product id matches no
// variant is a fatal data-integrity error, not a skippable row.
type OrderDetail struct {
	OrderID   string
	ProductID string
	SKU       string
	Quantity  int
	Price     decimal.Decimal
}

// OrderHeader is a sales order with its attached line items, in original
// file order.
type OrderHeader struct {
	OrderID   string
	Customer  string
	OrderDate string
	Details   []*OrderDetail
}

// Catalog is the assembled output graph. Inventory keeps every product,
// including those with zero attached variants; publishing consumers decide
// what to exclude.
type Catalog struct {
	Inventory    []*Product
	Categories   []*Category
	Transactions []*OrderHeader
}
