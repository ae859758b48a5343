package moltin

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pveller/adventureworks-moltin/internal/catalog"
)

// CategoryPayload creates one remote category.
type CategoryPayload struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Status      string `json:"status"`
}

// NewCategoryPayload maps a category name onto the platform's category
// shape; the platform has no separate description so the name doubles up.
func NewCategoryPayload(name string) CategoryPayload {
	return CategoryPayload{
		Type:        "category",
		Name:        name,
		Description: name,
		Slug:        strings.ToLower(name),
		Status:      "live",
	}
}

// PricePayload is the single USD price block attached to every product.
type PricePayload struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	IncludesTax bool            `json:"includes_tax"`
}

// ProductPayload creates one remote product.
type ProductPayload struct {
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Status        string         `json:"status"`
	Price         []PricePayload `json:"price"`
	SKU           string         `json:"sku"`
	ManageStock   bool           `json:"manage_stock"`
	CommodityType string         `json:"commodity_type"`
	Description   string         `json:"description"`
}

// NewProductPayload builds the product shape from a product and its first
// variant, which donates the product-level price and the SKU stem. The
// platform requires product SKUs to be distinct from variant SKUs, hence
// the P* prefix over the truncated variant SKU.
func NewProductPayload(p *catalog.Product, first *catalog.Variant) ProductPayload {
	return ProductPayload{
		Type:   "product",
		Name:   p.Name,
		Slug:   Slug(p.Name),
		Status: "live",
		Price: []PricePayload{{
			Amount:      first.Price,
			Currency:    "USD",
			IncludesTax: true,
		}},
		SKU:           "P*" + skuStem(first.SKU),
		ManageStock:   false,
		CommodityType: "physical",
		Description:   p.Description,
	}
}

// VariationPayload creates one remote product-variation (a modifier axis).
type VariationPayload struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// OptionPayload creates one option under a variation.
type OptionPayload struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ModifierPayload creates one sku/slug/name modifier under an option.
type ModifierPayload struct {
	Type         string `json:"type"`
	ModifierType string `json:"modifier_type"`
	Value        string `json:"value"`
}

// NewOptionModifiers returns the three modifiers every option carries so the
// platform can derive variant SKUs, slugs, and names from the base product.
func NewOptionModifiers(option string) []ModifierPayload {
	return []ModifierPayload{
		{Type: "product-modifier", ModifierType: "sku_append", Value: "_" + option},
		{Type: "product-modifier", ModifierType: "slug_append", Value: "_" + option},
		{Type: "product-modifier", ModifierType: "name_append", Value: " (" + option + ")"},
	}
}

// RelationshipPayload references an existing remote entity.
type RelationshipPayload struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Slug lowercases a name and replaces spaces for URL use.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// skuStem truncates a variant SKU to the platform's product-SKU stem.
func skuStem(sku string) string {
	if len(sku) > 7 {
		return sku[:7]
	}
	return sku
}
