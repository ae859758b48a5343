package catalog

import (
	"log/slog"

	"github.com/pveller/adventureworks-moltin/internal/dataset"
)

// Assemble builds the full catalog graph from the raw dataset: typed
// entities first, then the hierarchy, variant, product, and order joins.
// Assembly is all-or-nothing; any conversion or mandatory-lookup failure
// returns no catalog at all.
func Assemble(data *dataset.Data) (*Catalog, error) {
	categories := make([]*Category, 0, len(data.Categories))
	for _, r := range data.Categories {
		categories = append(categories, newCategory(r))
	}

	subcategories := make([]*Subcategory, 0, len(data.Subcategories))
	for _, r := range data.Subcategories {
		subcategories = append(subcategories, newSubcategory(r))
	}

	images := make([]*Image, 0, len(data.Photos))
	for _, r := range data.Photos {
		img, err := newImage(r)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	variants := make([]*Variant, 0, len(data.Variants))
	for _, r := range data.Variants {
		v, err := newVariant(r)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}

	products := make([]*Product, 0, len(data.Models))
	for _, r := range data.Models {
		products = append(products, newProduct(r))
	}

	headers := make([]*OrderHeader, 0, len(data.OrderHeaders))
	for _, r := range data.OrderHeaders {
		headers = append(headers, newOrderHeader(r))
	}

	details := make([]*OrderDetail, 0, len(data.OrderDetails))
	for _, r := range data.OrderDetails {
		d, err := newOrderDetail(r)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	buildHierarchy(categories, subcategories)
	resolveVariants(variants, images, data.PhotoLinks, subcategories)
	aggregateProducts(products, variants, data.Descriptions, data.DescriptionLinks)
	if err := aggregateOrders(headers, details, variants); err != nil {
		return nil, err
	}

	slog.Info("catalog assembled",
		"categories", len(categories),
		"products", len(products),
		"variants", len(variants),
		"orders", len(headers),
	)

	return &Catalog{
		Inventory:    products,
		Categories:   categories,
		Transactions: headers,
	}, nil
}
