// Package dataset loads the full set of Adventure Works exports from a base
// directory. Each file has a fixed name, column schema, and dialect,
// declared once here at the boundary; the loader fans out one flatfile read
// per source and joins on all of them before returning.
package dataset

import "github.com/pveller/adventureworks-moltin/internal/flatfile"

// Source binds a file name to its dialect. The two ".2" variants name the
// outputs of the preprocess step, not raw exports: their originals carry
// XML fragments and stray quotes the tokenizer cannot survive.
type Source struct {
	File    string
	Dialect flatfile.Dialect
}

var (
	// CategorySource is the top-level category list.
	CategorySource = Source{
		File:    "ProductCategory.csv",
		Dialect: flatfile.SingleByteTabbed("id", "name", "guid", "date"),
	}

	// SubcategorySource links each subcategory to its parent category.
	SubcategorySource = Source{
		File:    "ProductSubcategory.csv",
		Dialect: flatfile.SingleByteTabbed("id", "parent", "name", "guid", "date"),
	}

	// ModelSource is the product-model list (the grouping entity that
	// becomes a published product).
	ModelSource = Source{
		File:    "ProductModel.2.csv",
		Dialect: flatfile.UTF16Piped("id", "name", "description", "instructions", "guid", "modified"),
	}

	// DescriptionSource holds the localized description bodies.
	DescriptionSource = Source{
		File: "ProductDescription.2.csv",
		Dialect: flatfile.Dialect{
			Encoding:       flatfile.EncodingUTF16LE,
			FieldDelimiter: '\t',
			RowDelimiter:   "\n",
			Columns:        []string{"id", "description", "guid", "modified"},
		},
	}

	// DescriptionLinkSource joins models to descriptions per culture.
	DescriptionLinkSource = Source{
		File:    "ProductModelProductDescriptionCulture.csv",
		Dialect: flatfile.SingleByteTabbed("model", "description", "culture", "modified"),
	}

	// PhotoSource carries hex-encoded image bytes and their filenames.
	PhotoSource = Source{
		File:    "ProductPhoto.csv",
		Dialect: flatfile.UTF16Piped("id", "thumbnail", "thumbnail_filename", "large", "large_filename", "date"),
	}

	// PhotoLinkSource joins base product rows to photos.
	PhotoLinkSource = Source{
		File:    "ProductProductPhoto.csv",
		Dialect: flatfile.SingleByteTabbed("product", "image", "primary", "modified"),
	}

	// VariantSource is the base product table; each row is one concrete
	// purchasable variant of a model.
	VariantSource = Source{
		File: "Product.csv",
		Dialect: flatfile.SingleByteTabbed(
			"id", "name", "sku", "make", "finished", "color",
			"safetyStockLevel", "reorderPoint", "cost", "price",
			"size", "sizeUnit", "weightUnit", "weight",
			"daysToManufacture", "productLine", "class", "style",
			"subcategory", "model",
			"sellStartDate", "sellEndDate", "discontinuedDate",
			"guid", "modified",
		),
	}

	// OrderHeaderSource is the sales-order header table.
	OrderHeaderSource = Source{
		File: "SalesOrderHeader.csv",
		Dialect: flatfile.SingleByteTabbed(
			"orderId", "revisionNumber", "orderDate", "dueDate", "shipDate",
			"status", "isOnline", "onlineNumber", "poNumber", "accountNumber",
			"customer", "salesPerson", "territory", "billTo", "shipTo",
			"shipMethod", "cc", "ccCode", "currency",
			"subTotal", "tax", "freight", "total",
			"comment", "guid", "date",
		),
	}

	// OrderDetailSource is the sales-order line-item table. It routinely
	// exceeds 100k rows; downstream joins index it rather than scan it.
	OrderDetailSource = Source{
		File: "SalesOrderDetail.csv",
		Dialect: flatfile.SingleByteTabbed(
			"orderId", "recordId", "tracking", "quantity", "productId",
			"offerId", "price", "discount", "total", "guid", "date",
		),
	}
)

// Data holds the raw rows of every source, exactly as parsed. No join or
// derivation happens at this layer.
type Data struct {
	Categories       []flatfile.Record
	Subcategories    []flatfile.Record
	Models           []flatfile.Record
	Descriptions     []flatfile.Record
	DescriptionLinks []flatfile.Record
	Photos           []flatfile.Record
	PhotoLinks       []flatfile.Record
	Variants         []flatfile.Record
	OrderHeaders     []flatfile.Record
	OrderDetails     []flatfile.Record
}
