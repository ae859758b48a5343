package catalog

// aggregateOrders resolves every line item's SKU against the variant table
// and attaches line items to their order headers, both in first-seen order.
// A line item whose product id matches no variant aborts assembly with a
// LookupError: the sales extract is expected to reference only SKUs present
// in the product extract, and a miss means the extracts do not belong
// together.
func aggregateOrders(headers []*OrderHeader, details []*OrderDetail, variants []*Variant) error {
	// The detail table routinely exceeds 100k rows; index the variants
	// instead of scanning per line.
	variantByID := make(map[string]*Variant, len(variants))
	for _, v := range variants {
		variantByID[v.ID] = v
	}

	detailsByOrder := make(map[string][]*OrderDetail, len(headers))
	for _, d := range details {
		v, ok := variantByID[d.ProductID]
		if !ok {
			return &LookupError{Relation: "order detail product", Key: d.ProductID}
		}
		d.SKU = v.SKU
		detailsByOrder[d.OrderID] = append(detailsByOrder[d.OrderID], d)
	}

	for _, h := range headers {
		h.Details = detailsByOrder[h.OrderID]
	}
	return nil
}
