package catalog

// buildHierarchy attaches every subcategory to its parent category,
// preserving source order within each parent. Subcategories with an
// unresolved parent never appear under any category but stay in the raw
// list, where variant resolution can still see them.
func buildHierarchy(categories []*Category, subcategories []*Subcategory) {
	byID := make(map[string]*Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	for _, s := range subcategories {
		parent, ok := byID[s.ParentID]
		if !ok {
			continue
		}
		parent.Children = append(parent.Children, s)
	}
}
