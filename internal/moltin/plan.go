package moltin

import "github.com/pveller/adventureworks-moltin/internal/catalog"

// Plan is everything the publishing glue needs to recreate the catalog
// remotely, computed up front from the assembled graph. The glue walks the
// plan in order: categories first, then variations with their options, then
// products with their image files.
type Plan struct {
	Categories []CategoryPlan
	Variations []VariationPlan
	Products   []ProductPlan
}

// CategoryPlan is one root category with its subcategory payloads.
type CategoryPlan struct {
	Payload  CategoryPayload
	Children []CategoryPayload
}

// VariationPlan is one modifier axis with the payloads for each of its
// distinct option values across the whole inventory.
type VariationPlan struct {
	Payload   VariationPayload
	Options   []OptionPayload
	Modifiers map[string][]ModifierPayload
}

// ProductPlan is one publishable product: its payload, the name of the
// category it attaches to, the variation axes it participates in, and the
// image file of its first variant.
type ProductPlan struct {
	Payload       ProductPayload
	CategoryName  string
	VariationAxes []string
	ImageFile     string
}

// BuildPlan derives the publish plan. Products with zero attached variants
// are excluded here: the assembler keeps them in inventory, and it is the
// publishing side that must not create empty products remotely.
func BuildPlan(c *catalog.Catalog) Plan {
	plan := Plan{}

	for _, category := range c.Categories {
		cp := CategoryPlan{Payload: NewCategoryPayload(category.Name)}
		for _, child := range category.Children {
			cp.Children = append(cp.Children, NewCategoryPayload(child.Name))
		}
		plan.Categories = append(plan.Categories, cp)
	}

	// Distinct modifier axes and their distinct option values, in
	// first-seen order across the inventory.
	var axes []string
	optionsByAxis := make(map[string][]string)
	seenOption := make(map[string]map[string]bool)
	for _, product := range c.Inventory {
		for _, mod := range product.Modifiers {
			if seenOption[mod.Title] == nil {
				seenOption[mod.Title] = make(map[string]bool)
				axes = append(axes, mod.Title)
			}
			for _, value := range mod.Values {
				if !seenOption[mod.Title][value] {
					seenOption[mod.Title][value] = true
					optionsByAxis[mod.Title] = append(optionsByAxis[mod.Title], value)
				}
			}
		}
	}
	for _, axis := range axes {
		vp := VariationPlan{
			Payload:   VariationPayload{Type: "product-variation", Name: axis},
			Modifiers: make(map[string][]ModifierPayload),
		}
		for _, option := range optionsByAxis[axis] {
			vp.Options = append(vp.Options, OptionPayload{
				Type:        "product-variation-option",
				Name:        option,
				Description: option,
			})
			vp.Modifiers[option] = NewOptionModifiers(option)
		}
		plan.Variations = append(plan.Variations, vp)
	}

	for _, product := range c.Inventory {
		if len(product.Variants) == 0 {
			continue
		}
		first := product.Variants[0]

		pp := ProductPlan{
			Payload:      NewProductPayload(product, first),
			CategoryName: first.Category.Name,
		}
		for _, mod := range product.Modifiers {
			pp.VariationAxes = append(pp.VariationAxes, mod.Title)
		}
		if first.Image != nil {
			pp.ImageFile = first.Image.LargeFilename
		}
		plan.Products = append(plan.Products, pp)
	}

	return plan
}
