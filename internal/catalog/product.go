package catalog

import (
	"strings"

	"github.com/pveller/adventureworks-moltin/internal/flatfile"
)

// descriptionCulture is the only culture published to the platform.
const descriptionCulture = "en"

// aggregateProducts fills in every product's description, variant list, and
// derived modifiers.
func aggregateProducts(products []*Product, variants []*Variant, descriptions, descriptionLinks []flatfile.Record) {
	descriptionByID := make(map[string]string, len(descriptions))
	for _, d := range descriptions {
		descriptionByID[d.Get("id")] = d.Get("description")
	}

	// English description links per model, in file order.
	linksByModel := make(map[string][]string)
	for _, l := range descriptionLinks {
		if strings.TrimSpace(l.Get("culture")) != descriptionCulture {
			continue
		}
		model := l.Get("model")
		linksByModel[model] = append(linksByModel[model], l.Get("description"))
	}

	// Categorized variants per model, in file order. Variants that failed
	// category resolution stay out of every product.
	variantsByModel := make(map[string][]*Variant)
	for _, v := range variants {
		if !v.Categorized() {
			continue
		}
		variantsByModel[v.ModelID] = append(variantsByModel[v.ModelID], v)
	}

	for _, p := range products {
		p.Description = resolveDescription(linksByModel[p.ID], descriptionByID)
		p.Variants = variantsByModel[p.ID]
		p.Modifiers = deriveModifiers(p.Variants)
	}
}

// resolveDescription follows the model's description links in order and
// returns the first one that lands on an actual description row. Links to
// missing rows are discarded; when nothing remains the sentinel takes over.
func resolveDescription(links []string, descriptionByID map[string]string) string {
	for _, id := range links {
		if text, ok := descriptionByID[id]; ok {
			return text
		}
	}
	return NoDescription
}

// deriveModifiers computes the color/size facets over the attached
// variants. A facet makes the list only when it has at least one distinct
// value and no variant leaves it unset; partial facet lists are never
// published.
func deriveModifiers(variants []*Variant) []Modifier {
	var modifiers []Modifier
	for _, facet := range []string{FacetColor, FacetSize} {
		var values []string
		seen := make(map[string]bool)
		unset := false
		for _, v := range variants {
			value := v.Facet(facet)
			if value == "" {
				unset = true
				break
			}
			if !seen[value] {
				seen[value] = true
				values = append(values, value)
			}
		}
		if unset || len(values) == 0 {
			continue
		}
		modifiers = append(modifiers, Modifier{Title: facet, Values: values})
	}
	return modifiers
}
