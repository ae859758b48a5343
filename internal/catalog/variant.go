package catalog

import (
	"log/slog"
	"strings"

	"github.com/pveller/adventureworks-moltin/internal/flatfile"
)

// resolveVariants attaches the photo and subcategory relationships to every
// variant. Both are soft references: a variant without a resolvable photo
// keeps a nil Image, one without a resolvable subcategory keeps a nil
// Category and is filtered out later by product aggregation.
func resolveVariants(variants []*Variant, images []*Image, photoLinks []flatfile.Record, subcategories []*Subcategory) {
	imageByID := make(map[string]*Image, len(images))
	for _, img := range images {
		imageByID[img.ID] = img
	}

	// The source dataset carries exactly one photo link per variant; that
	// is an observed property, not a schema guarantee, so extra links are
	// flagged and the first one wins.
	imageByVariant := make(map[string]*Image, len(photoLinks))
	for _, link := range photoLinks {
		product := link.Get("product")
		if _, seen := imageByVariant[product]; seen {
			slog.Debug("variant has multiple photo links, keeping first", "variant", product, "photo", link.Get("image"))
			continue
		}
		if img, ok := imageByID[link.Get("image")]; ok {
			imageByVariant[product] = img
		}
	}

	subcategoryByID := make(map[string]*Subcategory, len(subcategories))
	for _, s := range subcategories {
		subcategoryByID[s.ID] = s
	}

	for _, v := range variants {
		if img, ok := imageByVariant[v.ID]; ok {
			// The image-conversion collaborator re-encodes every GIF to
			// PNG, so the canonical large filename is the .png one.
			if strings.HasSuffix(img.LargeFilename, ".gif") {
				img.LargeFilename = strings.TrimSuffix(img.LargeFilename, ".gif") + ".png"
			}
			v.Image = img
		}
		v.Category = subcategoryByID[v.SubcategoryID]
	}
}
