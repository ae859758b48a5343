// Package moltin builds the request payloads the commerce-platform
// publishers send when recreating the catalog remotely. It owns no network
// client and performs no side effects; the publishing glue supplies its own
// transport, credentials, and retry policy.
package moltin

import "fmt"

// Endpoint is an explicitly composed API location. Sub-resources such as a
// variation's options are expressed by composing a new Endpoint per call
// rather than by mutating a shared client object.
type Endpoint struct {
	Path     string
	ParentID string
}

// String renders the endpoint path as sent on the wire.
func (e Endpoint) String() string { return e.Path }

// Categories is the category collection endpoint.
func Categories() Endpoint { return Endpoint{Path: "categories"} }

// Products is the product collection endpoint.
func Products() Endpoint { return Endpoint{Path: "products"} }

// Files is the image-file collection endpoint.
func Files() Endpoint { return Endpoint{Path: "files"} }

// Variations is the product-variation collection endpoint.
func Variations() Endpoint { return Endpoint{Path: "variations"} }

// VariationOptions is the options sub-resource of one variation.
func VariationOptions(variationID string) Endpoint {
	return Endpoint{
		Path:     fmt.Sprintf("variations/%s/variation-options", variationID),
		ParentID: variationID,
	}
}

// OptionModifiers is the modifiers sub-resource of one variation option.
func OptionModifiers(optionEndpoint Endpoint, optionID string) Endpoint {
	return Endpoint{
		Path:     fmt.Sprintf("%s/%s/variation-option-modifiers", optionEndpoint.Path, optionID),
		ParentID: optionID,
	}
}

// Relationships addresses the relationship sub-resource of an entity, used
// to wire parent categories to children and products to their variations.
func Relationships(collection Endpoint, id, relation string) Endpoint {
	return Endpoint{
		Path:     fmt.Sprintf("%s/%s/relationships/%s", collection.Path, id, relation),
		ParentID: id,
	}
}
