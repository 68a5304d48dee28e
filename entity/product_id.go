package entity

import "strings"

// ProductGIDPrefix is the Shopify global id prefix for products.
const ProductGIDPrefix = "gid://shopify/Product/"

// CanonicalProductID returns the bare numeric form of a product id.
// This is the form stored in compare lists.
func CanonicalProductID(id string) string {
	return strings.TrimPrefix(strings.TrimSpace(id), ProductGIDPrefix)
}

// ProductGID returns the global id form expected by the Admin GraphQL API.
func ProductGID(id string) string {
	id = strings.TrimSpace(id)
	if strings.HasPrefix(id, ProductGIDPrefix) {
		return id
	}
	return ProductGIDPrefix + id
}

func SameProduct(a, b string) bool {
	return CanonicalProductID(a) == CanonicalProductID(b)
}
