package entity

// Product is the catalog view of a product hydrated from the Shopify Admin API.
type Product struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Status      string           `json:"status"`
	Vendor      string           `json:"vendor"`
	ProductType string           `json:"productType"`
	CreatedAt   string           `json:"createdAt"`
	Tags        []string         `json:"tags"`
	Description string           `json:"description"`
	Images      []ProductImage   `json:"images"`
	Variants    []ProductVariant `json:"variants"`
}

type ProductImage struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type ProductVariant struct {
	ID                string `json:"id"`
	Price             string `json:"price"`
	InventoryQuantity int    `json:"inventoryQuantity"`
	SKU               string `json:"sku"`
}
