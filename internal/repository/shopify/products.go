package shopify

import (
	"context"
	"encoding/json"

	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-product-compare/entity"
)

// ProductsByIDsQuery resolves a batch of product global ids.
const ProductsByIDsQuery = `
query getProducts($ids: [ID!]!) {
  nodes(ids: $ids) {
    ... on Product {
      id
      title
      status
      vendor
      productType
      createdAt
      tags
      description
      images(first: 1) {
        edges {
          node {
            url
            altText
          }
        }
      }
      variants(first: 1) {
        edges {
          node {
            id
            price
            inventoryQuantity
            sku
          }
        }
      }
    }
  }
}
`

type productNode struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Status      string   `json:"status"`
	Vendor      string   `json:"vendor"`
	ProductType string   `json:"productType"`
	CreatedAt   string   `json:"createdAt"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Images      struct {
		Edges []struct {
			Node entity.ProductImage `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node entity.ProductVariant `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

func (n *productNode) toEntity() entity.Product {
	p := entity.Product{
		ID:          n.ID,
		Title:       n.Title,
		Status:      n.Status,
		Vendor:      n.Vendor,
		ProductType: n.ProductType,
		CreatedAt:   n.CreatedAt,
		Tags:        n.Tags,
		Description: n.Description,
		Images:      make([]entity.ProductImage, 0, len(n.Images.Edges)),
		Variants:    make([]entity.ProductVariant, 0, len(n.Variants.Edges)),
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	for _, e := range n.Images.Edges {
		p.Images = append(p.Images, e.Node)
	}
	for _, e := range n.Variants.Edges {
		p.Variants = append(p.Variants, e.Node)
	}
	return p
}

// ProductsByIDs fetches gids in one call. Ids Shopify cannot resolve, or that
// are not products, are left out. The result follows Shopify's order.
func (c *clientImpl) ProductsByIDs(ctx context.Context, shop, accessToken string, gids []string) ([]entity.Product, error) {
	products := []entity.Product{}
	if len(gids) == 0 {
		return products, nil
	}

	resp, err := c.Execute(ctx, shop, accessToken, ProductsByIDsQuery, map[string]interface{}{"ids": gids})
	if err != nil {
		return nil, err
	}

	var data struct {
		Nodes []*productNode `json:"nodes"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, errwrap.Wrap(err, "decode product nodes")
	}

	for _, n := range data.Nodes {
		if n == nil || n.ID == "" {
			continue
		}
		products = append(products, n.toEntity())
	}
	return products, nil
}
