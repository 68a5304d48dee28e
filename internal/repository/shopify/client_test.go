package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) ShopifyClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{APIVersion: "2025-01", BaseURL: srv.URL}, zap.NewNop())
}

func TestProductsByIDs(t *testing.T) {
	var gotReq GraphQLRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2025-01/graphql.json", r.URL.Path)
		assert.Equal(t, "shpat_test", r.Header.Get("X-Shopify-Access-Token"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"nodes":[
			{"id":"gid://shopify/Product/2","title":"Second","status":"ACTIVE","tags":["a"],
			 "images":{"edges":[{"node":{"url":"https://cdn/2.png","altText":"two"}}]},
			 "variants":{"edges":[{"node":{"id":"gid://shopify/ProductVariant/9","price":"10.00","inventoryQuantity":3,"sku":"SKU2"}}]}},
			null,
			{},
			{"id":"gid://shopify/Product/1","title":"First","images":{"edges":[]},"variants":{"edges":[]}}
		]}}`))
	})

	products, err := client.ProductsByIDs(context.Background(), "s1.myshopify.com", "shpat_test",
		[]string{"gid://shopify/Product/1", "gid://shopify/Product/2", "gid://shopify/Product/3"})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"gid://shopify/Product/1", "gid://shopify/Product/2", "gid://shopify/Product/3"}, gotReq.Variables["ids"])
	assert.Contains(t, gotReq.Query, "nodes(ids: $ids)")

	require.Len(t, products, 2)
	assert.Equal(t, "Second", products[0].Title)
	assert.Equal(t, "https://cdn/2.png", products[0].Images[0].URL)
	assert.Equal(t, 3, products[0].Variants[0].InventoryQuantity)
	assert.Equal(t, "First", products[1].Title)
	assert.Empty(t, products[1].Tags)
	assert.NotNil(t, products[1].Tags)
}

func TestProductsByIDs_EmptyInputMakesNoCall(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected request")
	})

	products, err := client.ProductsByIDs(context.Background(), "s1", "tok", nil)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("graphql errors", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"errors":[{"message":"Throttled"},{"message":"Access denied"}]}`))
		})

		_, err := client.Execute(context.Background(), "s1", "tok", "{ shop { name } }", nil)
		require.Error(t, err)
		assert.Equal(t, "GraphQL query failed: Throttled; Access denied", err.Error())
	})

	t.Run("http status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors":"[API] Invalid API key or access token"}`))
		})

		_, err := client.Execute(context.Background(), "s1", "tok", "{ shop { name } }", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})
}

func TestNormalizeShopDomain(t *testing.T) {
	assert.Equal(t, "s1.myshopify.com", NormalizeShopDomain("https://s1.myshopify.com/"))
	assert.Equal(t, "s1.myshopify.com", NormalizeShopDomain(" s1.myshopify.com "))
}
