package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/apperr"
	"github.com/rahmatrdn/go-product-compare/internal/repository/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductUsecase_HydrateUsesShopSession(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, db.Create(&entity.ShopSession{Shop: "s1.myshopify.com", AccessToken: "shpat_shop"}).Error)

	client := new(mockShopifyClient)
	client.On("ProductsByIDs", mock.Anything, "s1.myshopify.com", "shpat_shop",
		[]string{"gid://shopify/Product/1", "gid://shopify/Product/2"}).
		Return([]entity.Product{{ID: "gid://shopify/Product/2"}}, nil).Once()

	uc := NewProductUsecase(store.NewShopSessionRepository(db), client, "shpat_fallback")

	products, err := uc.Hydrate(ctx, "https://s1.myshopify.com", []string{"1", "gid://shopify/Product/2"})
	require.NoError(t, err)
	assert.Len(t, products, 1)
	client.AssertExpectations(t)
}

func TestProductUsecase_HydrateFallbackToken(t *testing.T) {
	ctx := context.Background()
	client := new(mockShopifyClient)
	client.On("ProductsByIDs", mock.Anything, "s2.myshopify.com", "shpat_fallback", []string{"gid://shopify/Product/9"}).
		Return([]entity.Product{}, nil).Once()

	uc := NewProductUsecase(store.NewShopSessionRepository(newTestDB(t)), client, "shpat_fallback")

	products, err := uc.Hydrate(ctx, "s2.myshopify.com", []string{"9"})
	require.NoError(t, err)
	assert.Empty(t, products)
	client.AssertExpectations(t)
}

func TestProductUsecase_HydrateWithoutToken(t *testing.T) {
	uc := NewProductUsecase(store.NewShopSessionRepository(newTestDB(t)), new(mockShopifyClient), "")

	_, err := uc.Hydrate(context.Background(), "s3.myshopify.com", []string{"9"})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestProductUsecase_HydrateEmpty(t *testing.T) {
	client := new(mockShopifyClient)
	uc := NewProductUsecase(nil, client, "")

	products, err := uc.Hydrate(context.Background(), "s1", nil)
	require.NoError(t, err)
	assert.NotNil(t, products)
	client.AssertNotCalled(t, "ProductsByIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
