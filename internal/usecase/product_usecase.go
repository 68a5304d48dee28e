package usecase

import (
	"context"

	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/apperr"
	"github.com/rahmatrdn/go-product-compare/internal/repository/shopify"
	"github.com/rahmatrdn/go-product-compare/internal/repository/store"
)

type ProductUsecase interface {
	Hydrate(ctx context.Context, shop string, productIDs []string) ([]entity.Product, error)
}

type productUsecase struct {
	sessionRepo   store.ShopSessionRepository
	shopifyClient shopify.ShopifyClient
	// fallbackToken is used for shops without a stored offline session.
	fallbackToken string
}

func NewProductUsecase(sessionRepo store.ShopSessionRepository, shopifyClient shopify.ShopifyClient, fallbackToken string) ProductUsecase {
	return &productUsecase{
		sessionRepo:   sessionRepo,
		shopifyClient: shopifyClient,
		fallbackToken: fallbackToken,
	}
}

// Hydrate resolves stored product ids into catalog products with one API call.
// Unknown ids are dropped and the result order is Shopify's, not the input's.
func (u *productUsecase) Hydrate(ctx context.Context, shop string, productIDs []string) ([]entity.Product, error) {
	if len(productIDs) == 0 {
		return []entity.Product{}, nil
	}

	token, err := u.accessToken(ctx, shop)
	if err != nil {
		return nil, err
	}

	gids := make([]string, len(productIDs))
	for i, id := range productIDs {
		gids[i] = entity.ProductGID(id)
	}

	return u.shopifyClient.ProductsByIDs(ctx, shopify.NormalizeShopDomain(shop), token, gids)
}

func (u *productUsecase) accessToken(ctx context.Context, shop string) (string, error) {
	session, err := u.sessionRepo.FindByShop(ctx, shopify.NormalizeShopDomain(shop))
	if err != nil {
		return "", err
	}
	if session != nil && session.AccessToken != "" {
		return session.AccessToken, nil
	}
	if u.fallbackToken == "" {
		return "", apperr.Unauthorized("Shop is not installed")
	}
	return u.fallbackToken, nil
}
