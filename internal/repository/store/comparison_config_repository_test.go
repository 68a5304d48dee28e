package store

import (
	"context"
	"testing"

	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonConfigRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewComparisonConfigRepository(newTestDB(t))

	got, err := repo.FindByShop(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)

	attrs := entity.DefaultAttributes()
	require.NoError(t, repo.Upsert(ctx, &entity.ComparisonConfig{Shop: "s1", Attributes: attrs}))

	attrs[4].Enabled = true
	attrs[0].Enabled = false
	require.NoError(t, repo.Upsert(ctx, &entity.ComparisonConfig{Shop: "s1", Attributes: attrs}))

	got, err = repo.FindByShop(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, attrs, []entity.ComparisonAttribute(got.Attributes))

	other, err := repo.FindByShop(ctx, "s2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestShopSessionRepository_FindByShop(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewShopSessionRepository(db)

	require.NoError(t, db.Create(&entity.ShopSession{Shop: "s1.myshopify.com", AccessToken: "shpat_1"}).Error)

	got, err := repo.FindByShop(ctx, "s1.myshopify.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "shpat_1", got.AccessToken)

	got, err = repo.FindByShop(ctx, "s2.myshopify.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}
