package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/event"
	"github.com/rahmatrdn/go-product-compare/internal/repository/shopify"
	"github.com/rahmatrdn/go-product-compare/internal/repository/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type mockCompareListRepo struct {
	mock.Mock
}

func (m *mockCompareListRepo) FindByIdentity(ctx context.Context, identity entity.Identity) (*entity.CompareList, error) {
	args := m.Called(ctx, identity)
	list, _ := args.Get(0).(*entity.CompareList)
	return list, args.Error(1)
}

func (m *mockCompareListRepo) Create(ctx context.Context, list *entity.CompareList) (bool, error) {
	args := m.Called(ctx, list)
	return args.Bool(0), args.Error(1)
}

func (m *mockCompareListRepo) UpdateProducts(ctx context.Context, list *entity.CompareList) (bool, error) {
	args := m.Called(ctx, list)
	return args.Bool(0), args.Error(1)
}

func (m *mockCompareListRepo) Delete(ctx context.Context, list *entity.CompareList) (bool, error) {
	args := m.Called(ctx, list)
	return args.Bool(0), args.Error(1)
}

func (m *mockCompareListRepo) DeleteStaleGuestLists(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type mockProductUsecase struct {
	mock.Mock
}

func (m *mockProductUsecase) Hydrate(ctx context.Context, shop string, productIDs []string) ([]entity.Product, error) {
	args := m.Called(ctx, shop, productIDs)
	products, _ := args.Get(0).([]entity.Product)
	return products, args.Error(1)
}

type mockShopifyClient struct {
	mock.Mock
}

func (m *mockShopifyClient) Execute(ctx context.Context, shop, accessToken, query string, variables map[string]interface{}) (*shopify.GraphQLResponse, error) {
	args := m.Called(ctx, shop, accessToken, query, variables)
	resp, _ := args.Get(0).(*shopify.GraphQLResponse)
	return resp, args.Error(1)
}

func (m *mockShopifyClient) ProductsByIDs(ctx context.Context, shop, accessToken string, gids []string) ([]entity.Product, error) {
	args := m.Called(ctx, shop, accessToken, gids)
	products, _ := args.Get(0).([]entity.Product)
	return products, args.Error(1)
}

type recordingPublisher struct {
	events []event.Event
}

func (p *recordingPublisher) Publish(_ context.Context, evt event.Event) error {
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
