package store

import (
	"context"
	"testing"
	"time"

	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareListRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewCompareListRepository(newTestDB(t))

	guest := entity.GuestIdentity{ShopDomain: "s1", SessionID: "g1"}
	customer := entity.CustomerIdentity{ShopDomain: "s1", CustomerID: "c1"}

	created, err := repo.Create(ctx, entity.NewCompareList(guest, "100"))
	require.NoError(t, err)
	assert.True(t, created)

	got, err := repo.FindByIdentity(ctx, guest)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"100"}, []string(got.Products))
	assert.Nil(t, got.CustomerID)

	missing, err := repo.FindByIdentity(ctx, customer)
	require.NoError(t, err)
	assert.Nil(t, missing)

	otherShop, err := repo.FindByIdentity(ctx, entity.GuestIdentity{ShopDomain: "s2", SessionID: "g1"})
	require.NoError(t, err)
	assert.Nil(t, otherShop)
}

func TestCompareListRepository_CreateIsUniquePerIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewCompareListRepository(newTestDB(t))
	guest := entity.GuestIdentity{ShopDomain: "s1", SessionID: "g1"}

	created, err := repo.Create(ctx, entity.NewCompareList(guest, "100"))
	require.NoError(t, err)
	require.True(t, created)

	created, err = repo.Create(ctx, entity.NewCompareList(guest, "200"))
	require.NoError(t, err)
	assert.False(t, created)

	got, err := repo.FindByIdentity(ctx, guest)
	require.NoError(t, err)
	assert.Equal(t, []string{"100"}, []string(got.Products))
}

func TestCompareListRepository_GuestDoesNotMatchCustomerRow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCompareListRepository(db)

	// A customer row that also carries a session id must stay invisible to that guest session.
	sessionID := "g1"
	list := entity.NewCompareList(entity.CustomerIdentity{ShopDomain: "s1", CustomerID: "c1"}, "100")
	list.SessionID = &sessionID
	created, err := repo.Create(ctx, list)
	require.NoError(t, err)
	require.True(t, created)

	got, err := repo.FindByIdentity(ctx, entity.GuestIdentity{ShopDomain: "s1", SessionID: "g1"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompareListRepository_OptimisticUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewCompareListRepository(newTestDB(t))
	guest := entity.GuestIdentity{ShopDomain: "s1", SessionID: "g1"}

	_, err := repo.Create(ctx, entity.NewCompareList(guest, "100"))
	require.NoError(t, err)

	first, err := repo.FindByIdentity(ctx, guest)
	require.NoError(t, err)
	second, err := repo.FindByIdentity(ctx, guest)
	require.NoError(t, err)

	first.Products = append(first.Products, "200")
	ok, err := repo.UpdateProducts(ctx, first)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, first.Version)

	second.Products = append(second.Products, "300")
	ok, err = repo.UpdateProducts(ctx, second)
	require.NoError(t, err)
	assert.False(t, ok, "stale version must not overwrite")

	got, err := repo.FindByIdentity(ctx, guest)
	require.NoError(t, err)
	assert.Equal(t, []string{"100", "200"}, []string(got.Products))
	assert.Equal(t, 2, got.Version)
}

func TestCompareListRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewCompareListRepository(newTestDB(t))
	guest := entity.GuestIdentity{ShopDomain: "s1", SessionID: "g1"}

	_, err := repo.Create(ctx, entity.NewCompareList(guest, "100"))
	require.NoError(t, err)
	list, err := repo.FindByIdentity(ctx, guest)
	require.NoError(t, err)

	stale := *list
	stale.Version = 99
	ok, err := repo.Delete(ctx, &stale)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(ctx, list)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.FindByIdentity(ctx, guest)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompareListRepository_DeleteStaleGuestLists(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCompareListRepository(db)

	oldGuest := entity.GuestIdentity{ShopDomain: "s1", SessionID: "old"}
	newGuest := entity.GuestIdentity{ShopDomain: "s1", SessionID: "new"}
	oldCustomer := entity.CustomerIdentity{ShopDomain: "s1", CustomerID: "c1"}
	for _, id := range []entity.Identity{oldGuest, newGuest, oldCustomer} {
		_, err := repo.Create(ctx, entity.NewCompareList(id, "100"))
		require.NoError(t, err)
	}

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Model(&entity.CompareList{}).
		Where("owner_key IN ?", []string{oldGuest.OwnerKey(), oldCustomer.OwnerKey()}).
		UpdateColumn("updated_at", past).Error)

	deleted, err := repo.DeleteStaleGuestLists(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	got, err := repo.FindByIdentity(ctx, oldGuest)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.FindByIdentity(ctx, oldCustomer)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestCompareListRepository_CanceledContext(t *testing.T) {
	repo := NewCompareListRepository(newTestDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindByIdentity(ctx, entity.GuestIdentity{ShopDomain: "s1", SessionID: "g1"})
	assert.ErrorIs(t, err, context.Canceled)
}
