package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductIDNormalization(t *testing.T) {
	assert.Equal(t, "100", CanonicalProductID("gid://shopify/Product/100"))
	assert.Equal(t, "100", CanonicalProductID(" 100 "))
	assert.Equal(t, "gid://shopify/Product/100", ProductGID("100"))
	assert.Equal(t, "gid://shopify/Product/100", ProductGID("gid://shopify/Product/100"))
	assert.True(t, SameProduct("100", "gid://shopify/Product/100"))
	assert.False(t, SameProduct("100", "1000"))
}

func TestNewCompareListStoresCanonicalID(t *testing.T) {
	list := NewCompareList(GuestIdentity{ShopDomain: "s1", SessionID: "g1"}, "gid://shopify/Product/100")

	assert.Equal(t, []string{"100"}, []string(list.Products))
	assert.Equal(t, "s1", list.Shop)
	assert.Equal(t, "guest:g1", list.OwnerKey)
	assert.Nil(t, list.CustomerID)
	assert.Equal(t, "g1", *list.SessionID)
	assert.Equal(t, 1, list.Version)
}

func TestCompareListContainsAndWithout(t *testing.T) {
	list := &CompareList{Products: []string{"100", "gid://shopify/Product/200", "300"}}

	assert.True(t, list.Contains("gid://shopify/Product/100"))
	assert.True(t, list.Contains("200"))
	assert.False(t, list.Contains("400"))

	assert.Equal(t, []string{"100", "300"}, list.Without("200"))
	assert.Equal(t, []string{"100", "gid://shopify/Product/200", "300"}, list.Without("999"))
	assert.Empty(t, (&CompareList{Products: []string{"100"}}).Without("gid://shopify/Product/100"))
}

func TestComparisonSetProductCount(t *testing.T) {
	assert.Equal(t, 3, (&ComparisonSet{Products: []byte(`[1,"2",{"id":3}]`)}).ProductCount())
	assert.Equal(t, 0, (&ComparisonSet{Products: []byte(`not json`)}).ProductCount())
}
