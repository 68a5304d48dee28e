package entity

import (
	"time"

	"gorm.io/datatypes"
)

// MaxCompareProducts is the size limit of a visitor's compare list.
const MaxCompareProducts = 4

// CompareList is the working set of products a visitor is comparing.
// One row per (shop, owner key).
type CompareList struct {
	ID         uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Shop       string                      `gorm:"type:varchar(255);not null;uniqueIndex:idx_compare_lists_owner" json:"shop"`
	OwnerKey   string                      `gorm:"type:varchar(255);not null;uniqueIndex:idx_compare_lists_owner" json:"-"`
	CustomerID *string                     `gorm:"type:varchar(255);index" json:"customerId"`
	SessionID  *string                     `gorm:"type:varchar(255);index" json:"sessionId"`
	Products   datatypes.JSONSlice[string] `gorm:"not null" json:"products"`
	Version    int                         `gorm:"not null;default:1" json:"-"`
	CreatedAt  time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func NewCompareList(identity Identity, productID string) *CompareList {
	return &CompareList{
		Shop:       identity.Shop(),
		OwnerKey:   identity.OwnerKey(),
		CustomerID: identity.CustomerRef(),
		SessionID:  identity.SessionRef(),
		Products:   datatypes.JSONSlice[string]{CanonicalProductID(productID)},
		Version:    1,
	}
}

func (l *CompareList) Contains(productID string) bool {
	for _, id := range l.Products {
		if SameProduct(id, productID) {
			return true
		}
	}
	return false
}

// Without returns the list's products minus productID, in their original order.
func (l *CompareList) Without(productID string) []string {
	remaining := make([]string, 0, len(l.Products))
	for _, id := range l.Products {
		if !SameProduct(id, productID) {
			remaining = append(remaining, id)
		}
	}
	return remaining
}

func (l *CompareList) Info() ListInfo {
	return ListInfo{ID: l.ID, CreatedAt: l.CreatedAt, UpdatedAt: l.UpdatedAt}
}

// ListInfo is the compare list metadata returned alongside product data.
type ListInfo struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	ProductCount *int      `json:"productCount,omitempty"`
}
