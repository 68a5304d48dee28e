package store

import (
	"github.com/rahmatrdn/go-product-compare/entity"
	"gorm.io/gorm"
)

// scopeIdentity restricts a query to rows owned by identity. Guest rows must
// also have a NULL customer id so a guest never matches a customer's record.
func scopeIdentity(identity entity.Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch id := identity.(type) {
		case entity.CustomerIdentity:
			return db.Where("shop = ? AND customer_id = ?", id.ShopDomain, id.CustomerID)
		case entity.GuestIdentity:
			return db.Where("shop = ? AND session_id = ? AND customer_id IS NULL", id.ShopDomain, id.SessionID)
		default:
			return db.Where("1 = 0")
		}
	}
}
