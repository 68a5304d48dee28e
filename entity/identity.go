package entity

import "errors"

// ErrMissingIdentity is returned when a request carries neither a customer id nor a session id.
var ErrMissingIdentity = errors.New("either sessionId or customerId is required")

type VisitorType string

const (
	VisitorCustomer VisitorType = "customer"
	VisitorGuest    VisitorType = "guest"
)

// Identity is the owner of compare lists and saved comparisons within a shop.
// It is either a CustomerIdentity or a GuestIdentity.
type Identity interface {
	Shop() string
	VisitorType() VisitorType
	// OwnerKey is unique per identity within a shop.
	OwnerKey() string
	CustomerRef() *string
	SessionRef() *string
	isIdentity()
}

// CustomerIdentity is a logged-in storefront customer. Session tokens are ignored.
type CustomerIdentity struct {
	ShopDomain string
	CustomerID string
}

func (i CustomerIdentity) Shop() string             { return i.ShopDomain }
func (i CustomerIdentity) VisitorType() VisitorType { return VisitorCustomer }
func (i CustomerIdentity) OwnerKey() string         { return "customer:" + i.CustomerID }
func (i CustomerIdentity) CustomerRef() *string     { id := i.CustomerID; return &id }
func (i CustomerIdentity) SessionRef() *string      { return nil }
func (CustomerIdentity) isIdentity()                {}

// GuestIdentity is an anonymous visitor tracked by a client-supplied session token.
// Guest records always have a NULL customer id.
type GuestIdentity struct {
	ShopDomain string
	SessionID  string
}

func (i GuestIdentity) Shop() string             { return i.ShopDomain }
func (i GuestIdentity) VisitorType() VisitorType { return VisitorGuest }
func (i GuestIdentity) OwnerKey() string         { return "guest:" + i.SessionID }
func (i GuestIdentity) CustomerRef() *string     { return nil }
func (i GuestIdentity) SessionRef() *string      { id := i.SessionID; return &id }
func (GuestIdentity) isIdentity()                {}

// ResolveIdentity picks the identity for a request. A customer id takes
// precedence over a session id.
func ResolveIdentity(shop, sessionID, customerID string) (Identity, error) {
	if customerID != "" {
		return CustomerIdentity{ShopDomain: shop, CustomerID: customerID}, nil
	}
	if sessionID != "" {
		return GuestIdentity{ShopDomain: shop, SessionID: sessionID}, nil
	}
	return nil, ErrMissingIdentity
}
