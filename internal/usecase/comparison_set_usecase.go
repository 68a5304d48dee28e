package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/apperr"
	"github.com/rahmatrdn/go-product-compare/internal/event"
	"github.com/rahmatrdn/go-product-compare/internal/repository/store"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// savedListLimit caps how many saved comparisons a visitor listing returns.
const savedListLimit = 50

const errComparisonNotFound = "Comparison not found or access denied"

type ComparisonSetUsecase interface {
	Save(ctx context.Context, in SaveComparisonInput) (*SavedComparisonSummary, error)
	ListAll(ctx context.Context, shop, sessionID, customerID string) ([]*entity.ComparisonSet, error)
	FetchOne(ctx context.Context, shop, id, sessionID, customerID string) (*entity.ComparisonSet, error)
	DeleteOne(ctx context.Context, shop, id, sessionID, customerID string) error

	ListByShop(ctx context.Context, shop string) ([]*entity.ComparisonSet, error)
	CreateForShop(ctx context.Context, shop, name string, products json.RawMessage) (*entity.ComparisonSet, error)
}

type SaveComparisonInput struct {
	Shop       string
	Name       string
	Products   json.RawMessage
	SessionID  string
	CustomerID string
}

type SavedComparisonSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ProductCount int       `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type comparisonSetUsecase struct {
	repo      store.ComparisonSetRepository
	publisher event.Publisher
	logger    *zap.Logger
}

func NewComparisonSetUsecase(repo store.ComparisonSetRepository, publisher event.Publisher, logger *zap.Logger) ComparisonSetUsecase {
	return &comparisonSetUsecase{repo: repo, publisher: publisher, logger: logger}
}

// decodeProducts returns nil when raw is absent or not a JSON array.
func decodeProducts(raw json.RawMessage) []json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

func (u *comparisonSetUsecase) Save(ctx context.Context, in SaveComparisonInput) (*SavedComparisonSummary, error) {
	name := strings.TrimSpace(in.Name)
	items := decodeProducts(in.Products)
	if in.Shop == "" || name == "" || items == nil {
		return nil, apperr.Validation("Missing required fields: shop, name, and products array")
	}
	if len(items) < entity.MinComparisonProducts {
		return nil, apperr.Validation("At least 2 products are required for comparison")
	}

	identity, err := entity.ResolveIdentity(in.Shop, in.SessionID, in.CustomerID)
	if err != nil {
		return nil, apperr.Validation("Either customer ID or session ID must be provided")
	}

	products, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	set := &entity.ComparisonSet{
		Shop:       in.Shop,
		Name:       name,
		Products:   datatypes.JSON(products),
		CustomerID: identity.CustomerRef(),
		SessionID:  identity.SessionRef(),
	}
	if err := u.repo.Create(ctx, set); err != nil {
		return nil, err
	}

	publish(ctx, u.publisher, u.logger, event.Event{
		Type:        event.TypeComparisonSaved,
		Shop:        set.Shop,
		VisitorType: string(identity.VisitorType()),
		Payload:     map[string]interface{}{"id": set.ID, "productCount": len(items)},
	})

	return &SavedComparisonSummary{
		ID:           set.ID,
		Name:         set.Name,
		ProductCount: len(items),
		CreatedAt:    set.CreatedAt,
	}, nil
}

// ListAll returns an empty list, not an error, when no identity is given.
func (u *comparisonSetUsecase) ListAll(ctx context.Context, shop, sessionID, customerID string) ([]*entity.ComparisonSet, error) {
	if shop == "" {
		return nil, apperr.Validation("Shop parameter is required")
	}

	identity, err := entity.ResolveIdentity(shop, sessionID, customerID)
	if err != nil {
		return []*entity.ComparisonSet{}, nil
	}

	return u.repo.FindAllByIdentity(ctx, identity, savedListLimit)
}

func (u *comparisonSetUsecase) ownerIdentity(shop, id, sessionID, customerID string) (entity.Identity, error) {
	if shop == "" || id == "" {
		return nil, apperr.Validation("Shop and comparison ID are required")
	}
	identity, err := entity.ResolveIdentity(shop, sessionID, customerID)
	if err != nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return identity, nil
}

// FetchOne reports "not found" both for missing sets and for sets owned by
// another visitor, so ids cannot be probed.
func (u *comparisonSetUsecase) FetchOne(ctx context.Context, shop, id, sessionID, customerID string) (*entity.ComparisonSet, error) {
	identity, err := u.ownerIdentity(shop, id, sessionID, customerID)
	if err != nil {
		return nil, err
	}

	set, err := u.repo.FindOwned(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, apperr.NotFound(errComparisonNotFound)
	}
	return set, nil
}

func (u *comparisonSetUsecase) DeleteOne(ctx context.Context, shop, id, sessionID, customerID string) error {
	identity, err := u.ownerIdentity(shop, id, sessionID, customerID)
	if err != nil {
		return err
	}

	deleted, err := u.repo.DeleteOwned(ctx, identity, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperr.NotFound(errComparisonNotFound)
	}

	publish(ctx, u.publisher, u.logger, event.Event{
		Type:        event.TypeComparisonDeleted,
		Shop:        shop,
		VisitorType: string(identity.VisitorType()),
		Payload:     map[string]interface{}{"id": id},
	})
	return nil
}

func (u *comparisonSetUsecase) ListByShop(ctx context.Context, shop string) ([]*entity.ComparisonSet, error) {
	return u.repo.FindAllByShop(ctx, shop)
}

// CreateForShop saves a merchant-created comparison that belongs to no visitor.
func (u *comparisonSetUsecase) CreateForShop(ctx context.Context, shop, name string, products json.RawMessage) (*entity.ComparisonSet, error) {
	name = strings.TrimSpace(name)
	items := decodeProducts(products)
	if name == "" || items == nil {
		return nil, apperr.Validation("Missing required fields: name and products array")
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	set := &entity.ComparisonSet{Shop: shop, Name: name, Products: datatypes.JSON(raw)}
	if err := u.repo.Create(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}
