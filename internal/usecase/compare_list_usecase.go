package usecase

import (
	"context"
	"fmt"

	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/apperr"
	"github.com/rahmatrdn/go-product-compare/internal/event"
	"github.com/rahmatrdn/go-product-compare/internal/repository/store"
	"go.uber.org/zap"
)

// maxMutationAttempts bounds the read-modify-write loop when concurrent
// requests for the same visitor keep invalidating the version we read.
const maxMutationAttempts = 3

type CompareListUsecase interface {
	Add(ctx context.Context, identity entity.Identity, productID string) (*AddResult, error)
	Check(ctx context.Context, identity entity.Identity, productID string) (*CheckResult, error)
	Remove(ctx context.Context, identity entity.Identity, productID string) (*RemoveResult, error)
	Fetch(ctx context.Context, identity entity.Identity) (*FetchResult, error)
}

type AddResult struct {
	Added        bool
	AlreadyAdded bool
	ProductCount int
	UserType     entity.VisitorType
}

type CheckResult struct {
	InCompare     bool
	TotalProducts int
	UserType      entity.VisitorType
	ListInfo      *entity.ListInfo
}

type RemoveResult struct {
	RemainingCount int
	Products       []string
	ListDeleted    bool
	UserType       entity.VisitorType
}

type FetchResult struct {
	Products []entity.Product
	UserType entity.VisitorType
	ListInfo *entity.ListInfo
}

type compareListUsecase struct {
	repo           store.CompareListRepository
	productUsecase ProductUsecase
	publisher      event.Publisher
	logger         *zap.Logger
}

func NewCompareListUsecase(
	repo store.CompareListRepository,
	productUsecase ProductUsecase,
	publisher event.Publisher,
	logger *zap.Logger,
) CompareListUsecase {
	return &compareListUsecase{
		repo:           repo,
		productUsecase: productUsecase,
		publisher:      publisher,
		logger:         logger,
	}
}

func (u *compareListUsecase) Add(ctx context.Context, identity entity.Identity, productID string) (*AddResult, error) {
	productID = entity.CanonicalProductID(productID)
	userType := identity.VisitorType()

	for attempt := 0; attempt < maxMutationAttempts; attempt++ {
		list, err := u.repo.FindByIdentity(ctx, identity)
		if err != nil {
			return nil, err
		}

		if list == nil {
			created, err := u.repo.Create(ctx, entity.NewCompareList(identity, productID))
			if err != nil {
				return nil, err
			}
			if !created {
				continue
			}
			u.productAdded(ctx, identity, productID, 1)
			return &AddResult{Added: true, ProductCount: 1, UserType: userType}, nil
		}

		if list.Contains(productID) {
			return &AddResult{AlreadyAdded: true, ProductCount: len(list.Products), UserType: userType}, nil
		}
		if len(list.Products) >= entity.MaxCompareProducts {
			return nil, apperr.LimitExceeded(fmt.Sprintf("Maximum %d products allowed in comparison list", entity.MaxCompareProducts))
		}

		list.Products = append(list.Products, productID)
		ok, err := u.repo.UpdateProducts(ctx, list)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		u.productAdded(ctx, identity, productID, len(list.Products))
		return &AddResult{Added: true, ProductCount: len(list.Products), UserType: userType}, nil
	}

	return nil, apperr.Conflict("Compare list was modified concurrently, please retry")
}

func (u *compareListUsecase) Check(ctx context.Context, identity entity.Identity, productID string) (*CheckResult, error) {
	list, err := u.repo.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}

	res := &CheckResult{UserType: identity.VisitorType()}
	if list == nil {
		return res, nil
	}

	info := list.Info()
	res.InCompare = list.Contains(productID)
	res.TotalProducts = len(list.Products)
	res.ListInfo = &info
	return res, nil
}

func (u *compareListUsecase) Remove(ctx context.Context, identity entity.Identity, productID string) (*RemoveResult, error) {
	userType := identity.VisitorType()

	for attempt := 0; attempt < maxMutationAttempts; attempt++ {
		list, err := u.repo.FindByIdentity(ctx, identity)
		if err != nil {
			return nil, err
		}
		if list == nil {
			return nil, apperr.NotFound("Compare list not found").WithExtra("userType", userType)
		}

		remaining := list.Without(productID)
		if len(remaining) == 0 {
			ok, err := u.repo.Delete(ctx, list)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			publish(ctx, u.publisher, u.logger, event.Event{
				Type:        event.TypeListDeleted,
				Shop:        identity.Shop(),
				VisitorType: string(userType),
				Payload:     map[string]interface{}{"productId": entity.CanonicalProductID(productID)},
			})
			return &RemoveResult{Products: []string{}, ListDeleted: true, UserType: userType}, nil
		}

		list.Products = remaining
		ok, err := u.repo.UpdateProducts(ctx, list)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		publish(ctx, u.publisher, u.logger, event.Event{
			Type:        event.TypeProductRemoved,
			Shop:        identity.Shop(),
			VisitorType: string(userType),
			Payload: map[string]interface{}{
				"productId":    entity.CanonicalProductID(productID),
				"productCount": len(remaining),
			},
		})
		return &RemoveResult{
			RemainingCount: len(remaining),
			Products:       remaining,
			UserType:       userType,
		}, nil
	}

	return nil, apperr.Conflict("Compare list was modified concurrently, please retry")
}

func (u *compareListUsecase) Fetch(ctx context.Context, identity entity.Identity) (*FetchResult, error) {
	res := &FetchResult{Products: []entity.Product{}, UserType: identity.VisitorType()}

	list, err := u.repo.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}
	if list == nil || len(list.Products) == 0 {
		return res, nil
	}

	products, err := u.productUsecase.Hydrate(ctx, identity.Shop(), list.Products)
	if err != nil {
		return nil, err
	}

	count := len(products)
	info := list.Info()
	info.ProductCount = &count
	res.Products = products
	res.ListInfo = &info
	return res, nil
}

func (u *compareListUsecase) productAdded(ctx context.Context, identity entity.Identity, productID string, count int) {
	publish(ctx, u.publisher, u.logger, event.Event{
		Type:        event.TypeProductAdded,
		Shop:        identity.Shop(),
		VisitorType: string(identity.VisitorType()),
		Payload: map[string]interface{}{
			"productId":    productID,
			"productCount": count,
		},
	})
}
