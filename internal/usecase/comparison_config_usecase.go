package usecase

import (
	"context"

	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/apperr"
	"github.com/rahmatrdn/go-product-compare/internal/repository/store"
)

type ComparisonConfigUsecase interface {
	Get(ctx context.Context, shop string) ([]entity.ComparisonAttribute, error)
	GetEnabled(ctx context.Context, shop string) ([]entity.ComparisonAttribute, error)
	Update(ctx context.Context, shop string, attributes []entity.ComparisonAttribute) (*entity.ComparisonConfig, error)
}

type comparisonConfigUsecase struct {
	repo store.ComparisonConfigRepository
}

func NewComparisonConfigUsecase(repo store.ComparisonConfigRepository) ComparisonConfigUsecase {
	return &comparisonConfigUsecase{repo: repo}
}

// Get returns the stored attributes, or the defaults when the shop has none.
func (u *comparisonConfigUsecase) Get(ctx context.Context, shop string) ([]entity.ComparisonAttribute, error) {
	if shop == "" {
		return nil, apperr.Validation("Shop parameter is required")
	}

	config, err := u.repo.FindByShop(ctx, shop)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return entity.DefaultAttributes(), nil
	}
	return config.Attributes, nil
}

func (u *comparisonConfigUsecase) GetEnabled(ctx context.Context, shop string) ([]entity.ComparisonAttribute, error) {
	attrs, err := u.Get(ctx, shop)
	if err != nil {
		return nil, err
	}
	return entity.EnabledAttributes(attrs), nil
}

func (u *comparisonConfigUsecase) Update(ctx context.Context, shop string, attributes []entity.ComparisonAttribute) (*entity.ComparisonConfig, error) {
	if shop == "" {
		return nil, apperr.Validation("Shop parameter is required")
	}

	config := &entity.ComparisonConfig{Shop: shop, Attributes: attributes}
	if err := u.repo.Upsert(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}
