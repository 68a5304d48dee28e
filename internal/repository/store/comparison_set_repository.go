package store

import (
	"context"
	"errors"

	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/helper"
	"gorm.io/gorm"
)

type ComparisonSetRepository interface {
	Create(ctx context.Context, set *entity.ComparisonSet) error
	FindAllByIdentity(ctx context.Context, identity entity.Identity, limit int) ([]*entity.ComparisonSet, error)
	FindAllByShop(ctx context.Context, shop string) ([]*entity.ComparisonSet, error)
	FindOwned(ctx context.Context, identity entity.Identity, id string) (*entity.ComparisonSet, error)
	DeleteOwned(ctx context.Context, identity entity.Identity, id string) (int64, error)
}

type comparisonSetRepository struct {
	db *gorm.DB
}

func NewComparisonSetRepository(db *gorm.DB) ComparisonSetRepository {
	return &comparisonSetRepository{db: db}
}

func (r *comparisonSetRepository) Create(ctx context.Context, set *entity.ComparisonSet) error {
	funcName := "ComparisonSetRepository.Create"
	if err := helper.CheckDeadline(ctx); err != nil {
		return errwrap.Wrap(err, funcName)
	}

	return errwrap.Wrap(r.db.WithContext(ctx).Create(set).Error, funcName)
}

func (r *comparisonSetRepository) FindAllByIdentity(ctx context.Context, identity entity.Identity, limit int) ([]*entity.ComparisonSet, error) {
	funcName := "ComparisonSetRepository.FindAllByIdentity"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var sets []*entity.ComparisonSet
	err := r.db.WithContext(ctx).
		Scopes(scopeIdentity(identity)).
		Order("created_at desc").
		Limit(limit).
		Find(&sets).Error

	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	return sets, nil
}

func (r *comparisonSetRepository) FindAllByShop(ctx context.Context, shop string) ([]*entity.ComparisonSet, error) {
	funcName := "ComparisonSetRepository.FindAllByShop"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var sets []*entity.ComparisonSet
	err := r.db.WithContext(ctx).
		Where("shop = ?", shop).
		Order("created_at desc").
		Find(&sets).Error

	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	return sets, nil
}

// FindOwned returns nil when the set does not exist or belongs to someone else.
func (r *comparisonSetRepository) FindOwned(ctx context.Context, identity entity.Identity, id string) (*entity.ComparisonSet, error) {
	funcName := "ComparisonSetRepository.FindOwned"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var set entity.ComparisonSet
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Scopes(scopeIdentity(identity)).
		First(&set).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errwrap.Wrap(err, funcName)
	}
	return &set, nil
}

func (r *comparisonSetRepository) DeleteOwned(ctx context.Context, identity entity.Identity, id string) (int64, error) {
	funcName := "ComparisonSetRepository.DeleteOwned"
	if err := helper.CheckDeadline(ctx); err != nil {
		return 0, errwrap.Wrap(err, funcName)
	}

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Scopes(scopeIdentity(identity)).
		Delete(&entity.ComparisonSet{})
	if res.Error != nil {
		return 0, errwrap.Wrap(res.Error, funcName)
	}
	return res.RowsAffected, nil
}
