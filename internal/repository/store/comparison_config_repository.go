package store

import (
	"context"
	"errors"

	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/helper"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ComparisonConfigRepository interface {
	FindByShop(ctx context.Context, shop string) (*entity.ComparisonConfig, error)
	Upsert(ctx context.Context, config *entity.ComparisonConfig) error
}

type comparisonConfigRepository struct {
	db *gorm.DB
}

func NewComparisonConfigRepository(db *gorm.DB) ComparisonConfigRepository {
	return &comparisonConfigRepository{db: db}
}

func (r *comparisonConfigRepository) FindByShop(ctx context.Context, shop string) (*entity.ComparisonConfig, error) {
	funcName := "ComparisonConfigRepository.FindByShop"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var config entity.ComparisonConfig
	err := r.db.WithContext(ctx).
		Where("shop = ?", shop).
		First(&config).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errwrap.Wrap(err, funcName)
	}
	return &config, nil
}

// Upsert inserts the shop's config or replaces its attributes in place.
func (r *comparisonConfigRepository) Upsert(ctx context.Context, config *entity.ComparisonConfig) error {
	funcName := "ComparisonConfigRepository.Upsert"
	if err := helper.CheckDeadline(ctx); err != nil {
		return errwrap.Wrap(err, funcName)
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop"}},
			DoUpdates: clause.AssignmentColumns([]string{"attributes", "updated_at"}),
		}).
		Create(config).Error
	return errwrap.Wrap(err, funcName)
}
