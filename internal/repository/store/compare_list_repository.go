package store

import (
	"context"
	"errors"
	"time"

	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/helper"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompareListRepository persists compare lists. Update and Delete are
// conditional on the version read by the caller and report false when another
// writer got there first.
type CompareListRepository interface {
	FindByIdentity(ctx context.Context, identity entity.Identity) (*entity.CompareList, error)
	Create(ctx context.Context, list *entity.CompareList) (bool, error)
	UpdateProducts(ctx context.Context, list *entity.CompareList) (bool, error)
	Delete(ctx context.Context, list *entity.CompareList) (bool, error)
	DeleteStaleGuestLists(ctx context.Context, before time.Time) (int64, error)
}

type compareListRepository struct {
	db *gorm.DB
}

func NewCompareListRepository(db *gorm.DB) CompareListRepository {
	return &compareListRepository{db: db}
}

func (r *compareListRepository) FindByIdentity(ctx context.Context, identity entity.Identity) (*entity.CompareList, error) {
	funcName := "CompareListRepository.FindByIdentity"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var list entity.CompareList
	err := r.db.WithContext(ctx).
		Scopes(scopeIdentity(identity)).
		First(&list).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errwrap.Wrap(err, funcName)
	}
	return &list, nil
}

// Create inserts list unless the identity already owns one.
func (r *compareListRepository) Create(ctx context.Context, list *entity.CompareList) (bool, error) {
	funcName := "CompareListRepository.Create"
	if err := helper.CheckDeadline(ctx); err != nil {
		return false, errwrap.Wrap(err, funcName)
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop"}, {Name: "owner_key"}},
			DoNothing: true,
		}).
		Create(list)
	if res.Error != nil {
		return false, errwrap.Wrap(res.Error, funcName)
	}
	return res.RowsAffected == 1, nil
}

func (r *compareListRepository) UpdateProducts(ctx context.Context, list *entity.CompareList) (bool, error) {
	funcName := "CompareListRepository.UpdateProducts"
	if err := helper.CheckDeadline(ctx); err != nil {
		return false, errwrap.Wrap(err, funcName)
	}

	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&entity.CompareList{}).
		Where("id = ? AND version = ?", list.ID, list.Version).
		Updates(map[string]interface{}{
			"products":   list.Products,
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})
	if res.Error != nil {
		return false, errwrap.Wrap(res.Error, funcName)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	list.Version++
	list.UpdatedAt = now
	return true, nil
}

func (r *compareListRepository) Delete(ctx context.Context, list *entity.CompareList) (bool, error) {
	funcName := "CompareListRepository.Delete"
	if err := helper.CheckDeadline(ctx); err != nil {
		return false, errwrap.Wrap(err, funcName)
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", list.ID, list.Version).
		Delete(&entity.CompareList{})
	if res.Error != nil {
		return false, errwrap.Wrap(res.Error, funcName)
	}
	return res.RowsAffected == 1, nil
}

// DeleteStaleGuestLists removes guest lists untouched since before.
func (r *compareListRepository) DeleteStaleGuestLists(ctx context.Context, before time.Time) (int64, error) {
	funcName := "CompareListRepository.DeleteStaleGuestLists"
	if err := helper.CheckDeadline(ctx); err != nil {
		return 0, errwrap.Wrap(err, funcName)
	}

	res := r.db.WithContext(ctx).
		Where("customer_id IS NULL AND updated_at < ?", before).
		Delete(&entity.CompareList{})
	if res.Error != nil {
		return 0, errwrap.Wrap(res.Error, funcName)
	}
	return res.RowsAffected, nil
}
