package store

import (
	"context"
	"errors"

	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/helper"
	"gorm.io/gorm"
)

type ShopSessionRepository interface {
	FindByShop(ctx context.Context, shop string) (*entity.ShopSession, error)
}

type shopSessionRepository struct {
	db *gorm.DB
}

func NewShopSessionRepository(db *gorm.DB) ShopSessionRepository {
	return &shopSessionRepository{db: db}
}

func (r *shopSessionRepository) FindByShop(ctx context.Context, shop string) (*entity.ShopSession, error) {
	funcName := "ShopSessionRepository.FindByShop"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var session entity.ShopSession
	err := r.db.WithContext(ctx).
		Where("shop = ?", shop).
		First(&session).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errwrap.Wrap(err, funcName)
	}
	return &session, nil
}
