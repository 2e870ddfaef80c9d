package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

type CachedCategoryRepo struct {
	persistent CategoryStore
	cache      cache.Store
	coord      *cache.Coordinator
	logger     *zap.Logger
}

func NewCachedCategoryRepo(persistent CategoryStore, c cache.Store, coord *cache.Coordinator, logger *zap.Logger) *CachedCategoryRepo {
	return &CachedCategoryRepo{
		persistent: persistent,
		cache:      c,
		coord:      coord,
		logger:     logger.Named("categories"),
	}
}

func (r *CachedCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return itemThrough(ctx, r.cache, r.logger, cache.KindCategory, id, func(ctx context.Context) (*models.Category, error) {
		return r.persistent.GetByID(ctx, id)
	})
}

// ListByStore is the admin listing; empty is reported as not-found and
// kept out of the cache.
func (r *CachedCategoryRepo) ListByStore(ctx context.Context, storeID string) ([]models.Category, error) {
	return listThrough(ctx, r.cache, r.logger, cache.ListKey(cache.KindCategory, storeID), func(ctx context.Context) ([]models.Category, error) {
		categories, err := r.persistent.ListByStore(ctx, storeID)
		if err != nil {
			return nil, err
		}
		if len(categories) == 0 {
			return nil, fmt.Errorf("categories for store %s: %w", storeID, apperrors.ErrNotFound)
		}
		return categories, nil
	})
}

// ListByGender is the storefront listing; an empty slice is a valid,
// cacheable answer here.
func (r *CachedCategoryRepo) ListByGender(ctx context.Context, storeID, gender string) ([]models.Category, error) {
	return listThrough(ctx, r.cache, r.logger, cache.GenderListKey(storeID, gender), func(ctx context.Context) ([]models.Category, error) {
		return r.persistent.ListByGender(ctx, storeID, gender)
	})
}

func (r *CachedCategoryRepo) Create(ctx context.Context, storeID string, req *models.CreateCategory) (*models.Category, error) {
	category, err := r.persistent.Create(ctx, storeID, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpCreate, category)
	writeItem(ctx, r.cache, r.logger, cache.KindCategory, category.ID, category)
	return category, nil
}

func (r *CachedCategoryRepo) Update(ctx context.Context, id string, req *models.CreateCategory) (*models.Category, error) {
	category, err := r.persistent.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpUpdate, category)
	writeItem(ctx, r.cache, r.logger, cache.KindCategory, category.ID, category)
	return category, nil
}

func (r *CachedCategoryRepo) Delete(ctx context.Context, id string) error {
	category, err := r.persistent.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.persistent.Delete(ctx, category.ID); err != nil {
		return err
	}
	r.invalidate(ctx, cache.OpDelete, category)
	return nil
}

func (r *CachedCategoryRepo) invalidate(ctx context.Context, op cache.Op, c *models.Category) {
	r.coord.Invalidate(ctx, cache.Mutation{
		Kind:    cache.KindCategory,
		Op:      op,
		ID:      c.ID,
		StoreID: c.StoreID,
	})
}
