package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

type CachedColorRepo struct {
	persistent ColorStore
	cache      cache.Store
	coord      *cache.Coordinator
	logger     *zap.Logger
}

func NewCachedColorRepo(persistent ColorStore, c cache.Store, coord *cache.Coordinator, logger *zap.Logger) *CachedColorRepo {
	return &CachedColorRepo{
		persistent: persistent,
		cache:      c,
		coord:      coord,
		logger:     logger.Named("colors"),
	}
}

func (r *CachedColorRepo) GetByID(ctx context.Context, id string) (*models.Color, error) {
	return itemThrough(ctx, r.cache, r.logger, cache.KindColor, id, func(ctx context.Context) (*models.Color, error) {
		return r.persistent.GetByID(ctx, id)
	})
}

func (r *CachedColorRepo) ListByStore(ctx context.Context, storeID string) ([]models.Color, error) {
	return listThrough(ctx, r.cache, r.logger, cache.ListKey(cache.KindColor, storeID), func(ctx context.Context) ([]models.Color, error) {
		return r.persistent.ListByStore(ctx, storeID)
	})
}

func (r *CachedColorRepo) Create(ctx context.Context, storeID string, req *models.CreateColor) (*models.Color, error) {
	color, err := r.persistent.Create(ctx, storeID, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpCreate, color)
	writeItem(ctx, r.cache, r.logger, cache.KindColor, color.ID, color)
	return color, nil
}

func (r *CachedColorRepo) Update(ctx context.Context, id string, req *models.CreateColor) (*models.Color, error) {
	color, err := r.persistent.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpUpdate, color)
	writeItem(ctx, r.cache, r.logger, cache.KindColor, color.ID, color)
	return color, nil
}

func (r *CachedColorRepo) Delete(ctx context.Context, id string) error {
	color, err := r.persistent.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.persistent.Delete(ctx, color.ID); err != nil {
		return err
	}
	r.invalidate(ctx, cache.OpDelete, color)
	return nil
}

func (r *CachedColorRepo) invalidate(ctx context.Context, op cache.Op, c *models.Color) {
	r.coord.Invalidate(ctx, cache.Mutation{
		Kind:    cache.KindColor,
		Op:      op,
		ID:      c.ID,
		StoreID: c.StoreID,
	})
}
