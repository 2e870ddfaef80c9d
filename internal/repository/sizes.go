package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

type CachedSizeRepo struct {
	persistent SizeStore
	cache      cache.Store
	coord      *cache.Coordinator
	logger     *zap.Logger
}

func NewCachedSizeRepo(persistent SizeStore, c cache.Store, coord *cache.Coordinator, logger *zap.Logger) *CachedSizeRepo {
	return &CachedSizeRepo{
		persistent: persistent,
		cache:      c,
		coord:      coord,
		logger:     logger.Named("sizes"),
	}
}

func (r *CachedSizeRepo) GetByID(ctx context.Context, id string) (*models.Size, error) {
	return itemThrough(ctx, r.cache, r.logger, cache.KindSize, id, func(ctx context.Context) (*models.Size, error) {
		return r.persistent.GetByID(ctx, id)
	})
}

func (r *CachedSizeRepo) ListByStore(ctx context.Context, storeID string) ([]models.Size, error) {
	return listThrough(ctx, r.cache, r.logger, cache.ListKey(cache.KindSize, storeID), func(ctx context.Context) ([]models.Size, error) {
		return r.persistent.ListByStore(ctx, storeID)
	})
}

func (r *CachedSizeRepo) Create(ctx context.Context, storeID string, req *models.CreateSize) (*models.Size, error) {
	size, err := r.persistent.Create(ctx, storeID, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpCreate, size)
	writeItem(ctx, r.cache, r.logger, cache.KindSize, size.ID, size)
	return size, nil
}

func (r *CachedSizeRepo) Update(ctx context.Context, id string, req *models.CreateSize) (*models.Size, error) {
	size, err := r.persistent.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpUpdate, size)
	writeItem(ctx, r.cache, r.logger, cache.KindSize, size.ID, size)
	return size, nil
}

func (r *CachedSizeRepo) Delete(ctx context.Context, id string) error {
	size, err := r.persistent.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.persistent.Delete(ctx, size.ID); err != nil {
		return err
	}
	r.invalidate(ctx, cache.OpDelete, size)
	return nil
}

func (r *CachedSizeRepo) invalidate(ctx context.Context, op cache.Op, s *models.Size) {
	r.coord.Invalidate(ctx, cache.Mutation{
		Kind:    cache.KindSize,
		Op:      op,
		ID:      s.ID,
		StoreID: s.StoreID,
	})
}
