package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// CachedStoreRepo serves the tenant entity itself.
type CachedStoreRepo struct {
	persistent StoreStore
	cache      cache.Store
	coord      *cache.Coordinator
	logger     *zap.Logger
}

func NewCachedStoreRepo(persistent StoreStore, c cache.Store, coord *cache.Coordinator, logger *zap.Logger) *CachedStoreRepo {
	return &CachedStoreRepo{
		persistent: persistent,
		cache:      c,
		coord:      coord,
		logger:     logger.Named("stores"),
	}
}

func (r *CachedStoreRepo) GetByID(ctx context.Context, id string) (*models.Store, error) {
	return itemThrough(ctx, r.cache, r.logger, cache.KindStore, id, func(ctx context.Context) (*models.Store, error) {
		return r.persistent.GetByID(ctx, id)
	})
}

func (r *CachedStoreRepo) Create(ctx context.Context, req *models.CreateStore) (*models.Store, error) {
	store, err := r.persistent.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	r.coord.Invalidate(ctx, cache.Mutation{Kind: cache.KindStore, Op: cache.OpCreate, ID: store.ID})
	writeItem(ctx, r.cache, r.logger, cache.KindStore, store.ID, store)
	return store, nil
}

// Delete reads the store first so a second delete of the same id reports
// not-found instead of silently succeeding.
func (r *CachedStoreRepo) Delete(ctx context.Context, id string) error {
	store, err := r.persistent.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.persistent.Delete(ctx, store.ID); err != nil {
		return err
	}
	r.coord.Invalidate(ctx, cache.Mutation{Kind: cache.KindStore, Op: cache.OpDelete, ID: store.ID})
	return nil
}
