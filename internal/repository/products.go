package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

type CachedProductRepo struct {
	persistent ProductStore
	cache      cache.Store
	coord      *cache.Coordinator
	logger     *zap.Logger
}

func NewCachedProductRepo(persistent ProductStore, c cache.Store, coord *cache.Coordinator, logger *zap.Logger) *CachedProductRepo {
	return &CachedProductRepo{
		persistent: persistent,
		cache:      c,
		coord:      coord,
		logger:     logger.Named("products"),
	}
}

func (r *CachedProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return itemThrough(ctx, r.cache, r.logger, cache.KindProduct, id, func(ctx context.Context) (*models.Product, error) {
		return r.persistent.GetByID(ctx, id)
	})
}

// ListByStore caches each distinct filter under its own slot; any product
// mutation purges them all via the list pattern.
func (r *CachedProductRepo) ListByStore(ctx context.Context, storeID string, filter models.ProductFilter) ([]models.Product, error) {
	filter = filter.Normalize()
	key := cache.FilteredProductListKey(storeID, filter)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) ([]models.Product, error) {
		return r.persistent.ListByStore(ctx, storeID, filter)
	})
}

func (r *CachedProductRepo) Create(ctx context.Context, storeID string, req *models.CreateProduct) (*models.Product, error) {
	product, err := r.persistent.Create(ctx, storeID, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpCreate, product)
	writeItem(ctx, r.cache, r.logger, cache.KindProduct, product.ID, product)
	return product, nil
}

func (r *CachedProductRepo) Update(ctx context.Context, id string, req *models.CreateProduct) (*models.Product, error) {
	product, err := r.persistent.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpUpdate, product)
	writeItem(ctx, r.cache, r.logger, cache.KindProduct, product.ID, product)
	return product, nil
}

func (r *CachedProductRepo) Delete(ctx context.Context, id string) error {
	product, err := r.persistent.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.persistent.Delete(ctx, product.ID); err != nil {
		return err
	}
	r.invalidate(ctx, cache.OpDelete, product)
	return nil
}

func (r *CachedProductRepo) invalidate(ctx context.Context, op cache.Op, p *models.Product) {
	r.coord.Invalidate(ctx, cache.Mutation{
		Kind:    cache.KindProduct,
		Op:      op,
		ID:      p.ID,
		StoreID: p.StoreID,
	})
}
