package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

type CachedBillboardRepo struct {
	persistent BillboardStore
	cache      cache.Store
	coord      *cache.Coordinator
	logger     *zap.Logger
}

func NewCachedBillboardRepo(persistent BillboardStore, c cache.Store, coord *cache.Coordinator, logger *zap.Logger) *CachedBillboardRepo {
	return &CachedBillboardRepo{
		persistent: persistent,
		cache:      c,
		coord:      coord,
		logger:     logger.Named("billboards"),
	}
}

func (r *CachedBillboardRepo) GetByID(ctx context.Context, id string) (*models.Billboard, error) {
	return itemThrough(ctx, r.cache, r.logger, cache.KindBillboard, id, func(ctx context.Context) (*models.Billboard, error) {
		return r.persistent.GetByID(ctx, id)
	})
}

// ListByStore treats an empty result as not-found and leaves it uncached,
// so a store's first billboard shows up without waiting out a TTL.
func (r *CachedBillboardRepo) ListByStore(ctx context.Context, storeID string) ([]models.Billboard, error) {
	return listThrough(ctx, r.cache, r.logger, cache.ListKey(cache.KindBillboard, storeID), func(ctx context.Context) ([]models.Billboard, error) {
		billboards, err := r.persistent.ListByStore(ctx, storeID)
		if err != nil {
			return nil, err
		}
		if len(billboards) == 0 {
			return nil, fmt.Errorf("billboards for store %s: %w", storeID, apperrors.ErrNotFound)
		}
		return billboards, nil
	})
}

func (r *CachedBillboardRepo) ListAll(ctx context.Context) ([]models.Billboard, error) {
	return listThrough(ctx, r.cache, r.logger, cache.GlobalListKey(cache.KindBillboard), func(ctx context.Context) ([]models.Billboard, error) {
		billboards, err := r.persistent.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		if len(billboards) == 0 {
			return nil, fmt.Errorf("billboards: %w", apperrors.ErrNotFound)
		}
		return billboards, nil
	})
}

func (r *CachedBillboardRepo) Create(ctx context.Context, storeID string, req *models.CreateBillboard) (*models.Billboard, error) {
	billboard, err := r.persistent.Create(ctx, storeID, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpCreate, billboard)
	writeItem(ctx, r.cache, r.logger, cache.KindBillboard, billboard.ID, billboard)
	return billboard, nil
}

func (r *CachedBillboardRepo) Update(ctx context.Context, id string, req *models.CreateBillboard) (*models.Billboard, error) {
	billboard, err := r.persistent.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpUpdate, billboard)
	writeItem(ctx, r.cache, r.logger, cache.KindBillboard, billboard.ID, billboard)
	return billboard, nil
}

func (r *CachedBillboardRepo) Delete(ctx context.Context, id string) error {
	billboard, err := r.persistent.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.persistent.Delete(ctx, billboard.ID); err != nil {
		return err
	}
	r.invalidate(ctx, cache.OpDelete, billboard)
	return nil
}

func (r *CachedBillboardRepo) invalidate(ctx context.Context, op cache.Op, b *models.Billboard) {
	r.coord.Invalidate(ctx, cache.Mutation{
		Kind:    cache.KindBillboard,
		Op:      op,
		ID:      b.ID,
		StoreID: b.StoreID,
	})
}
