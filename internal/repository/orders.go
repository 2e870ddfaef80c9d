package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// CachedOrderRepo serves orders and their per-user pending/delivered
// views. Every mutation here also purges the store's revenue slots, since
// revenue is derived from paid orders.
type CachedOrderRepo struct {
	persistent OrderStore
	cache      cache.Store
	coord      *cache.Coordinator
	logger     *zap.Logger
}

func NewCachedOrderRepo(persistent OrderStore, c cache.Store, coord *cache.Coordinator, logger *zap.Logger) *CachedOrderRepo {
	return &CachedOrderRepo{
		persistent: persistent,
		cache:      c,
		coord:      coord,
		logger:     logger.Named("orders"),
	}
}

func (r *CachedOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return itemThrough(ctx, r.cache, r.logger, cache.KindOrder, id, func(ctx context.Context) (*models.Order, error) {
		return r.persistent.GetByID(ctx, id)
	})
}

// ListByStore is the admin order view; empty is reported as not-found and
// kept out of the cache, so a store's first order shows up immediately.
func (r *CachedOrderRepo) ListByStore(ctx context.Context, storeID string) ([]models.Order, error) {
	return listThrough(ctx, r.cache, r.logger, cache.ListKey(cache.KindOrder, storeID), func(ctx context.Context) ([]models.Order, error) {
		orders, err := r.persistent.ListByStore(ctx, storeID)
		if err != nil {
			return nil, err
		}
		if len(orders) == 0 {
			return nil, fmt.Errorf("orders for store %s: %w", storeID, apperrors.ErrNotFound)
		}
		return orders, nil
	})
}

func (r *CachedOrderRepo) ListPending(ctx context.Context, userID string) ([]models.Order, error) {
	key := cache.UserOrdersKey(userID, cache.OrderStatusPending)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) ([]models.Order, error) {
		return r.persistent.ListByUser(ctx, userID, false)
	})
}

func (r *CachedOrderRepo) ListDelivered(ctx context.Context, userID string) ([]models.Order, error) {
	key := cache.UserOrdersKey(userID, cache.OrderStatusDelivered)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) ([]models.Order, error) {
		return r.persistent.ListByUser(ctx, userID, true)
	})
}

func (r *CachedOrderRepo) Create(ctx context.Context, storeID string, req *models.CreateOrder) (*models.Order, error) {
	order, err := r.persistent.Create(ctx, storeID, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpCreate, order)
	writeItem(ctx, r.cache, r.logger, cache.KindOrder, order.ID, order)
	return order, nil
}

// MarkPaid records payment with the buyer's shipping details. Payment is
// the moment an order starts counting toward revenue.
func (r *CachedOrderRepo) MarkPaid(ctx context.Context, id, address, phone string) (*models.Order, error) {
	order, err := r.persistent.SetPaid(ctx, id, address, phone)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpPayment, order)
	writeItem(ctx, r.cache, r.logger, cache.KindOrder, order.ID, order)
	return order, nil
}

func (r *CachedOrderRepo) MarkDelivered(ctx context.Context, id string) (*models.Order, error) {
	order, err := r.persistent.SetDelivered(ctx, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpUpdate, order)
	writeItem(ctx, r.cache, r.logger, cache.KindOrder, order.ID, order)
	return order, nil
}

func (r *CachedOrderRepo) Delete(ctx context.Context, id string) error {
	order, err := r.persistent.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.persistent.Delete(ctx, order.ID); err != nil {
		return err
	}
	r.invalidate(ctx, cache.OpDelete, order)
	return nil
}

func (r *CachedOrderRepo) invalidate(ctx context.Context, op cache.Op, o *models.Order) {
	r.coord.Invalidate(ctx, cache.Mutation{
		Kind:    cache.KindOrder,
		Op:      op,
		ID:      o.ID,
		StoreID: o.StoreID,
		UserID:  o.UserID,
	})
}
