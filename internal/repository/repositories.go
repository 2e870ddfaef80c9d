package repository

import (
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
)

// Repositories is the service-facing data access surface. Every
// repository follows the same contract: reads go cache-first and fall
// through to the persistent store, writes commit to the persistent store
// first and then invalidate through the coordinator. Cache failures never
// surface to callers.
type Repositories struct {
	Stores     *CachedStoreRepo
	Billboards *CachedBillboardRepo
	Categories *CachedCategoryRepo
	Colors     *CachedColorRepo
	Sizes      *CachedSizeRepo
	Products   *CachedProductRepo
	Orders     *CachedOrderRepo
	Reviews    *CachedReviewRepo
	Revenue    *CachedRevenueRepo
	Sales      *CachedSalesRepo
}

func New(stores Stores, c cache.Store, coord *cache.Coordinator, logger *zap.Logger) *Repositories {
	return &Repositories{
		Stores:     NewCachedStoreRepo(stores.Stores, c, coord, logger),
		Billboards: NewCachedBillboardRepo(stores.Billboards, c, coord, logger),
		Categories: NewCachedCategoryRepo(stores.Categories, c, coord, logger),
		Colors:     NewCachedColorRepo(stores.Colors, c, coord, logger),
		Sizes:      NewCachedSizeRepo(stores.Sizes, c, coord, logger),
		Products:   NewCachedProductRepo(stores.Products, c, coord, logger),
		Orders:     NewCachedOrderRepo(stores.Orders, c, coord, logger),
		Reviews:    NewCachedReviewRepo(stores.Reviews, c, coord, logger),
		Revenue:    NewCachedRevenueRepo(stores.Revenue, c, coord, logger),
		Sales:      NewCachedSalesRepo(stores.Sales, c, coord, logger),
	}
}
