// Package repository implements the catalog service's data access layer:
// typed persistent stores (Postgres) wrapped by cache-aside repositories
// that read through Redis and invalidate through the cache coordinator.
package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// The *Store interfaces are the persistent ground truth. They are assumed
// transactional and strongly consistent; the cache layer never writes to
// them on a read path and never treats the cache as authoritative.

type StoreStore interface {
	GetByID(ctx context.Context, id string) (*models.Store, error)
	Create(ctx context.Context, req *models.CreateStore) (*models.Store, error)
	Delete(ctx context.Context, id string) error
}

type BillboardStore interface {
	GetByID(ctx context.Context, id string) (*models.Billboard, error)
	ListByStore(ctx context.Context, storeID string) ([]models.Billboard, error)
	ListAll(ctx context.Context) ([]models.Billboard, error)
	Create(ctx context.Context, storeID string, req *models.CreateBillboard) (*models.Billboard, error)
	Update(ctx context.Context, id string, req *models.CreateBillboard) (*models.Billboard, error)
	Delete(ctx context.Context, id string) error
}

type CategoryStore interface {
	GetByID(ctx context.Context, id string) (*models.Category, error)
	ListByStore(ctx context.Context, storeID string) ([]models.Category, error)
	ListByGender(ctx context.Context, storeID, gender string) ([]models.Category, error)
	Create(ctx context.Context, storeID string, req *models.CreateCategory) (*models.Category, error)
	Update(ctx context.Context, id string, req *models.CreateCategory) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type ColorStore interface {
	GetByID(ctx context.Context, id string) (*models.Color, error)
	ListByStore(ctx context.Context, storeID string) ([]models.Color, error)
	Create(ctx context.Context, storeID string, req *models.CreateColor) (*models.Color, error)
	Update(ctx context.Context, id string, req *models.CreateColor) (*models.Color, error)
	Delete(ctx context.Context, id string) error
}

type SizeStore interface {
	GetByID(ctx context.Context, id string) (*models.Size, error)
	ListByStore(ctx context.Context, storeID string) ([]models.Size, error)
	Create(ctx context.Context, storeID string, req *models.CreateSize) (*models.Size, error)
	Update(ctx context.Context, id string, req *models.CreateSize) (*models.Size, error)
	Delete(ctx context.Context, id string) error
}

type ProductStore interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
	ListByStore(ctx context.Context, storeID string, filter models.ProductFilter) ([]models.Product, error)
	Create(ctx context.Context, storeID string, req *models.CreateProduct) (*models.Product, error)
	Update(ctx context.Context, id string, req *models.CreateProduct) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type OrderStore interface {
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListByStore(ctx context.Context, storeID string) ([]models.Order, error)
	ListByUser(ctx context.Context, userID string, delivered bool) ([]models.Order, error)
	Create(ctx context.Context, storeID string, req *models.CreateOrder) (*models.Order, error)
	SetDelivered(ctx context.Context, id string, at time.Time) (*models.Order, error)
	SetPaid(ctx context.Context, id, address, phone string) (*models.Order, error)
	Delete(ctx context.Context, id string) error
}

type ReviewStore interface {
	GetByID(ctx context.Context, id string) (*models.Review, error)
	ListByProduct(ctx context.Context, productID string, page, perPage int) ([]models.Review, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
	Create(ctx context.Context, productID, userID string, req *models.CreateReview) (*models.Review, error)
	Delete(ctx context.Context, id, userID string) error
	HasOrderedProduct(ctx context.Context, userID, productID string) (bool, error)
	HasReviewed(ctx context.Context, userID, productID string) (bool, error)
}

type RevenueStore interface {
	Total(ctx context.Context, storeID string) (decimal.Decimal, error)
	Between(ctx context.Context, storeID string, from, to time.Time) (decimal.Decimal, error)
	Monthly(ctx context.Context, storeID string) ([]models.MonthRevenue, error)
}

// SalesStore derives a store's paid-order counts.
type SalesStore interface {
	Total(ctx context.Context, storeID string) (int, error)
	Between(ctx context.Context, storeID string, from, to time.Time) (int, error)
}

// Stores bundles the persistent implementations handed to New.
type Stores struct {
	Stores     StoreStore
	Billboards BillboardStore
	Categories CategoryStore
	Colors     ColorStore
	Sizes      SizeStore
	Products   ProductStore
	Orders     OrderStore
	Reviews    ReviewStore
	Revenue    RevenueStore
	Sales      SalesStore
}

// Interface compliance for both backends.
var (
	_ StoreStore     = (*PostgresStoreStore)(nil)
	_ BillboardStore = (*PostgresBillboardStore)(nil)
	_ CategoryStore  = (*PostgresCategoryStore)(nil)
	_ ColorStore     = (*PostgresColorStore)(nil)
	_ SizeStore      = (*PostgresSizeStore)(nil)
	_ ProductStore   = (*PostgresProductStore)(nil)
	_ OrderStore     = (*PostgresOrderStore)(nil)
	_ ReviewStore    = (*PostgresReviewStore)(nil)
	_ RevenueStore   = (*PostgresRevenueStore)(nil)
	_ SalesStore     = (*PostgresSalesStore)(nil)

	_ StoreStore     = (*memoryStores)(nil)
	_ BillboardStore = (*memoryBillboards)(nil)
	_ CategoryStore  = (*memoryCategories)(nil)
	_ ColorStore     = (*memoryColors)(nil)
	_ SizeStore      = (*memorySizes)(nil)
	_ ProductStore   = (*memoryProducts)(nil)
	_ OrderStore     = (*memoryOrders)(nil)
	_ ReviewStore    = (*memoryReviews)(nil)
	_ RevenueStore   = (*memoryRevenue)(nil)
	_ SalesStore     = (*memorySales)(nil)
)
