package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// CachedSalesRepo serves derived paid-order counts per store. Like
// revenue, counts are computed on demand, cached per store and period,
// and purged by order mutations.
type CachedSalesRepo struct {
	persistent SalesStore
	cache      cache.Store
	coord      *cache.Coordinator
	logger     *zap.Logger
	now        func() time.Time
}

func NewCachedSalesRepo(persistent SalesStore, c cache.Store, coord *cache.Coordinator, logger *zap.Logger) *CachedSalesRepo {
	return &CachedSalesRepo{
		persistent: persistent,
		cache:      c,
		coord:      coord,
		logger:     logger.Named("sales"),
		now:        time.Now,
	}
}

// SetClock fixes the repo's notion of "now" for tests.
func (r *CachedSalesRepo) SetClock(now func() time.Time) { r.now = now }

func (r *CachedSalesRepo) Total(ctx context.Context, storeID string) (int, error) {
	key := cache.SalesKey(storeID, cache.PeriodLifetime)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) (int, error) {
		return r.persistent.Total(ctx, storeID)
	})
}

func (r *CachedSalesRepo) Today(ctx context.Context, storeID string) (int, error) {
	day := startOfDay(r.now().UTC())
	key := cache.SalesKey(storeID, cache.PeriodToday)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) (int, error) {
		return r.persistent.Between(ctx, storeID, day, day.AddDate(0, 0, 1))
	})
}

// ThisWeek counts the trailing seven days, today included.
func (r *CachedSalesRepo) ThisWeek(ctx context.Context, storeID string) (int, error) {
	day := startOfDay(r.now().UTC())
	key := cache.SalesKey(storeID, cache.PeriodWeek)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) (int, error) {
		return r.persistent.Between(ctx, storeID, day.AddDate(0, 0, -6), day.AddDate(0, 0, 1))
	})
}

func (r *CachedSalesRepo) ThisMonth(ctx context.Context, storeID string) (int, error) {
	from, to := monthBounds(r.now().UTC(), 0)
	key := cache.SalesKey(storeID, cache.PeriodMonth)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) (int, error) {
		return r.persistent.Between(ctx, storeID, from, to)
	})
}

func (r *CachedSalesRepo) ThisYear(ctx context.Context, storeID string) (int, error) {
	t := r.now().UTC()
	from := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	key := cache.SalesKey(storeID, cache.PeriodYear)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) (int, error) {
		return r.persistent.Between(ctx, storeID, from, from.AddDate(1, 0, 0))
	})
}

// Summary collects every counter for the dashboard payload. Each counter
// keeps its own cache slot, so a partially warm cache still only fetches
// what it is missing.
func (r *CachedSalesRepo) Summary(ctx context.Context, storeID string) (*models.SalesSummary, error) {
	total, err := r.Total(ctx, storeID)
	if err != nil {
		return nil, err
	}
	today, err := r.Today(ctx, storeID)
	if err != nil {
		return nil, err
	}
	week, err := r.ThisWeek(ctx, storeID)
	if err != nil {
		return nil, err
	}
	month, err := r.ThisMonth(ctx, storeID)
	if err != nil {
		return nil, err
	}
	year, err := r.ThisYear(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &models.SalesSummary{
		Total: total,
		Today: today,
		Week:  week,
		Month: month,
		Year:  year,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
