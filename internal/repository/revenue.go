package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// CachedRevenueRepo serves derived revenue figures. It never writes
// revenue anywhere: figures are computed from paid orders on demand and
// cached per store and period. Order mutations purge the period slots;
// date slots are unbounded and expire by TTL alone.
type CachedRevenueRepo struct {
	persistent RevenueStore
	cache      cache.Store
	coord      *cache.Coordinator
	logger     *zap.Logger
	now        func() time.Time
}

func NewCachedRevenueRepo(persistent RevenueStore, c cache.Store, coord *cache.Coordinator, logger *zap.Logger) *CachedRevenueRepo {
	return &CachedRevenueRepo{
		persistent: persistent,
		cache:      c,
		coord:      coord,
		logger:     logger.Named("revenue"),
		now:        time.Now,
	}
}

// SetClock fixes the repo's notion of "now" for tests.
func (r *CachedRevenueRepo) SetClock(now func() time.Time) { r.now = now }

func (r *CachedRevenueRepo) Total(ctx context.Context, storeID string) (decimal.Decimal, error) {
	key := cache.RevenueKey(storeID, cache.PeriodLifetime)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) (decimal.Decimal, error) {
		return r.persistent.Total(ctx, storeID)
	})
}

func (r *CachedRevenueRepo) CurrentMonth(ctx context.Context, storeID string) (decimal.Decimal, error) {
	from, to := monthBounds(r.now().UTC(), 0)
	key := cache.RevenueKey(storeID, cache.PeriodCurrentMonth)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) (decimal.Decimal, error) {
		return r.persistent.Between(ctx, storeID, from, to)
	})
}

func (r *CachedRevenueRepo) PreviousMonth(ctx context.Context, storeID string) (decimal.Decimal, error) {
	from, to := monthBounds(r.now().UTC(), -1)
	key := cache.RevenueKey(storeID, cache.PeriodPreviousMonth)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) (decimal.Decimal, error) {
		return r.persistent.Between(ctx, storeID, from, to)
	})
}

// ForDate returns one calendar day's revenue. These slots are keyed by
// date, so no invalidation rule covers them; staleness is bounded by TTL.
func (r *CachedRevenueRepo) ForDate(ctx context.Context, storeID string, date time.Time) (decimal.Decimal, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	key := cache.RevenueKey(storeID, cache.RevenueDatePeriod(day))
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) (decimal.Decimal, error) {
		return r.persistent.Between(ctx, storeID, day, day.AddDate(0, 0, 1))
	})
}

// Series returns the current year's month-by-month revenue graph.
func (r *CachedRevenueRepo) Series(ctx context.Context, storeID string) ([]models.MonthRevenue, error) {
	key := cache.RevenueKey(storeID, cache.PeriodGraph)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) ([]models.MonthRevenue, error) {
		return r.persistent.Monthly(ctx, storeID)
	})
}

// monthBounds returns the [first, next-first) window for the month that
// is offset months away from t's month.
func monthBounds(t time.Time, offset int) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, offset, 0)
	return first, first.AddDate(0, 1, 0)
}
