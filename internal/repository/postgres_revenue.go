package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// PostgresRevenueStore derives revenue figures from paid orders.
type PostgresRevenueStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresRevenueStore(db *sql.DB, logger *zap.Logger) *PostgresRevenueStore {
	return &PostgresRevenueStore{db: db, logger: logger.Named("postgres-revenue")}
}

func (s *PostgresRevenueStore) Total(ctx context.Context, storeID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(oi.unit_price * oi.quantity), 0)
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.store_id = $1 AND o.is_paid = true
	`
	return s.sum(ctx, query, storeID)
}

func (s *PostgresRevenueStore) Between(ctx context.Context, storeID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(oi.unit_price * oi.quantity), 0)
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.store_id = $1 AND o.is_paid = true
		  AND o.created_at >= $2 AND o.created_at < $3
	`
	return s.sum(ctx, query, storeID, from.UTC(), to.UTC())
}

func (s *PostgresRevenueStore) sum(ctx context.Context, query string, args ...interface{}) (decimal.Decimal, error) {
	var raw string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		s.logger.Error("failed to sum revenue", zap.Error(err))
		return decimal.Zero, err
	}
	return parsePrice(raw)
}

// Monthly returns the current year's revenue grouped by month, with
// zero entries for months that had no paid orders.
func (s *PostgresRevenueStore) Monthly(ctx context.Context, storeID string) ([]models.MonthRevenue, error) {
	query := `
		SELECT EXTRACT(MONTH FROM o.created_at)::int, SUM(oi.unit_price * oi.quantity)
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.store_id = $1 AND o.is_paid = true
		  AND EXTRACT(YEAR FROM o.created_at) = EXTRACT(YEAR FROM now())
		GROUP BY 1
	`
	rows, err := s.db.QueryContext(ctx, query, storeID)
	if err != nil {
		s.logger.Error("failed to fetch monthly revenue", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	series := emptyMonthSeries()
	for rows.Next() {
		var month int
		var raw string
		if err := rows.Scan(&month, &raw); err != nil {
			return nil, err
		}
		total, err := parsePrice(raw)
		if err != nil {
			return nil, err
		}
		if month >= 1 && month <= len(series) {
			series[month-1].Total = total
		}
	}
	return series, rows.Err()
}
