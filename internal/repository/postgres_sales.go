package repository

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// PostgresSalesStore derives paid-order counts. Like revenue, sales are
// never written anywhere: they are counted from orders on demand.
type PostgresSalesStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresSalesStore(db *sql.DB, logger *zap.Logger) *PostgresSalesStore {
	return &PostgresSalesStore{db: db, logger: logger.Named("postgres-sales")}
}

func (s *PostgresSalesStore) Total(ctx context.Context, storeID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE store_id = $1 AND is_paid = true
	`
	return s.count(ctx, query, storeID)
}

func (s *PostgresSalesStore) Between(ctx context.Context, storeID string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE store_id = $1 AND is_paid = true
		  AND created_at >= $2 AND created_at < $3
	`
	return s.count(ctx, query, storeID, from.UTC(), to.UTC())
}

func (s *PostgresSalesStore) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		s.logger.Error("failed to count sales", zap.Error(err))
		return 0, err
	}
	return n, nil
}
