package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// OpenPostgres opens the process-wide connection pool. Called once at
// startup; the pool is shared by every store.
func OpenPostgres(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// NewPostgresStores wires every per-entity store onto one shared pool.
func NewPostgresStores(db *sql.DB, logger *zap.Logger) Stores {
	return Stores{
		Stores:     NewPostgresStoreStore(db, logger),
		Billboards: NewPostgresBillboardStore(db, logger),
		Categories: NewPostgresCategoryStore(db, logger),
		Colors:     NewPostgresColorStore(db, logger),
		Sizes:      NewPostgresSizeStore(db, logger),
		Products:   NewPostgresProductStore(db, logger),
		Orders:     NewPostgresOrderStore(db, logger),
		Reviews:    NewPostgresReviewStore(db, logger),
		Revenue:    NewPostgresRevenueStore(db, logger),
		Sales:      NewPostgresSalesStore(db, logger),
	}
}

// PostgresStoreStore persists the Store (tenant) entity.
type PostgresStoreStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStoreStore(db *sql.DB, logger *zap.Logger) *PostgresStoreStore {
	return &PostgresStoreStore{db: db, logger: logger.Named("postgres-stores")}
}

func (s *PostgresStoreStore) GetByID(ctx context.Context, id string) (*models.Store, error) {
	query := `SELECT id, name, user_id, created_at FROM stores WHERE id = $1`

	store := &models.Store{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&store.ID, &store.Name, &store.UserID, &store.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("store %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("failed to fetch store", zap.String("store_id", id), zap.Error(err))
		return nil, err
	}
	return store, nil
}

func (s *PostgresStoreStore) Create(ctx context.Context, req *models.CreateStore) (*models.Store, error) {
	store := &models.Store{
		ID:        newID(),
		Name:      req.Name,
		UserID:    req.UserID,
		CreatedAt: time.Now().UTC(),
	}

	query := `INSERT INTO stores (id, name, user_id, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := s.db.ExecContext(ctx, query, store.ID, store.Name, store.UserID, store.CreatedAt); err != nil {
		s.logger.Error("failed to create store", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return store, nil
}

func (s *PostgresStoreStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete store", zap.String("store_id", id), zap.Error(err))
		return err
	}
	return rowsAffectedOrNotFound(result, "store", id)
}

// parsePrice converts a NUMERIC column value into a decimal.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", raw, err)
	}
	return price, nil
}

// mapForeignKey surfaces referential-integrity and uniqueness violations
// as ErrConflict so callers see the taxonomy, not driver internals.
func mapForeignKey(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503", "23505": // foreign_key_violation, unique_violation
			return fmt.Errorf("%s: %w", pqErr.Message, apperrors.ErrConflict)
		}
	}
	return err
}

// rowsAffectedOrNotFound maps a zero-row mutation to ErrNotFound.
func rowsAffectedOrNotFound(result sql.Result, kind, id string) error {
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, apperrors.ErrNotFound)
	}
	return nil
}
