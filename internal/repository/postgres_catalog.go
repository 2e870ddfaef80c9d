package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// Postgres stores for the simple catalog entities: billboards, categories,
// colors and sizes. All of them list newest first.

type PostgresBillboardStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresBillboardStore(db *sql.DB, logger *zap.Logger) *PostgresBillboardStore {
	return &PostgresBillboardStore{db: db, logger: logger.Named("postgres-billboards")}
}

func (s *PostgresBillboardStore) GetByID(ctx context.Context, id string) (*models.Billboard, error) {
	query := `SELECT id, store_id, label, image_url, created_at FROM billboards WHERE id = $1`

	b := &models.Billboard{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("billboard %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("failed to fetch billboard", zap.String("billboard_id", id), zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (s *PostgresBillboardStore) ListByStore(ctx context.Context, storeID string) ([]models.Billboard, error) {
	query := `
		SELECT id, store_id, label, image_url, created_at
		FROM billboards
		WHERE store_id = $1
		ORDER BY created_at DESC
	`
	return s.list(ctx, query, storeID)
}

func (s *PostgresBillboardStore) ListAll(ctx context.Context) ([]models.Billboard, error) {
	query := `
		SELECT id, store_id, label, image_url, created_at
		FROM billboards
		ORDER BY created_at DESC
	`
	return s.list(ctx, query)
}

func (s *PostgresBillboardStore) list(ctx context.Context, query string, args ...interface{}) ([]models.Billboard, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var billboards []models.Billboard
	for rows.Next() {
		var b models.Billboard
		if err := rows.Scan(&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt); err != nil {
			return nil, err
		}
		billboards = append(billboards, b)
	}
	return billboards, rows.Err()
}

func (s *PostgresBillboardStore) Create(ctx context.Context, storeID string, req *models.CreateBillboard) (*models.Billboard, error) {
	b := &models.Billboard{
		ID:        newID(),
		StoreID:   storeID,
		Label:     req.Label,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now().UTC(),
	}

	query := `INSERT INTO billboards (id, store_id, label, image_url, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := s.db.ExecContext(ctx, query, b.ID, b.StoreID, b.Label, b.ImageURL, b.CreatedAt); err != nil {
		s.logger.Error("failed to create billboard", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (s *PostgresBillboardStore) Update(ctx context.Context, id string, req *models.CreateBillboard) (*models.Billboard, error) {
	query := `UPDATE billboards SET label = $1, image_url = $2 WHERE id = $3`
	result, err := s.db.ExecContext(ctx, query, req.Label, req.ImageURL, id)
	if err != nil {
		s.logger.Error("failed to update billboard", zap.String("billboard_id", id), zap.Error(err))
		return nil, err
	}
	if err := rowsAffectedOrNotFound(result, "billboard", id); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *PostgresBillboardStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM billboards WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete billboard", zap.String("billboard_id", id), zap.Error(err))
		return err
	}
	return rowsAffectedOrNotFound(result, "billboard", id)
}

type PostgresCategoryStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresCategoryStore(db *sql.DB, logger *zap.Logger) *PostgresCategoryStore {
	return &PostgresCategoryStore{db: db, logger: logger.Named("postgres-categories")}
}

func (s *PostgresCategoryStore) GetByID(ctx context.Context, id string) (*models.Category, error) {
	query := `
		SELECT id, store_id, billboard_id, name, gender, image_url, created_at
		FROM categories
		WHERE id = $1
	`
	c := &models.Category{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.Gender, &c.ImageURL, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("failed to fetch category", zap.String("category_id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *PostgresCategoryStore) ListByStore(ctx context.Context, storeID string) ([]models.Category, error) {
	query := `
		SELECT id, store_id, billboard_id, name, gender, image_url, created_at
		FROM categories
		WHERE store_id = $1
		ORDER BY created_at DESC
	`
	return s.list(ctx, query, storeID)
}

func (s *PostgresCategoryStore) ListByGender(ctx context.Context, storeID, gender string) ([]models.Category, error) {
	query := `
		SELECT id, store_id, billboard_id, name, gender, image_url, created_at
		FROM categories
		WHERE store_id = $1 AND gender = $2
		ORDER BY created_at DESC
	`
	return s.list(ctx, query, storeID, gender)
}

func (s *PostgresCategoryStore) list(ctx context.Context, query string, args ...interface{}) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.Gender, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *PostgresCategoryStore) Create(ctx context.Context, storeID string, req *models.CreateCategory) (*models.Category, error) {
	c := &models.Category{
		ID:          newID(),
		StoreID:     storeID,
		BillboardID: req.BillboardID,
		Name:        req.Name,
		Gender:      req.Gender,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}

	query := `
		INSERT INTO categories (id, store_id, billboard_id, name, gender, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := s.db.ExecContext(ctx, query,
		c.ID, c.StoreID, c.BillboardID, c.Name, c.Gender, c.ImageURL, c.CreatedAt); err != nil {
		s.logger.Error("failed to create category", zap.String("store_id", storeID), zap.Error(err))
		return nil, fmt.Errorf("create category: %w", mapForeignKey(err))
	}
	return c, nil
}

func (s *PostgresCategoryStore) Update(ctx context.Context, id string, req *models.CreateCategory) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = $1, gender = $2, image_url = $3, billboard_id = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query, req.Name, req.Gender, req.ImageURL, req.BillboardID, id)
	if err != nil {
		s.logger.Error("failed to update category", zap.String("category_id", id), zap.Error(err))
		return nil, fmt.Errorf("update category: %w", mapForeignKey(err))
	}
	if err := rowsAffectedOrNotFound(result, "category", id); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *PostgresCategoryStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete category", zap.String("category_id", id), zap.Error(err))
		return err
	}
	return rowsAffectedOrNotFound(result, "category", id)
}

type PostgresColorStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresColorStore(db *sql.DB, logger *zap.Logger) *PostgresColorStore {
	return &PostgresColorStore{db: db, logger: logger.Named("postgres-colors")}
}

func (s *PostgresColorStore) GetByID(ctx context.Context, id string) (*models.Color, error) {
	query := `SELECT id, store_id, name, value, created_at FROM colors WHERE id = $1`

	c := &models.Color{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.StoreID, &c.Name, &c.Value, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("color %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("failed to fetch color", zap.String("color_id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *PostgresColorStore) ListByStore(ctx context.Context, storeID string) ([]models.Color, error) {
	query := `
		SELECT id, store_id, name, value, created_at
		FROM colors
		WHERE store_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colors []models.Color
	for rows.Next() {
		var c models.Color
		if err := rows.Scan(&c.ID, &c.StoreID, &c.Name, &c.Value, &c.CreatedAt); err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, rows.Err()
}

func (s *PostgresColorStore) Create(ctx context.Context, storeID string, req *models.CreateColor) (*models.Color, error) {
	c := &models.Color{
		ID:        newID(),
		StoreID:   storeID,
		Name:      req.Name,
		Value:     req.Value,
		CreatedAt: time.Now().UTC(),
	}

	query := `INSERT INTO colors (id, store_id, name, value, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := s.db.ExecContext(ctx, query, c.ID, c.StoreID, c.Name, c.Value, c.CreatedAt); err != nil {
		s.logger.Error("failed to create color", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *PostgresColorStore) Update(ctx context.Context, id string, req *models.CreateColor) (*models.Color, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE colors SET name = $1, value = $2 WHERE id = $3`, req.Name, req.Value, id)
	if err != nil {
		s.logger.Error("failed to update color", zap.String("color_id", id), zap.Error(err))
		return nil, err
	}
	if err := rowsAffectedOrNotFound(result, "color", id); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *PostgresColorStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM colors WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete color", zap.String("color_id", id), zap.Error(err))
		return err
	}
	return rowsAffectedOrNotFound(result, "color", id)
}

type PostgresSizeStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresSizeStore(db *sql.DB, logger *zap.Logger) *PostgresSizeStore {
	return &PostgresSizeStore{db: db, logger: logger.Named("postgres-sizes")}
}

func (s *PostgresSizeStore) GetByID(ctx context.Context, id string) (*models.Size, error) {
	query := `SELECT id, store_id, name, value, created_at FROM sizes WHERE id = $1`

	size := &models.Size{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(&size.ID, &size.StoreID, &size.Name, &size.Value, &size.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("size %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("failed to fetch size", zap.String("size_id", id), zap.Error(err))
		return nil, err
	}
	return size, nil
}

func (s *PostgresSizeStore) ListByStore(ctx context.Context, storeID string) ([]models.Size, error) {
	query := `
		SELECT id, store_id, name, value, created_at
		FROM sizes
		WHERE store_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sizes []models.Size
	for rows.Next() {
		var size models.Size
		if err := rows.Scan(&size.ID, &size.StoreID, &size.Name, &size.Value, &size.CreatedAt); err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, rows.Err()
}

func (s *PostgresSizeStore) Create(ctx context.Context, storeID string, req *models.CreateSize) (*models.Size, error) {
	size := &models.Size{
		ID:        newID(),
		StoreID:   storeID,
		Name:      req.Name,
		Value:     req.Value,
		CreatedAt: time.Now().UTC(),
	}

	query := `INSERT INTO sizes (id, store_id, name, value, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := s.db.ExecContext(ctx, query, size.ID, size.StoreID, size.Name, size.Value, size.CreatedAt); err != nil {
		s.logger.Error("failed to create size", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}
	return size, nil
}

func (s *PostgresSizeStore) Update(ctx context.Context, id string, req *models.CreateSize) (*models.Size, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE sizes SET name = $1, value = $2 WHERE id = $3`, req.Name, req.Value, id)
	if err != nil {
		s.logger.Error("failed to update size", zap.String("size_id", id), zap.Error(err))
		return nil, err
	}
	if err := rowsAffectedOrNotFound(result, "size", id); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *PostgresSizeStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sizes WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete size", zap.String("size_id", id), zap.Error(err))
		return err
	}
	return rowsAffectedOrNotFound(result, "size", id)
}
