package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

type PostgresProductStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresProductStore(db *sql.DB, logger *zap.Logger) *PostgresProductStore {
	return &PostgresProductStore{db: db, logger: logger.Named("postgres-products")}
}

func (s *PostgresProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `
		SELECT id, store_id, category_id, color_id, size_id, name, price, is_featured, created_at
		FROM products
		WHERE id = $1
	`
	p := &models.Product{}
	var price string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.StoreID, &p.CategoryID, &p.ColorID, &p.SizeID,
		&p.Name, &price, &p.IsFeatured, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("failed to fetch product", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}
	if p.Price, err = parsePrice(price); err != nil {
		return nil, err
	}

	if p.Images, err = s.images(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostgresProductStore) images(ctx context.Context, productID string) ([]models.Image, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url FROM product_images WHERE product_id = $1 ORDER BY id`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.ID, &img.URL); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (s *PostgresProductStore) ListByStore(ctx context.Context, storeID string, filter models.ProductFilter) ([]models.Product, error) {
	f := filter.Normalize()

	query := `
		SELECT id, store_id, category_id, color_id, size_id, name, price, is_featured, created_at
		FROM products
		WHERE store_id = $1
	`
	args := []interface{}{storeID}
	argNum := 2

	if f.CategoryID != "" {
		query += " AND category_id = $" + strconv.Itoa(argNum)
		args = append(args, f.CategoryID)
		argNum++
	}
	if f.MinPrice != nil {
		query += " AND price >= $" + strconv.Itoa(argNum)
		args = append(args, f.MinPrice.String())
		argNum++
	}
	if f.MaxPrice != nil {
		query += " AND price <= $" + strconv.Itoa(argNum)
		args = append(args, f.MaxPrice.String())
		argNum++
	}
	if f.Featured != nil {
		query += " AND is_featured = $" + strconv.Itoa(argNum)
		args = append(args, *f.Featured)
		argNum++
	}

	query += " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(argNum) +
		" OFFSET $" + strconv.Itoa(argNum+1)
	args = append(args, f.PerPage, (f.Page-1)*f.PerPage)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var price string
		if err := rows.Scan(
			&p.ID, &p.StoreID, &p.CategoryID, &p.ColorID, &p.SizeID,
			&p.Name, &price, &p.IsFeatured, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		if p.Price, err = parsePrice(price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// List views carry the first image only, matching the storefront grid.
	for i := range products {
		images, err := s.images(ctx, products[i].ID)
		if err != nil {
			return nil, err
		}
		if len(images) > 0 {
			products[i].Images = images[:1]
		}
	}
	return products, nil
}

func (s *PostgresProductStore) Create(ctx context.Context, storeID string, req *models.CreateProduct) (*models.Product, error) {
	p := &models.Product{
		ID:         newID(),
		StoreID:    storeID,
		CategoryID: req.CategoryID,
		ColorID:    req.ColorID,
		SizeID:     req.SizeID,
		Name:       req.Name,
		Price:      req.Price,
		IsFeatured: req.IsFeatured,
		CreatedAt:  time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (id, store_id, category_id, color_id, size_id, name, price, is_featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := tx.ExecContext(ctx, query,
		p.ID, p.StoreID, p.CategoryID, p.ColorID, p.SizeID,
		p.Name, p.Price.String(), p.IsFeatured, p.CreatedAt); err != nil {
		s.logger.Error("failed to create product", zap.String("store_id", storeID), zap.Error(err))
		return nil, fmt.Errorf("create product: %w", mapForeignKey(err))
	}

	for _, img := range req.Images {
		image := models.Image{ID: newID(), URL: img.URL}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO product_images (id, product_id, url) VALUES ($1, $2, $3)`,
			image.ID, p.ID, image.URL); err != nil {
			return nil, err
		}
		p.Images = append(p.Images, image)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostgresProductStore) Update(ctx context.Context, id string, req *models.CreateProduct) (*models.Product, error) {
	query := `
		UPDATE products
		SET name = $1, price = $2, category_id = $3, color_id = $4, size_id = $5, is_featured = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(ctx, query,
		req.Name, req.Price.String(), req.CategoryID, req.ColorID, req.SizeID, req.IsFeatured, id)
	if err != nil {
		s.logger.Error("failed to update product", zap.String("product_id", id), zap.Error(err))
		return nil, fmt.Errorf("update product: %w", mapForeignKey(err))
	}
	if err := rowsAffectedOrNotFound(result, "product", id); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *PostgresProductStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete product", zap.String("product_id", id), zap.Error(err))
		return err
	}
	if err := rowsAffectedOrNotFound(result, "product", id); err != nil {
		return err
	}
	return tx.Commit()
}
