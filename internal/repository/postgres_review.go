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

type PostgresReviewStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresReviewStore(db *sql.DB, logger *zap.Logger) *PostgresReviewStore {
	return &PostgresReviewStore{db: db, logger: logger.Named("postgres-reviews")}
}

func (s *PostgresReviewStore) GetByID(ctx context.Context, id string) (*models.Review, error) {
	query := `SELECT id, product_id, user_id, rating, comment, created_at FROM reviews WHERE id = $1`

	r := &models.Review{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.ProductID, &r.UserID, &r.Rating, &r.Comment, &r.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("review %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("failed to fetch review", zap.String("review_id", id), zap.Error(err))
		return nil, err
	}

	if r.Images, err = s.images(ctx, r.ID); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *PostgresReviewStore) images(ctx context.Context, reviewID string) ([]models.Image, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url FROM review_images WHERE review_id = $1 ORDER BY id`, reviewID)
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

func (s *PostgresReviewStore) ListByProduct(ctx context.Context, productID string, page, perPage int) ([]models.Review, error) {
	if page < 1 {
		page = 1
	}
	query := `
		SELECT id, product_id, user_id, rating, comment, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return s.list(ctx, query, productID, perPage, (page-1)*perPage)
}

func (s *PostgresReviewStore) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	query := `
		SELECT id, product_id, user_id, rating, comment, created_at
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return s.list(ctx, query, userID)
}

func (s *PostgresReviewStore) list(ctx context.Context, query string, args ...interface{}) ([]models.Review, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.ProductID, &r.UserID, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range reviews {
		if reviews[i].Images, err = s.images(ctx, reviews[i].ID); err != nil {
			return nil, err
		}
	}
	return reviews, nil
}

func (s *PostgresReviewStore) Create(ctx context.Context, productID, userID string, req *models.CreateReview) (*models.Review, error) {
	r := &models.Review{
		ID:        newID(),
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO reviews (id, product_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.ExecContext(ctx, query, r.ID, r.ProductID, r.UserID, r.Rating, r.Comment, r.CreatedAt); err != nil {
		s.logger.Error("failed to create review", zap.String("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("create review: %w", mapForeignKey(err))
	}

	for _, img := range req.Images {
		image := models.Image{ID: newID(), URL: img.URL}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO review_images (id, review_id, url) VALUES ($1, $2, $3)`,
			image.ID, r.ID, image.URL); err != nil {
			return nil, err
		}
		r.Images = append(r.Images, image)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes a review only if it belongs to the given user.
func (s *PostgresReviewStore) Delete(ctx context.Context, id, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM review_images WHERE review_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		s.logger.Error("failed to delete review", zap.String("review_id", id), zap.Error(err))
		return err
	}
	if err := rowsAffectedOrNotFound(result, "review", id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *PostgresReviewStore) HasOrderedProduct(ctx context.Context, userID, productID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM orders o
			JOIN order_items oi ON oi.order_id = o.id
			WHERE o.user_id = $1 AND oi.product_id = $2 AND o.is_paid = true
		)
	`
	var ordered bool
	if err := s.db.QueryRowContext(ctx, query, userID, productID).Scan(&ordered); err != nil {
		return false, err
	}
	return ordered, nil
}

func (s *PostgresReviewStore) HasReviewed(ctx context.Context, userID, productID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1 AND product_id = $2)`

	var reviewed bool
	if err := s.db.QueryRowContext(ctx, query, userID, productID).Scan(&reviewed); err != nil {
		return false, err
	}
	return reviewed, nil
}
