package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// reviewsPerPage is the fixed storefront page size for product reviews.
const reviewsPerPage = 3

type CachedReviewRepo struct {
	persistent ReviewStore
	cache      cache.Store
	coord      *cache.Coordinator
	logger     *zap.Logger
}

func NewCachedReviewRepo(persistent ReviewStore, c cache.Store, coord *cache.Coordinator, logger *zap.Logger) *CachedReviewRepo {
	return &CachedReviewRepo{
		persistent: persistent,
		cache:      c,
		coord:      coord,
		logger:     logger.Named("reviews"),
	}
}

func (r *CachedReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	return itemThrough(ctx, r.cache, r.logger, cache.KindReview, id, func(ctx context.Context) (*models.Review, error) {
		return r.persistent.GetByID(ctx, id)
	})
}

// ProductPage returns one page of a product's reviews with the page's
// average rating. An empty page is not-found and stays uncached.
func (r *CachedReviewRepo) ProductPage(ctx context.Context, productID string, page int) (*models.ReviewPage, error) {
	if page < 1 {
		page = 1
	}
	key := cache.ReviewPageKey(productID, page, reviewsPerPage)
	return listThrough(ctx, r.cache, r.logger, key, func(ctx context.Context) (*models.ReviewPage, error) {
		reviews, err := r.persistent.ListByProduct(ctx, productID, page, reviewsPerPage)
		if err != nil {
			return nil, err
		}
		if len(reviews) == 0 {
			return nil, fmt.Errorf("reviews for product %s page %d: %w", productID, page, apperrors.ErrNotFound)
		}
		return &models.ReviewPage{
			Reviews:       reviews,
			AverageRating: averageRating(reviews),
		}, nil
	})
}

func averageRating(reviews []models.Review) decimal.Decimal {
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(reviews))))
}

func (r *CachedReviewRepo) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return listThrough(ctx, r.cache, r.logger, cache.UserReviewsKey(userID), func(ctx context.Context) ([]models.Review, error) {
		return r.persistent.ListByUser(ctx, userID)
	})
}

// Eligible reports whether a user may review a product: they must have
// a paid order containing it and must not have reviewed it already.
// These checks always go to the source; eligibility is never cached.
func (r *CachedReviewRepo) Eligible(ctx context.Context, userID, productID string) (bool, error) {
	ordered, err := r.persistent.HasOrderedProduct(ctx, userID, productID)
	if err != nil {
		return false, err
	}
	if !ordered {
		return false, nil
	}
	reviewed, err := r.persistent.HasReviewed(ctx, userID, productID)
	if err != nil {
		return false, err
	}
	return !reviewed, nil
}

// Create enforces the review eligibility rules before writing: the user
// must have a paid order containing the product and must not have
// reviewed it already.
func (r *CachedReviewRepo) Create(ctx context.Context, productID, userID string, req *models.CreateReview) (*models.Review, error) {
	ordered, err := r.persistent.HasOrderedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if !ordered {
		return nil, fmt.Errorf("user %s has not purchased product %s: %w", userID, productID, apperrors.ErrConflict)
	}

	reviewed, err := r.persistent.HasReviewed(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, fmt.Errorf("user %s already reviewed product %s: %w", userID, productID, apperrors.ErrConflict)
	}

	review, err := r.persistent.Create(ctx, productID, userID, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, cache.OpCreate, review)
	writeItem(ctx, r.cache, r.logger, cache.KindReview, review.ID, review)
	return review, nil
}

func (r *CachedReviewRepo) Delete(ctx context.Context, id, userID string) error {
	review, err := r.persistent.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.persistent.Delete(ctx, review.ID, userID); err != nil {
		return err
	}
	r.invalidate(ctx, cache.OpDelete, review)
	return nil
}

func (r *CachedReviewRepo) invalidate(ctx context.Context, op cache.Op, review *models.Review) {
	r.coord.Invalidate(ctx, cache.Mutation{
		Kind:      cache.KindReview,
		Op:        op,
		ID:        review.ID,
		UserID:    review.UserID,
		ProductID: review.ProductID,
	})
}
