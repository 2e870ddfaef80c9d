package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/cache"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

func newTestRepos(t *testing.T) (*Repositories, *MemoryBackend, *cache.MemoryStore) {
	t.Helper()
	backend := NewMemoryBackend()
	store := cache.NewMemoryStore()
	coord := cache.NewCoordinator(store, zap.NewNop())
	repos := New(backend.Stores(), store, coord, zap.NewNop())
	return repos, backend, store
}

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func createProduct(t *testing.T, repos *Repositories, storeID string, p decimal.Decimal) *models.Product {
	t.Helper()
	product, err := repos.Products.Create(context.Background(), storeID, &models.CreateProduct{
		Name:       "tee",
		Price:      p,
		CategoryID: "cat-1",
		ColorID:    "col-1",
		SizeID:     "siz-1",
	})
	require.NoError(t, err)
	return product
}

func createPaidOrder(t *testing.T, repos *Repositories, storeID, userID, productID string, qty int) *models.Order {
	t.Helper()
	ctx := context.Background()
	order, err := repos.Orders.Create(ctx, storeID, &models.CreateOrder{
		UserID: userID,
		Items:  []models.CreateOrderItem{{ProductID: productID, Quantity: qty}},
	})
	require.NoError(t, err)
	paid, err := repos.Orders.MarkPaid(ctx, order.ID, "1 Main St", "555-0100")
	require.NoError(t, err)
	return paid
}

func TestProductUpdateIsVisibleImmediately(t *testing.T) {
	repos, _, _ := newTestRepos(t)
	ctx := context.Background()

	product := createProduct(t, repos, "s1", price(100))

	// Warm both the item slot and the list slot.
	got, err := repos.Products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(price(100)))

	listed, err := repos.Products.ListByStore(ctx, "s1", models.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	_, err = repos.Products.Update(ctx, product.ID, &models.CreateProduct{
		Name:       "tee",
		Price:      price(150),
		CategoryID: "cat-1",
		ColorID:    "col-1",
		SizeID:     "siz-1",
	})
	require.NoError(t, err)

	got, err = repos.Products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(price(150)), "by-id read returned stale price %s", got.Price)

	listed, err = repos.Products.ListByStore(ctx, "s1", models.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Price.Equal(price(150)), "list read returned stale price %s", listed[0].Price)
}

func TestProductListServedFromCacheUntilInvalidated(t *testing.T) {
	repos, backend, _ := newTestRepos(t)
	ctx := context.Background()

	product := createProduct(t, repos, "s1", price(100))

	listed, err := repos.Products.ListByStore(ctx, "s1", models.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// A write that bypasses the repository layer is invisible until the
	// slot is invalidated or expires.
	_, err = backend.Stores().Products.Update(ctx, product.ID, &models.CreateProduct{
		Name:       "tee",
		Price:      price(999),
		CategoryID: "cat-1",
		ColorID:    "col-1",
		SizeID:     "siz-1",
	})
	require.NoError(t, err)

	listed, err = repos.Products.ListByStore(ctx, "s1", models.ProductFilter{})
	require.NoError(t, err)
	assert.True(t, listed[0].Price.Equal(price(100)), "expected cached price, got %s", listed[0].Price)
}

func TestOrderPaymentDrivesRevenue(t *testing.T) {
	repos, _, _ := newTestRepos(t)
	ctx := context.Background()

	product := createProduct(t, repos, "s1", price(100))

	order, err := repos.Orders.Create(ctx, "s1", &models.CreateOrder{
		UserID: "u1",
		Items:  []models.CreateOrderItem{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// Unpaid orders contribute nothing; this read also caches the zero.
	total, err := repos.Revenue.Total(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	paid, err := repos.Orders.MarkPaid(ctx, order.ID, "1 Main St", "555-0100")
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	assert.True(t, paid.Total().Equal(price(200)))

	// Payment invalidated the revenue slot, so the new figure shows.
	total, err = repos.Revenue.Total(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, total.Equal(price(200)), "revenue after payment = %s", total)

	// Delivery moves the order between user views without changing revenue.
	_, err = repos.Orders.MarkDelivered(ctx, order.ID)
	require.NoError(t, err)

	total, err = repos.Revenue.Total(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, total.Equal(price(200)))

	pending, err := repos.Orders.ListPending(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, pending)

	delivered, err := repos.Orders.ListDelivered(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, order.ID, delivered[0].ID)
}

func TestRevenueIsScopedPerStore(t *testing.T) {
	repos, _, _ := newTestRepos(t)
	ctx := context.Background()

	p1 := createProduct(t, repos, "s1", price(100))
	p2 := createProduct(t, repos, "s2", price(30))

	createPaidOrder(t, repos, "s1", "u1", p1.ID, 1)
	createPaidOrder(t, repos, "s2", "u2", p2.ID, 1)

	total1, err := repos.Revenue.Total(ctx, "s1")
	require.NoError(t, err)
	total2, err := repos.Revenue.Total(ctx, "s2")
	require.NoError(t, err)

	assert.True(t, total1.Equal(price(100)))
	assert.True(t, total2.Equal(price(30)))
}

func TestProductListPageSizeGetsOwnSlot(t *testing.T) {
	repos, _, _ := newTestRepos(t)
	ctx := context.Background()

	createProduct(t, repos, "s1", price(100))
	createProduct(t, repos, "s1", price(200))

	// Warm the cache with a one-item window.
	narrow, err := repos.Products.ListByStore(ctx, "s1", models.ProductFilter{PerPage: 1})
	require.NoError(t, err)
	require.Len(t, narrow, 1)

	// The default window is a different result set and must not be
	// served from the narrow slot.
	listed, err := repos.Products.ListByStore(ctx, "s1", models.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestGenderListsDoNotShareSlotsAcrossCase(t *testing.T) {
	repos, _, _ := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.Categories.Create(ctx, "s1", &models.CreateCategory{
		Name: "tops", BillboardID: "b1", Gender: "men",
	})
	require.NoError(t, err)

	lower, err := repos.Categories.ListByGender(ctx, "s1", "men")
	require.NoError(t, err)
	require.Len(t, lower, 1)

	// The stores match gender case-sensitively, so "MEN" is a
	// different (empty) result set and must not hit the "men" slot.
	upper, err := repos.Categories.ListByGender(ctx, "s1", "MEN")
	require.NoError(t, err)
	assert.Empty(t, upper)
}

func TestOrderPaymentDrivesSales(t *testing.T) {
	repos, backend, _ := newTestRepos(t)
	ctx := context.Background()

	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	backend.SetClock(func() time.Time { return now })
	repos.Sales.SetClock(func() time.Time { return now })

	product := createProduct(t, repos, "s1", price(50))

	// No paid orders yet; this read caches the zeros.
	summary, err := repos.Sales.Summary(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, &models.SalesSummary{}, summary)

	createPaidOrder(t, repos, "s1", "u1", product.ID, 1)

	// Payment purged every counter slot.
	summary, err = repos.Sales.Summary(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, &models.SalesSummary{Total: 1, Today: 1, Week: 1, Month: 1, Year: 1}, summary)

	// An older sale counts towards the year and lifetime only.
	backend.SetClock(func() time.Time { return time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC) })
	createPaidOrder(t, repos, "s1", "u1", product.ID, 1)
	backend.SetClock(func() time.Time { return now })

	summary, err = repos.Sales.Summary(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, &models.SalesSummary{Total: 2, Today: 1, Week: 1, Month: 1, Year: 2}, summary)
}

func TestRevenuePeriods(t *testing.T) {
	repos, backend, _ := newTestRepos(t)
	ctx := context.Background()

	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	backend.SetClock(func() time.Time { return now })
	repos.Revenue.SetClock(func() time.Time { return now })

	product := createProduct(t, repos, "s1", price(50))
	createPaidOrder(t, repos, "s1", "u1", product.ID, 2)

	current, err := repos.Revenue.CurrentMonth(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, current.Equal(price(100)))

	previous, err := repos.Revenue.PreviousMonth(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, previous.IsZero())

	day, err := repos.Revenue.ForDate(ctx, "s1", now)
	require.NoError(t, err)
	assert.True(t, day.Equal(price(100)))

	series, err := repos.Revenue.Series(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, series, 12)
	assert.Equal(t, "Mar", series[2].Month)
	assert.True(t, series[2].Total.Equal(price(100)))
	assert.True(t, series[1].Total.IsZero())

	// Last year's sales count towards lifetime revenue but stay out of
	// the current-year graph.
	backend.SetClock(func() time.Time { return time.Date(2023, time.June, 1, 8, 0, 0, 0, time.UTC) })
	createPaidOrder(t, repos, "s1", "u1", product.ID, 1)
	backend.SetClock(func() time.Time { return now })

	total, err := repos.Revenue.Total(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, total.Equal(price(150)))

	series, err = repos.Revenue.Series(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, series[5].Total.IsZero(), "June slot holds %s", series[5].Total)
	assert.True(t, series[2].Total.Equal(price(100)))
}

func TestReviewEligibility(t *testing.T) {
	repos, _, _ := newTestRepos(t)
	ctx := context.Background()

	product := createProduct(t, repos, "s1", price(100))
	review := &models.CreateReview{Rating: 5, Comment: "great"}

	// No purchase yet.
	eligible, err := repos.Reviews.Eligible(ctx, "u1", product.ID)
	require.NoError(t, err)
	assert.False(t, eligible)
	_, err = repos.Reviews.Create(ctx, product.ID, "u1", review)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	// An unpaid order is not a purchase.
	_, err = repos.Orders.Create(ctx, "s1", &models.CreateOrder{
		UserID: "u1",
		Items:  []models.CreateOrderItem{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = repos.Reviews.Create(ctx, product.ID, "u1", review)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	createPaidOrder(t, repos, "s1", "u1", product.ID, 1)

	eligible, err = repos.Reviews.Eligible(ctx, "u1", product.ID)
	require.NoError(t, err)
	assert.True(t, eligible)

	got, err := repos.Reviews.Create(ctx, product.ID, "u1", review)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)

	// One review per user per product.
	eligible, err = repos.Reviews.Eligible(ctx, "u1", product.ID)
	require.NoError(t, err)
	assert.False(t, eligible)
	_, err = repos.Reviews.Create(ctx, product.ID, "u1", &models.CreateReview{Rating: 1})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestReviewPages(t *testing.T) {
	repos, _, _ := newTestRepos(t)
	ctx := context.Background()

	product := createProduct(t, repos, "s1", price(100))

	ratings := []int{5, 4, 3, 2}
	users := []string{"u1", "u2", "u3", "u4"}
	for i, user := range users {
		createPaidOrder(t, repos, "s1", user, product.ID, 1)
		_, err := repos.Reviews.Create(ctx, product.ID, user, &models.CreateReview{Rating: ratings[i]})
		require.NoError(t, err)
	}

	page1, err := repos.Reviews.ProductPage(ctx, product.ID, 1)
	require.NoError(t, err)
	require.Len(t, page1.Reviews, 3)

	// Newest first: ratings 2, 3, 4 -> average 3.
	assert.True(t, page1.AverageRating.Equal(price(3)), "page 1 average = %s", page1.AverageRating)

	page2, err := repos.Reviews.ProductPage(ctx, product.ID, 2)
	require.NoError(t, err)
	require.Len(t, page2.Reviews, 1)
	assert.Equal(t, 5, page2.Reviews[0].Rating)

	// Past the end there is nothing, and nothing gets cached for it.
	_, err = repos.Reviews.ProductPage(ctx, product.ID, 3)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	// A new review purges every page.
	createPaidOrder(t, repos, "s1", "u5", product.ID, 1)
	_, err = repos.Reviews.Create(ctx, product.ID, "u5", &models.CreateReview{Rating: 1})
	require.NoError(t, err)

	page1, err = repos.Reviews.ProductPage(ctx, product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page1.Reviews[0].Rating, "newest review missing from page 1")
}

func TestEmptyBillboardListIsNotCached(t *testing.T) {
	repos, _, store := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.Billboards.ListByStore(ctx, "s1")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, 0, store.Len(), "empty result must not occupy a cache slot")

	_, err = repos.Billboards.Create(ctx, "s1", &models.CreateBillboard{
		Label:    "summer",
		ImageURL: "https://img.test/summer.png",
	})
	require.NoError(t, err)

	// Visible right away, no TTL to wait out.
	billboards, err := repos.Billboards.ListByStore(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, billboards, 1)
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	repos, _, _ := newTestRepos(t)
	ctx := context.Background()

	product := createProduct(t, repos, "s1", price(10))

	require.NoError(t, repos.Products.Delete(ctx, product.ID))

	err := repos.Products.Delete(ctx, product.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = repos.Products.GetByID(ctx, product.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

// failingCache errors on every operation, standing in for a Redis outage.
type failingCache struct{}

var errCacheDown = errors.New("cache down")

func (failingCache) Get(context.Context, string) (string, error)               { return "", errCacheDown }
func (failingCache) Set(context.Context, string, string, time.Duration) error  { return errCacheDown }
func (failingCache) GetHash(context.Context, string, string) (string, error)   { return "", errCacheDown }
func (failingCache) SetHash(context.Context, string, string, string, time.Duration) error {
	return errCacheDown
}
func (failingCache) Delete(context.Context, ...string) error      { return errCacheDown }
func (failingCache) DeletePattern(context.Context, string) error  { return errCacheDown }
func (failingCache) Ping(context.Context) error                   { return errCacheDown }

var _ cache.Store = failingCache{}

func TestCacheOutageNeverSurfaces(t *testing.T) {
	backend := NewMemoryBackend()
	coord := cache.NewCoordinator(failingCache{}, zap.NewNop())
	repos := New(backend.Stores(), failingCache{}, coord, zap.NewNop())
	ctx := context.Background()

	product, err := repos.Products.Create(ctx, "s1", &models.CreateProduct{
		Name:       "tee",
		Price:      price(100),
		CategoryID: "cat-1",
		ColorID:    "col-1",
		SizeID:     "siz-1",
	})
	require.NoError(t, err, "create must succeed with the cache down")

	got, err := repos.Products.GetByID(ctx, product.ID)
	require.NoError(t, err, "read must fall through with the cache down")
	assert.Equal(t, product.ID, got.ID)

	listed, err := repos.Products.ListByStore(ctx, "s1", models.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	order, err := repos.Orders.Create(ctx, "s1", &models.CreateOrder{
		UserID: "u1",
		Items:  []models.CreateOrderItem{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	_, err = repos.Orders.MarkPaid(ctx, order.ID, "1 Main St", "555-0100")
	require.NoError(t, err)

	total, err := repos.Revenue.Total(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, total.Equal(price(200)))
}

func TestOrderCreateRejectsUnknownProduct(t *testing.T) {
	repos, _, _ := newTestRepos(t)

	_, err := repos.Orders.Create(context.Background(), "s1", &models.CreateOrder{
		UserID: "u1",
		Items:  []models.CreateOrderItem{{ProductID: "missing", Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}
