package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// MemoryBackend is an in-memory implementation of every persistent store
// interface. It backs the repository tests and local development without
// Postgres. Collections are kept in insertion order; listings return
// newest first, matching the Postgres ORDER BY created_at DESC.
type MemoryBackend struct {
	mu         sync.RWMutex
	stores     []models.Store
	billboards []models.Billboard
	categories []models.Category
	colors     []models.Color
	sizes      []models.Size
	products   []models.Product
	orders     []models.Order
	reviews    []models.Review
	now        func() time.Time
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{now: time.Now}
}

// SetClock overrides the backend's clock. Test hook for time-windowed
// revenue queries.
func (b *MemoryBackend) SetClock(now func() time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.now = now
}

// Stores exposes the backend as the per-entity store bundle.
func (b *MemoryBackend) Stores() Stores {
	return Stores{
		Stores:     &memoryStores{b},
		Billboards: &memoryBillboards{b},
		Categories: &memoryCategories{b},
		Colors:     &memoryColors{b},
		Sizes:      &memorySizes{b},
		Products:   &memoryProducts{b},
		Orders:     &memoryOrders{b},
		Reviews:    &memoryReviews{b},
		Revenue:    &memoryRevenue{b},
		Sales:      &memorySales{b},
	}
}

func newID() string { return uuid.NewString() }

// reversed returns a newest-first copy of an insertion-ordered slice.
func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

type memoryStores struct{ b *MemoryBackend }

func (m *memoryStores) GetByID(ctx context.Context, id string) (*models.Store, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	for _, s := range m.b.stores {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, fmt.Errorf("store %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryStores) Create(ctx context.Context, req *models.CreateStore) (*models.Store, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	s := models.Store{ID: newID(), Name: req.Name, UserID: req.UserID, CreatedAt: m.b.now()}
	m.b.stores = append(m.b.stores, s)
	out := s
	return &out, nil
}

func (m *memoryStores) Delete(ctx context.Context, id string) error {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i, s := range m.b.stores {
		if s.ID == id {
			m.b.stores = append(m.b.stores[:i], m.b.stores[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("store %s: %w", id, apperrors.ErrNotFound)
}

type memoryBillboards struct{ b *MemoryBackend }

func (m *memoryBillboards) GetByID(ctx context.Context, id string) (*models.Billboard, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	for _, bb := range m.b.billboards {
		if bb.ID == id {
			out := bb
			return &out, nil
		}
	}
	return nil, fmt.Errorf("billboard %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryBillboards) ListByStore(ctx context.Context, storeID string) ([]models.Billboard, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	var out []models.Billboard
	for _, bb := range m.b.billboards {
		if bb.StoreID == storeID {
			out = append(out, bb)
		}
	}
	return reversed(out), nil
}

func (m *memoryBillboards) ListAll(ctx context.Context) ([]models.Billboard, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	return reversed(m.b.billboards), nil
}

func (m *memoryBillboards) Create(ctx context.Context, storeID string, req *models.CreateBillboard) (*models.Billboard, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	bb := models.Billboard{
		ID: newID(), StoreID: storeID,
		Label: req.Label, ImageURL: req.ImageURL, CreatedAt: m.b.now(),
	}
	m.b.billboards = append(m.b.billboards, bb)
	out := bb
	return &out, nil
}

func (m *memoryBillboards) Update(ctx context.Context, id string, req *models.CreateBillboard) (*models.Billboard, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i := range m.b.billboards {
		if m.b.billboards[i].ID == id {
			m.b.billboards[i].Label = req.Label
			m.b.billboards[i].ImageURL = req.ImageURL
			out := m.b.billboards[i]
			return &out, nil
		}
	}
	return nil, fmt.Errorf("billboard %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryBillboards) Delete(ctx context.Context, id string) error {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i, bb := range m.b.billboards {
		if bb.ID == id {
			m.b.billboards = append(m.b.billboards[:i], m.b.billboards[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("billboard %s: %w", id, apperrors.ErrNotFound)
}

type memoryCategories struct{ b *MemoryBackend }

func (m *memoryCategories) GetByID(ctx context.Context, id string) (*models.Category, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	for _, c := range m.b.categories {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, fmt.Errorf("category %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryCategories) ListByStore(ctx context.Context, storeID string) ([]models.Category, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	var out []models.Category
	for _, c := range m.b.categories {
		if c.StoreID == storeID {
			out = append(out, c)
		}
	}
	return reversed(out), nil
}

func (m *memoryCategories) ListByGender(ctx context.Context, storeID, gender string) ([]models.Category, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	var out []models.Category
	for _, c := range m.b.categories {
		if c.StoreID == storeID && c.Gender == gender {
			out = append(out, c)
		}
	}
	return reversed(out), nil
}

func (m *memoryCategories) Create(ctx context.Context, storeID string, req *models.CreateCategory) (*models.Category, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	c := models.Category{
		ID: newID(), StoreID: storeID, BillboardID: req.BillboardID,
		Name: req.Name, Gender: req.Gender, ImageURL: req.ImageURL, CreatedAt: m.b.now(),
	}
	m.b.categories = append(m.b.categories, c)
	out := c
	return &out, nil
}

func (m *memoryCategories) Update(ctx context.Context, id string, req *models.CreateCategory) (*models.Category, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i := range m.b.categories {
		if m.b.categories[i].ID == id {
			m.b.categories[i].Name = req.Name
			m.b.categories[i].Gender = req.Gender
			m.b.categories[i].ImageURL = req.ImageURL
			m.b.categories[i].BillboardID = req.BillboardID
			out := m.b.categories[i]
			return &out, nil
		}
	}
	return nil, fmt.Errorf("category %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryCategories) Delete(ctx context.Context, id string) error {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i, c := range m.b.categories {
		if c.ID == id {
			m.b.categories = append(m.b.categories[:i], m.b.categories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("category %s: %w", id, apperrors.ErrNotFound)
}

type memoryColors struct{ b *MemoryBackend }

func (m *memoryColors) GetByID(ctx context.Context, id string) (*models.Color, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	for _, c := range m.b.colors {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, fmt.Errorf("color %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryColors) ListByStore(ctx context.Context, storeID string) ([]models.Color, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	var out []models.Color
	for _, c := range m.b.colors {
		if c.StoreID == storeID {
			out = append(out, c)
		}
	}
	return reversed(out), nil
}

func (m *memoryColors) Create(ctx context.Context, storeID string, req *models.CreateColor) (*models.Color, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	c := models.Color{ID: newID(), StoreID: storeID, Name: req.Name, Value: req.Value, CreatedAt: m.b.now()}
	m.b.colors = append(m.b.colors, c)
	out := c
	return &out, nil
}

func (m *memoryColors) Update(ctx context.Context, id string, req *models.CreateColor) (*models.Color, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i := range m.b.colors {
		if m.b.colors[i].ID == id {
			m.b.colors[i].Name = req.Name
			m.b.colors[i].Value = req.Value
			out := m.b.colors[i]
			return &out, nil
		}
	}
	return nil, fmt.Errorf("color %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryColors) Delete(ctx context.Context, id string) error {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i, c := range m.b.colors {
		if c.ID == id {
			m.b.colors = append(m.b.colors[:i], m.b.colors[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("color %s: %w", id, apperrors.ErrNotFound)
}

type memorySizes struct{ b *MemoryBackend }

func (m *memorySizes) GetByID(ctx context.Context, id string) (*models.Size, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	for _, s := range m.b.sizes {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, fmt.Errorf("size %s: %w", id, apperrors.ErrNotFound)
}

func (m *memorySizes) ListByStore(ctx context.Context, storeID string) ([]models.Size, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	var out []models.Size
	for _, s := range m.b.sizes {
		if s.StoreID == storeID {
			out = append(out, s)
		}
	}
	return reversed(out), nil
}

func (m *memorySizes) Create(ctx context.Context, storeID string, req *models.CreateSize) (*models.Size, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	s := models.Size{ID: newID(), StoreID: storeID, Name: req.Name, Value: req.Value, CreatedAt: m.b.now()}
	m.b.sizes = append(m.b.sizes, s)
	out := s
	return &out, nil
}

func (m *memorySizes) Update(ctx context.Context, id string, req *models.CreateSize) (*models.Size, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i := range m.b.sizes {
		if m.b.sizes[i].ID == id {
			m.b.sizes[i].Name = req.Name
			m.b.sizes[i].Value = req.Value
			out := m.b.sizes[i]
			return &out, nil
		}
	}
	return nil, fmt.Errorf("size %s: %w", id, apperrors.ErrNotFound)
}

func (m *memorySizes) Delete(ctx context.Context, id string) error {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i, s := range m.b.sizes {
		if s.ID == id {
			m.b.sizes = append(m.b.sizes[:i], m.b.sizes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("size %s: %w", id, apperrors.ErrNotFound)
}

type memoryProducts struct{ b *MemoryBackend }

func (m *memoryProducts) GetByID(ctx context.Context, id string) (*models.Product, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	for _, p := range m.b.products {
		if p.ID == id {
			out := p
			out.Images = append([]models.Image(nil), p.Images...)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryProducts) ListByStore(ctx context.Context, storeID string, filter models.ProductFilter) ([]models.Product, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()

	f := filter.Normalize()
	var matched []models.Product
	for _, p := range m.b.products {
		if p.StoreID != storeID {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		if f.Featured != nil && p.IsFeatured != *f.Featured {
			continue
		}
		matched = append(matched, p)
	}
	matched = reversed(matched)

	start := (f.Page - 1) * f.PerPage
	if start >= len(matched) {
		return nil, nil
	}
	end := start + f.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (m *memoryProducts) Create(ctx context.Context, storeID string, req *models.CreateProduct) (*models.Product, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	p := models.Product{
		ID: newID(), StoreID: storeID,
		CategoryID: req.CategoryID, ColorID: req.ColorID, SizeID: req.SizeID,
		Name: req.Name, Price: req.Price, IsFeatured: req.IsFeatured,
		CreatedAt: m.b.now(),
	}
	for _, img := range req.Images {
		p.Images = append(p.Images, models.Image{ID: newID(), URL: img.URL})
	}
	m.b.products = append(m.b.products, p)
	out := p
	return &out, nil
}

func (m *memoryProducts) Update(ctx context.Context, id string, req *models.CreateProduct) (*models.Product, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i := range m.b.products {
		if m.b.products[i].ID == id {
			p := &m.b.products[i]
			p.Name = req.Name
			p.Price = req.Price
			p.CategoryID = req.CategoryID
			p.ColorID = req.ColorID
			p.SizeID = req.SizeID
			p.IsFeatured = req.IsFeatured
			out := *p
			return &out, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryProducts) Delete(ctx context.Context, id string) error {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i, p := range m.b.products {
		if p.ID == id {
			m.b.products = append(m.b.products[:i], m.b.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product %s: %w", id, apperrors.ErrNotFound)
}

type memoryOrders struct{ b *MemoryBackend }

func (m *memoryOrders) GetByID(ctx context.Context, id string) (*models.Order, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	for _, o := range m.b.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryOrders) ListByStore(ctx context.Context, storeID string) ([]models.Order, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	var out []models.Order
	for _, o := range m.b.orders {
		if o.StoreID == storeID {
			out = append(out, *cloneOrder(o))
		}
	}
	return reversed(out), nil
}

func (m *memoryOrders) ListByUser(ctx context.Context, userID string, delivered bool) ([]models.Order, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	var out []models.Order
	for _, o := range m.b.orders {
		if o.UserID == userID && o.IsDelivered == delivered {
			out = append(out, *cloneOrder(o))
		}
	}
	return reversed(out), nil
}

func (m *memoryOrders) Create(ctx context.Context, storeID string, req *models.CreateOrder) (*models.Order, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()

	o := models.Order{
		ID: newID(), StoreID: storeID, UserID: req.UserID, CreatedAt: m.b.now(),
	}
	for _, item := range req.Items {
		product, ok := m.findProduct(item.ProductID)
		if !ok {
			return nil, fmt.Errorf("order item product %s: %w", item.ProductID, apperrors.ErrConflict)
		}
		o.Items = append(o.Items, models.OrderItem{
			ID:          newID(),
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			Size:        item.Size,
			Color:       item.Color,
		})
	}
	m.b.orders = append(m.b.orders, o)
	return cloneOrder(o), nil
}

func (m *memoryOrders) findProduct(id string) (*models.Product, bool) {
	for i := range m.b.products {
		if m.b.products[i].ID == id {
			return &m.b.products[i], true
		}
	}
	return nil, false
}

func (m *memoryOrders) SetDelivered(ctx context.Context, id string, at time.Time) (*models.Order, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i := range m.b.orders {
		if m.b.orders[i].ID == id {
			m.b.orders[i].IsDelivered = true
			deliveredAt := at
			m.b.orders[i].DeliveredAt = &deliveredAt
			return cloneOrder(m.b.orders[i]), nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryOrders) SetPaid(ctx context.Context, id, address, phone string) (*models.Order, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i := range m.b.orders {
		if m.b.orders[i].ID == id {
			m.b.orders[i].IsPaid = true
			m.b.orders[i].Address = address
			m.b.orders[i].Phone = phone
			return cloneOrder(m.b.orders[i]), nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryOrders) Delete(ctx context.Context, id string) error {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i, o := range m.b.orders {
		if o.ID == id {
			m.b.orders = append(m.b.orders[:i], m.b.orders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
}

func cloneOrder(o models.Order) *models.Order {
	out := o
	out.Items = append([]models.OrderItem(nil), o.Items...)
	if o.DeliveredAt != nil {
		at := *o.DeliveredAt
		out.DeliveredAt = &at
	}
	return &out
}

type memoryReviews struct{ b *MemoryBackend }

func (m *memoryReviews) GetByID(ctx context.Context, id string) (*models.Review, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	for _, r := range m.b.reviews {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, fmt.Errorf("review %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryReviews) ListByProduct(ctx context.Context, productID string, page, perPage int) ([]models.Review, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	var matched []models.Review
	for _, r := range m.b.reviews {
		if r.ProductID == productID {
			matched = append(matched, r)
		}
	}
	matched = reversed(matched)

	start := (page - 1) * perPage
	if start < 0 || start >= len(matched) {
		return nil, nil
	}
	end := start + perPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (m *memoryReviews) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	var out []models.Review
	for _, r := range m.b.reviews {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return reversed(out), nil
}

func (m *memoryReviews) Create(ctx context.Context, productID, userID string, req *models.CreateReview) (*models.Review, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	r := models.Review{
		ID: newID(), ProductID: productID, UserID: userID,
		Rating: req.Rating, Comment: req.Comment, CreatedAt: m.b.now(),
	}
	for _, img := range req.Images {
		r.Images = append(r.Images, models.Image{ID: newID(), URL: img.URL})
	}
	m.b.reviews = append(m.b.reviews, r)
	out := r
	return &out, nil
}

func (m *memoryReviews) Delete(ctx context.Context, id, userID string) error {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i, r := range m.b.reviews {
		if r.ID == id && r.UserID == userID {
			m.b.reviews = append(m.b.reviews[:i], m.b.reviews[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("review %s: %w", id, apperrors.ErrNotFound)
}

func (m *memoryReviews) HasOrderedProduct(ctx context.Context, userID, productID string) (bool, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	for _, o := range m.b.orders {
		if o.UserID != userID || !o.IsPaid {
			continue
		}
		for _, item := range o.Items {
			if item.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (m *memoryReviews) HasReviewed(ctx context.Context, userID, productID string) (bool, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	for _, r := range m.b.reviews {
		if r.UserID == userID && r.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

type memoryRevenue struct{ b *MemoryBackend }

func (m *memoryRevenue) Total(ctx context.Context, storeID string) (decimal.Decimal, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	total := decimal.Zero
	for _, o := range m.b.orders {
		if o.StoreID == storeID && o.IsPaid {
			total = total.Add(o.Total())
		}
	}
	return total, nil
}

func (m *memoryRevenue) Between(ctx context.Context, storeID string, from, to time.Time) (decimal.Decimal, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	total := decimal.Zero
	for _, o := range m.b.orders {
		if o.StoreID == storeID && o.IsPaid && !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			total = total.Add(o.Total())
		}
	}
	return total, nil
}

func (m *memoryRevenue) Monthly(ctx context.Context, storeID string) ([]models.MonthRevenue, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()

	year := m.b.now().UTC().Year()
	series := emptyMonthSeries()
	for _, o := range m.b.orders {
		if o.StoreID == storeID && o.IsPaid && o.CreatedAt.Year() == year {
			month := int(o.CreatedAt.Month()) - 1
			series[month].Total = series[month].Total.Add(o.Total())
		}
	}
	return series, nil
}

type memorySales struct{ b *MemoryBackend }

func (m *memorySales) Total(ctx context.Context, storeID string) (int, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	n := 0
	for _, o := range m.b.orders {
		if o.StoreID == storeID && o.IsPaid {
			n++
		}
	}
	return n, nil
}

func (m *memorySales) Between(ctx context.Context, storeID string, from, to time.Time) (int, error) {
	m.b.mu.RLock()
	defer m.b.mu.RUnlock()
	n := 0
	for _, o := range m.b.orders {
		if o.StoreID == storeID && o.IsPaid && !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			n++
		}
	}
	return n, nil
}

func emptyMonthSeries() []models.MonthRevenue {
	names := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	series := make([]models.MonthRevenue, len(names))
	for i, name := range names {
		series[i] = models.MonthRevenue{Month: name, Total: decimal.Zero}
	}
	return series
}
