package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

// Kind identifies an entity family in cache keys and invalidation rules.
type Kind string

const (
	KindStore     Kind = "store"
	KindBillboard Kind = "billboard"
	KindCategory  Kind = "category"
	KindColor     Kind = "color"
	KindSize      Kind = "size"
	KindProduct   Kind = "product"
	KindOrder     Kind = "order"
	KindReview    Kind = "review"
)

// Revenue cache periods.
const (
	PeriodLifetime      = "lifetime"
	PeriodCurrentMonth  = "current-month"
	PeriodPreviousMonth = "previous-month"
	PeriodGraph         = "graph"
)

// Sales counter periods; PeriodLifetime is shared with revenue.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Key construction is centralized here so that two requests hit the same
// cache slot exactly when they would produce the same result set. Segments
// are joined with ':' and sanitized, never concatenated ad hoc at call
// sites.

// ItemKey is the by-id slot for a single entity.
func ItemKey(kind Kind, id string) string {
	return join(string(kind), id)
}

// ListKey is the per-store collection slot for an entity kind.
func ListKey(kind Kind, storeID string) string {
	return join(string(kind), "list", storeID)
}

// ListKeyPattern matches every list slot for a kind and store, including
// filtered/paginated variants of the base list.
func ListKeyPattern(kind Kind, storeID string) string {
	return ListKey(kind, storeID) + "*"
}

// GlobalListKey is the slot for a listing not scoped to any store.
func GlobalListKey(kind Kind) string {
	return join(string(kind), "list", "all")
}

// GenderListKey is the storefront's per-gender category listing. The
// gender segment is kept as given: the persistent stores match it
// case-sensitively, so differently-cased requests are different result
// sets and must not share a slot.
func GenderListKey(storeID, gender string) string {
	return join(string(KindCategory), "list", storeID, "gender", gender)
}

// FilteredProductListKey keys a store's product listing by its canonical
// filter encoding. Only the default query (no constraints, first page,
// default page size) shares the plain ListKey; any other page window is
// a different result set and gets its own slot.
func FilteredProductListKey(storeID string, filter models.ProductFilter) string {
	f := filter.Normalize()
	if f.CategoryID == "" && f.MinPrice == nil && f.MaxPrice == nil && f.Featured == nil &&
		f.Page == 1 && f.PerPage == models.DefaultPerPage {
		return ListKey(KindProduct, storeID)
	}
	return join(string(KindProduct), "list", storeID, canonicalFilter(f))
}

// UserOrdersKey is the per-user pending or delivered order listing.
func UserOrdersKey(userID, status string) string {
	return join(string(KindOrder), "user", userID, status)
}

// Per-user order list statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
)

// UserOrdersKeyPattern matches both of a user's order list slots.
func UserOrdersKeyPattern(userID string) string {
	return join(string(KindOrder), "user", userID) + ":*"
}

// ReviewPageKey is one page of a product's reviews.
func ReviewPageKey(productID string, page, perPage int) string {
	return join(string(KindReview), "list", productID, fmt.Sprintf("page=%d", page), fmt.Sprintf("per=%d", perPage))
}

// ReviewPageKeyPattern matches every cached review page of a product.
func ReviewPageKeyPattern(productID string) string {
	return join(string(KindReview), "list", productID) + ":*"
}

// UserReviewsKey is the reviewing user's own review listing.
func UserReviewsKey(userID string) string {
	return join(string(KindReview), "user", userID)
}

// RevenueKey is a store's derived revenue slot for a period:
// lifetime, current-month, previous-month, date:YYYY-MM-DD or graph.
func RevenueKey(storeID, period string) string {
	return join("revenue", storeID, period)
}

// RevenueDatePeriod formats the period segment for a single-day figure.
func RevenueDatePeriod(date time.Time) string {
	return "date=" + date.Format("2006-01-02")
}

// SalesKey is a store's derived paid-order count slot for a period:
// lifetime, today, week, month or year.
func SalesKey(storeID, period string) string {
	return join("sales", storeID, period)
}

// canonicalFilter encodes a normalized product filter deterministically:
// fixed field order, fixed placeholders for unset fields, no whitespace.
func canonicalFilter(f models.ProductFilter) string {
	minPrice, maxPrice := "-", "-"
	if f.MinPrice != nil {
		minPrice = f.MinPrice.String()
	}
	if f.MaxPrice != nil {
		maxPrice = f.MaxPrice.String()
	}
	featured := "-"
	if f.Featured != nil {
		featured = fmt.Sprintf("%t", *f.Featured)
	}
	category := "-"
	if f.CategoryID != "" {
		category = f.CategoryID
	}
	return fmt.Sprintf("cat=%s:min=%s:max=%s:feat=%s:page=%d:per=%d",
		sanitize(category), minPrice, maxPrice, featured, f.Page, f.PerPage)
}

func join(segments ...string) string {
	for i, s := range segments {
		segments[i] = sanitize(s)
	}
	return strings.Join(segments, ":")
}

// sanitize keeps ids from smuggling separators or glob metacharacters into
// a key. Ids are UUIDs in practice; this only guards malformed input.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ':', '*', '?', '[', ']', ' ', '\t', '\n', '/':
			return '_'
		}
		return r
	}, s)
}
