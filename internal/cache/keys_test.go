package cache

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tm-acme-shop/acme-shop-catalog-service/internal/models"
)

func TestItemKey(t *testing.T) {
	tests := []struct {
		kind     Kind
		id       string
		expected string
	}{
		{KindProduct, "p1", "product:p1"},
		{KindOrder, "o1", "order:o1"},
		{KindStore, "s1", "store:s1"},
	}

	for _, tt := range tests {
		if got := ItemKey(tt.kind, tt.id); got != tt.expected {
			t.Fatalf("ItemKey(%s, %s) = %s, want %s", tt.kind, tt.id, got, tt.expected)
		}
	}
}

func TestListKeysAreDistinctPerStore(t *testing.T) {
	a := ListKey(KindBillboard, "store-a")
	b := ListKey(KindBillboard, "store-b")
	if a == b {
		t.Fatalf("expected distinct keys, both were %s", a)
	}
}

func TestListKeyPatternCoversListKey(t *testing.T) {
	key := ListKey(KindProduct, "s1")
	pattern := ListKeyPattern(KindProduct, "s1")
	if pattern != key+"*" {
		t.Fatalf("pattern %s does not extend list key %s", pattern, key)
	}
}

func TestFilteredProductListKeyDeterminism(t *testing.T) {
	min := decimal.NewFromInt(10)
	featured := true

	f1 := models.ProductFilter{CategoryID: "c1", MinPrice: &min, Featured: &featured, Page: 2}
	f2 := models.ProductFilter{CategoryID: "c1", MinPrice: &min, Featured: &featured, Page: 2}

	if FilteredProductListKey("s1", f1) != FilteredProductListKey("s1", f2) {
		t.Fatal("equal filters produced different keys")
	}
}

func TestFilteredProductListKeyDefaultsToListKey(t *testing.T) {
	got := FilteredProductListKey("s1", models.ProductFilter{})
	if got != ListKey(KindProduct, "s1") {
		t.Fatalf("unfiltered first page got %s, want plain list key", got)
	}
}

func TestFilteredProductListKeyDistinguishesFilters(t *testing.T) {
	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(10)

	keys := map[string]bool{}
	for _, f := range []models.ProductFilter{
		{CategoryID: "c1"},
		{CategoryID: "c2"},
		{MinPrice: &min},
		{MaxPrice: &max},
		{Page: 2},
		{PerPage: 5},
	} {
		key := FilteredProductListKey("s1", f)
		if keys[key] {
			t.Fatalf("duplicate key for distinct filters: %s", key)
		}
		keys[key] = true
	}
}

func TestUserOrdersKey(t *testing.T) {
	pending := UserOrdersKey("u1", OrderStatusPending)
	delivered := UserOrdersKey("u1", OrderStatusDelivered)
	if pending == delivered {
		t.Fatal("pending and delivered slots must differ")
	}

	pattern := UserOrdersKeyPattern("u1")
	if pattern != "order:user:u1:*" {
		t.Fatalf("unexpected pattern %s", pattern)
	}
}

func TestFilteredProductListKeyDistinguishesPageSize(t *testing.T) {
	plain := FilteredProductListKey("s1", models.ProductFilter{})
	if plain != ListKey(KindProduct, "s1") {
		t.Fatalf("default query must share the plain list key, got %s", plain)
	}
	if got := FilteredProductListKey("s1", models.ProductFilter{Page: 1, PerPage: models.DefaultPerPage}); got != plain {
		t.Fatalf("explicit default page size must share the plain key, got %s", got)
	}

	// A smaller window is a different result set and needs its own slot.
	narrow := FilteredProductListKey("s1", models.ProductFilter{Page: 1, PerPage: 1})
	if narrow == plain {
		t.Fatalf("page size 1 collided with the default list key %s", narrow)
	}
}

func TestGenderListKeyPreservesCase(t *testing.T) {
	lower := GenderListKey("s1", "men")
	upper := GenderListKey("s1", "MEN")
	if lower == upper {
		t.Fatalf("differently-cased genders collided on %s", lower)
	}
	if lower != "category:list:s1:gender:men" {
		t.Fatalf("unexpected gender key %s", lower)
	}
}

func TestSalesKeys(t *testing.T) {
	if SalesKey("s1", PeriodToday) != "sales:s1:today" {
		t.Fatalf("unexpected sales key %s", SalesKey("s1", PeriodToday))
	}
	if SalesKey("s1", PeriodLifetime) == RevenueKey("s1", PeriodLifetime) {
		t.Fatal("sales and revenue slots must not collide")
	}
	if SalesKey("s1", PeriodWeek) == SalesKey("s2", PeriodWeek) {
		t.Fatal("sales slots must be scoped per store")
	}
}

func TestRevenueKeys(t *testing.T) {
	lifetime := RevenueKey("s1", PeriodLifetime)
	month := RevenueKey("s1", PeriodCurrentMonth)
	date := RevenueKey("s1", RevenueDatePeriod(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)))

	if lifetime == month {
		t.Fatal("period slots must differ")
	}
	if date != "revenue:s1:date=2024-03-15" {
		t.Fatalf("unexpected date key %s", date)
	}
}

func TestSanitizeStripsDelimiters(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"has:colon", "has_colon"},
		{"glob*char", "glob_char"},
		{"white space", "white_space"},
	}

	for _, tt := range tests {
		key := ItemKey(KindStore, tt.input)
		if key != "store:"+tt.expected {
			t.Fatalf("sanitize(%q) produced key %s", tt.input, key)
		}
	}
}
