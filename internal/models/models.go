// Package models defines the catalog service's data records. Cached values
// are JSON encodings of these types, so field tags are part of the cache
// entry format.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store is a tenant: every catalog entity below is scoped to one store.
type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Billboard struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Label     string    `json:"label"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type Category struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"storeId"`
	BillboardID string    `json:"billboardId"`
	Name        string    `json:"name"`
	Gender      string    `json:"gender"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Color struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

type Size struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Product struct {
	ID         string          `json:"id"`
	StoreID    string          `json:"storeId"`
	CategoryID string          `json:"categoryId"`
	ColorID    string          `json:"colorId"`
	SizeID     string          `json:"sizeId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	IsFeatured bool            `json:"isFeatured"`
	Images     []Image         `json:"images,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type OrderItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
}

type Order struct {
	ID          string      `json:"id"`
	StoreID     string      `json:"storeId"`
	UserID      string      `json:"userId"`
	IsPaid      bool        `json:"isPaid"`
	IsDelivered bool        `json:"isDelivered"`
	DeliveredAt *time.Time  `json:"deliveredAt,omitempty"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Items       []OrderItem `json:"items"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Total is the order's revenue contribution: unit price times quantity,
// summed over line items. Only paid orders count toward revenue.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Images    []Image   `json:"images,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewPage is one cached page of a product's reviews plus the derived
// average rating for that page.
type ReviewPage struct {
	Reviews       []Review        `json:"reviews"`
	AverageRating decimal.Decimal `json:"averageRating"`
}

// MonthRevenue is one point of the 12-month revenue graph.
type MonthRevenue struct {
	Month string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// SalesSummary is a store's paid-order counts across the dashboard
// windows.
type SalesSummary struct {
	Total int `json:"total"`
	Today int `json:"today"`
	Week  int `json:"week"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// DefaultPerPage is the product listing page size when the request
// does not name one.
const DefaultPerPage = 20

// ProductFilter narrows a store's product listing. Zero values mean
// "no constraint"; Page is 1-based.
type ProductFilter struct {
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Featured   *bool
	Page       int
	PerPage    int
}

// Normalize applies the default page window so that equivalent queries
// compare (and cache) identically.
func (f ProductFilter) Normalize() ProductFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	return f
}

type CreateStore struct {
	Name   string `json:"name" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}

type CreateBillboard struct {
	Label    string `json:"label" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"required"`
}

type CreateCategory struct {
	Name        string `json:"name" binding:"required"`
	BillboardID string `json:"billboardId" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	ImageURL    string `json:"imageUrl"`
}

type CreateColor struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type CreateSize struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type CreateProduct struct {
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	CategoryID string          `json:"categoryId" binding:"required"`
	ColorID    string          `json:"colorId" binding:"required"`
	SizeID     string          `json:"sizeId" binding:"required"`
	IsFeatured bool            `json:"isFeatured"`
	Images     []Image         `json:"images"`
}

type CreateOrderItem struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type CreateOrder struct {
	UserID string            `json:"userId" binding:"required"`
	Items  []CreateOrderItem `json:"items" binding:"required,min=1"`
}

type CreateReview struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment string  `json:"comment"`
	Images  []Image `json:"images"`
}
