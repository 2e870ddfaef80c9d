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

type PostgresOrderStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresOrderStore(db *sql.DB, logger *zap.Logger) *PostgresOrderStore {
	return &PostgresOrderStore{db: db, logger: logger.Named("postgres-orders")}
}

const orderColumns = `id, store_id, user_id, is_paid, is_delivered, delivered_at, address, phone, created_at`

func (s *PostgresOrderStore) GetByID(ctx context.Context, id string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := s.scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("failed to fetch order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}

	if o.Items, err = s.items(ctx, o.ID); err != nil {
		return nil, err
	}
	return o, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *PostgresOrderStore) scanOrder(row rowScanner) (*models.Order, error) {
	o := &models.Order{}
	var deliveredAt sql.NullTime
	var address, phone sql.NullString

	err := row.Scan(
		&o.ID, &o.StoreID, &o.UserID, &o.IsPaid, &o.IsDelivered,
		&deliveredAt, &address, &phone, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if deliveredAt.Valid {
		at := deliveredAt.Time
		o.DeliveredAt = &at
	}
	o.Address = address.String
	o.Phone = phone.String
	return o, nil
}

// items loads an order's line items joined with the product's current
// name; the unit price is the one captured at order time.
func (s *PostgresOrderStore) items(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	query := `
		SELECT oi.id, oi.product_id, p.name, oi.unit_price, oi.quantity, oi.size, oi.color
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`
	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		var price string
		if err := rows.Scan(&item.ID, &item.ProductID, &item.ProductName, &price, &item.Quantity, &item.Size, &item.Color); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = parsePrice(price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresOrderStore) ListByStore(ctx context.Context, storeID string) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE store_id = $1 ORDER BY created_at DESC`
	return s.list(ctx, query, storeID)
}

func (s *PostgresOrderStore) ListByUser(ctx context.Context, userID string, delivered bool) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 AND is_delivered = $2 ORDER BY created_at DESC`
	return s.list(ctx, query, userID, delivered)
}

func (s *PostgresOrderStore) list(ctx context.Context, query string, args ...interface{}) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := s.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].Items, err = s.items(ctx, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// Create inserts the order and its line items in one transaction, pricing
// each item from the product's current price.
func (s *PostgresOrderStore) Create(ctx context.Context, storeID string, req *models.CreateOrder) (*models.Order, error) {
	o := &models.Order{
		ID:        newID(),
		StoreID:   storeID,
		UserID:    req.UserID,
		CreatedAt: time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (id, store_id, user_id, is_paid, is_delivered, created_at)
		VALUES ($1, $2, $3, false, false, $4)
	`
	if _, err := tx.ExecContext(ctx, query, o.ID, o.StoreID, o.UserID, o.CreatedAt); err != nil {
		s.logger.Error("failed to create order", zap.String("store_id", storeID), zap.Error(err))
		return nil, fmt.Errorf("create order: %w", mapForeignKey(err))
	}

	for _, item := range req.Items {
		var name, price string
		err := tx.QueryRowContext(ctx,
			`SELECT name, price FROM products WHERE id = $1`, item.ProductID).Scan(&name, &price)
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order item product %s: %w", item.ProductID, apperrors.ErrConflict)
		}
		if err != nil {
			return nil, err
		}

		unitPrice, err := parsePrice(price)
		if err != nil {
			return nil, err
		}

		orderItem := models.OrderItem{
			ID:          newID(),
			ProductID:   item.ProductID,
			ProductName: name,
			UnitPrice:   unitPrice,
			Quantity:    item.Quantity,
			Size:        item.Size,
			Color:       item.Color,
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, product_id, unit_price, quantity, size, color)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			orderItem.ID, o.ID, orderItem.ProductID, orderItem.UnitPrice.String(),
			orderItem.Quantity, orderItem.Size, orderItem.Color); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, orderItem)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *PostgresOrderStore) SetDelivered(ctx context.Context, id string, at time.Time) (*models.Order, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE orders SET is_delivered = true, delivered_at = $1 WHERE id = $2`, at.UTC(), id)
	if err != nil {
		s.logger.Error("failed to mark order delivered", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}
	if err := rowsAffectedOrNotFound(result, "order", id); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *PostgresOrderStore) SetPaid(ctx context.Context, id, address, phone string) (*models.Order, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE orders SET is_paid = true, address = $1, phone = $2 WHERE id = $3`, address, phone, id)
	if err != nil {
		s.logger.Error("failed to mark order paid", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}
	if err := rowsAffectedOrNotFound(result, "order", id); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *PostgresOrderStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete order", zap.String("order_id", id), zap.Error(err))
		return err
	}
	if err := rowsAffectedOrNotFound(result, "order", id); err != nil {
		return err
	}
	return tx.Commit()
}
