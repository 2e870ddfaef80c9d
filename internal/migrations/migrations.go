package migrations

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// Migration represents a database migration.
type Migration struct {
	ID        int
	Name      string
	SQL       string
	Rollback  string
	AppliedAt time.Time
}

// Migrator handles database migrations.
type Migrator struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMigrator creates a new migrator instance.
func NewMigrator(db *sql.DB, logger *zap.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger.Named("migrator"),
	}
}

// Run executes all pending migrations.
func (m *Migrator) Run(ctx context.Context) error {
	m.logger.Info("running migrations")

	if err := m.createMigrationsTable(ctx); err != nil {
		return err
	}

	applied, err := m.getAppliedMigrations(ctx)
	if err != nil {
		return err
	}

	for _, migration := range allMigrations {
		if _, ok := applied[migration.ID]; ok {
			continue
		}

		m.logger.Info("applying migration",
			zap.Int("id", migration.ID),
			zap.String("name", migration.Name))

		if err := m.applyMigration(ctx, migration); err != nil {
			return err
		}
	}

	m.logger.Info("migrations completed")
	return nil
}

func (m *Migrator) createMigrationsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`
	_, err := m.db.ExecContext(ctx, query)
	return err
}

func (m *Migrator) getAppliedMigrations(ctx context.Context) (map[int]bool, error) {
	query := `SELECT id FROM schema_migrations`
	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		applied[id] = true
	}
	return applied, rows.Err()
}

func (m *Migrator) applyMigration(ctx context.Context, migration Migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, migration.SQL); err != nil {
		m.logger.Error("migration failed",
			zap.Int("id", migration.ID), zap.Error(err))
		return err
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (id, name) VALUES ($1, $2)`,
		migration.ID, migration.Name); err != nil {
		return err
	}

	return tx.Commit()
}

// allMigrations contains all database migrations.
var allMigrations = []Migration{
	{
		ID:   1,
		Name: "create_stores_table",
		SQL: `
			CREATE TABLE IF NOT EXISTS stores (
				id VARCHAR(50) PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				user_id VARCHAR(50) NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			);
			CREATE INDEX idx_stores_user_id ON stores(user_id);
		`,
		Rollback: `DROP TABLE IF EXISTS stores;`,
	},
	{
		ID:   2,
		Name: "create_billboards_table",
		SQL: `
			CREATE TABLE IF NOT EXISTS billboards (
				id VARCHAR(50) PRIMARY KEY,
				store_id VARCHAR(50) NOT NULL REFERENCES stores(id),
				label VARCHAR(255) NOT NULL,
				image_url TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			);
			CREATE INDEX idx_billboards_store_id ON billboards(store_id);
		`,
		Rollback: `DROP TABLE IF EXISTS billboards;`,
	},
	{
		ID:   3,
		Name: "create_categories_table",
		SQL: `
			CREATE TABLE IF NOT EXISTS categories (
				id VARCHAR(50) PRIMARY KEY,
				store_id VARCHAR(50) NOT NULL REFERENCES stores(id),
				billboard_id VARCHAR(50) NOT NULL REFERENCES billboards(id),
				name VARCHAR(255) NOT NULL,
				gender VARCHAR(20) NOT NULL,
				image_url TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			);
			CREATE INDEX idx_categories_store_id ON categories(store_id);
			CREATE INDEX idx_categories_gender ON categories(store_id, gender);
		`,
		Rollback: `DROP TABLE IF EXISTS categories;`,
	},
	{
		ID:   4,
		Name: "create_colors_and_sizes_tables",
		SQL: `
			CREATE TABLE IF NOT EXISTS colors (
				id VARCHAR(50) PRIMARY KEY,
				store_id VARCHAR(50) NOT NULL REFERENCES stores(id),
				name VARCHAR(100) NOT NULL,
				value VARCHAR(100) NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			);
			CREATE INDEX idx_colors_store_id ON colors(store_id);

			CREATE TABLE IF NOT EXISTS sizes (
				id VARCHAR(50) PRIMARY KEY,
				store_id VARCHAR(50) NOT NULL REFERENCES stores(id),
				name VARCHAR(100) NOT NULL,
				value VARCHAR(100) NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			);
			CREATE INDEX idx_sizes_store_id ON sizes(store_id);
		`,
		Rollback: `DROP TABLE IF EXISTS colors; DROP TABLE IF EXISTS sizes;`,
	},
	{
		ID:   5,
		Name: "create_products_tables",
		SQL: `
			CREATE TABLE IF NOT EXISTS products (
				id VARCHAR(50) PRIMARY KEY,
				store_id VARCHAR(50) NOT NULL REFERENCES stores(id),
				category_id VARCHAR(50) NOT NULL REFERENCES categories(id),
				color_id VARCHAR(50) NOT NULL REFERENCES colors(id),
				size_id VARCHAR(50) NOT NULL REFERENCES sizes(id),
				name VARCHAR(255) NOT NULL,
				price NUMERIC(12, 2) NOT NULL,
				is_featured BOOLEAN NOT NULL DEFAULT false,
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			);
			CREATE INDEX idx_products_store_id ON products(store_id);
			CREATE INDEX idx_products_category_id ON products(category_id);
			CREATE INDEX idx_products_featured ON products(store_id, is_featured);

			CREATE TABLE IF NOT EXISTS product_images (
				id VARCHAR(50) PRIMARY KEY,
				product_id VARCHAR(50) NOT NULL REFERENCES products(id),
				url TEXT NOT NULL
			);
			CREATE INDEX idx_product_images_product_id ON product_images(product_id);
		`,
		Rollback: `DROP TABLE IF EXISTS product_images; DROP TABLE IF EXISTS products;`,
	},
	{
		ID:   6,
		Name: "create_orders_tables",
		SQL: `
			CREATE TABLE IF NOT EXISTS orders (
				id VARCHAR(50) PRIMARY KEY,
				store_id VARCHAR(50) NOT NULL REFERENCES stores(id),
				user_id VARCHAR(50) NOT NULL,
				is_paid BOOLEAN NOT NULL DEFAULT false,
				is_delivered BOOLEAN NOT NULL DEFAULT false,
				delivered_at TIMESTAMP,
				address TEXT,
				phone VARCHAR(50),
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			);
			CREATE INDEX idx_orders_store_id ON orders(store_id);
			CREATE INDEX idx_orders_user_id ON orders(user_id, is_delivered);
			CREATE INDEX idx_orders_paid ON orders(store_id, is_paid, created_at);

			CREATE TABLE IF NOT EXISTS order_items (
				id VARCHAR(50) PRIMARY KEY,
				order_id VARCHAR(50) NOT NULL REFERENCES orders(id),
				product_id VARCHAR(50) NOT NULL REFERENCES products(id),
				unit_price NUMERIC(12, 2) NOT NULL,
				quantity INTEGER NOT NULL,
				size VARCHAR(100),
				color VARCHAR(100)
			);
			CREATE INDEX idx_order_items_order_id ON order_items(order_id);
			CREATE INDEX idx_order_items_product_id ON order_items(product_id);
		`,
		Rollback: `DROP TABLE IF EXISTS order_items; DROP TABLE IF EXISTS orders;`,
	},
	{
		ID:   7,
		Name: "create_reviews_tables",
		SQL: `
			CREATE TABLE IF NOT EXISTS reviews (
				id VARCHAR(50) PRIMARY KEY,
				product_id VARCHAR(50) NOT NULL REFERENCES products(id),
				user_id VARCHAR(50) NOT NULL,
				rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
				comment TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				UNIQUE (product_id, user_id)
			);
			CREATE INDEX idx_reviews_product_id ON reviews(product_id, created_at);
			CREATE INDEX idx_reviews_user_id ON reviews(user_id);

			CREATE TABLE IF NOT EXISTS review_images (
				id VARCHAR(50) PRIMARY KEY,
				review_id VARCHAR(50) NOT NULL REFERENCES reviews(id),
				url TEXT NOT NULL
			);
			CREATE INDEX idx_review_images_review_id ON review_images(review_id);
		`,
		Rollback: `DROP TABLE IF EXISTS review_images; DROP TABLE IF EXISTS reviews;`,
	},
}
