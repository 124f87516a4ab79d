package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// migration is one versioned schema change. Steps run in order inside a
// transaction and are recorded in schema_migrations, so a restart never
// applies the same step twice.
type migration struct {
	version int
	name    string
	up      string
}

// getMigrations returns the full ordered schema history.
// Append new steps; never edit an applied one.
func getMigrations() []migration {
	return []migration{
		{
			version: 1,
			name:    "create_orders",
			up: `
				CREATE TABLE orders (
					id uuid PRIMARY KEY,
					customer_name varchar(255) NOT NULL,
					created_by varchar(255) NOT NULL,
					created_at timestamptz NOT NULL,
					urgent boolean NOT NULL DEFAULT false,
					currency char(3) NOT NULL,
					address text,
					tax_id varchar(64)
				);
				CREATE INDEX idx_orders_created_by ON orders (created_by);
				CREATE INDEX idx_orders_queue ON orders (urgent DESC, created_at ASC);
			`,
		},
		{
			version: 2,
			name:    "create_order_items",
			up: `
				CREATE TABLE order_items (
					id uuid PRIMARY KEY,
					order_id uuid NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
					product_name varchar(255) NOT NULL,
					ordered_qty int NOT NULL,
					unit varchar(32) NOT NULL,
					unit_price numeric(12,2) NOT NULL,
					status int NOT NULL,
					dispatched_qty int,
					dispatched_at timestamptz,
					dispatched_by varchar(255)
				);
				CREATE INDEX idx_order_items_order_id ON order_items (order_id);
				CREATE INDEX idx_order_items_status ON order_items (status);
			`,
		},
		{
			version: 3,
			name:    "create_users",
			up: `
				CREATE TABLE users (
					id uuid PRIMARY KEY,
					username varchar(255) NOT NULL UNIQUE,
					full_name varchar(255) NOT NULL,
					role varchar(32) NOT NULL,
					password_hash varchar(255) NOT NULL
				);
			`,
		},
	}
}

// Migrate brings the database schema up to date. Safe to run at every
// startup.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version int PRIMARY KEY,
			name varchar(255) NOT NULL,
			applied_at timestamptz NOT NULL DEFAULT now()
		)
	`).Error; err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range getMigrations() {
		var applied int64
		if err := db.Table("schema_migrations").Where("version = ?", m.version).Count(&applied).Error; err != nil {
			return fmt.Errorf("check migration %d: %w", m.version, err)
		}
		if applied > 0 {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(m.up).Error; err != nil {
				return err
			}
			return tx.Exec(`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`, m.version, m.name).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %d %s: %w", m.version, m.name, err)
		}
	}

	return nil
}
