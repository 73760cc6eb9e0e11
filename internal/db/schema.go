package db

import "fmt"

// Statements are idempotent so the server and the seed tool can both
// run them at startup.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS courses (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title       TEXT NOT NULL,
		instructor  TEXT NOT NULL,
		price       NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		seats       INT NOT NULL DEFAULT 0 CHECK (seats >= 0),
		category    TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		customer_name  TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		customer_email TEXT NOT NULL DEFAULT '',
		total_price    NUMERIC(10,2) NOT NULL CHECK (total_price >= 0),
		status         TEXT NOT NULL,
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// course_id is intentionally not a foreign key: orders keep their
	// reference even after the course is deleted.
	`CREATE TABLE IF NOT EXISTS order_items (
		id        BIGSERIAL PRIMARY KEY,
		order_id  UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		course_id UUID NOT NULL,
		title     TEXT NOT NULL,
		price     NUMERIC(10,2) NOT NULL,
		quantity  INT NOT NULL CHECK (quantity > 0)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)`,
}

// EnsureSchema creates the tables if they do not exist yet.
func (db *PostgresDB) EnsureSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := db.Conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
