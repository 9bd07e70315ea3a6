package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements DDL idempotente executado na subida da aplicação.
// CREATE TABLE/ADD COLUMN IF NOT EXISTS permitem rodar em qualquer ordem de
// deploy sem engolir erros reais.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id      BIGSERIAL PRIMARY KEY,
		name    TEXT NOT NULL,
		tax_id  TEXT NOT NULL UNIQUE,
		email   TEXT NOT NULL DEFAULT '',
		phone   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id      BIGSERIAL PRIMARY KEY,
		name    TEXT NOT NULL,
		tax_id  TEXT NOT NULL UNIQUE,
		email   TEXT NOT NULL DEFAULT '',
		phone   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id           BIGSERIAL PRIMARY KEY,
		name         TEXT NOT NULL,
		price        NUMERIC(14,2) NOT NULL,
		stock        INT NOT NULL CHECK (stock >= 0),
		type         TEXT NOT NULL,
		description  TEXT NOT NULL,
		supplier_id  BIGINT REFERENCES suppliers(id)
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id           BIGSERIAL PRIMARY KEY,
		name         TEXT NOT NULL,
		description  TEXT NOT NULL,
		salary       NUMERIC(14,2) NOT NULL,
		weekly_hours INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		tax_id      TEXT NOT NULL UNIQUE,
		national_id TEXT NOT NULL,
		phone       TEXT NOT NULL,
		email       TEXT NOT NULL,
		birth_date  DATE NOT NULL,
		hire_date   DATE NOT NULL,
		role_id     BIGINT REFERENCES roles(id)
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id           BIGSERIAL PRIMARY KEY,
		customer_id  BIGINT REFERENCES customers(id) ON DELETE CASCADE,
		supplier_id  BIGINT REFERENCES suppliers(id) ON DELETE CASCADE,
		employee_id  BIGINT REFERENCES employees(id) ON DELETE CASCADE,
		postal_code  TEXT NOT NULL,
		street       TEXT NOT NULL DEFAULT '',
		neighborhood TEXT NOT NULL DEFAULT '',
		city         TEXT NOT NULL DEFAULT '',
		state        TEXT NOT NULL DEFAULT '',
		ibge_code    TEXT NOT NULL DEFAULT '',
		number       TEXT NOT NULL DEFAULT '',
		reference    TEXT NOT NULL DEFAULT '',
		CONSTRAINT addresses_one_owner CHECK (
			(customer_id IS NOT NULL)::int +
			(supplier_id IS NOT NULL)::int +
			(employee_id IS NOT NULL)::int = 1
		)
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id              BIGSERIAL PRIMARY KEY,
		batch_id        TEXT NOT NULL,
		customer_tax_id TEXT NOT NULL REFERENCES customers(tax_id),
		product_id      BIGINT NOT NULL REFERENCES products(id),
		quantity        INT NOT NULL CHECK (quantity > 0),
		date            TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id              BIGSERIAL PRIMARY KEY,
		customer_tax_id TEXT NOT NULL REFERENCES customers(tax_id),
		product_id      BIGINT NOT NULL REFERENCES products(id),
		quantity        INT NOT NULL CHECK (quantity > 0),
		added_at        TIMESTAMPTZ NOT NULL
	)`,
	// Colunas adicionadas depois do primeiro deploy.
	`ALTER TABLE sales ADD COLUMN IF NOT EXISTS batch_id TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE employees ADD COLUMN IF NOT EXISTS email TEXT NOT NULL DEFAULT ''`,
	`CREATE INDEX IF NOT EXISTS idx_sales_batch ON sales (batch_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales (customer_tax_id)`,
	`CREATE INDEX IF NOT EXISTS idx_addresses_customer ON addresses (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_addresses_supplier ON addresses (supplier_id)`,
	`CREATE INDEX IF NOT EXISTS idx_addresses_employee ON addresses (employee_id)`,
}

// EnsureSchema cria as tabelas se não existirem. Seguro para rodar em toda subida.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
