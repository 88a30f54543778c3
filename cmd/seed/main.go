// Command seed crea el esquema de PostgreSQL y siembra el catálogo demo.
// Solo es necesario con DATABASE_URL; el backend en memoria se siembra solo.
//
// Uso:
//
//	DATABASE_URL=postgres://... go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/supplysight/supplysight-api/internal/infrastructure/postgres"
	"github.com/supplysight/supplysight-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS warehouses (
	seq     BIGSERIAL PRIMARY KEY,
	id      TEXT NOT NULL UNIQUE,
	code    TEXT NOT NULL UNIQUE,
	city    TEXT NOT NULL,
	country TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	seq        BIGSERIAL PRIMARY KEY,
	id         TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	sku        TEXT NOT NULL,
	warehouse  TEXT NOT NULL REFERENCES warehouses(code),
	stock      INTEGER NOT NULL,
	demand     INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	UNIQUE (sku, warehouse)
);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL,
	role          TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

-- Contador para ids "P-<n>" asignados al crear productos en transfers.
-- Arranca justo después del mayor id del catálogo demo.
CREATE SEQUENCE IF NOT EXISTS product_id_seq START WITH 1005;
`

type seedWarehouse struct {
	id, code, city, country string
}

type seedProduct struct {
	id, name, sku, warehouse string
	stock, demand            int
}

var demoWarehouses = []seedWarehouse{
	{"W1", "BLR-A", "Bangalore", "India"},
	{"W2", "PNQ-C", "Pune", "India"},
	{"W3", "DEL-B", "Delhi", "India"},
}

var demoProducts = []seedProduct{
	{"P-1001", "12mm Hex Bolt", "HEX-12-100", "BLR-A", 180, 120},
	{"P-1002", "Steel Washer", "WSR-08-500", "BLR-A", 50, 80},
	{"P-1003", "M8 Nut", "NUT-08-200", "PNQ-C", 80, 80},
	{"P-1004", "Bearing 608ZZ", "BRG-608-50", "DEL-B", 24, 120},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if cfg.DB.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL no definido (el backend en memoria no necesita seed)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión: %w", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	fmt.Println("esquema creado")

	for _, w := range demoWarehouses {
		_, err := pool.Exec(ctx, `
			INSERT INTO warehouses (id, code, city, country)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (code) DO NOTHING`,
			w.id, w.code, w.city, w.country)
		if err != nil {
			return fmt.Errorf("sembrar bodega %s: %w", w.code, err)
		}
	}
	fmt.Printf("bodegas: %d\n", len(demoWarehouses))

	now := time.Now()
	for _, p := range demoProducts {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, sku, warehouse, stock, demand, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			ON CONFLICT (id) DO NOTHING`,
			p.id, p.name, p.sku, p.warehouse, p.stock, p.demand, now)
		if err != nil {
			return fmt.Errorf("sembrar producto %s: %w", p.id, err)
		}
	}
	fmt.Printf("productos: %d\n", len(demoProducts))

	fmt.Println("catálogo demo sembrado")
	return nil
}
