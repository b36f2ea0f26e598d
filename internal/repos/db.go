package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed reference categories if DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Identities (registered participants)
CREATE TABLE IF NOT EXISTS identities(
  email TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  role TEXT NOT NULL DEFAULT '',
  verified INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_identities_email ON identities(LOWER(email));

-- Categories (static reference data)
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name);

-- Products store the category NAME, not its id. Listings join on it.
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  seller_email TEXT NOT NULL,
  seller_name TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL,
  name TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL DEFAULT 0,
  location TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  posted TEXT NOT NULL DEFAULT '',
  seller_verified INTEGER NOT NULL DEFAULT 0,
  sale_status TEXT NOT NULL DEFAULT 'unsold' CHECK (sale_status IN ('unsold','sold')),
  advertised INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_seller   ON products(seller_email);
CREATE INDEX IF NOT EXISTS idx_products_adv      ON products(advertised, sale_status);

-- Bookings: at most one per (product_id, email)
CREATE TABLE IF NOT EXISTS bookings(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  email TEXT NOT NULL,
  product_name TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL DEFAULT 0,
  phone TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(product_id, email)
);
CREATE INDEX IF NOT EXISTS idx_bookings_email ON bookings(email);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting reference categories")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name) VALUES
	  ('cat-apple','Apple'),
	  ('cat-dell','Dell'),
	  ('cat-hp','HP'),
	  ('cat-lenovo','Lenovo')`)

	return tx.Commit()
}
