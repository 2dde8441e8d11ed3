package db

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres(dsn string) *pgxpool.Pool {
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// CUSTOMERS
	// -------------------------------
	customersSQL := `
		CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			phone VARCHAR(20),
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CUSTOMER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, customersSQL); err != nil {
		return err
	}

	// -------------------------------
	// CUSTOMER PREFERENCES
	// -------------------------------
	preferencesSQL := `
		CREATE TABLE IF NOT EXISTS customer_preferences (
			email VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL DEFAULT 'Guest',
			dietary_preference VARCHAR(100) NOT NULL DEFAULT 'Pure Veg',
			main_course_preference VARCHAR(255) NOT NULL DEFAULT '',
			sweets_preference VARCHAR(255) NOT NULL DEFAULT ''
		)
	`
	if _, err := db.Exec(ctx, preferencesSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			image_url VARCHAR(500),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(50) PRIMARY KEY,
			customer_id VARCHAR(255) NOT NULL,
			customer_name VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			status VARCHAR(50) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	orderItemsSQL := `
		CREATE TABLE IF NOT EXISTS order_items (
			id VARCHAR(50) PRIMARY KEY,
			order_id VARCHAR(50) NOT NULL,
			item_id VARCHAR(50) NOT NULL,
			item_name VARCHAR(255) NOT NULL,
			quantity INT NOT NULL DEFAULT 1,
			price NUMERIC(10,2) NOT NULL,
			FOREIGN KEY (order_id) REFERENCES orders(id)
		)
	`
	if _, err := db.Exec(ctx, orderItemsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
