package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. Expects a MySQL instance
// at localhost:3306 with a database named 'petstore_test'; tests skip when
// it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/petstore_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"product_inventory", "customers"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the replica tables the MySQL-backed adapters read.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createProductInventory := `
	CREATE TABLE IF NOT EXISTS product_inventory (
		product_id VARCHAR(32) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		unit_price DECIMAL(10,2) NOT NULL,
		available_quantity INT NOT NULL,
		reorder_level INT NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'in_stock',
		last_updated TIMESTAMP NULL
	)`

	createCustomers := `
	CREATE TABLE IF NOT EXISTS customers (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		subscription_status VARCHAR(16) NOT NULL DEFAULT 'none',
		subscription_end_date TIMESTAMP NULL
	)`

	for _, stmt := range []string{createProductInventory, createCustomers} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to create test table: %v", err)
		}
	}
}
