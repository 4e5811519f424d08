package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. Expects a MySQL instance on
// localhost:3306 with a database named 'bluw_test'; tests skip when it is
// not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/bluw_test?parseTime=true"
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

	if _, err := db.Exec("DELETE FROM logo_orders"); err != nil {
		t.Logf("failed to clean table logo_orders: %v", err)
	}

	db.Close()
}

func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS logo_orders (
		id CHAR(36) NOT NULL PRIMARY KEY,
		company_name VARCHAR(255) NOT NULL,
		sector VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(64) NOT NULL,
		website VARCHAR(255),
		logo_name VARCHAR(255) NOT NULL,
		style VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		formats JSON NOT NULL,
		preferred_colors VARCHAR(255),
		avoided_colors VARCHAR(255),
		typography VARCHAR(255),
		icons VARCHAR(255),
		slogan VARCHAR(255),
		examples_url VARCHAR(255),
		usage_contexts JSON,
		package VARCHAR(32) NOT NULL,
		amount BIGINT NOT NULL,
		currency VARCHAR(3) NOT NULL,
		stripe_session_id VARCHAR(255),
		stripe_customer_id VARCHAR(255),
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	if _, err := db.Exec(createOrdersTable); err != nil {
		t.Fatalf("failed to create logo_orders table: %v", err)
	}
}
