package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database. Expects a MySQL
// instance at localhost:3306 with a 'brekkie_test' schema; tests skip
// when it is not available.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/brekkie_test?parseTime=true"
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

	tables := []string{"LedgerRows", "LedgerSheets"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the ledger tables used by integration tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createSheetsTable := `
	CREATE TABLE IF NOT EXISTS LedgerSheets (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(64) NOT NULL UNIQUE,
		weekStart DATE NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createRowsTable := `
	CREATE TABLE IF NOT EXISTS LedgerRows (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		sheetId INT UNSIGNED NOT NULL,
		orderDate DATETIME NOT NULL,
		type VARCHAR(20) NOT NULL,
		nameOrBusiness VARCHAR(150) NOT NULL DEFAULT '',
		address VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(30) NOT NULL DEFAULT '',
		email VARCHAR(150) NOT NULL DEFAULT '',
		contact VARCHAR(150) NOT NULL DEFAULT '',
		salesAgent VARCHAR(50) NOT NULL DEFAULT 'Online',
		classicQty INT NOT NULL DEFAULT 0,
		blueberryQty INT NOT NULL DEFAULT 0,
		walnutQty INT NOT NULL DEFAULT 0,
		totalUnits INT NOT NULL DEFAULT 0,
		pricePerLoaf DECIMAL(10,2),
		frequency VARCHAR(20) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'New',
		notes VARCHAR(500) NOT NULL DEFAULT '',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (sheetId) REFERENCES LedgerSheets(id),
		INDEX idx_sheet (sheetId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"LedgerSheets", createSheetsTable},
		{"LedgerRows", createRowsTable},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
