package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"brekkie/internal/errors"
)

type MySQLSheetRepository struct {
	db *sql.DB
}

func NewMySQLSheetRepository(db *sql.DB) *MySQLSheetRepository {
	return &MySQLSheetRepository{db: db}
}

// EnsureSheet resolves the weekly sheet id for name, creating the sheet
// if absent. The statement is a create-if-absent upsert keyed on the
// unique sheet name, so concurrent first submissions of a week cannot
// produce duplicate sheets.
func (r *MySQLSheetRepository) EnsureSheet(ctx context.Context, name string, weekStart time.Time) (uint, error) {
	query := `
		INSERT INTO LedgerSheets (name, weekStart)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)
	`

	result, err := r.db.ExecContext(ctx, query, name, weekStart.Format("2006-01-02"))
	if err != nil {
		return 0, fmt.Errorf("ensuring ledger sheet: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting sheet id: %w", err)
	}

	return uint(id), nil
}

func (r *MySQLSheetRepository) FindByName(ctx context.Context, name string) (uint, time.Time, error) {
	query := `SELECT id, weekStart FROM LedgerSheets WHERE name = ?`

	var id uint
	var weekStart time.Time
	err := r.db.QueryRowContext(ctx, query, name).Scan(&id, &weekStart)

	if err == sql.ErrNoRows {
		return 0, time.Time{}, errors.NewNotFoundError(fmt.Sprintf("ledger sheet %q not found", name))
	}
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("querying ledger sheet by name: %w", err)
	}

	return id, weekStart, nil
}
