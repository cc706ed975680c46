package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"brekkie/internal/domain"
)

type MySQLRowRepository struct {
	db *sql.DB
}

func NewMySQLRowRepository(db *sql.DB) *MySQLRowRepository {
	return &MySQLRowRepository{db: db}
}

// Insert appends one row to a weekly sheet. Revenue is never written:
// it is derived on read so later hand-edits to pricePerLoaf keep the
// figure live, matching spreadsheet formula behavior.
func (r *MySQLRowRepository) Insert(ctx context.Context, row domain.LedgerRow) (uint, error) {
	query := `
		INSERT INTO LedgerRows (
			sheetId, orderDate, type, nameOrBusiness, address, phone, email,
			contact, salesAgent, classicQty, blueberryQty, walnutQty,
			totalUnits, pricePerLoaf, frequency, status, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var price sql.NullString
	if row.PricePerLoaf != nil {
		price = sql.NullString{String: row.PricePerLoaf.String(), Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		row.SheetID, row.Date, row.Type, row.NameOrBusiness, row.Address,
		row.Phone, row.Email, row.Contact, row.SalesAgent, row.ClassicQty,
		row.BlueberryQty, row.WalnutQty, row.TotalUnits, price,
		row.Frequency, row.Status, row.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting ledger row: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting ledger row id: %w", err)
	}

	return uint(id), nil
}

func (r *MySQLRowRepository) ListBySheet(ctx context.Context, sheetID uint) ([]domain.LedgerRow, error) {
	query := `
		SELECT id, sheetId, orderDate, type, nameOrBusiness, address, phone,
		       email, contact, salesAgent, classicQty, blueberryQty,
		       walnutQty, totalUnits, pricePerLoaf, frequency, status,
		       notes, createdAt
		FROM LedgerRows
		WHERE sheetId = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, sheetID)
	if err != nil {
		return nil, fmt.Errorf("querying ledger rows: %w", err)
	}
	defer rows.Close()

	var result []domain.LedgerRow
	for rows.Next() {
		var row domain.LedgerRow
		var price sql.NullString
		err := rows.Scan(
			&row.ID, &row.SheetID, &row.Date, &row.Type, &row.NameOrBusiness,
			&row.Address, &row.Phone, &row.Email, &row.Contact,
			&row.SalesAgent, &row.ClassicQty, &row.BlueberryQty,
			&row.WalnutQty, &row.TotalUnits, &price, &row.Frequency,
			&row.Status, &row.Notes, &row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning ledger row: %w", err)
		}

		if price.Valid {
			p, err := decimal.NewFromString(price.String)
			if err != nil {
				return nil, fmt.Errorf("parsing pricePerLoaf: %w", err)
			}
			row.PricePerLoaf = &p
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger rows: %w", err)
	}

	return result, nil
}
