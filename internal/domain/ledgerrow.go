package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	LedgerTypePreorder  = "Preorder"
	LedgerTypeWholesale = "Wholesale"

	// SalesAgentOnline marks web-submitted rows; manually entered rows
	// in the same sheet carry field-agent names instead.
	SalesAgentOnline = "Online"

	LedgerStatusNew = "New"
)

// LedgerSheet is one weekly tab of the ledger together with its rows.
type LedgerSheet struct {
	ID        uint
	Name      string
	WeekStart time.Time
	Rows      []LedgerRow
}

// LedgerRow is one accepted order in the weekly ledger. Rows are
// append-only: Price/Loaf and Status are hand-edited by staff afterward,
// outside this system.
type LedgerRow struct {
	ID             uint
	SheetID        uint
	Date           time.Time
	Type           string
	NameOrBusiness string
	Address        string
	Phone          string
	Email          string
	Contact        string
	SalesAgent     string
	ClassicQty     int
	BlueberryQty   int
	WalnutQty      int
	TotalUnits     int
	PricePerLoaf   *decimal.Decimal
	Frequency      string
	Status         string
	Notes          string
	CreatedAt      time.Time
}

// Revenue derives TotalUnits × Price/Loaf. It is never stored: the second
// return is false while Price/Loaf is unset, which renders as blank.
func (r LedgerRow) Revenue() (decimal.Decimal, bool) {
	if r.PricePerLoaf == nil {
		return decimal.Decimal{}, false
	}
	return r.PricePerLoaf.Mul(decimal.NewFromInt(int64(r.TotalUnits))), true
}

// NewLedgerRow builds the row for an accepted payload. Wholesale orders
// default Price/Loaf to the configured flat rate; preorders leave it
// unset until staff fill it in.
func NewLedgerRow(p OrderPayload, wholesalePrice decimal.Decimal) LedgerRow {
	row := LedgerRow{
		Date:         p.SubmittedAt,
		Address:      p.DeliveryAddress,
		Phone:        p.Phone,
		Email:        p.Email,
		SalesAgent:   SalesAgentOnline,
		ClassicQty:   p.ClassicQty,
		BlueberryQty: p.BlueberryQty,
		WalnutQty:    p.WalnutQty,
		TotalUnits:   p.TotalUnits(),
		Status:       LedgerStatusNew,
		Notes:        ledgerNotes(p),
	}

	if p.IsWholesale() {
		row.Type = LedgerTypeWholesale
		row.NameOrBusiness = p.BusinessName
		row.Contact = p.ContactName
		row.Frequency = titleCase(p.Frequency)
		price := wholesalePrice
		row.PricePerLoaf = &price
	} else {
		row.Type = LedgerTypePreorder
		row.NameOrBusiness = p.Name
		row.Contact = p.Name
	}

	return row
}

// ledgerNotes pipe-joins the optional annotations: the requested delivery
// date for preorders, then any special instructions.
func ledgerNotes(p OrderPayload) string {
	var parts []string
	if p.IsDelivery() && p.DeliveryDate != "" {
		parts = append(parts, "Delivery "+p.DeliveryDate)
	}
	if p.IsWholesale() && p.BusinessType != "" {
		parts = append(parts, titleCase(p.BusinessType))
	}
	if p.SpecialInstructions != "" {
		parts = append(parts, p.SpecialInstructions)
	}
	return strings.Join(parts, " | ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
