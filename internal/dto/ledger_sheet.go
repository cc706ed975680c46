package dto

import (
	"brekkie/internal/domain"
)

// SheetResponse is one weekly sheet rendered for the read endpoint.
// Revenue is computed here, never read from storage, so hand-edits to
// Price/Loaf show up in the figure immediately.
type SheetResponse struct {
	Name      string     `json:"name"`
	WeekStart string     `json:"weekStart"`
	Rows      []SheetRow `json:"rows"`
}

// SheetRow mirrors the ledger's seventeen columns. PricePerLoaf and
// Revenue render blank (omitted) while the price is unset.
type SheetRow struct {
	Date           string `json:"date"`
	Type           string `json:"type"`
	NameOrBusiness string `json:"nameOrBusiness"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Contact        string `json:"contact"`
	SalesAgent     string `json:"salesAgent"`
	ClassicQty     int    `json:"classicQty"`
	BlueberryQty   int    `json:"blueberryQty"`
	WalnutQty      int    `json:"walnutQty"`
	TotalUnits     int    `json:"totalUnits"`
	PricePerLoaf   string `json:"pricePerLoaf,omitempty"`
	Revenue        string `json:"revenue,omitempty"`
	Frequency      string `json:"frequency"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
}

func NewSheetResponse(sheet *domain.LedgerSheet) SheetResponse {
	resp := SheetResponse{
		Name:      sheet.Name,
		WeekStart: sheet.WeekStart.Format("2006-01-02"),
		Rows:      make([]SheetRow, 0, len(sheet.Rows)),
	}

	for _, row := range sheet.Rows {
		out := SheetRow{
			Date:           row.Date.Format("2006-01-02"),
			Type:           row.Type,
			NameOrBusiness: row.NameOrBusiness,
			Address:        row.Address,
			Phone:          row.Phone,
			Email:          row.Email,
			Contact:        row.Contact,
			SalesAgent:     row.SalesAgent,
			ClassicQty:     row.ClassicQty,
			BlueberryQty:   row.BlueberryQty,
			WalnutQty:      row.WalnutQty,
			TotalUnits:     row.TotalUnits,
			Frequency:      row.Frequency,
			Status:         row.Status,
			Notes:          row.Notes,
		}

		if row.PricePerLoaf != nil {
			out.PricePerLoaf = row.PricePerLoaf.StringFixed(2)
		}
		if revenue, ok := row.Revenue(); ok {
			out.Revenue = revenue.StringFixed(2)
		}

		resp.Rows = append(resp.Rows, out)
	}

	return resp
}
