package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"brekkie/internal/domain"
	"brekkie/internal/dto"
	apperrors "brekkie/internal/errors"
)

type LedgerReader interface {
	Sheet(ctx context.Context, name string) (*domain.LedgerSheet, error)
}

type SheetController struct {
	ledger LedgerReader
	logger *zap.Logger
}

func NewSheetController(ledger LedgerReader, logger *zap.Logger) *SheetController {
	return &SheetController{
		ledger: ledger,
		logger: logger,
	}
}

// GetSheet handles GET /api/ledger/sheets/{name}. The name is the weekly
// label ("Week of Aug 31"), URL-escaped by the caller. Revenue in the
// response is derived per row from Price/Loaf at read time.
func (c *SheetController) GetSheet(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	name := chi.URLParam(r, "name")

	sheet, err := c.ledger.Sheet(r.Context(), name)
	if err != nil {
		if nf, ok := apperrors.IsNotFoundError(err); ok {
			logger.Warn("sheet not found", zap.String("sheet", name))
			c.writeJSON(w, http.StatusNotFound, dto.AppendResponse{Error: nf.Message})
			return
		}

		logger.Error("failed to load sheet", zap.String("sheet", name), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.AppendResponse{Error: "failed to load sheet"})
		return
	}

	logger.Info("sheet served",
		zap.String("sheet", name),
		zap.Int("rows", len(sheet.Rows)),
	)
	c.writeJSON(w, http.StatusOK, dto.NewSheetResponse(sheet))
}

func (c *SheetController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
