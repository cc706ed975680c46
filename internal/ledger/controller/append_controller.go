package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"brekkie/internal/domain"
	"brekkie/internal/dto"
	apperrors "brekkie/internal/errors"
)

type LedgerAppender interface {
	Append(ctx context.Context, payload domain.OrderPayload) (*domain.LedgerRow, error)
}

type AppendController struct {
	ledger LedgerAppender
	logger *zap.Logger
}

func NewAppendController(ledger LedgerAppender, logger *zap.Logger) *AppendController {
	return &AppendController{
		ledger: ledger,
		logger: logger,
	}
}

// Append handles POST /api/ledger/append. It accepts JSON whether the
// caller sent application/json or text/plain;charset=utf-8 (the gateway
// uses the latter for compatibility with script-host ledgers) and acks
// the write with a direct 200 body, never a redirect.
func (c *AppendController) Append(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var payload domain.OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, dto.AppendResponse{Error: "request body must be valid JSON"})
		return
	}

	row, err := c.ledger.Append(r.Context(), payload)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			logger.Warn("rejected ledger append", zap.String("reason", ve.Message))
			c.writeJSON(w, http.StatusBadRequest, dto.AppendResponse{Error: ve.Message})
			return
		}

		logger.Error("ledger append failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.AppendResponse{Error: "failed to record order"})
		return
	}

	logger.Info("order recorded",
		zap.String("type", row.Type),
		zap.Uint("rowId", row.ID),
	)
	c.writeJSON(w, http.StatusOK, dto.AppendResponse{Success: true})
}

func (c *AppendController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
