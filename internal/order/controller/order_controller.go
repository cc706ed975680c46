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
	"brekkie/internal/validation"
)

type OrderForwarder interface {
	Submit(ctx context.Context, payload domain.OrderPayload) (string, error)
}

type OrderController struct {
	forwarder OrderForwarder
	logger    *zap.Logger
}

func NewOrderController(forwarder OrderForwarder, logger *zap.Logger) *OrderController {
	return &OrderController{
		forwarder: forwarder,
		logger:    logger,
	}
}

// Submit handles POST /api/order. Form type and email are re-checked
// here even though the form already validated them; the gateway does not
// trust the client. Violations are rejected before any network effect.
func (c *OrderController) Submit(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var payload domain.OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, dto.OrderErrorResponse{Error: "request body must be valid JSON"})
		return
	}

	if err := validation.ValidatePayload(&payload); err != nil {
		message := err.Error()
		if ve, ok := apperrors.IsValidationError(err); ok {
			message = ve.Message
		}
		logger.Warn("rejected order", zap.String("reason", message))
		c.writeJSON(w, http.StatusBadRequest, dto.OrderErrorResponse{Error: message})
		return
	}

	message, err := c.forwarder.Submit(r.Context(), payload)
	if err != nil {
		if fe, ok := apperrors.IsForwardingError(err); ok {
			logger.Error("ledger rejected order", zap.Int("downstreamStatus", fe.Status))
			c.writeJSON(w, http.StatusBadGateway, dto.OrderErrorResponse{Error: dto.MessageSubmitFailed})
			return
		}

		logger.Error("order submission failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.OrderErrorResponse{Error: dto.MessageSubmitFailed})
		return
	}

	logger.Info("order accepted",
		zap.String("formType", payload.FormType),
		zap.Int("totalUnits", payload.TotalUnits()),
	)
	c.writeJSON(w, http.StatusOK, dto.OrderSuccessResponse{Success: true, Message: message})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
