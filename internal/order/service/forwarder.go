package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"brekkie/internal/config"
	"brekkie/internal/domain"
	"brekkie/internal/dto"
	apperrors "brekkie/internal/errors"
)

// Forwarder relays validated payloads to the ledger endpoint. It never
// retries: a failed forward surfaces immediately and the customer
// resubmits by hand.
type Forwarder struct {
	url    string
	client *http.Client
	logger *zap.Logger
	now    func() time.Time
}

func NewForwarder(cfg config.LedgerConfig, logger *zap.Logger) *Forwarder {
	return &Forwarder{
		url: cfg.URL,
		client: &http.Client{
			Timeout: cfg.ForwardTimeout,
			// Script-host ledgers redirect after completing the write.
			// Following the redirect would replay the POST as a GET and
			// fail, so the redirect response is kept as the final one.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
		now:    time.Now,
	}
}

// Submit stamps the payload with the server submission time and forwards
// it. When no ledger endpoint is configured the payload is logged and
// reported as accepted; orders must not bounce in environments where the
// ledger is not wired up yet.
func (f *Forwarder) Submit(ctx context.Context, payload domain.OrderPayload) (string, error) {
	if !f.configured() {
		f.logger.Info("order received (ledger not configured)",
			zap.String("formType", payload.FormType),
			zap.String("email", payload.Email),
			zap.Int("totalUnits", payload.TotalUnits()),
		)
		return dto.MessageLedgerPending, nil
	}

	payload.SubmittedAt = f.now().UTC()

	body, err := json.Marshal(payload)
	if err != nil {
		return "", apperrors.NewInternalError("encoding order payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewInternalError("building ledger request", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", apperrors.NewInternalError("calling ledger endpoint", err)
	}
	defer resp.Body.Close()

	// A redirect means the ledger completed the write before redirecting;
	// it counts as success alongside any 2xx.
	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		return dto.MessageOrderSubmitted, nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
	f.logger.Error("ledger forward failed",
		zap.Int("status", resp.StatusCode),
		zap.String("body", string(snippet)),
	)
	return "", apperrors.NewForwardingError(resp.StatusCode, string(snippet))
}

func (f *Forwarder) configured() bool {
	return f.url != "" && !strings.Contains(f.url, config.PlaceholderLedgerURL)
}
