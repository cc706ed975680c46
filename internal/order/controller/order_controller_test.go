package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brekkie/internal/domain"
	"brekkie/internal/dto"
	apperrors "brekkie/internal/errors"
)

type mockForwarder struct {
	SubmitFunc func(ctx context.Context, payload domain.OrderPayload) (string, error)
	calls      int
}

func (m *mockForwarder) Submit(ctx context.Context, payload domain.OrderPayload) (string, error) {
	m.calls++
	return m.SubmitFunc(ctx, payload)
}

func postOrder(t *testing.T, c *OrderController, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(body))
	rec := httptest.NewRecorder()
	c.Submit(rec, req)
	return rec
}

func TestSubmit_Success(t *testing.T) {
	forwarder := &mockForwarder{
		SubmitFunc: func(ctx context.Context, payload domain.OrderPayload) (string, error) {
			return dto.MessageOrderSubmitted, nil
		},
	}
	c := NewOrderController(forwarder, zap.NewNop())

	rec := postOrder(t, c, `{"formType":"wholesale","email":"a@b.com","classicQty":10,"businessType":"cafe","frequency":"weekly"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.OrderSuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, dto.MessageOrderSubmitted, resp.Message)
	assert.Equal(t, 1, forwarder.calls)
}

func TestSubmit_LedgerPendingMessage(t *testing.T) {
	forwarder := &mockForwarder{
		SubmitFunc: func(ctx context.Context, payload domain.OrderPayload) (string, error) {
			return dto.MessageLedgerPending, nil
		},
	}
	c := NewOrderController(forwarder, zap.NewNop())

	rec := postOrder(t, c, `{"formType":"delivery","email":"a@b.com","classicQty":1}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending setup")
}

func TestSubmit_InvalidEmail_NoForward(t *testing.T) {
	forwarder := &mockForwarder{
		SubmitFunc: func(ctx context.Context, payload domain.OrderPayload) (string, error) {
			t.Error("payload must not be forwarded")
			return "", nil
		},
	}
	c := NewOrderController(forwarder, zap.NewNop())

	rec := postOrder(t, c, `{"formType":"wholesale","email":"not-an-email","classicQty":10}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.OrderErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid email", resp.Error)
	assert.Equal(t, 0, forwarder.calls)
}

func TestSubmit_InvalidFormType_NoForward(t *testing.T) {
	forwarder := &mockForwarder{
		SubmitFunc: func(ctx context.Context, payload domain.OrderPayload) (string, error) {
			t.Error("payload must not be forwarded")
			return "", nil
		},
	}
	c := NewOrderController(forwarder, zap.NewNop())

	rec := postOrder(t, c, `{"formType":"catering","email":"a@b.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid form type")
	assert.Equal(t, 0, forwarder.calls)
}

func TestSubmit_RejectionAlwaysCarriesMessage(t *testing.T) {
	// Every validation rejection must produce a well-formed 400 body with
	// the rule's message, regardless of which rule fired.
	forwarder := &mockForwarder{
		SubmitFunc: func(ctx context.Context, payload domain.OrderPayload) (string, error) {
			t.Error("payload must not be forwarded")
			return "", nil
		},
	}
	c := NewOrderController(forwarder, zap.NewNop())

	cases := map[string]string{
		`{"formType":"catering","email":"a@b.com"}`: "Invalid form type",
		`{"formType":"","email":"a@b.com"}`:         "Invalid form type",
		`{"formType":"delivery","email":"nope"}`:    "Invalid email",
		`{"formType":"delivery"}`:                   "Invalid email",
	}
	for body, want := range cases {
		rec := postOrder(t, c, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)

		var resp dto.OrderErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), body)
		assert.Equal(t, want, resp.Error, body)
	}
	assert.Equal(t, 0, forwarder.calls)
}

func TestSubmit_LegacyPreorderTagAccepted(t *testing.T) {
	forwarder := &mockForwarder{
		SubmitFunc: func(ctx context.Context, payload domain.OrderPayload) (string, error) {
			return dto.MessageOrderSubmitted, nil
		},
	}
	c := NewOrderController(forwarder, zap.NewNop())

	rec := postOrder(t, c, `{"formType":"preorder","email":"a@b.com","classicQty":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmit_InvalidJSON(t *testing.T) {
	c := NewOrderController(&mockForwarder{}, zap.NewNop())

	rec := postOrder(t, c, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmit_ForwardingFailure(t *testing.T) {
	forwarder := &mockForwarder{
		SubmitFunc: func(ctx context.Context, payload domain.OrderPayload) (string, error) {
			return "", apperrors.NewForwardingError(http.StatusInternalServerError, "boom")
		},
	}
	c := NewOrderController(forwarder, zap.NewNop())

	rec := postOrder(t, c, `{"formType":"wholesale","email":"a@b.com","classicQty":10}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp dto.OrderErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// Downstream details stay internal; the caller gets the generic prompt.
	assert.Equal(t, dto.MessageSubmitFailed, resp.Error)
}

func TestSubmit_UnexpectedFailure(t *testing.T) {
	forwarder := &mockForwarder{
		SubmitFunc: func(ctx context.Context, payload domain.OrderPayload) (string, error) {
			return "", apperrors.NewInternalError("calling ledger endpoint", assert.AnError)
		},
	}
	c := NewOrderController(forwarder, zap.NewNop())

	rec := postOrder(t, c, `{"formType":"wholesale","email":"a@b.com","classicQty":10}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), dto.MessageSubmitFailed)
}
