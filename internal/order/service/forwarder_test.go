package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brekkie/internal/config"
	"brekkie/internal/domain"
	"brekkie/internal/dto"
	apperrors "brekkie/internal/errors"
)

func newTestForwarder(url string) *Forwarder {
	return NewForwarder(config.LedgerConfig{
		URL:            url,
		ForwardTimeout: 5 * time.Second,
	}, zap.NewNop())
}

func wholesalePayload() domain.OrderPayload {
	return domain.OrderPayload{
		FormType:   domain.FormTypeWholesale,
		Email:      "a@b.com",
		ClassicQty: 10,
	}
}

func TestForwarder_PlaceholderURL_NoOutboundCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no outbound call expected for placeholder URL")
	}))
	defer server.Close()

	// The placeholder marker wins even when the URL is otherwise valid.
	f := newTestForwarder(server.URL + "/PLACEHOLDER")

	message, err := f.Submit(context.Background(), wholesalePayload())

	require.NoError(t, err)
	assert.Equal(t, dto.MessageLedgerPending, message)
}

func TestForwarder_EmptyURL_DegradesToLogging(t *testing.T) {
	f := newTestForwarder("")

	message, err := f.Submit(context.Background(), wholesalePayload())

	require.NoError(t, err)
	assert.Equal(t, dto.MessageLedgerPending, message)
}

func TestForwarder_Success(t *testing.T) {
	var received domain.OrderPayload
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	f := newTestForwarder(server.URL)
	fixed := time.Date(2026, time.September, 2, 9, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return fixed }

	message, err := f.Submit(context.Background(), wholesalePayload())

	require.NoError(t, err)
	assert.Equal(t, dto.MessageOrderSubmitted, message)
	assert.Equal(t, "text/plain;charset=utf-8", contentType)
	assert.Equal(t, fixed, received.SubmittedAt)
}

func TestForwarder_OverridesClientSubmittedAt(t *testing.T) {
	var received domain.OrderPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	f := newTestForwarder(server.URL)
	fixed := time.Date(2026, time.September, 2, 9, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return fixed }

	payload := wholesalePayload()
	payload.SubmittedAt = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.Submit(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, fixed, received.SubmittedAt)
}

func TestForwarder_RedirectTreatedAsSuccess(t *testing.T) {
	// Script-host ledgers complete the write and then redirect. The
	// redirect must not be followed: following would replay as a GET.
	var methods []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		if r.URL.Path == "/append" {
			w.Header().Set("Location", "/result")
			w.WriteHeader(http.StatusFound)
			return
		}
		t.Errorf("redirect was followed to %s", r.URL.Path)
	}))
	defer server.Close()

	f := newTestForwarder(server.URL + "/append")

	message, err := f.Submit(context.Background(), wholesalePayload())

	require.NoError(t, err)
	assert.Equal(t, dto.MessageOrderSubmitted, message)
	assert.Equal(t, []string{http.MethodPost}, methods)
}

func TestForwarder_DownstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("script exploded"))
	}))
	defer server.Close()

	f := newTestForwarder(server.URL)

	_, err := f.Submit(context.Background(), wholesalePayload())

	fe, ok := apperrors.IsForwardingError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, fe.Status)
	assert.Equal(t, "script exploded", fe.Body)
}

func TestForwarder_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // unreachable endpoint

	f := newTestForwarder(server.URL)

	_, err := f.Submit(context.Background(), wholesalePayload())

	require.Error(t, err)
	_, ok := apperrors.IsForwardingError(err)
	assert.False(t, ok, "network errors are not forwarding errors")
}
