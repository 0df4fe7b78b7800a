package push

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestExpoService_Send(t *testing.T) {
	var received expoMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewExpoService(server.URL, discardLogger())

	err := sender.Send(context.Background(), "ExponentPushToken[abc]", "Title", "Body")

	require.NoError(t, err)
	assert.Equal(t, expoMessage{
		To:    "ExponentPushToken[abc]",
		Sound: "default",
		Title: "Title",
		Body:  "Body",
	}, received)
}

func TestExpoService_Send_RelayRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"code":"INVALID_TOKEN"}]}`))
	}))
	defer server.Close()

	sender := NewExpoService(server.URL, discardLogger())

	err := sender.Send(context.Background(), "bad-token", "Title", "Body")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestExpoService_Send_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewExpoService(server.URL, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.Send(ctx, "ExponentPushToken[abc]", "Title", "Body")

	require.Error(t, err)
}
