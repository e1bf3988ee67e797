package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bpcoach/internal/config"
)

func testClient(url string) *GatewayClient {
	return NewGatewayClient(config.CoachConfig{
		GatewayURL:     url,
		APIKey:         "test-key",
		Model:          "test-model",
		RequestTimeout: 5 * time.Second,
		StreamTimeout:  5 * time.Second,
	}, zap.NewNop())
}

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.False(t, req.Stream)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"summary text"}}]}`))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Complete(context.Background(), []Message{{Role: "user", Content: "analyse"}})
	require.NoError(t, err)
	assert.Equal(t, "summary text", got)
}

func TestComplete_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limit"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestStream_EventStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, chunk := range []string{"Hello", " there"} {
			payload, _ := json.Marshal(map[string]any{
				"choices": []map[string]any{{"delta": map[string]string{"content": chunk}}},
			})
			w.Write([]byte("data: " + string(payload) + "\n"))
			flusher.Flush()
		}
		w.Write([]byte("data: [DONE]\n"))
	}))
	defer srv.Close()

	var sb strings.Builder
	err := testClient(srv.URL).Stream(context.Background(), []Message{{Role: "user", Content: "hi"}}, func(chunk string) error {
		sb.WriteString(chunk)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello there", sb.String())
}

// A gateway may answer a streaming request with a plain JSON body; the whole
// reply then arrives as a single chunk.
func TestStream_JSONFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"one-shot reply"}}]}`))
	}))
	defer srv.Close()

	var chunks []string
	err := testClient(srv.URL).Stream(context.Background(), []Message{{Role: "user", Content: "hi"}}, func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"one-shot reply"}, chunks)
}

func TestStream_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "payment required", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	err := testClient(srv.URL).Stream(context.Background(), []Message{{Role: "user", Content: "hi"}}, func(string) error {
		t.Fatal("no chunks expected on error status")
		return nil
	})
	assert.ErrorIs(t, err, ErrUpstream)
}
