package llm_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/adapters/llm"
	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   string
		wantOK bool
	}{
		{
			name:   "Direct output_text is trimmed",
			body:   `{"output_text": "  [컨디션 등급] A\n"}`,
			want:   "[컨디션 등급] A",
			wantOK: true,
		},
		{
			name: "Fragments are joined in order",
			body: `{"output": [
				{"type": "message", "content": [
					{"type": "output_text", "text": "첫 줄"},
					{"type": "refusal", "refusal": "no"},
					{"type": "text", "text": "둘째 줄"}
				]},
				{"type": "message", "content": [{"type": "output_text", "text": "셋째 줄 "}]}
			]}`,
			want:   "첫 줄\n둘째 줄\n셋째 줄",
			wantOK: true,
		},
		{
			name:   "Empty output_text falls back to fragments",
			body:   `{"output_text": "", "output": [{"content": [{"type": "output_text", "text": "fallback"}]}]}`,
			want:   "fallback",
			wantOK: true,
		},
		{
			name:   "Non-string fragments are skipped",
			body:   `{"output": [{"content": [{"type": "output_text", "text": 42}]}]}`,
			wantOK: false,
		},
		{
			name:   "Whitespace only is absent",
			body:   `{"output_text": "   "}`,
			wantOK: false,
		},
		{
			name:   "No text anywhere is absent",
			body:   `{"id": "resp_1", "output": []}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := llm.ExtractText([]byte(tt.body))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponsesClient_Generate(t *testing.T) {
	ctx := context.Background()
	prompt := domain.ReportPrompt{System: "너는 코치야", User: "오늘 기록"}
	httpClient := &http.Client{Timeout: 2 * time.Second}

	t.Run("Success: Sends model, roles and bearer token", func(t *testing.T) {
		var body []byte
		var auth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/responses", r.URL.Path)
			auth = r.Header.Get("Authorization")
			body, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
			io.WriteString(w, `{"output_text": "리포트"}`)
		}))
		defer srv.Close()

		client := llm.NewResponsesClient("sk-test", "", srv.URL+"/v1", httpClient, zap.NewNop())

		text, ok := client.Generate(ctx, prompt)

		require.True(t, ok)
		assert.Equal(t, "리포트", text)
		assert.Equal(t, "Bearer sk-test", auth)

		sent := gjson.ParseBytes(body)
		assert.Equal(t, llm.DefaultModel, sent.Get("model").String())
		assert.Equal(t, "system", sent.Get("input.0.role").String())
		assert.Equal(t, "너는 코치야", sent.Get("input.0.content").String())
		assert.Equal(t, "user", sent.Get("input.1.role").String())
		assert.Equal(t, "오늘 기록", sent.Get("input.1.content").String())
	})

	t.Run("Fail: Empty key makes no call", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer srv.Close()

		client := llm.NewResponsesClient("", "", srv.URL, httpClient, zap.NewNop())

		text, ok := client.Generate(ctx, prompt)

		assert.False(t, ok)
		assert.Empty(t, text)
		assert.Zero(t, hits.Load())
	})

	t.Run("Fail: Non-200 is absent", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
			io.WriteString(w, `{"error": {"message": "rate limited"}}`)
		}))
		defer srv.Close()

		client := llm.NewResponsesClient("sk-test", "gpt-test", srv.URL, httpClient, zap.NewNop())

		_, ok := client.Generate(ctx, prompt)

		assert.False(t, ok)
		assert.Equal(t, int32(1), hits.Load(), "no retry")
	})

	t.Run("Fail: Reply without text is absent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"output": [{"content": [{"type": "refusal", "refusal": "no"}]}]}`)
		}))
		defer srv.Close()

		client := llm.NewResponsesClient("sk-test", "", srv.URL, httpClient, zap.NewNop())

		_, ok := client.Generate(ctx, prompt)

		assert.False(t, ok)
	})

	t.Run("Fail: Slow provider hits the timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		client := llm.NewResponsesClient("sk-test", "", srv.URL, &http.Client{Timeout: 50 * time.Millisecond}, zap.NewNop())

		_, ok := client.Generate(ctx, prompt)

		assert.False(t, ok)
	})
}
