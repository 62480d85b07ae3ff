package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/joseph-ayodele/rider-orders/internal/llm"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(url string, timeout time.Duration) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: url,
		Model:   "vision-test",
		Timeout: timeout,
	}, quietLogger())
}

func completion(content string) []byte {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return b
}

func TestExtractOrders_Success(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content []struct {
				Type     string `json:"type"`
				Text     string `json:"text"`
				ImageURL struct {
					URL string `json:"url"`
				} `json:"image_url"`
			} `json:"content"`
		} `json:"messages"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}
	var auth, path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write(completion("  img1.png,35,1250\n"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL+"/", time.Second)
	reply := c.ExtractOrders(context.Background(), llm.ExtractRequest{
		Filename:     "img1.png",
		ImageDataURL: "data:image/png;base64,AAAA",
	})

	if reply != "img1.png,35,1250" {
		t.Errorf("reply = %q", reply)
	}
	if auth != "Bearer test-key" {
		t.Errorf("Authorization = %q", auth)
	}
	if path != "/chat/completions" {
		t.Errorf("path = %q", path)
	}
	if got.Model != "vision-test" || got.ResponseFormat.Type != "text" {
		t.Errorf("model/response_format = %q/%q", got.Model, got.ResponseFormat.Type)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" || len(got.Messages[0].Content) != 2 {
		t.Fatalf("unexpected messages: %+v", got.Messages)
	}
	text, img := got.Messages[0].Content[0], got.Messages[0].Content[1]
	if text.Type != "text" || !strings.Contains(text.Text, "img1.png,35,1250") {
		t.Errorf("text part = %+v", text)
	}
	if img.Type != "image_url" || img.ImageURL.URL != "data:image/png;base64,AAAA" {
		t.Errorf("image part = %+v", img)
	}
}

func TestExtractOrders_FailuresBecomeSentinel(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}},
		{"empty choices", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>gateway</html>`))
		}},
		{"timeout", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := newTestClient(srv.URL, 100*time.Millisecond)
			reply := c.ExtractOrders(context.Background(), llm.ExtractRequest{Filename: "a.png"})

			if !llm.IsCallError(reply) {
				t.Fatalf("expected call error sentinel, got %q", reply)
			}
			if msg := strings.TrimPrefix(reply, "call error: "); len([]rune(msg)) > 30 {
				t.Errorf("error text not truncated: %q", msg)
			}
		})
	}
}

func TestExtractOrders_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	reply := newTestClient(url, time.Second).ExtractOrders(context.Background(), llm.ExtractRequest{Filename: "a.png"})
	if !llm.IsCallError(reply) {
		t.Fatalf("expected call error sentinel, got %q", reply)
	}
}

func TestPing(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write(completion("Hello!"))
	}))
	defer srv.Close()

	reply, err := newTestClient(srv.URL, time.Second).Ping(context.Background())
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if reply != "Hello!" {
		t.Errorf("reply = %q", reply)
	}
	if !bytes.Contains(body, []byte(`"content":"You are a helpful assistant."`)) {
		t.Errorf("unexpected ping body: %s", body)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	t.Setenv("ARK_API_KEY", "from-env")
	c := NewClient(Config{}, nil)

	if c.cfg.APIKey != "from-env" {
		t.Errorf("APIKey = %q", c.cfg.APIKey)
	}
	if c.cfg.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v", c.cfg.Timeout)
	}
	if c.Model() != "doubao-1.5-vision-pro-250328" {
		t.Errorf("Model = %q", c.Model())
	}
}
