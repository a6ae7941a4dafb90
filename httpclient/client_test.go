package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, cfg Config) *Client {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestClient_Do_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := newTestClient(t, Config{
		BaseURL: srv.URL,
		Auth:    BearerAuth("tok-123"),
	})

	resp, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/ping"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !resp.IsSuccess() {
		t.Errorf("status = %d, want 2xx", resp.StatusCode)
	}
	if string(resp.Body) != `{"ok":true}` {
		t.Errorf("body = %q", resp.Body)
	}
}

func TestClient_Do_NonSuccessStatusReturnsTypedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, Config{BaseURL: srv.URL})
	resp, err := client.Do(context.Background(), Request{Method: http.MethodPost, Path: "/x"})
	if err == nil {
		t.Fatal("expected error for 401")
	}
	if StatusOf(err) != 401 {
		t.Errorf("StatusOf = %d, want 401", StatusOf(err))
	}
	if resp == nil || resp.StatusCode != 401 {
		t.Error("response should still be returned alongside the status error")
	}
}

func TestClient_Do_TimeoutClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	client := newTestClient(t, Config{
		BaseURL:         srv.URL,
		RequestTimeout:  50 * time.Millisecond,
		TransferTimeout: 100 * time.Millisecond,
	})

	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/slow"})
	if !IsTimeout(err) {
		t.Errorf("expected timeout classification, got %v", err)
	}
}

func TestClient_Do_ConnectionErrorClassified(t *testing.T) {
	// Grab a port that nothing listens on.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := newTestClient(t, Config{BaseURL: url})
	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if !IsConnection(err) {
		t.Errorf("expected connection classification, got %v", err)
	}
}

func TestClient_Do_QueryAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "1" {
			t.Errorf("query q = %q", r.URL.Query().Get("q"))
		}
		if r.Header.Get("X-Custom") != "yes" {
			t.Errorf("X-Custom = %q", r.Header.Get("X-Custom"))
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(t, Config{BaseURL: srv.URL, Headers: map[string]string{"X-Custom": "yes"}})
	resp, err := client.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/q",
		Query:  map[string]string{"q": "1"},
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.TransferTimeout != 60*time.Second {
		t.Errorf("TransferTimeout = %v, want 60s (2x request)", cfg.TransferTimeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{RequestTimeout: 30 * time.Second, TransferTimeout: 10 * time.Second}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when transfer timeout < request timeout")
	}
}
