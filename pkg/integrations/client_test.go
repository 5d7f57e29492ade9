package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/readmerator/pkg/cache"
)

func TestNewClient(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	defer c.Close()

	headers := map[string]string{"Authorization": "Bearer token"}
	client := NewClient(c, "test:", time.Hour, headers)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.cache != c {
		t.Error("NewClient() cache not set correctly")
	}
	if client.headers["Authorization"] != "Bearer token" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestNewClientNilBackend(t *testing.T) {
	client := NewClient(nil, "test:", time.Hour, nil)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.cache == nil {
		t.Error("NewClient() should fall back to a null cache")
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, nil)
	client.http = server.Client()

	var resp response
	err := client.Get(context.Background(), server.URL, &resp)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientGetWithHeaders(t *testing.T) {
	var receivedHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedHeader = r.Header.Get("X-Custom")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, map[string]string{"X-Default": "default"})
	client.http = server.Client()

	var resp map[string]string
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{"X-Custom": "custom"}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if receivedHeader != "custom" {
		t.Errorf("custom header = %q, want %q", receivedHeader, "custom")
	}
}

func TestClientGetWithHeadersOverridesDefaults(t *testing.T) {
	var receivedHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedHeader = r.Header.Get("X-Override")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, map[string]string{"X-Override": "default"})
	client.http = server.Client()

	var resp map[string]string
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{"X-Override": "overridden"}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if receivedHeader != "overridden" {
		t.Errorf("header = %q, want %q", receivedHeader, "overridden")
	}
}

func TestClientGetText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text response"))
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, nil)
	client.http = server.Client()

	text, err := client.GetText(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetText() error: %v", err)
	}
	if text != "plain text response" {
		t.Errorf("GetText() = %q, want %q", text, "plain text response")
	}
}

func TestClientGet404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, nil)
	client.http = server.Client()

	var resp map[string]string
	err := client.Get(context.Background(), server.URL, &resp)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestClientGet500(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, nil)
	client.http = server.Client()

	var resp map[string]string
	err := client.Get(context.Background(), server.URL, &resp)
	if err == nil {
		t.Error("Get() should return error for 500")
	}

	var retryErr *RetryableError
	if !errors.As(err, &retryErr) {
		t.Errorf("Get() error should be RetryableError, got %T", err)
	}
}

func TestClientCached(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	defer c.Close()

	client := NewClient(c, "test:", time.Hour, nil)

	type testData struct {
		Value string `json:"value"`
	}

	fetchCount := 0
	value := testData{}
	fetch := func() error {
		fetchCount++
		value = testData{Value: "fetched"}
		return nil
	}

	// First call fetches and stores
	if err := client.Cached(context.Background(), "key", false, &value, fetch); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if fetchCount != 1 {
		t.Errorf("fetch count = %d, want 1", fetchCount)
	}

	// Second call is served from cache
	value = testData{}
	if err := client.Cached(context.Background(), "key", false, &value, fetch); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if fetchCount != 1 {
		t.Errorf("fetch count = %d, want 1 after cache hit", fetchCount)
	}
	if value.Value != "fetched" {
		t.Errorf("cached value = %q, want %q", value.Value, "fetched")
	}
}

func TestClientCachedRefresh(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	defer c.Close()

	client := NewClient(c, "test:", time.Hour, nil)

	fetchCount := 0
	var value string

	fetch := func() error {
		fetchCount++
		value = "fetched"
		return nil
	}

	// Warm the cache, then refresh should fetch again
	if err := client.Cached(context.Background(), "key", false, &value, fetch); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if err := client.Cached(context.Background(), "key", true, &value, fetch); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if fetchCount != 2 {
		t.Errorf("fetch count = %d, want 2", fetchCount)
	}
}

func TestClientCachedFetchError(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	defer c.Close()

	client := NewClient(c, "test:", time.Hour, nil)

	var value string

	// RetryWithBackoff will retry, so use a non-retryable error
	fetchCount := 0
	fetch := func() error {
		fetchCount++
		return ErrNotFound
	}

	err := client.Cached(context.Background(), "missing", false, &value, fetch)
	if err == nil {
		t.Error("Cached() should return error when fetch fails")
	}
	if fetchCount != 1 {
		t.Errorf("fetch count = %d, want 1 for non-retryable error", fetchCount)
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		wantErr    bool
		wantType   error
		isRetryErr bool
	}{
		{name: "200 OK", code: 200, wantErr: false},
		{name: "404 Not Found", code: 404, wantErr: true, wantType: ErrNotFound},
		{name: "500 Internal Server Error", code: 500, wantErr: true, isRetryErr: true},
		{name: "502 Bad Gateway", code: 502, wantErr: true, isRetryErr: true},
		{name: "503 Service Unavailable", code: 503, wantErr: true, isRetryErr: true},
		{name: "400 Bad Request", code: 400, wantErr: true},
		{name: "403 Forbidden", code: 403, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStatus(tt.code)

			if !tt.wantErr {
				if err != nil {
					t.Errorf("checkStatus(%d) = %v, want nil", tt.code, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("checkStatus(%d) = nil, want error", tt.code)
			}
			if tt.wantType != nil && !errors.Is(err, tt.wantType) {
				t.Errorf("checkStatus(%d) = %v, want %v", tt.code, err, tt.wantType)
			}
			if tt.isRetryErr != IsRetryable(err) {
				t.Errorf("checkStatus(%d) retryable = %v, want %v", tt.code, IsRetryable(err), tt.isRetryErr)
			}
		})
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrNotFound
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	// Non-nil error is wrapped
	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}

	// Error message is preserved
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	// Non-wrapped errors are not retryable
	if IsRetryable(ErrNotFound) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}
