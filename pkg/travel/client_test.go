package travel

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/voyagekit/skytravel/pkg/cache"
)

func TestConfig_Defaults(t *testing.T) {
	c := NewClient(Config{APIKey: "key"}, WithLogger(log.New(io.Discard)))

	cfg := c.Config()
	if cfg.Country != "GB" || cfg.Currency != "GBP" || cfg.Locale != "en-GB" {
		t.Errorf("expected GB/GBP/en-GB defaults, got %s/%s/%s", cfg.Country, cfg.Currency, cfg.Locale)
	}
	if !cfg.FlattenSingle() {
		t.Error("flattening must default to enabled")
	}
}

func TestConfig_ExplicitValuesKept(t *testing.T) {
	c := NewClient(Config{Country: "TR", Currency: "TRY", Locale: "tr-TR"}, WithLogger(log.New(io.Discard)))

	cfg := c.Config()
	if cfg.Country != "TR" || cfg.Currency != "TRY" || cfg.Locale != "tr-TR" {
		t.Errorf("explicit values must not be overridden, got %s/%s/%s", cfg.Country, cfg.Currency, cfg.Locale)
	}
}

func TestDo_GetEncodesQuery(t *testing.T) {
	var gotURL *url.URL
	var gotAccept, gotForwarded, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL
		gotAccept = r.Header.Get("Accept")
		gotForwarded = r.Header.Get("X-Forwarded-For")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := testClient(t, Config{UserIP: "10.0.0.1"})
	_, err := c.Do(context.Background(), http.MethodGet, server.URL, url.Values{"apiKey": {"key"}})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotURL.Query().Get("apiKey") != "key" {
		t.Errorf("expected apiKey in query string, got %q", gotURL.RawQuery)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected Accept: application/json, got %q", gotAccept)
	}
	if gotForwarded != "10.0.0.1" {
		t.Errorf("expected X-Forwarded-For, got %q", gotForwarded)
	}
	if gotRequestID == "" {
		t.Error("expected an X-Request-Id header")
	}
}

func TestDo_PostEncodesForm(t *testing.T) {
	var gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := testClient(t, Config{})
	resp, err := c.Do(context.Background(), http.MethodPost, server.URL, url.Values{"adults": {"2"}})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if resp.Status != http.StatusCreated {
		t.Errorf("expected 201, got %d", resp.Status)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("expected form content type, got %q", gotContentType)
	}
	if gotBody != "adults=2" {
		t.Errorf("expected form body adults=2, got %q", gotBody)
	}
}

func TestDo_ErrorStatusCapturesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ValidationErrors":[]}`, http.StatusBadRequest)
	}))
	defer server.Close()

	c := testClient(t, Config{})
	resp, err := c.Do(context.Background(), http.MethodGet, server.URL, nil)

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	if terr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", terr.Status)
	}
	if resp == nil || resp.Status != http.StatusBadRequest {
		t.Error("response must be captured alongside the error")
	}
	if len(terr.Body) == 0 {
		t.Error("error body must be captured for inspection")
	}
}

func TestDo_NetworkErrorHasNoStatus(t *testing.T) {
	c := testClient(t, Config{})
	_, err := c.Do(context.Background(), http.MethodGet, "http://127.0.0.1:1", nil)

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	if terr.Status != 0 {
		t.Errorf("network failure must carry no status, got %d", terr.Status)
	}
}

func TestGetJSON_CachesResponses(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"Name":"fresh"}`))
	}))
	defer server.Close()

	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := NewClient(Config{}, WithLogger(log.New(io.Discard)), WithCache(backend, time.Hour))

	var first, second struct{ Name string }
	if err := c.GetJSON(context.Background(), server.URL, nil, &first); err != nil {
		t.Fatal(err)
	}
	if err := c.GetJSON(context.Background(), server.URL, nil, &second); err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Errorf("expected exactly one upstream fetch, got %d", calls)
	}
	if second.Name != "fresh" {
		t.Errorf("expected cached value, got %q", second.Name)
	}
}

func TestStatusMessage(t *testing.T) {
	if got := StatusMessage(410); got != "410 - Gone – The session has expired. A new session must be created." {
		t.Errorf("unexpected message: %q", got)
	}
	if got := StatusMessage(418); got != "418 - Unknown response" {
		t.Errorf("unexpected fallback: %q", got)
	}
}

func TestPollDone(t *testing.T) {
	for status, want := range map[int]bool{200: true, 304: true, 204: false, 201: false} {
		if got := PollDone(status); got != want {
			t.Errorf("PollDone(%d) = %v, want %v", status, got, want)
		}
	}
}
