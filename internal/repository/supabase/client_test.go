package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClientRequiresURLAndKey(t *testing.T) {
	if _, err := NewClient("", "key"); err == nil {
		t.Error("expected error for empty url")
	}
	if _, err := NewClient("https://example.supabase.co", ""); err == nil {
		t.Error("expected error for empty key")
	}
	if _, err := NewClient("https://example.supabase.co", "key"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecuteSendsAuthHeadersAndFilters(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"username":"ana"}]`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []map[string]any
	err = client.From("customer").Select("*").Eq("username", "ana").Execute(context.Background(), &rows)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if got.URL.Path != "/rest/v1/customer" {
		t.Errorf("unexpected path: %s", got.URL.Path)
	}
	if got.URL.Query().Get("username") != "eq.ana" {
		t.Errorf("unexpected filter: %s", got.URL.RawQuery)
	}
	if got.Header.Get("apikey") != "secret-key" {
		t.Error("apikey header missing")
	}
	if got.Header.Get("Authorization") != "Bearer secret-key" {
		t.Errorf("unexpected authorization header: %s", got.Header.Get("Authorization"))
	}
	if len(rows) != 1 || rows[0]["username"] != "ana" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestExecuteWritesAskForRepresentation(t *testing.T) {
	var method, prefer, contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		prefer = r.Header.Get("Prefer")
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"product_id":1}]`))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, "k")

	var rows []map[string]any
	err := client.From("product").Insert(map[string]any{"name": "Mouse"}).Execute(context.Background(), &rows)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if method != http.MethodPost {
		t.Errorf("unexpected method: %s", method)
	}
	if prefer != "return=representation" {
		t.Errorf("unexpected Prefer header: %q", prefer)
	}
	if contentType != "application/json" {
		t.Errorf("unexpected Content-Type: %q", contentType)
	}
}

func TestExecuteSurfacesRemoteMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"duplicate key value violates unique constraint"}`))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, "k")

	err := client.From("customer").Insert(map[string]any{}).Execute(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "duplicate key value") {
		t.Errorf("remote message lost: %v", err)
	}
}

func TestExecuteFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, "k")

	err := client.From("sale").Select("*").Execute(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), http.StatusText(http.StatusServiceUnavailable)) {
		t.Errorf("expected status text fallback: %v", err)
	}
}
