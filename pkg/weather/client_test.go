package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCurrentNormalizesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Bangalore" {
			t.Errorf("unexpected city query: %q", got)
		}
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("expected metric units, got %q", got)
		}
		w.Write([]byte(`{"main":{"temp":24.5,"humidity":68},"weather":[{"description":"scattered clouds"}],"name":"Bengaluru","cod":200}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("key", srv.URL)
	report, err := c.Current(context.Background(), "Bangalore")
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}

	if report.Temp != 24.5 || report.Humidity != 68 {
		t.Fatalf("unexpected readings: %+v", report)
	}
	if report.Condition != "scattered clouds" {
		t.Fatalf("unexpected condition: %q", report.Condition)
	}
	if report.City != "Bengaluru" {
		t.Fatalf("expected upstream city name, got %q", report.City)
	}
}

func TestCurrentFallsBackToRequestedCity(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main":{"temp":10,"humidity":50},"weather":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("key", srv.URL)
	report, err := c.Current(context.Background(), "Mysore")
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if report.City != "Mysore" {
		t.Fatalf("expected requested city fallback, got %q", report.City)
	}
	if report.Condition != "Unknown" {
		t.Fatalf("expected Unknown condition, got %q", report.Condition)
	}
}

func TestCurrentUpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":"404","message":"city not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("key", srv.URL)
	if _, err := c.Current(context.Background(), "Nowhere"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestCurrentMissingAPIKey(t *testing.T) {
	t.Parallel()

	c := NewClient("")
	if _, err := c.Current(context.Background(), "Bangalore"); err == nil {
		t.Fatal("expected error when API key missing")
	}
}
