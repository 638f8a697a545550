package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateParsesCandidateText(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  hello plant  "}]}}]}`))
	}))
	defer srv.Close()

	svc := NewServiceWithEndpoint("test-key", srv.URL)
	got, err := svc.Generate(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "hello plant" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestGenerateServiceUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewServiceWithEndpoint("test-key", srv.URL)
	_, err := svc.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if !IsUnavailable(err) {
		t.Fatalf("expected IsUnavailable(err) to be true, got %v", err)
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	svc := NewServiceWithEndpoint("test-key", srv.URL)
	if _, err := svc.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestGenerateMissingAPIKey(t *testing.T) {
	t.Parallel()

	svc := NewService("")
	if _, err := svc.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error when API key is missing")
	}
}

func TestStripCodeFences(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"```json\n{\"a\":1}\n```":   `{"a":1}`,
		"```html\n<p>hi</p>\n```":   "<p>hi</p>",
		"```\nplain\n```":           "plain",
		"no fences here":            "no fences here",
		"{\"observation\":\"ok\"}":  `{"observation":"ok"}`,
	}

	for input, want := range cases {
		if got := StripCodeFences(input); got != want {
			t.Errorf("StripCodeFences(%q) = %q, want %q", input, got, want)
		}
	}
}
