package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubGenerator struct {
	advice string
	err    error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.advice, s.err
}

func TestDetectNormalizesModelResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"diseaseName":"Tomato Early Blight","confidence":92.4}`))
	}))
	defer srv.Close()

	uc := NewDetectUsecase(srv.URL, &stubGenerator{advice: "Remove affected leaves."})
	resp, err := uc.Detect(context.Background(), "/uploads/images/leaf.jpg")
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}

	if resp.Detection.DiseaseName != "Tomato Early Blight" {
		t.Fatalf("unexpected disease name: %q", resp.Detection.DiseaseName)
	}
	if resp.Detection.Status != "✅ Confident" {
		t.Fatalf("expected confident status at 92.4, got %q", resp.Detection.Status)
	}
	if resp.Advice != "Remove affected leaves." {
		t.Fatalf("unexpected advice: %q", resp.Advice)
	}
}

func TestDetectLowConfidenceAndAlternateKeys(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"plant":"Rose","confidence":"42.0"}`))
	}))
	defer srv.Close()

	uc := NewDetectUsecase(srv.URL, &stubGenerator{advice: "ok"})
	resp, err := uc.Detect(context.Background(), "rose.jpg")
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if resp.Detection.DiseaseName != "Rose" {
		t.Fatalf("expected plant key fallback, got %q", resp.Detection.DiseaseName)
	}
	if resp.Detection.Status != "⚠️ Low Confidence" {
		t.Fatalf("expected low-confidence status, got %q", resp.Detection.Status)
	}
}

func TestDetectModelUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	srv.Close() // connection refused from here on

	uc := NewDetectUsecase(srv.URL, nil)
	_, err := uc.Detect(context.Background(), "leaf.jpg")
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestDetectUnrecognizedImage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"confidence":0.1}`))
	}))
	defer srv.Close()

	uc := NewDetectUsecase(srv.URL, nil)
	_, err := uc.Detect(context.Background(), "noise.jpg")
	if !errors.Is(err, ErrUnrecognized) {
		t.Fatalf("expected ErrUnrecognized, got %v", err)
	}
}

func TestDetectAdviceFallback(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"diseaseName":"Leaf Spot","confidence":90}`))
	}))
	defer srv.Close()

	uc := NewDetectUsecase(srv.URL, &stubGenerator{err: errors.New("quota exhausted")})
	resp, err := uc.Detect(context.Background(), "leaf.jpg")
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if !strings.Contains(resp.Advice, "Unable to fetch care advice") {
		t.Fatalf("expected static advice fallback, got %q", resp.Advice)
	}
}
