package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"

// Service calls the generative-language REST API directly.
type Service struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewService(apiKey string) *Service {
	return &Service{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewServiceWithEndpoint overrides the API endpoint, mainly for tests.
func NewServiceWithEndpoint(apiKey, endpoint string) *Service {
	s := NewService(apiKey)
	s.endpoint = endpoint
	return s
}

// APIError reports a non-200 response from the generation API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error: status %d: %s", e.StatusCode, e.Body)
}

// IsUnavailable reports whether err is a 503 from the generation API,
// which means the model is overloaded and the call is worth retrying.
func IsUnavailable(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends prompt to the model and returns the first candidate's text.
func (g *Service) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini API key is not configured")
	}

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := g.endpoint + "?key=" + g.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned")
	}

	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("empty content returned")
	}
	return text, nil
}

var codeFenceRegex = regexp.MustCompile("```[a-zA-Z]*\n?|\n?```")

// StripCodeFences removes the markdown fences the model sometimes wraps
// around JSON or HTML output despite being told not to.
func StripCodeFences(s string) string {
	return strings.TrimSpace(codeFenceRegex.ReplaceAllString(s, ""))
}
