package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	chatdomain "vrikzo-backend/internal/chat/domain"
	"vrikzo-backend/pkg/ai"
)

// ErrModelUnavailable means the CNN model service could not be reached.
var ErrModelUnavailable = errors.New("detection model unavailable")

// ErrUnrecognized means the model produced no usable identification.
var ErrUnrecognized = errors.New("unable to identify plant or disease")

const confidentThreshold = 85

// Detection is the normalized model verdict.
type Detection struct {
	DiseaseName string  `json:"diseaseName"`
	Confidence  float64 `json:"confidence"`
	Status      string  `json:"status"`
}

type DetectResponse struct {
	Detection Detection `json:"detection"`
	Advice    string    `json:"advice"`
	Timestamp time.Time `json:"timestamp"`
}

// DetectUsecase proxies an uploaded image to the disease-classification
// model and enriches the verdict with generated care advice.
type DetectUsecase struct {
	modelURL  string
	client    *http.Client
	generator ai.Generator
}

func NewDetectUsecase(modelURL string, generator ai.Generator) *DetectUsecase {
	return &DetectUsecase{
		modelURL:  modelURL,
		client:    &http.Client{Timeout: 30 * time.Second},
		generator: generator,
	}
}

func (u *DetectUsecase) Detect(ctx context.Context, imagePath string) (*DetectResponse, error) {
	raw, err := u.classify(ctx, imagePath)
	if err != nil {
		return nil, err
	}

	diagnosis := chatdomain.NormalizeDiagnosis(raw)
	if diagnosis == nil {
		return nil, ErrUnrecognized
	}

	diseaseName := diagnosis.Disease
	if diseaseName == "" {
		diseaseName = diagnosis.Crop
	}

	status := "⚠️ Low Confidence"
	if diagnosis.Confidence >= confidentThreshold {
		status = "✅ Confident"
	}

	return &DetectResponse{
		Detection: Detection{
			DiseaseName: diseaseName,
			Confidence:  diagnosis.Confidence,
			Status:      status,
		},
		Advice:    u.advice(ctx, diseaseName, diagnosis.Confidence),
		Timestamp: time.Now().UTC(),
	}, nil
}

// classify sends the image path to the model service and returns its
// loose JSON payload.
func (u *DetectUsecase) classify(ctx context.Context, imagePath string) (map[string]any, error) {
	payload, _ := json.Marshal(map[string]string{"image_path": imagePath})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.modelURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrModelUnavailable, resp.StatusCode)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	return raw, nil
}

func (u *DetectUsecase) advice(ctx context.Context, diseaseName string, confidence float64) string {
	if u.generator == nil {
		return "Unable to fetch care advice at the moment. 🌱"
	}

	prompt := fmt.Sprintf(`You are VrikZo Intelligence 🌿, an expert plant care AI.
Detected disease: **%s** (Confidence: %.2f).

Provide a short, clear, structured response under 60 words:
- 🌿 Observation: one sentence on the issue
- 💊 Remedy: 2-3 actionable treatment steps
- 🌞 Care Tip: how to maintain the plant and prevent recurrence
- ❗ If the disease sounds unknown or healthy, say it's likely healthy.

End naturally with: "Would you like more help or advice?"`, diseaseName, confidence)

	text, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[Detect] Advice generation failed: %v", err)
		return "Unable to fetch care advice at the moment. 🌱"
	}
	if text == "" {
		return "No advice available currently."
	}
	return text
}
