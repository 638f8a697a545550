package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vrikzo-backend/internal/chat/domain"
	"vrikzo-backend/internal/chat/dto"
	"vrikzo-backend/pkg/ai"
	"vrikzo-backend/pkg/gemini"
	"vrikzo-backend/pkg/weather"
)

// ErrMessageRequired is returned when a chat request carries neither a
// message nor a diagnosis to talk about.
var ErrMessageRequired = errors.New("message is required")

const defaultCity = "Bangalore"

// WeatherProvider supplies current weather for the chat context.
type WeatherProvider interface {
	Current(ctx context.Context, city string) (*weather.Report, error)
}

// ChatUsecase relays chatbot messages to the generation model, enriched
// with weather and diagnosis context. Upstream failures degrade to
// static replies; they never surface as errors to the HTTP layer.
type ChatUsecase struct {
	generator ai.Generator
	weather   WeatherProvider
	sleep     func(time.Duration)
}

func NewChatUsecase(generator ai.Generator, weatherProvider WeatherProvider) *ChatUsecase {
	return &ChatUsecase{
		generator: generator,
		weather:   weatherProvider,
		sleep:     time.Sleep,
	}
}

func (u *ChatUsecase) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	diagnosis := domain.NormalizeDiagnosis(req.Diagnosis)
	if req.Message == "" && diagnosis == nil {
		return nil, ErrMessageRequired
	}

	report := u.fetchWeather(ctx, req.Location)

	resp := &dto.ChatResponse{
		Weather:   report,
		Diagnosis: diagnosis,
	}
	resp.Reply = u.generateReply(ctx, req, report, diagnosis)
	return resp, nil
}

func (u *ChatUsecase) fetchWeather(ctx context.Context, location string) *weather.Report {
	if u.weather == nil {
		return nil
	}
	city := location
	if strings.TrimSpace(city) == "" {
		city = defaultCity
	}
	report, err := u.weather.Current(ctx, city)
	if err != nil {
		log.Printf("[Chat] Weather fetch failed for %q: %v", city, err)
		return nil
	}
	return report
}

func (u *ChatUsecase) generateReply(ctx context.Context, req dto.ChatRequest, report *weather.Report, diagnosis *domain.Diagnosis) dto.Reply {
	if u.generator == nil {
		return unreachableReply()
	}

	prompt := buildPrompt(req, report, diagnosis)

	text, err := u.generator.Generate(ctx, prompt)
	if gemini.IsUnavailable(err) {
		// The model occasionally reports overload; one retry after a
		// short pause usually succeeds.
		log.Printf("[Chat] Generation overloaded, retrying: %v", err)
		u.sleep(2 * time.Second)
		text, err = u.generator.Generate(ctx, prompt)
	}
	if err != nil {
		log.Printf("[Chat] Generation failed: %v", err)
		return unreachableReply()
	}

	var reply dto.Reply
	if err := json.Unmarshal([]byte(gemini.StripCodeFences(text)), &reply); err != nil {
		log.Printf("[Chat] Could not parse model reply: %v", err)
		return dto.Reply{
			Observation: "Sorry, I couldn't process that.",
			FollowUp:    "Would you like more help or advice?",
		}
	}
	return reply
}

func buildPrompt(req dto.ChatRequest, report *weather.Report, diagnosis *domain.Diagnosis) string {
	weatherInfo := "Weather data unavailable."
	if report != nil {
		weatherInfo = fmt.Sprintf("Current weather in %s: %.1f°C, %s, humidity %d%%.",
			report.City, report.Temp, report.Condition, report.Humidity)
	}

	var history strings.Builder
	for _, entry := range req.History {
		role := "AI"
		if entry.Role == "user" {
			role = "User"
		}
		fmt.Fprintf(&history, "%s: %s\n", role, entry.Text)
	}

	diagnosisContext := ""
	if diagnosis != nil {
		diagnosisContext = fmt.Sprintf(`Detected Crop: %s
Detected Disease: %s
Confidence: %.2f%%

Use this diagnosis + weather to generate advice.
`, diagnosis.Crop, diagnosis.Disease, diagnosis.Confidence*100)
	}

	message := req.Message
	if message == "" {
		message = "[No user text — image diagnosis only]"
	}

	return fmt.Sprintf(`You are **VrikZo Intelligence 🌿**, a kind plant care assistant.
Keep responses short, friendly, and human (under 50 words).

Give as per Weather info: %s
%s
Respond ONLY in JSON format like:
{
  "observation": "",
  "remedy": "",
  "careTip": ""
}

Chat History:
%s
User: %s
AI:
`, weatherInfo, diagnosisContext, history.String(), message)
}

func unreachableReply() dto.Reply {
	return dto.Reply{
		Observation: "Sorry 🌱, I couldn't reach VrikZo Intelligence.",
		FollowUp:    "Would you like more help or advice?",
	}
}
