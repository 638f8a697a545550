package dto

import (
	"vrikzo-backend/internal/chat/domain"
	"vrikzo-backend/pkg/weather"
)

// ChatRequest is the payload relayed from the chatbot UI. Diagnosis is
// kept loose here because callers disagree on its key names; it is
// normalized before use.
type ChatRequest struct {
	Message   string         `json:"message"`
	History   []HistoryEntry `json:"history"`
	Location  string         `json:"location"`
	Diagnosis map[string]any `json:"diagnosis"`
}

type HistoryEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Reply is the structured assistant answer.
type Reply struct {
	Observation string `json:"observation"`
	Remedy      string `json:"remedy"`
	CareTip     string `json:"careTip"`
	FollowUp    string `json:"followUp,omitempty"`
}

type ChatResponse struct {
	Reply     Reply             `json:"reply"`
	Weather   *weather.Report   `json:"weather,omitempty"`
	Diagnosis *domain.Diagnosis `json:"diagnosis,omitempty"`
}
