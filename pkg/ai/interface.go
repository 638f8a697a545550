package ai

import "context"

// Generator is the interface for text-generation providers.
// Implement this interface to add new providers (Gemini, Ollama, OpenAI, etc.)
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
