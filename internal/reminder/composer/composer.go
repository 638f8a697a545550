package composer

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"vrikzo-backend/internal/reminder/domain"
	"vrikzo-backend/pkg/ai"
	"vrikzo-backend/pkg/gemini"
)

// Composer renders a reminder into an email body. The primary path asks
// the generation model for the body; when that fails for any reason the
// static template takes over, so Compose never returns an empty body.
type Composer struct {
	generator ai.Generator // nil disables the generated path
}

func New(generator ai.Generator) *Composer {
	return &Composer{generator: generator}
}

// Compose builds the plain-text and HTML bodies for a reminder.
func (c *Composer) Compose(ctx context.Context, plantName string, action domain.Action, remedyText string) (text, htmlBody string) {
	text = fmt.Sprintf("Reminder: %s for %s", action, plantName)

	if c.generator != nil {
		generated, err := c.generator.Generate(ctx, buildPrompt(plantName, action, remedyText))
		if err != nil {
			log.Printf("[Composer] generated email failed, using static template: %v", err)
		} else if body := gemini.StripCodeFences(generated); body != "" {
			return text, body
		}
	}

	return text, staticTemplate(plantName, action, remedyText)
}

func buildPrompt(plantName string, action domain.Action, remedyText string) string {
	if strings.TrimSpace(remedyText) == "" {
		remedyText = "No remedies provided."
	}

	actionLabel := "Treatment"
	if action == domain.ActionWater {
		actionLabel = "Watering"
	}

	return fmt.Sprintf(`You are a friendly plant-care assistant. Generate a clean, concise HTML-formatted reminder email.

Plant: %q
Action: %q

Write:
- Warm greeting
- Why the action matters
- 2 short actionable steps
- A section titled "AI Suggested Remedies"
- Insert the following remedies *exactly as provided*, no rephrasing:

REMEDY TEXT BELOW:
%s

Return ONLY clean HTML (no backticks).`, plantName, actionLabel, remedyText)
}

// staticTemplate performs the same structural composition as the
// generated path using only local string interpolation. User-originated
// text is escaped before embedding.
func staticTemplate(plantName string, action domain.Action, remedyText string) string {
	safePlant := html.EscapeString(plantName)
	safeRemedies := html.EscapeString(remedyText)

	verb := "apply treatment to"
	step := "Apply the recommended plant treatment as instructed."
	if action == domain.ActionWater {
		verb = "water"
		step = "Give 200-400 ml of water depending on pot size."
	}

	var sb strings.Builder
	sb.WriteString(`<div style="font-family:system-ui, sans-serif; color:#0f172a;">`)
	sb.WriteString(fmt.Sprintf(`<h2 style="color:#059669;">🌱 Reminder — %s</h2>`, safePlant))
	sb.WriteString(fmt.Sprintf(`<p>Hello! This is a gentle reminder to <strong>%s</strong> your plant <strong>%s</strong>.</p>`, verb, safePlant))
	sb.WriteString(`<p><strong>Why:</strong> Consistent care helps keep the plant healthy and stress-free.</p>`)
	sb.WriteString(fmt.Sprintf(`<ol><li>%s</li><li>Monitor changes over the next 24-48 hours.</li></ol>`, step))
	if safeRemedies != "" {
		sb.WriteString(`<h3>AI Suggested Remedies</h3>`)
		sb.WriteString(fmt.Sprintf(`<p>%s</p>`, safeRemedies))
	}
	sb.WriteString(`<p style="color:#6b7280; margin-top:20px;">— VrikZo Plant Care</p>`)
	sb.WriteString(`</div>`)
	return sb.String()
}
