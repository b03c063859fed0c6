package llm

import (
	"fmt"
	"strings"

	"github.com/agora-ai/agora/internal/catalog"
	"github.com/agora-ai/agora/internal/models"
)

// SynthesisSystemPrompt frames the overview call that runs after a panel's
// individual perspectives have been generated.
const SynthesisSystemPrompt = "You are a philosophical synthesizer providing clear, accessible overviews."

// PersonaPrompt builds the system prompt that makes the LLM answer in a
// philosopher's voice. When grounding context is available it is appended
// as excerpt material for the model to draw on.
func PersonaPrompt(p catalog.Philosopher, ragContext string) string {
	themes := strings.Join(p.KeyThemes, ", ")

	prompt := fmt.Sprintf(`You are Agora responding in the style of %s.

Tone guidelines:
%s

Rules:
- Do NOT claim to be the historical figure %s.
- Write in modern, clear English that's accessible to contemporary readers.
- Format your response as follows:
  1. A 1-2 sentence styled opening that captures %s's voice
  2. 3-5 bullet points of insight related to the question
  3. A closing sentence connecting to one of %s's core themes: %s

Key themes to draw from: %s
`, p.Name, p.StyleGuide, p.Name, p.Name, p.Name, themes, themes)

	if ragContext != "" {
		prompt += fmt.Sprintf("\n\nRelevant context from %s's works:\n%s", p.Name, ragContext)
	}

	return prompt
}

// OverviewPrompt asks for a short synthesis across the surviving panel
// perspectives, highlighting contrasts and complements.
func OverviewPrompt(question string, perspectives []models.Perspective) string {
	var lines []string
	for _, p := range perspectives {
		lines = append(lines, fmt.Sprintf("- %s: %s", p.Name, p.Response))
	}

	return fmt.Sprintf(`You are synthesizing wisdom from multiple philosophical traditions.
The question is: %q

Here are perspectives from different philosophers:
%s

Provide:
1. A brief 2-3 sentence overview highlighting the key insights
2. Note any interesting contrasts or complementary viewpoints`,
		question, strings.Join(lines, "\n"))
}
