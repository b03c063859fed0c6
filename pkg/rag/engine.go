package rag

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/agora-ai/agora/internal/catalog"
	"github.com/agora-ai/agora/internal/models"
	"github.com/agora-ai/agora/internal/types"
	"github.com/agora-ai/agora/pkg/llm"
)

const (
	perspectiveTemperature = 0.7
	perspectiveMaxTokens   = 512
	overviewTemperature    = 0.6
	overviewMaxTokens      = 384
	answerTemperature      = 0.7
	answerMaxTokens        = 2048

	fallbackOverview = "Multiple perspectives on your question:"
)

type EngineConfig struct {
	CallTimeout time.Duration
	TopK        int
}

// Engine answers questions: single-philosopher answers with optional
// grounding, and multi-perspective panels with concurrent per-philosopher
// generation.
type Engine struct {
	config       EngineConfig
	orchestrator *Orchestrator
	generator    types.Generator
}

func NewEngine(orchestrator *Orchestrator, generator types.Generator, config EngineConfig) *Engine {
	if config.CallTimeout == 0 {
		config.CallTimeout = 60 * time.Second
	}
	return &Engine{
		config:       config,
		orchestrator: orchestrator,
		generator:    generator,
	}
}

// AuthorAnswer is a single-philosopher response.
type AuthorAnswer struct {
	Answer     string
	Sources    []string
	HasContext bool
}

// AskAuthor answers a question in one philosopher's voice. With grounding
// enabled the question is matched against the philosopher's stored
// excerpts; retrieval failure degrades to an ungrounded answer.
func (e *Engine) AskAuthor(ctx context.Context, question, philosopherID string, grounded bool) (AuthorAnswer, error) {
	p, ok := catalog.PhilosopherByID(philosopherID)
	if !ok {
		return AuthorAnswer{}, fmt.Errorf("unknown philosopher: %s", philosopherID)
	}

	var retrieval models.RetrievalResult
	if grounded {
		retrieval = e.orchestrator.RetrieveForAuthor(ctx, question, philosopherID, e.config.TopK)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.config.CallTimeout)
	defer cancel()

	answer, err := e.generator.Generate(callCtx,
		llm.PersonaPrompt(p, retrieval.Context), question,
		answerTemperature, answerMaxTokens)
	if err != nil {
		return AuthorAnswer{}, err
	}

	return AuthorAnswer{
		Answer:     answer,
		Sources:    retrieval.Sources,
		HasContext: retrieval.HasContext,
	}, nil
}

// AskPanel builds a panel for the question and generates every perspective
// concurrently. A failing philosopher call drops that perspective; the
// panel answer survives as long as the process does. The overview is
// synthesized across whatever perspectives remain.
func (e *Engine) AskPanel(ctx context.Context, question, region, era string) models.PanelAnswer {
	_, selection := e.orchestrator.BuildPanel(question, region, era)

	results := make([]*models.Perspective, len(selection.PhilosopherIDs))
	var wg sync.WaitGroup

	for i, id := range selection.PhilosopherIDs {
		wg.Add(1)
		go func(slot int, philosopherID string) {
			defer wg.Done()

			p, ok := catalog.PhilosopherByID(philosopherID)
			if !ok {
				return
			}

			retrieval := e.orchestrator.RetrieveForAuthor(ctx, question, philosopherID, e.config.TopK)

			callCtx, cancel := context.WithTimeout(ctx, e.config.CallTimeout)
			defer cancel()

			prompt := fmt.Sprintf("Answer this question briefly (3-4 sentences): %s", question)
			response, err := e.generator.Generate(callCtx,
				llm.PersonaPrompt(p, retrieval.Context), prompt,
				perspectiveTemperature, perspectiveMaxTokens)
			if err != nil {
				log.Printf("warn: dropping %s's perspective: %v", philosopherID, err)
				return
			}

			results[slot] = &models.Perspective{
				PhilosopherID: philosopherID,
				Name:          p.Name,
				Bio:           fmt.Sprintf("%s, %s", p.Period, p.School),
				Response:      response,
				Sources:       retrieval.Sources,
			}
		}(i, id)
	}
	wg.Wait()

	var perspectives []models.Perspective
	for _, r := range results {
		if r != nil {
			perspectives = append(perspectives, *r)
		}
	}

	answer := models.PanelAnswer{
		Overview:        fallbackOverview,
		Perspectives:    perspectives,
		Themes:          selection.MatchedThemes,
		Recommendations: selection.Recommendations,
		FiltersExpanded: selection.FiltersExpanded,
	}

	if len(perspectives) > 0 {
		callCtx, cancel := context.WithTimeout(ctx, e.config.CallTimeout)
		defer cancel()

		overview, err := e.generator.Generate(callCtx,
			llm.SynthesisSystemPrompt,
			llm.OverviewPrompt(question, perspectives),
			overviewTemperature, overviewMaxTokens)
		if err != nil {
			log.Printf("warn: overview synthesis failed: %v", err)
		} else {
			answer.Overview = overview
		}
	}

	return answer
}
