package rag

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/agora-ai/agora/internal/models"
	"github.com/agora-ai/agora/internal/types"
	"github.com/agora-ai/agora/pkg/panel"
	"github.com/agora-ai/agora/pkg/ranker"
	"github.com/agora-ai/agora/pkg/themes"
)

// Orchestrator composes embedding, storage, ranking, theme detection and
// panel selection into the two retrieval entry points: grounding context
// for one philosopher, and panel construction for a question.
type Orchestrator struct {
	embedder types.Embedder
	store    types.VectorStore
	selector *panel.Selector
	topK     int
}

func New(embedder types.Embedder, store types.VectorStore, topK int) *Orchestrator {
	if topK <= 0 {
		topK = ranker.DefaultTopK
	}
	return &Orchestrator{
		embedder: embedder,
		store:    store,
		selector: panel.New(),
		topK:     topK,
	}
}

// NewWithSelector is New with a custom panel selector, for running against
// a reduced catalog.
func NewWithSelector(embedder types.Embedder, store types.VectorStore, selector *panel.Selector, topK int) *Orchestrator {
	o := New(embedder, store, topK)
	o.selector = selector
	return o
}

// RetrieveForAuthor assembles grounding context for a question scoped to
// one philosopher. Grounding is best-effort: embedding failures, store
// failures and an empty candidate set all degrade to a no-context result
// rather than an error.
func (o *Orchestrator) RetrieveForAuthor(ctx context.Context, question, philosopherID string, topK int) models.RetrievalResult {
	if topK <= 0 {
		topK = o.topK
	}

	queryVec, err := o.embedder.Embed(ctx, question)
	if err != nil || len(queryVec) == 0 {
		if err != nil {
			log.Printf("warn: question embedding failed, answering without grounding: %v", err)
		}
		return models.RetrievalResult{}
	}

	records, err := o.store.GetAllForAuthor(ctx, philosopherID)
	if err != nil {
		log.Printf("warn: vector store read failed for %s: %v", philosopherID, err)
		return models.RetrievalResult{}
	}

	ranked := ranker.Rank(queryVec, records, topK)
	if len(ranked) == 0 {
		return models.RetrievalResult{}
	}

	var blocks []string
	var sources []string
	seen := make(map[string]bool)

	for i, rec := range ranked {
		blocks = append(blocks, fmt.Sprintf("[%d] From %s:\n%s", i+1, rec.Source, rec.Content))
		if !seen[rec.Source] {
			seen[rec.Source] = true
			sources = append(sources, rec.Source)
		}
	}

	return models.RetrievalResult{
		Context:    strings.Join(blocks, "\n\n"),
		Sources:    sources,
		HasContext: true,
	}
}

// BuildPanel runs theme detection and panel selection for a question. It
// performs no LLM calls; generation over the selection happens downstream.
func (o *Orchestrator) BuildPanel(question, region, era string) (models.ThemeDetection, models.PanelSelection) {
	detection := themes.Detect(question)
	selection := o.selector.Select(detection, region, era)
	return detection, selection
}
