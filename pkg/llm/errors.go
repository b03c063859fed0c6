package llm

import "errors"

var (
	// ErrEmbeddingUnavailable marks an embedding call that failed after the
	// full retry budget.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrGenerationFailed marks a chat completion that could not produce
	// usable text.
	ErrGenerationFailed = errors.New("generation failed")
)
