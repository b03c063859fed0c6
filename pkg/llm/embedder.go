package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tmc/langchaingo/llms/googleai"
)

// EmbedderConfig configures the remote embedding client and its retry
// behavior.
type EmbedderConfig struct {
	APIKey      string
	Model       string
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
	QuotaDelay  time.Duration
}

type embeddingClient interface {
	CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error)
}

// Embedder turns text into a fixed-length vector via the hosted embedding
// service, retrying transient failures with capped exponential backoff.
// Quota errors get an additional flat delay before the next attempt.
type Embedder struct {
	config EmbedderConfig
	client embeddingClient
}

func NewEmbedderWithConfig(ctx context.Context, config EmbedderConfig) (*Embedder, error) {
	applyEmbedderDefaults(&config)

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(config.APIKey),
		googleai.WithDefaultEmbeddingModel(config.Model))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedding client: %w", err)
	}

	return &Embedder{
		config: config,
		client: client,
	}, nil
}

func applyEmbedderDefaults(config *EmbedderConfig) {
	if config.Model == "" {
		config.Model = "text-embedding-004"
	}
	if config.MaxAttempts == 0 {
		config.MaxAttempts = 3
	}
	if config.BaseBackoff == 0 {
		config.BaseBackoff = time.Second
	}
	if config.MaxBackoff == 0 {
		config.MaxBackoff = 10 * time.Second
	}
	if config.QuotaDelay == 0 {
		config.QuotaDelay = 5 * time.Second
	}
}

// Embed returns the vector for a single text. An empty response from the
// service is a failure, never coerced into a usable vector. After the retry
// budget is spent the error wraps ErrEmbeddingUnavailable.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = e.config.BaseBackoff
	bo.MaxInterval = e.config.MaxBackoff
	bo.MaxElapsedTime = 0
	bo.Reset()

	var lastErr error

	for attempt := 0; attempt < e.config.MaxAttempts; attempt++ {
		if attempt > 0 {
			wait := bo.NextBackOff()
			if isQuotaError(lastErr) {
				wait += e.config.QuotaDelay
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		vectors, err := e.client.CreateEmbedding(ctx, []string{text})
		if err != nil {
			lastErr = err
			continue
		}
		if len(vectors) == 0 || len(vectors[0]) == 0 {
			lastErr = fmt.Errorf("empty embedding response")
			continue
		}
		return vectors[0], nil
	}

	return nil, fmt.Errorf("%w after %d attempts: %v",
		ErrEmbeddingUnavailable, e.config.MaxAttempts, lastErr)
}

// isQuotaError classifies quota-exhaustion signals from the remote service.
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "429")
}
