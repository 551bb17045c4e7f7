// Package analysis implements Signal's LLM-response normalization and
// degradation pipeline: it gates low-information input before spending a
// model call, builds prompts, repairs and parses model output that is
// supposed to be JSON but is not guaranteed to be, forces every field into
// its expected shape, and degrades through a simplified retry down to a
// fixed placeholder so callers always receive a well-shaped result.
//
// The package is pure aside from the model calls behind the Completer
// interface: no database, no HTTP, no shared state between invocations.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/signal-au/signal-api/internal/domain"
)

// ErrModelUnavailable indicates no model credential is configured.
var ErrModelUnavailable = errors.New("model unavailable")

// Completer is the model-call boundary. Implementations raise on any
// network, timeout, or provider error; the pipeline treats all of them
// uniformly and never inspects provider-specific subtypes.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

// Factory returns a fresh Completer for a single model call, or nil when no
// model is configured. A fresh client per call avoids cross-call
// contamination after a failure.
type Factory func() Completer

// Pipeline runs the daily analysis with full -> simplified -> fallback
// degradation. No retries within a stage, no backoff: each request is
// interactive and latency-sensitive.
type Pipeline struct {
	factory Factory
}

// NewPipeline creates the daily analysis pipeline. A nil factory behaves as
// a permanently unavailable model.
func NewPipeline(factory Factory) *Pipeline {
	if factory == nil {
		factory = func() Completer { return nil }
	}
	return &Pipeline{factory: factory}
}

// Analyze runs one reflection through the pipeline. It never returns an
// error: total failure yields the placeholder result carrying the sentinel
// driver list and a diagnostic.
func (p *Pipeline) Analyze(ctx context.Context, in domain.ReflectionInput) domain.AnalysisResult {
	res, fullErr := p.attempt(ctx, BuildFullPrompt(in), 0.3, 0)
	if fullErr == nil {
		return res
	}
	log.Printf("[analysis] full attempt failed (%T): %v; retrying simplified", fullErr, fullErr)

	res, simplifiedErr := p.attempt(ctx, BuildSimplifiedPrompt(in), 0.2, 600)
	if simplifiedErr == nil {
		return res
	}
	log.Printf("[analysis] simplified attempt failed (%T): %v; returning placeholder", simplifiedErr, simplifiedErr)

	// The diagnostic reports the FULL attempt's failure: that is the one
	// operators care about when both stages die.
	return Fallback(in, fullErr)
}

func (p *Pipeline) attempt(ctx context.Context, prompt string, temperature float64, maxTokens int) (domain.AnalysisResult, error) {
	c := p.factory()
	if c == nil {
		return domain.AnalysisResult{}, ErrModelUnavailable
	}
	raw, err := c.Complete(ctx, prompt, temperature, maxTokens)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	fields, err := Parse(raw)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	return NormalizeDaily(fields), nil
}

// Fallback builds the fixed placeholder result for a reflection whose
// analysis could not be generated.
func Fallback(in domain.ReflectionInput, cause error) domain.AnalysisResult {
	summary := truncate(in.Transcript, 200)
	if strings.TrimSpace(summary) == "" {
		summary = "No reflection provided."
	}
	return domain.AnalysisResult{
		ReflectionSummary:     summary,
		LikelyDrivers:         []string{domain.SentinelDriver},
		PredictedImpact:       "—",
		ExperimentForTomorrow: "—",
		Err:                   fmt.Sprintf("%T: %v", cause, cause),
	}
}
