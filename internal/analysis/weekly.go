package analysis

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/signal-au/signal-api/internal/domain"
)

const (
	// MaxWeeklyEntries caps how many recent entries feed the weekly digest.
	MaxWeeklyEntries = 14
	// maxDigestLen is a hard token-budget guard on the rendered digest.
	maxDigestLen = 6000
)

// Synthesizer turns an ordered-by-recency set of daily entries into a
// weekly report. Aggregate metrics are computed here deterministically and
// are never taken from the model.
type Synthesizer struct {
	factory Factory
}

// NewSynthesizer creates the weekly synthesizer. A nil factory behaves as a
// permanently unavailable model.
func NewSynthesizer(factory Factory) *Synthesizer {
	if factory == nil {
		factory = func() Completer { return nil }
	}
	return &Synthesizer{factory: factory}
}

// Synthesize builds the weekly report from the given entries (newest
// first). On any model or parse failure the returned report carries a
// diagnostic but still has its metrics populated, so the caller can show
// partial data.
func (s *Synthesizer) Synthesize(ctx context.Context, entries []domain.Entry) domain.WeeklyReport {
	if len(entries) > MaxWeeklyEntries {
		entries = entries[:MaxWeeklyEntries]
	}
	metrics := ComputeWeeklyMetrics(entries)
	digest := truncate(BuildDigest(entries), maxDigestLen)
	prompt := buildWeeklyPrompt(metrics, digest)

	c := s.factory()
	if c == nil {
		return errorReport(metrics, ErrModelUnavailable)
	}
	raw, err := c.Complete(ctx, prompt, 0.3, 3000)
	if err != nil {
		log.Printf("[weekly] model call failed (%T): %v", err, err)
		return errorReport(metrics, err)
	}
	fields, err := Parse(raw)
	if err != nil {
		log.Printf("[weekly] parse failed (%T): %v", err, err)
		return errorReport(metrics, err)
	}
	return NormalizeWeekly(fields, metrics)
}

// ComputeWeeklyMetrics computes the deterministic aggregates over the
// entries considered. Missing numeric fields contribute their zero value to
// the sums; the divisor is the number of entries considered.
func ComputeWeeklyMetrics(entries []domain.Entry) domain.WeeklyMetrics {
	n := len(entries)
	if n == 0 {
		return domain.WeeklyMetrics{}
	}
	var sleep, quality, energy float64
	blocks := 0
	for _, e := range entries {
		sleep += e.SleepHours
		quality += float64(e.SleepQuality)
		energy += float64(e.Energy)
		blocks += e.DeepWorkBlocks
	}
	return domain.WeeklyMetrics{
		AvgSleep:        round1(sleep / float64(n)),
		AvgSleepQuality: round1(quality / float64(n)),
		AvgEnergy:       round1(energy / float64(n)),
		TotalDeepWork:   blocks,
		EntriesCount:    n,
	}
}

// BuildDigest renders the plain-text digest fed into the weekly prompt: one
// block per entry, blocks separated by a "---" line.
func BuildDigest(entries []domain.Entry) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		summary := e.ReflectionSummary
		if summary == "" {
			summary = "—"
		}
		experiment := e.ExperimentForTomorrow
		if experiment == "" {
			experiment = "—"
		}
		drivers := strings.Join(e.LikelyDrivers, "; ")
		blocks = append(blocks, fmt.Sprintf(
			"Date: %s | Sleep: %sh (quality %d/5) | Energy: %d/5 | Deep work: %d blocks\nSummary: %s\nDrivers: %s\nExperiment: %s",
			e.Date, formatHours(e.SleepHours), e.SleepQuality, e.Energy, e.DeepWorkBlocks,
			truncate(summary, 300), truncate(drivers, 200), truncate(experiment, 150)))
	}
	return strings.Join(blocks, "\n---\n")
}

func errorReport(metrics domain.WeeklyMetrics, cause error) domain.WeeklyReport {
	return domain.WeeklyReport{
		Metrics:           metrics,
		RecurringPatterns: []string{},
		TopDerailers:      []string{},
		BrightSpots:       []string{},
		MicroShifts:       []string{},
		Err:               fmt.Sprintf("Report generation failed: %T: %v", cause, cause),
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
