package analysis

import (
	"fmt"

	"github.com/signal-au/signal-api/internal/domain"
)

// Prompt templates are rendered by plain string substitution and have no
// failure mode. The full template carries the stylistic constraints; the
// simplified template keeps only the required keys and exists to maximize
// the odds of parseable output on the retry.

const fullPromptTemplate = `You are Signal, a performance pattern detection engine. You analyze daily reflections and detect factors impacting productivity. You do NOT provide therapy advice. You focus strictly on performance drivers.

Anchors: sleep %sh, quality %d/5, energy %d/5, deep work blocks %d.

Reflection: %s

Return JSON only, no prose, with exactly these fields:
{"reflection_summary": "1-2 sentence summary of performance-relevant factors", "likely_drivers": ["full explanatory sentences, never single words"], "predicted_impact": "impact on next 24-48h performance", "experiment_for_tomorrow": "one small performance experiment", "core_bottleneck": "the single biggest constraint today, or empty string", "micro_interventions": ["up to 3 small adjustments supporting the experiment"]}

Rules:
- Focus on performance drivers (sleep, energy, focus, blockers), not emotional or relationship advice.
- Every driver must cite an observable behavioral signal from the reflection or anchors, or state "Insufficient data".
- Single-word drivers like "stress" or "sleep" are banned.`

const simplifiedPromptTemplate = `Analyze this daily reflection. Anchors: sleep %sh, quality %d/5, energy %d/5, deep work blocks %d.

Reflection: %s

Return only a JSON object with these keys: "reflection_summary", "likely_drivers", "predicted_impact", "experiment_for_tomorrow", "core_bottleneck", "micro_interventions".`

const gatePromptTemplate = `You are Signal, a performance pattern detection engine. Anchors: sleep %sh, quality %d/5, energy %d/5, deep work %d.

Reflection: %s

Is there ONE critical performance question (sleep, energy, focus, work output) that would significantly improve the analysis if the user answered it? Focus on PERFORMANCE only.
- If reflection is very short or only mentions sleep, ask about energy or focus (e.g. "How was your energy and focus today?")
- If reflection is detailed enough, return: NONE

If yes, return exactly one short question ending with ?
If no, return: NONE`

const weeklyPromptTemplate = `You are "Signal", a cognitive performance analysis engine. Synthesize %d daily reflections into a weekly performance report.

WEEKLY DATA:
- Entries: %d days
- Avg sleep: %sh | Avg quality: %s/5 | Avg energy: %s/5
- Total deep work blocks: %d

DAILY ENTRIES:
%s

RULES:
1. Ground every insight in observable patterns from the data. No generic advice.
2. Identify RECURRING themes — what appeared 2+ times across the week.
3. Be specific: cite actual days, behaviors, and numbers.
4. Tone: Analytical, precise, non-emotional.

Return valid JSON only. No markdown. Structure:
{
  "week_narrative": "3-5 sentence overview of the week's performance arc. Cite specific patterns and inflection points.",
  "metrics": {
    "avg_sleep": %s,
    "avg_sleep_quality": %s,
    "avg_energy": %s,
    "total_deep_work": %d,
    "entries_count": %d
  },
  "recurring_patterns": [
    "Pattern 1: description with evidence from multiple days",
    "Pattern 2: description with evidence from multiple days",
    "Pattern 3: description with evidence from multiple days"
  ],
  "top_derailers": [
    "Derailer 1: what repeatedly hurt performance, with specific days/evidence",
    "Derailer 2: what repeatedly hurt performance, with specific days/evidence"
  ],
  "bright_spots": [
    "What went well this week — specific days and behaviors that produced good output"
  ],
  "weekly_experiment": {
    "focus": "The ONE thing to focus on next week based on the biggest recurring pattern",
    "protocol": "Specific daily action with timing and measurement",
    "mechanism": "Why this targets the root cause",
    "success_metric": "How to know if it's working by end of next week"
  },
  "micro_shifts": [
    "2-3 small daily adjustments that support the main experiment"
  ]
}`

// BuildFullPrompt renders the rich daily-analysis prompt.
func BuildFullPrompt(in domain.ReflectionInput) string {
	return fmt.Sprintf(fullPromptTemplate,
		formatHours(in.SleepHours), in.SleepQuality, in.Energy, in.DeepWorkBlocks,
		truncate(in.Transcript, 1500))
}

// BuildSimplifiedPrompt renders the compact last-resort retry prompt.
func BuildSimplifiedPrompt(in domain.ReflectionInput) string {
	return fmt.Sprintf(simplifiedPromptTemplate,
		formatHours(in.SleepHours), in.SleepQuality, in.Energy, in.DeepWorkBlocks,
		truncate(in.Transcript, 800))
}

func buildGatePrompt(in domain.ReflectionInput) string {
	return fmt.Sprintf(gatePromptTemplate,
		formatHours(in.SleepHours), in.SleepQuality, in.Energy, in.DeepWorkBlocks,
		truncate(in.Transcript, 800))
}

func buildWeeklyPrompt(metrics domain.WeeklyMetrics, digest string) string {
	return fmt.Sprintf(weeklyPromptTemplate,
		metrics.EntriesCount, metrics.EntriesCount,
		formatHours(metrics.AvgSleep), formatHours(metrics.AvgSleepQuality), formatHours(metrics.AvgEnergy),
		metrics.TotalDeepWork,
		digest,
		formatHours(metrics.AvgSleep), formatHours(metrics.AvgSleepQuality), formatHours(metrics.AvgEnergy),
		metrics.TotalDeepWork, metrics.EntriesCount)
}

// formatHours renders a float the way a person writes it: 6.5 not 6.500000,
// 7 not 7.0.
func formatHours(v float64) string {
	return fmt.Sprintf("%g", v)
}

// truncate caps s to n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
