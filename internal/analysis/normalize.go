package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/signal-au/signal-api/internal/domain"
)

// The normalizer is total: absent or oddly-shaped fields degrade to
// defaults, never to an error. Rejecting a whole response over one malformed
// field would waste an entire model call.

// pair is one key/value of a mapping that arrived where a string was
// expected. Keys keep their order of appearance in the response text.
type pair struct {
	key string
	val any
}

// NormalizeDaily forces every field of a parsed daily response into its
// expected semantic type and applies the bottleneck and micro-intervention
// merges.
func NormalizeDaily(fields map[string]json.RawMessage) domain.AnalysisResult {
	res := domain.AnalysisResult{
		ReflectionSummary:     coerceString(fields["reflection_summary"]),
		LikelyDrivers:         coerceStringList(fields["likely_drivers"]),
		PredictedImpact:       coerceString(fields["predicted_impact"]),
		ExperimentForTomorrow: coerceString(fields["experiment_for_tomorrow"]),
	}

	// The bottleneck merge is one-directional: the satellite field is
	// discarded after being folded into the summary.
	if cb := coerceString(fields["core_bottleneck"]); cb != "" {
		res.ReflectionSummary = "Core bottleneck: " + cb + "\n\n" + res.ReflectionSummary
	}

	if micro := coerceStringList(fields["micro_interventions"]); len(micro) > 0 {
		if len(micro) > 3 {
			micro = micro[:3]
		}
		var b strings.Builder
		b.WriteString(res.ExperimentForTomorrow)
		b.WriteString("\n\nMicro-interventions:")
		for _, m := range micro {
			b.WriteString("\n- ")
			b.WriteString(m)
		}
		res.ExperimentForTomorrow = b.String()
	}

	return res
}

// NormalizeWeekly normalizes a parsed weekly response. The metrics argument
// is the deterministically precomputed aggregate; model-supplied numbers for
// that field are never trusted.
func NormalizeWeekly(fields map[string]json.RawMessage, metrics domain.WeeklyMetrics) domain.WeeklyReport {
	rep := domain.WeeklyReport{
		WeekNarrative:     coerceString(fields["week_narrative"]),
		Metrics:           metrics,
		RecurringPatterns: coerceStringList(fields["recurring_patterns"]),
		TopDerailers:      coerceStringList(fields["top_derailers"]),
		BrightSpots:       coerceStringList(fields["bright_spots"]),
		MicroShifts:       coerceStringList(fields["micro_shifts"]),
	}

	if raw, ok := fields["weekly_experiment"]; ok && len(raw) > 0 {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			rep.WeeklyExperiment = domain.WeeklyExperiment{Focus: s}
		} else {
			// Mapping kept as-is; odd-typed sub-fields degrade to "".
			_ = json.Unmarshal(raw, &rep.WeeklyExperiment)
		}
	}

	return rep
}

// coerceString forces a raw field into a plain string. Keyed mappings become
// a newline-joined "key: value" rendering; anything else is stringified.
func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	if pairs, ok := objectPairs(raw); ok {
		lines := make([]string, len(pairs))
		for i, p := range pairs {
			lines[i] = p.key + ": " + formatValue(p.val)
		}
		return strings.Join(lines, "\n")
	}
	var v any
	if err := decodeNumberAware(raw, &v); err != nil || v == nil {
		return ""
	}
	return formatValue(v)
}

// coerceStringList forces a raw field into a list of strings. Mapping items
// render as an em-dash-joined "key: value" sequence, the separator that
// marks driver semantics; everything else is stringified as-is. A non-list
// value yields an empty list.
func coerceStringList(raw json.RawMessage) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	var items []json.RawMessage
	if json.Unmarshal(raw, &items) != nil {
		return out
	}
	for _, item := range items {
		var s string
		if json.Unmarshal(item, &s) == nil {
			out = append(out, s)
			continue
		}
		if pairs, ok := objectPairs(item); ok {
			parts := make([]string, len(pairs))
			for i, p := range pairs {
				parts[i] = p.key + ": " + formatValue(p.val)
			}
			out = append(out, strings.Join(parts, " — "))
			continue
		}
		var v any
		if err := decodeNumberAware(item, &v); err == nil && v != nil {
			out = append(out, formatValue(v))
		}
	}
	return out
}

// objectPairs walks a raw JSON object token by token so key order survives
// decoding. Returns false if the value is not an object.
func objectPairs(raw json.RawMessage) ([]pair, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, false
	}
	pairs := []pair{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := kt.(string)
		if !ok {
			return nil, false
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, false
		}
		pairs = append(pairs, pair{key: key, val: v})
	}
	return pairs, true
}

func decodeNumberAware(raw json.RawMessage, v *any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return fmt.Sprintf("%t", t)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = formatValue(e)
		}
		return strings.Join(parts, ", ")
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
