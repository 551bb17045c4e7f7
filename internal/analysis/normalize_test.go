package analysis

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signal-au/signal-api/internal/domain"
)

func rawFields(t *testing.T, src string) map[string]json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(src), &fields); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return fields
}

func TestNormalizeDaily(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want domain.AnalysisResult
	}{
		{
			name: "well-shaped response passes through",
			src: `{"reflection_summary": "ok", "likely_drivers": ["slept 5h, energy flagged by noon"],
				"predicted_impact": "slow morning", "experiment_for_tomorrow": "block 9-10am"}`,
			want: domain.AnalysisResult{
				ReflectionSummary:     "ok",
				LikelyDrivers:         []string{"slept 5h, energy flagged by noon"},
				PredictedImpact:       "slow morning",
				ExperimentForTomorrow: "block 9-10am",
			},
		},
		{
			name: "empty mapping degrades to defaults",
			src:  `{}`,
			want: domain.AnalysisResult{LikelyDrivers: []string{}},
		},
		{
			name: "string field that arrived as a mapping",
			src:  `{"reflection_summary": {"morning": "sluggish", "afternoon": "recovered"}}`,
			want: domain.AnalysisResult{
				ReflectionSummary: "morning: sluggish\nafternoon: recovered",
				LikelyDrivers:     []string{},
			},
		},
		{
			name: "driver list mixing strings and mappings",
			src:  `{"likely_drivers": ["plain driver", {"a": "b"}, {"cause": "late caffeine", "evidence": "slept at 2am"}]}`,
			want: domain.AnalysisResult{
				LikelyDrivers: []string{
					"plain driver",
					"a: b",
					"cause: late caffeine — evidence: slept at 2am",
				},
			},
		},
		{
			name: "non-string driver items are stringified",
			src:  `{"likely_drivers": ["x", 3.5, true]}`,
			want: domain.AnalysisResult{
				LikelyDrivers: []string{"x", "3.5", "true"},
			},
		},
		{
			name: "drivers that are not a list degrade to empty",
			src:  `{"likely_drivers": "not a list"}`,
			want: domain.AnalysisResult{LikelyDrivers: []string{}},
		},
		{
			name: "core bottleneck is merged into the summary",
			src:  `{"core_bottleneck": "Low sleep", "reflection_summary": "Did some work."}`,
			want: domain.AnalysisResult{
				ReflectionSummary: "Core bottleneck: Low sleep\n\nDid some work.",
				LikelyDrivers:     []string{},
			},
		},
		{
			name: "empty core bottleneck is ignored",
			src:  `{"core_bottleneck": "", "reflection_summary": "Did some work."}`,
			want: domain.AnalysisResult{
				ReflectionSummary: "Did some work.",
				LikelyDrivers:     []string{},
			},
		},
		{
			name: "micro interventions appended, capped at three",
			src: `{"experiment_for_tomorrow": "one deep block",
				"micro_interventions": ["no phone before 9", {"step": "water first"}, "lights out 11pm", "a fourth one"]}`,
			want: domain.AnalysisResult{
				LikelyDrivers:         []string{},
				ExperimentForTomorrow: "one deep block\n\nMicro-interventions:\n- no phone before 9\n- step: water first\n- lights out 11pm",
			},
		},
		{
			name: "null fields degrade to defaults",
			src:  `{"reflection_summary": null, "likely_drivers": null, "predicted_impact": null}`,
			want: domain.AnalysisResult{LikelyDrivers: []string{}},
		},
		{
			name: "numeric string field is stringified",
			src:  `{"predicted_impact": 24}`,
			want: domain.AnalysisResult{
				PredictedImpact: "24",
				LikelyDrivers:   []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDaily(rawFields(t, tt.src))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NormalizeDaily() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeDaily_NilMap(t *testing.T) {
	got := NormalizeDaily(nil)
	if got.LikelyDrivers == nil {
		t.Error("likely_drivers should be an empty list, not nil")
	}
	if got.ReflectionSummary != "" || got.PredictedImpact != "" || got.ExperimentForTomorrow != "" {
		t.Errorf("expected zero-value strings, got %+v", got)
	}
}

func TestNormalizeWeekly(t *testing.T) {
	metrics := domain.WeeklyMetrics{
		AvgSleep:        6.9,
		AvgSleepQuality: 3.4,
		AvgEnergy:       3.1,
		TotalDeepWork:   9,
		EntriesCount:    7,
	}

	tests := []struct {
		name string
		src  string
		want domain.WeeklyReport
	}{
		{
			name: "model metrics are never trusted",
			src: `{"week_narrative": "steady week",
				"metrics": {"avg_sleep": 99, "entries_count": 1},
				"recurring_patterns": ["late nights on Tue and Thu"],
				"weekly_experiment": {"focus": "sleep by 11", "protocol": "alarm at 10:30", "mechanism": "more REM", "success_metric": "avg sleep 7.5h"}}`,
			want: domain.WeeklyReport{
				WeekNarrative:     "steady week",
				Metrics:           metrics,
				RecurringPatterns: []string{"late nights on Tue and Thu"},
				TopDerailers:      []string{},
				BrightSpots:       []string{},
				MicroShifts:       []string{},
				WeeklyExperiment: domain.WeeklyExperiment{
					Focus:         "sleep by 11",
					Protocol:      "alarm at 10:30",
					Mechanism:     "more REM",
					SuccessMetric: "avg sleep 7.5h",
				},
			},
		},
		{
			name: "bare string experiment is wrapped",
			src:  `{"weekly_experiment": "protect the first deep block"}`,
			want: domain.WeeklyReport{
				Metrics:           metrics,
				RecurringPatterns: []string{},
				TopDerailers:      []string{},
				BrightSpots:       []string{},
				MicroShifts:       []string{},
				WeeklyExperiment:  domain.WeeklyExperiment{Focus: "protect the first deep block"},
			},
		},
		{
			name: "list fields with mapping items render like drivers",
			src:  `{"top_derailers": [{"derailer": "late caffeine", "days": "Tue, Wed"}]}`,
			want: domain.WeeklyReport{
				Metrics:           metrics,
				RecurringPatterns: []string{},
				TopDerailers:      []string{"derailer: late caffeine — days: Tue, Wed"},
				BrightSpots:       []string{},
				MicroShifts:       []string{},
			},
		},
		{
			name: "narrative that arrived as a mapping",
			src:  `{"week_narrative": {"overview": "up and down", "trend": "improving"}}`,
			want: domain.WeeklyReport{
				WeekNarrative:     "overview: up and down\ntrend: improving",
				Metrics:           metrics,
				RecurringPatterns: []string{},
				TopDerailers:      []string{},
				BrightSpots:       []string{},
				MicroShifts:       []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeWeekly(rawFields(t, tt.src), metrics)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NormalizeWeekly() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
