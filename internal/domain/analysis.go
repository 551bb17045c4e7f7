package domain

// SentinelDriver is the exact driver string returned when both the primary
// and the simplified model calls failed. Callers detect a placeholder result
// by exact match on the driver list, not by the presence of the error field.
const SentinelDriver = "Analysis pending"

// ReflectionInput is one user-submitted record handed to the analysis
// pipeline. The numeric anchors are clamped and defaulted at the API
// boundary; the pipeline treats them as always valid.
type ReflectionInput struct {
	Transcript     string
	SleepHours     float64
	SleepQuality   int
	Energy         int
	DeepWorkBlocks int
}

// AnalysisResult is the output contract of the daily analysis pipeline,
// regardless of which path produced it (full, simplified retry, fallback).
// @Description Structured daily analysis of a reflection.
type AnalysisResult struct {
	// Human-readable summary, 1-3 sentences. May carry a merged
	// "Core bottleneck:" prefix sentence.
	ReflectionSummary string `json:"reflection_summary" example:"Low sleep cut into morning focus."`
	// Ordered explanatory sentences; empty list permitted.
	LikelyDrivers []string `json:"likely_drivers" example:"[\"Short sleep reduced available energy for deep work\"]"`
	// Expected impact on the next 24-48h of performance.
	PredictedImpact string `json:"predicted_impact" example:"Reduced focus for 24h"`
	// One small experiment to run tomorrow. May carry an appended
	// "Micro-interventions:" section.
	ExperimentForTomorrow string `json:"experiment_for_tomorrow" example:"25 min deep work before any meetings"`
	// Diagnostic from the degraded path. Never analysis content.
	Err string `json:"_error,omitempty"`
}

// IsFallback reports whether the result is the placeholder produced when
// both model attempts failed.
func (r *AnalysisResult) IsFallback() bool {
	return len(r.LikelyDrivers) == 1 && r.LikelyDrivers[0] == SentinelDriver
}

// AnalyzeRequest is the request body for submitting a daily reflection.
// @Description Daily reflection with numeric anchors.
type AnalyzeRequest struct {
	// Entry date in YYYY-MM-DD format
	Date string `json:"date" validate:"required,entrydate" example:"2026-02-24"`
	// Hours slept (0-24)
	SleepHours float64 `json:"sleep_hours" validate:"min=0,max=24" example:"6.5"`
	// Sleep quality rating (1-5)
	SleepQuality int `json:"sleep_quality" validate:"required,min=1,max=5" example:"3"`
	// Energy rating (1-5)
	Energy int `json:"energy" validate:"required,min=1,max=5" example:"3"`
	// Completed deep-work blocks (0-5)
	DeepWorkBlocks int `json:"deep_work_blocks" validate:"min=0,max=5" example:"1"`
	// Free-text reflection (max 5000 chars after sanitization)
	Transcript string `json:"transcript" validate:"max=5000"`
	// Skip the missing-answer gate (used when answering a follow-up)
	SkipMissingCheck bool `json:"skip_missing_check,omitempty"`
	// Marks the entry as a follow-up answer to a clarifying question
	IsFollowUp bool `json:"is_follow_up,omitempty"`
	// Replace an existing entry for the same date
	Overwrite bool `json:"overwrite,omitempty"`
}

// AnalyzeResponse is returned from the analyze endpoint.
// @Description Result of submitting a reflection. Either needs_answer is set
// @Description (a clarifying question the user should answer first) or an
// @Description entry was stored.
type AnalyzeResponse struct {
	// Clarifying question; when set, no entry was created
	NeedsAnswer string `json:"needs_answer,omitempty" example:"How was your energy and focus today?"`
	// ID of the stored entry
	EntryID string `json:"entry_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// The stored analysis
	Analysis *AnalysisResult `json:"analysis,omitempty"`
}
