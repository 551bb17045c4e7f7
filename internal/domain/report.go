package domain

// WeeklyMetrics holds the deterministic aggregates for a weekly report.
// These are always computed from the raw entries, never taken from the model.
// @Description Aggregate weekly statistics.
type WeeklyMetrics struct {
	AvgSleep        float64 `json:"avg_sleep" example:"6.9"`
	AvgSleepQuality float64 `json:"avg_sleep_quality" example:"3.4"`
	AvgEnergy       float64 `json:"avg_energy" example:"3.1"`
	TotalDeepWork   int     `json:"total_deep_work" example:"9"`
	EntriesCount    int     `json:"entries_count" example:"7"`
}

// WeeklyExperiment is the single experiment recommended for next week.
// @Description Next week's focus experiment.
type WeeklyExperiment struct {
	Focus         string `json:"focus"`
	Protocol      string `json:"protocol"`
	Mechanism     string `json:"mechanism"`
	SuccessMetric string `json:"success_metric"`
}

// WeeklyReport is the synthesized multi-day report.
// @Description Weekly performance report synthesized from daily entries.
type WeeklyReport struct {
	WeekNarrative     string           `json:"week_narrative"`
	Metrics           WeeklyMetrics    `json:"metrics"`
	RecurringPatterns []string         `json:"recurring_patterns"`
	TopDerailers      []string         `json:"top_derailers"`
	BrightSpots       []string         `json:"bright_spots"`
	WeeklyExperiment  WeeklyExperiment `json:"weekly_experiment"`
	MicroShifts       []string         `json:"micro_shifts"`
	// Diagnostic set when narrative generation failed. Metrics stay
	// populated so callers can still show partial data.
	Err string `json:"error,omitempty"`
}

// WeeklyReportResponse wraps either a locked status or a report.
// @Description Weekly report, or lock status while fewer than 7 distinct
// @Description days have entries.
type WeeklyReportResponse struct {
	Locked       bool          `json:"locked,omitempty"`
	EntriesCount int           `json:"entries_count,omitempty" example:"4"`
	Needed       int           `json:"needed,omitempty" example:"7"`
	Report       *WeeklyReport `json:"report,omitempty"`
}
