package domain

import (
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID `gorm:"type:uuid;not null;index:idx_entries_user_date" json:"user_id"`
	Date                  string    `gorm:"type:date;not null;index:idx_entries_user_date,sort:desc" json:"date"`
	SleepHours            float64   `gorm:"not null" json:"sleep_hours"`
	SleepQuality          int       `gorm:"type:smallint;not null" json:"sleep_quality"`
	Energy                int       `gorm:"type:smallint;not null" json:"energy"`
	DeepWorkBlocks        int       `gorm:"type:smallint;not null" json:"deep_work_blocks"`
	Transcript            string    `gorm:"type:text" json:"transcript"`
	ReflectionSummary     string    `gorm:"type:text" json:"reflection_summary"`
	LikelyDrivers         []string  `gorm:"serializer:json;type:jsonb" json:"likely_drivers"`
	PredictedImpact       string    `gorm:"type:text" json:"predicted_impact"`
	ExperimentForTomorrow string    `gorm:"type:text" json:"experiment_for_tomorrow"`
	EntryNumber           int       `gorm:"not null;default:1" json:"entry_number"`
	IsFollowUp            bool      `gorm:"not null;default:false" json:"is_follow_up"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Entry) TableName() string {
	return "entries"
}

// EntrySummary is the trimmed per-entry view used in history listings.
// Transcript and full analysis fields are omitted.
// @Description Compact entry record for history views.
type EntrySummary struct {
	ID                uuid.UUID `json:"id"`
	Date              string    `json:"date" example:"2026-02-24"`
	SleepHours        float64   `json:"sleep_hours" example:"6.5"`
	SleepQuality      int       `json:"sleep_quality" example:"3"`
	Energy            int       `json:"energy" example:"3"`
	DeepWorkBlocks    int       `json:"deep_work_blocks" example:"1"`
	ReflectionSummary string    `json:"reflection_summary"`
	EntryNumber       int       `json:"entry_number" example:"1"`
	IsFollowUp        bool      `json:"is_follow_up"`
}

func (e *Entry) ToSummary() EntrySummary {
	return EntrySummary{
		ID:                e.ID,
		Date:              e.Date,
		SleepHours:        e.SleepHours,
		SleepQuality:      e.SleepQuality,
		Energy:            e.Energy,
		DeepWorkBlocks:    e.DeepWorkBlocks,
		ReflectionSummary: e.ReflectionSummary,
		EntryNumber:       e.EntryNumber,
		IsFollowUp:        e.IsFollowUp,
	}
}

// EntryResponse is the full single-entry view.
// @Description Full entry record with decrypted analysis fields.
type EntryResponse struct {
	ID                    uuid.UUID `json:"id"`
	Date                  string    `json:"date" example:"2026-02-24"`
	SleepHours            float64   `json:"sleep_hours"`
	SleepQuality          int       `json:"sleep_quality"`
	Energy                int       `json:"energy"`
	DeepWorkBlocks        int       `json:"deep_work_blocks"`
	Transcript            string    `json:"transcript"`
	ReflectionSummary     string    `json:"reflection_summary"`
	LikelyDrivers         []string  `json:"likely_drivers"`
	PredictedImpact       string    `json:"predicted_impact"`
	ExperimentForTomorrow string    `json:"experiment_for_tomorrow"`
	EntryNumber           int       `json:"entry_number"`
	IsFollowUp            bool      `json:"is_follow_up"`
	// True when this is the last entry recorded for its day
	IsFinalForDay bool      `json:"is_final_for_day"`
	CreatedAt     time.Time `json:"created_at"`
}

// EntryListResponse is the response body for listing entries.
// @Description Paginated entry history, newest first.
type EntryListResponse struct {
	Data       []EntrySummary     `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"false"`
}

// EntryFilter contains filter parameters for listing entries.
type EntryFilter struct {
	From   string
	To     string
	Limit  int
	Cursor string
}
