package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a user rating submitted after viewing a report.
type Feedback struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Rating     int       `gorm:"type:smallint;not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	ReportType string    `gorm:"type:varchar(50)" json:"report_type"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// FeedbackRequest is the request body for submitting feedback.
// @Description Report feedback submission.
type FeedbackRequest struct {
	// Rating score (1-5)
	Rating int `json:"rating" validate:"required,min=1,max=5" example:"4"`
	// Optional comment (max 1000 chars)
	Comment string `json:"comment,omitempty" validate:"max=1000"`
	// Which report the feedback is about (e.g. "weekly")
	ReportType string `json:"report_type,omitempty" validate:"max=50" example:"weekly"`
}
