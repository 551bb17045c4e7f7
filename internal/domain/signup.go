package domain

import (
	"time"

	"github.com/google/uuid"
)

// Signup is a waitlist signup from the landing page.
type Signup struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Signup) TableName() string {
	return "signups"
}

// JoinRequest is the request body for joining the waitlist.
// @Description Waitlist signup request.
type JoinRequest struct {
	Email string `json:"email" validate:"required,email" example:"ada@example.com"`
}

// JoinResponse is the response body for the waitlist endpoint.
// @Description Waitlist signup result.
type JoinResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty" example:"You're on the list. We'll be in touch."`
	Error   string `json:"error,omitempty"`
}
