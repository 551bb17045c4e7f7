package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// FirstName returns the user's first name for email greetings, or "" if unknown.
func (u *User) FirstName() string {
	for i, c := range u.Name {
		if c == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}
