package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/signal-au/signal-api/internal/domain"
)

type SignupRepository interface {
	Create(ctx context.Context, signup *domain.Signup) error
}

type signupRepository struct {
	db *gorm.DB
}

func NewSignupRepository(db *gorm.DB) SignupRepository {
	return &signupRepository{db: db}
}

func (r *signupRepository) Create(ctx context.Context, signup *domain.Signup) error {
	err := r.db.WithContext(ctx).Create(signup).Error
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

// isDuplicateKey detects unique-constraint violations without depending on a
// specific driver error type. Postgres reports SQLSTATE 23505.
func isDuplicateKey(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
